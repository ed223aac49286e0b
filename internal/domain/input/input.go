// Package input holds the per-frame input snapshot the screen logic reads.
package input

import "github.com/younwookim/wizzy/internal/domain/geom"

// State holds one frame of input.
// Edge fields are true only on the frame the button went down.
type State struct {
	ActionJustPressed  bool
	PointerX           int
	PointerY           int
	PointerPressed     bool
	PointerJustPressed bool
}

// Pointer returns the pointer position in screen units.
func (s State) Pointer() geom.Point {
	return geom.Pt(float64(s.PointerX), float64(s.PointerY))
}
