// Package easing maps normalized progress to eased progress.
//
// Curve formulas come from gween's ease functions evaluated over a unit
// range (begin 0, change 1, duration 1), so Sample(0) and Sample(1) are the
// curve's endpoints and values outside [0,1] extrapolate.
package easing

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrUnknownCurve is returned by Parse for names that match no curve.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Curve is a named easing curve
type Curve int

const (
	Linear Curve = iota
	EaseOutCubic
	EaseInCubic
	EaseInOutCubic
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseOutBounce

	curveCount
)

var curveFuncs = [curveCount]ease.TweenFunc{
	Linear:         ease.Linear,
	EaseOutCubic:   ease.OutCubic,
	EaseInCubic:    ease.InCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
	EaseInBack:     ease.InBack,
	EaseOutBack:    ease.OutBack,
	EaseInOutBack:  ease.InOutBack,
	EaseOutBounce:  ease.OutBounce,
}

var curveNames = [curveCount]string{
	Linear:         "linear",
	EaseOutCubic:   "easeOutCubic",
	EaseInCubic:    "easeInCubic",
	EaseInOutCubic: "easeInOutCubic",
	EaseInQuad:     "easeInQuad",
	EaseOutQuad:    "easeOutQuad",
	EaseInOutQuad:  "easeInOutQuad",
	EaseInSine:     "easeInSine",
	EaseOutSine:    "easeOutSine",
	EaseInOutSine:  "easeInOutSine",
	EaseInBack:     "easeInBack",
	EaseOutBack:    "easeOutBack",
	EaseInOutBack:  "easeInOutBack",
	EaseOutBounce:  "easeOutBounce",
}

// Sample returns the eased progress for t.
// Out-of-range curves sample as Linear.
//
// Curves are evaluated in float32, so the result carries about 1e-7
// relative error. Tweens spanning a range much wider than a few thousand
// units will land up to that fraction of the range off the exact curve
// between the endpoints; 0 and 1 are exact.
func (c Curve) Sample(t float64) float64 {
	fn := ease.Linear
	if c.Valid() {
		fn = curveFuncs[c]
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// Valid reports whether c names a known curve.
func (c Curve) Valid() bool {
	return c >= 0 && c < curveCount
}

// String returns the config name of the curve
func (c Curve) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return curveNames[c]
}

// Parse returns the curve with the given config name.
func Parse(name string) (Curve, error) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Curves lists every known curve in declaration order.
func Curves() []Curve {
	out := make([]Curve, 0, curveCount)
	for c := Linear; c < curveCount; c++ {
		out = append(out, c)
	}
	return out
}
