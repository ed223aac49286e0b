// Package tween provides a tick-driven scalar animator.
//
// A Tween interpolates from a start value to a target value over a fixed
// number of ticks, reshaping progress with an easing curve. It does not
// drive time itself: the owner calls Tick exactly once per logical frame.
package tween

import "github.com/younwookim/wizzy/internal/domain/easing"

// Tween animates a float64 value.
//
// Invariant: 0 <= elapsed <= duration.
type Tween struct {
	start    float64
	target   float64
	duration int
	elapsed  int
	curve    easing.Curve
}

// State is the plain-data form of a Tween, used for persistence.
type State struct {
	Start    float64
	Target   float64
	Duration int
	Elapsed  int
	Curve    easing.Curve
}

// New creates a finished tween resting at initial.
func New(initial float64) *Tween {
	return &Tween{
		start:  initial,
		target: initial,
		curve:  easing.Linear,
	}
}

// WithDuration sets the length of an animation in ticks.
// Call only while constructing; the tween stays done.
func (t *Tween) WithDuration(ticks int) *Tween {
	if ticks < 0 {
		ticks = 0
	}
	t.duration = ticks
	t.elapsed = ticks
	return t
}

// WithEasing sets the curve. Call only while constructing.
func (t *Tween) WithEasing(c easing.Curve) *Tween {
	t.curve = c
	return t
}

// Tick advances the animation by one frame, saturating at the duration.
func (t *Tween) Tick() {
	if t.elapsed < t.duration {
		t.elapsed++
	}
}

// Get returns the sampled value at the current tick.
func (t *Tween) Get() float64 {
	if t.duration <= 0 {
		return t.target
	}
	progress := float64(t.elapsed) / float64(t.duration)
	return t.start + (t.target-t.start)*t.curve.Sample(progress)
}

// Done reports whether the animation reached its target.
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Set re-arms the tween toward target, starting from the current value so
// a mid-animation retarget does not jump.
func (t *Tween) Set(target float64) {
	t.start = t.Get()
	t.target = target
	t.elapsed = 0
}

// Start returns the value the current animation started from.
func (t *Tween) Start() float64 { return t.start }

// Target returns the value the current animation ends at.
func (t *Tween) Target() float64 { return t.target }

// Duration returns the animation length in ticks.
func (t *Tween) Duration() int { return t.duration }

// Elapsed returns the ticks advanced since the last Set.
func (t *Tween) Elapsed() int { return t.elapsed }

// Easing returns the tween's curve.
func (t *Tween) Easing() easing.Curve { return t.curve }

// State returns a snapshot of the tween.
func (t *Tween) State() State {
	return State{
		Start:    t.start,
		Target:   t.target,
		Duration: t.duration,
		Elapsed:  t.elapsed,
		Curve:    t.curve,
	}
}

// Restore rebuilds a tween from a snapshot.
// Duration is clamped to >= 0 and elapsed into [0, duration].
func Restore(s State) *Tween {
	t := &Tween{
		start:    s.Start,
		target:   s.Target,
		duration: s.Duration,
		elapsed:  s.Elapsed,
		curve:    s.Curve,
	}
	if t.duration < 0 {
		t.duration = 0
	}
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return t
}
