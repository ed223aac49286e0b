// Package state holds the per-process game aggregate: the active screen and
// the tweened sprite position.
package state

import (
	"github.com/younwookim/wizzy/internal/domain/easing"
	"github.com/younwookim/wizzy/internal/domain/tween"
)

// Screen identifies the active screen.
// The numeric values are persisted and must stay stable.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenGame
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "Title"
	case ScreenGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	return s == ScreenTitle || s == ScreenGame
}

// Toggle returns the other screen.
func (s Screen) Toggle() Screen {
	if s == ScreenGame {
		return ScreenTitle
	}
	return ScreenGame
}

// TweenConfig describes how the Wizzy tween is created
type TweenConfig struct {
	Initial  float64
	Duration int
	Curve    easing.Curve
}

// DefaultTween is the shipped Wizzy tween setup
var DefaultTween = TweenConfig{
	Initial:  150,
	Duration: 120,
	Curve:    easing.EaseOutCubic,
}

// GameState is everything that survives between frames and process runs.
// It is owned by a single frame loop and is not safe for concurrent use.
type GameState struct {
	Screen Screen
	Wizzy  *tween.Tween
}

// New creates a state on the title screen with a resting Wizzy tween.
func New(cfg TweenConfig) *GameState {
	return &GameState{
		Screen: ScreenTitle,
		Wizzy:  tween.New(cfg.Initial).WithDuration(cfg.Duration).WithEasing(cfg.Curve),
	}
}

// Default creates the state a fresh install starts with.
func Default() *GameState {
	return New(DefaultTween)
}
