// Package anim keeps named sprite animations alive across frames.
//
// A handle plays its default clip until the game overrides it with
// UseSprite. An override with a repeat count plays that many times and then
// hands control back to the default clip; a count of zero loops forever.
package anim

import "github.com/younwookim/wizzy/internal/infrastructure/config"

// Animation is one named, stateful animation
type Animation struct {
	reg      *Registry
	fallback string // Default clip given by the last Resolve
	sprite   string // Override clip, empty when playing the fallback
	repeat   int    // Remaining plays of the override; 0 loops
	frame    int
	ticks    int
}

// UseSprite switches the animation to clip, restarting it if it changed.
func (a *Animation) UseSprite(clip string) {
	if clip == a.sprite {
		return
	}
	a.sprite = clip
	a.frame = 0
	a.ticks = 0
}

// SetRepeat sets how many times the current override plays.
// Negative counts are treated as zero.
func (a *Animation) SetRepeat(count int) {
	if count < 0 {
		count = 0
	}
	a.repeat = count
}

// Current returns the playing clip and its frame index.
func (a *Animation) Current() (string, int) {
	if a.sprite != "" {
		return a.sprite, a.frame
	}
	return a.fallback, a.frame
}

func (a *Animation) tick() {
	name, _ := a.Current()
	clip := a.reg.clip(name)

	a.ticks++
	if a.ticks < clip.FrameTicks {
		return
	}
	a.ticks = 0
	a.frame++
	if a.frame < clip.Frames {
		return
	}
	a.frame = 0

	if a.sprite != "" && a.repeat > 0 {
		a.repeat--
		if a.repeat == 0 {
			a.sprite = ""
		}
	}
}

// Registry owns every animation by name
type Registry struct {
	clips map[string]config.ClipConfig
	anims map[string]*Animation
	order []string
}

// NewRegistry creates a registry with the given clip table.
// Clips missing from the table play as a single frame.
func NewRegistry(clips map[string]config.ClipConfig) *Registry {
	return &Registry{
		clips: clips,
		anims: make(map[string]*Animation),
	}
}

// Get returns the animation for name, creating it on first use.
func (r *Registry) Get(name string) *Animation {
	a, ok := r.anims[name]
	if !ok {
		a = &Animation{reg: r}
		r.anims[name] = a
		r.order = append(r.order, name)
	}
	return a
}

// Resolve returns the clip and frame to draw for key, recording
// defaultSprite as the animation's fallback.
func (r *Registry) Resolve(key, defaultSprite string) (string, int) {
	a := r.Get(key)
	if defaultSprite != "" && a.fallback != defaultSprite {
		a.fallback = defaultSprite
		if a.sprite == "" {
			a.frame = 0
			a.ticks = 0
		}
	}
	return a.Current()
}

// Tick advances every animation by one frame.
func (r *Registry) Tick() {
	for _, name := range r.order {
		r.anims[name].tick()
	}
}

// Len returns the number of animations created so far.
func (r *Registry) Len() int {
	return len(r.anims)
}

func (r *Registry) clip(name string) config.ClipConfig {
	c, ok := r.clips[name]
	if !ok || c.Frames <= 0 || c.FrameTicks <= 0 {
		return config.ClipConfig{Frames: 1, FrameTicks: 1}
	}
	return c
}
