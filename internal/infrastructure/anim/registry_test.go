package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/wizzy/internal/application/controller"
	"github.com/younwookim/wizzy/internal/infrastructure/config"
)

var _ controller.AnimationHandle = (*Animation)(nil)

func testClips() map[string]config.ClipConfig {
	return map[string]config.ClipConfig{
		"Decapod#Idle":          {Frames: 4, FrameTicks: 2},
		"Decapod#Ranged Attack": {Frames: 3, FrameTicks: 2},
	}
}

func tickN(r *Registry, n int) {
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

func TestRegistry_GetCreatesOnce(t *testing.T) {
	r := NewRegistry(testClips())

	a := r.Get("crab")
	b := r.Get("crab")

	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
}

func TestResolve_UsesDefault(t *testing.T) {
	r := NewRegistry(testClips())

	sprite, frame := r.Resolve("crab", "Decapod#Idle")

	assert.Equal(t, "Decapod#Idle", sprite)
	assert.Equal(t, 0, frame)
}

func TestTick_AdvancesFrames(t *testing.T) {
	r := NewRegistry(testClips())
	r.Resolve("crab", "Decapod#Idle")

	tickN(r, 2)
	_, frame := r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, 1, frame)

	// 4 frames x 2 ticks wraps back to the first frame
	tickN(r, 6)
	_, frame = r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, 0, frame)
}

func TestUseSprite_RepeatFallsBack(t *testing.T) {
	r := NewRegistry(testClips())
	r.Resolve("crab", "Decapod#Idle")

	crab := r.Get("crab")
	crab.UseSprite("Decapod#Ranged Attack")
	crab.SetRepeat(1)

	sprite, frame := r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, "Decapod#Ranged Attack", sprite)
	assert.Equal(t, 0, frame)

	// One full play: 3 frames x 2 ticks
	tickN(r, 5)
	sprite, frame = r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, "Decapod#Ranged Attack", sprite)
	assert.Equal(t, 2, frame)

	r.Tick()
	sprite, frame = r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, "Decapod#Idle", sprite)
	assert.Equal(t, 0, frame)
}

func TestUseSprite_ZeroRepeatLoops(t *testing.T) {
	r := NewRegistry(testClips())
	crab := r.Get("crab")
	crab.UseSprite("Decapod#Ranged Attack")

	tickN(r, 60)

	sprite, _ := r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, "Decapod#Ranged Attack", sprite)
}

func TestUseSprite_SameClipKeepsFrame(t *testing.T) {
	r := NewRegistry(testClips())
	crab := r.Get("crab")
	crab.UseSprite("Decapod#Ranged Attack")
	tickN(r, 2)

	crab.UseSprite("Decapod#Ranged Attack")

	_, frame := crab.Current()
	assert.Equal(t, 1, frame)
}

func TestSetRepeat_Negative(t *testing.T) {
	a := NewRegistry(nil).Get("x")
	a.SetRepeat(-2)
	assert.Equal(t, 0, a.repeat)
}

func TestUnknownClip_SingleFrame(t *testing.T) {
	r := NewRegistry(nil)
	r.Resolve("ghost", "Nothing")

	tickN(r, 10)

	sprite, frame := r.Resolve("ghost", "Nothing")
	assert.Equal(t, "Nothing", sprite)
	assert.Equal(t, 0, frame)
}

func TestController_AttackThroughRegistry(t *testing.T) {
	r := NewRegistry(testClips())
	r.Resolve("crab", "Decapod#Idle")

	lookup := func(name string) controller.AnimationHandle { return r.Get(name) }
	crab := lookup("crab")
	crab.UseSprite("Decapod#Ranged Attack")
	crab.SetRepeat(1)

	sprite, _ := r.Resolve("crab", "Decapod#Idle")
	assert.Equal(t, "Decapod#Ranged Attack", sprite)
}
