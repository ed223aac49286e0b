// Package controller runs the per-frame screen logic.
//
// Update is the whole frame: it reads one input snapshot, mutates the
// GameState (screen transitions, tween ticks) and returns the render
// commands for the frame. It never fails and never blocks.
package controller

import (
	"github.com/younwookim/wizzy/internal/application/render"
	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/domain/geom"
	"github.com/younwookim/wizzy/internal/domain/input"
)

// AnimationHandle is a named animation owned by the runtime.
type AnimationHandle interface {
	UseSprite(clip string)
	SetRepeat(count int)
}

// AnimationLookup returns the animation registered under name.
type AnimationLookup func(name string) AnimationHandle

// ButtonState is the visual state of the button
type ButtonState int

const (
	ButtonRegular ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// String returns the string representation of the button state
func (s ButtonState) String() string {
	switch s {
	case ButtonRegular:
		return "Regular"
	case ButtonHovered:
		return "Hovered"
	case ButtonPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// SelectButtonState derives the button state from hover and pointer press.
func SelectButtonState(hovered, pressed bool) ButtonState {
	switch {
	case hovered && pressed:
		return ButtonPressed
	case hovered:
		return ButtonHovered
	default:
		return ButtonRegular
	}
}

// Controller drives the title and game screens
type Controller struct {
	cfg   Config
	anims AnimationLookup
}

// New creates a controller. anims may be nil when no animation runtime
// is attached; animation overrides are then skipped.
func New(cfg Config, anims AnimationLookup) *Controller {
	return &Controller{cfg: cfg, anims: anims}
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Update advances st by one frame and returns what to draw.
func (c *Controller) Update(st *state.GameState, in input.State, canvas geom.Bounds) render.Frame {
	var f render.Frame

	switch st.Screen {
	case state.ScreenGame:
		c.updateGame(st, in, canvas, &f)
	default:
		c.updateTitle(st, in, &f)
	}

	return f
}

func (c *Controller) updateTitle(st *state.GameState, in input.State, f *render.Frame) {
	f.Add(render.Clear{Color: c.cfg.Title.Clear})

	if in.ActionJustPressed {
		st.Screen = state.ScreenGame
	}

	f.Add(render.Text{Text: c.cfg.Title.Text, Color: c.cfg.Title.TextColor})
}

// updateGame keeps drawing the game screen on the frame that switches back
// to the title; the title shows from the next frame.
func (c *Controller) updateGame(st *state.GameState, in input.State, canvas geom.Bounds, f *render.Frame) {
	f.Add(render.Clear{Color: c.cfg.Game.Clear})

	if in.ActionJustPressed {
		st.Screen = state.ScreenTitle
	}

	st.Wizzy.Tick()
	x := st.Wizzy.Get()

	f.Add(render.Text{Text: c.cfg.Game.Text, Color: c.cfg.Game.TextColor})
	f.Add(render.Sprite{Name: c.cfg.Sprites.Wizzy, X: x, Y: c.cfg.Sprites.WizzyY})
	f.Add(render.Sprite{
		AnimationKey:  c.cfg.Sprites.CrabKey,
		DefaultSprite: c.cfg.Sprites.CrabDefault,
	})

	if st.Wizzy.Done() {
		st.Wizzy.Set(c.cfg.Sprites.LoopTarget)
	}

	button := c.Button(canvas)
	hovered := in.Pointer().IntersectsBounds(button)
	bs := SelectButtonState(hovered, in.PointerPressed)

	w, h := button.WH()
	f.Add(render.Rect{
		X:            button.Left(),
		Y:            button.Top(),
		W:            w,
		H:            h,
		Color:        c.cfg.Button.ColorFor(bs),
		BorderRadius: c.cfg.Button.Radius,
	})

	label := button.InsetLeft(c.cfg.Button.Inset).InsetTop(c.cfg.Button.Inset)
	f.Add(render.Text{
		Text:  c.cfg.Button.Label,
		X:     label.Left(),
		Y:     label.Top(),
		Color: c.cfg.Button.LabelColor,
		Font:  c.cfg.Button.Font,
	})

	if hovered && in.PointerJustPressed {
		c.attack()
		st.Wizzy.Set(c.cfg.Sprites.ClickTarget)
	}
}

// Button returns the button rectangle for the given canvas.
func (c *Controller) Button(canvas geom.Bounds) geom.Bounds {
	return geom.WithSize(c.cfg.Button.Width, c.cfg.Button.Height).
		AnchorCenter(canvas).
		TranslateY(c.cfg.Button.OffsetY)
}

func (c *Controller) attack() {
	if c.anims == nil {
		return
	}
	crab := c.anims(c.cfg.Sprites.CrabKey)
	if crab == nil {
		return
	}
	crab.UseSprite(c.cfg.Sprites.CrabAttack)
	crab.SetRepeat(c.cfg.Sprites.AttackRepeat)
}
