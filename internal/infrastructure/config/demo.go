package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/wizzy/internal/application/controller"
	"github.com/younwookim/wizzy/internal/application/render"
	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/domain/easing"
	"github.com/younwookim/wizzy/internal/domain/geom"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values the runtime cannot work with.
func (c *DemoConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, d.Framerate)
	}
	if c.Wizzy.Duration < 0 {
		return fmt.Errorf("%w: wizzy duration %d", ErrInvalidConfig, c.Wizzy.Duration)
	}
	if _, err := easing.Parse(c.Wizzy.Easing); err != nil {
		return fmt.Errorf("%w: wizzy easing: %w", ErrInvalidConfig, err)
	}
	if c.Button.Width < 0 || c.Button.Height < 0 {
		return fmt.Errorf("%w: button size %vx%v", ErrInvalidConfig, c.Button.Width, c.Button.Height)
	}
	for name, clip := range c.Clips {
		if clip.Frames <= 0 || clip.FrameTicks <= 0 {
			return fmt.Errorf("%w: clip %q needs positive frames and frameTicks", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Canvas returns the logical drawing area.
func (c *DemoConfig) Canvas() geom.Bounds {
	return geom.New(0, 0, float64(c.Display.ScreenWidth), float64(c.Display.ScreenHeight))
}

// Tween converts the wizzy section. Call after Validate.
func (c *DemoConfig) Tween() state.TweenConfig {
	curve, err := easing.Parse(c.Wizzy.Easing)
	if err != nil {
		curve = easing.Linear
	}
	return state.TweenConfig{
		Initial:  c.Wizzy.Initial,
		Duration: c.Wizzy.Duration,
		Curve:    curve,
	}
}

// Controller converts the screen, sprite and button sections.
func (c *DemoConfig) Controller() controller.Config {
	s, b := c.Sprites, c.Button
	return controller.Config{
		Title: screen(c.Screens.Title),
		Game:  screen(c.Screens.Game),
		Sprites: controller.SpritesConfig{
			Wizzy:        s.Wizzy,
			WizzyY:       s.WizzyY,
			CrabKey:      s.CrabKey,
			CrabDefault:  s.CrabDefault,
			CrabAttack:   s.CrabAttack,
			AttackRepeat: s.AttackRepeat,
			LoopTarget:   s.LoopTarget,
			ClickTarget:  s.ClickTarget,
		},
		Button: controller.ButtonConfig{
			Width:      b.Width,
			Height:     b.Height,
			OffsetY:    b.OffsetY,
			Inset:      b.Inset,
			Radius:     b.Radius,
			Label:      b.Label,
			Font:       b.Font,
			LabelColor: render.Color(b.LabelColor),
			Regular:    render.Color(b.Regular),
			Hovered:    render.Color(b.Hovered),
			Pressed:    render.Color(b.Pressed),
		},
	}
}

func screen(s ScreenConfig) controller.ScreenConfig {
	return controller.ScreenConfig{
		Clear:     render.Color(s.Clear),
		Text:      s.Text,
		TextColor: render.Color(s.TextColor),
	}
}
