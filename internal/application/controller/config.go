package controller

import "github.com/younwookim/wizzy/internal/application/render"

// Config holds every literal the screens draw with
type Config struct {
	Title   ScreenConfig
	Game    ScreenConfig
	Sprites SpritesConfig
	Button  ButtonConfig
}

// ScreenConfig is the background and caption of one screen
type ScreenConfig struct {
	Clear     render.Color
	Text      string
	TextColor render.Color
}

// SpritesConfig names the sprites and the tween targets they move to
type SpritesConfig struct {
	Wizzy        string
	WizzyY       float64
	CrabKey      string
	CrabDefault  string
	CrabAttack   string
	AttackRepeat int
	LoopTarget   float64 // Re-arm target once the tween finishes
	ClickTarget  float64 // Re-arm target on a button click
}

// ButtonConfig places and colors the button
type ButtonConfig struct {
	Width, Height float64
	OffsetY       float64 // Shift below the canvas center
	Inset         float64 // Label offset from the top-left corner
	Radius        float64
	Label         string
	Font          string
	LabelColor    render.Color
	Regular       render.Color
	Hovered       render.Color
	Pressed       render.Color
}

// ColorFor returns the fill for a button state.
func (b ButtonConfig) ColorFor(s ButtonState) render.Color {
	switch s {
	case ButtonPressed:
		return b.Pressed
	case ButtonHovered:
		return b.Hovered
	default:
		return b.Regular
	}
}

// DefaultConfig returns the demo's shipped look.
func DefaultConfig() Config {
	return Config{
		Title: ScreenConfig{
			Clear:     0xffffffff,
			Text:      "this is the title!",
			TextColor: 0x000000ff,
		},
		Game: ScreenConfig{
			Clear:     0x000000ff,
			Text:      "this is the game!",
			TextColor: 0xffffffff,
		},
		Sprites: SpritesConfig{
			Wizzy:        "Wizzy",
			WizzyY:       45,
			CrabKey:      "crab",
			CrabDefault:  "Decapod#Idle",
			CrabAttack:   "Decapod#Ranged Attack",
			AttackRepeat: 1,
			LoopTarget:   150,
			ClickTarget:  200,
		},
		Button: ButtonConfig{
			Width:      48,
			Height:     14,
			OffsetY:    16,
			Inset:      4,
			Radius:     2,
			Label:      "Attack!",
			Font:       "medium",
			LabelColor: 0xffffffff,
			Regular:    0x33CCFFff,
			Hovered:    0x66DDFFFF,
			Pressed:    0x00FFFFFF,
		},
	}
}
