package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/younwookim/wizzy/internal/application/render"
)

// DemoConfig is the root config for demo.json
type DemoConfig struct {
	Display DisplayConfig         `json:"display"`
	Wizzy   TweenConfig           `json:"wizzy"`
	Screens ScreensConfig         `json:"screens"`
	Sprites SpritesConfig         `json:"sprites"`
	Button  ButtonConfig          `json:"button"`
	Clips   map[string]ClipConfig `json:"clips"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TweenConfig configures the Wizzy tween
type TweenConfig struct {
	Initial  float64 `json:"initial"`
	Duration int     `json:"duration"` // Frames
	Easing   string  `json:"easing"`   // Curve name, e.g. "easeOutCubic"
}

type ScreensConfig struct {
	Title ScreenConfig `json:"title"`
	Game  ScreenConfig `json:"game"`
}

type ScreenConfig struct {
	Clear     HexColor `json:"clear"`
	Text      string   `json:"text"`
	TextColor HexColor `json:"textColor"`
}

type SpritesConfig struct {
	Wizzy        string  `json:"wizzy"`
	WizzyY       float64 `json:"wizzyY"`
	CrabKey      string  `json:"crabKey"`
	CrabDefault  string  `json:"crabDefault"`
	CrabAttack   string  `json:"crabAttack"`
	AttackRepeat int     `json:"attackRepeat"`
	LoopTarget   float64 `json:"loopTarget"`
	ClickTarget  float64 `json:"clickTarget"`
}

type ButtonConfig struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	OffsetY    float64  `json:"offsetY"`
	Inset      float64  `json:"inset"`
	Radius     float64  `json:"radius"`
	Label      string   `json:"label"`
	Font       string   `json:"font"`
	LabelColor HexColor `json:"labelColor"`
	Regular    HexColor `json:"regular"`
	Hovered    HexColor `json:"hovered"`
	Pressed    HexColor `json:"pressed"`
}

// ClipConfig describes one sprite clip
type ClipConfig struct {
	Frames     int `json:"frames"`
	FrameTicks int `json:"frameTicks"` // Ticks each frame is shown
}

// HexColor is a 0xRRGGBBAA color written as a JSON string ("0x33CCFFff")
type HexColor render.Color

// UnmarshalJSON parses "0xRRGGBBAA" or "#RRGGBBAA".
func (c *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	if len(s) > 0 && s[0] == '#' {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	*c = HexColor(v)
	return nil
}

// MarshalJSON writes the color as "0xRRGGBBAA".
func (c HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%08x", uint32(c)))
}
