// Package render defines the drawing commands a frame produces.
//
// Commands are plain data. The controller appends them in paint order and
// the runtime executes them against whatever surface it owns.
package render

import "image/color"

// Color is a packed 0xRRGGBBAA value
type Color uint32

// RGBA unpacks the color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// Command is one drawing instruction
type Command interface {
	command()
}

// Clear fills the whole canvas
type Clear struct {
	Color Color
}

// Text draws a string with its top-left corner at X, Y.
// An empty Font selects the runtime's default face.
type Text struct {
	Text  string
	X, Y  float64
	Color Color
	Font  string
}

// Sprite draws a named sprite, or the clip currently bound to AnimationKey.
// DefaultSprite is used when the animation has no clip of its own.
type Sprite struct {
	Name          string
	X, Y          float64
	AnimationKey  string
	DefaultSprite string
}

// Rect draws a filled rectangle with rounded corners
type Rect struct {
	X, Y         float64
	W, H         float64
	Color        Color
	BorderRadius float64
}

func (Clear) command()  {}
func (Text) command()   {}
func (Sprite) command() {}
func (Rect) command()   {}

// Frame is the ordered list of commands for one frame
type Frame struct {
	commands []Command
}

// Add appends a command.
func (f *Frame) Add(c Command) {
	f.commands = append(f.commands, c)
}

// Commands returns the commands in paint order.
func (f *Frame) Commands() []Command {
	return f.commands
}

// Len returns the number of commands.
func (f *Frame) Len() int {
	return len(f.commands)
}
