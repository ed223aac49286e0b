// Package draw executes render frames on an ebiten image.
//
// Sprites are drawn as tinted placeholder blocks; the demo ships no art.
package draw

import (
	"hash/fnv"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/younwookim/wizzy/internal/application/render"
)

// SpriteSize is the edge length of a placeholder sprite
const SpriteSize = 16

// AnimationResolver maps an animation key to the clip and frame to draw
type AnimationResolver interface {
	Resolve(key, defaultSprite string) (string, int)
}

// Drawer draws render commands
type Drawer struct {
	anims AnimationResolver
	faces map[string]font.Face
}

// NewDrawer creates a drawer. anims may be nil, in which case animated
// sprites always show their default clip.
func NewDrawer(anims AnimationResolver) *Drawer {
	return &Drawer{
		anims: anims,
		faces: map[string]font.Face{
			"small":  basicfont.Face7x13,
			"medium": inconsolata.Regular8x16,
			"large":  inconsolata.Bold8x16,
		},
	}
}

// Face returns the font for name, falling back to the small face.
func (d *Drawer) Face(name string) font.Face {
	if f, ok := d.faces[name]; ok {
		return f
	}
	return d.faces["small"]
}

// Draw paints every command of f in order.
func (d *Drawer) Draw(screen *ebiten.Image, f *render.Frame) {
	for _, cmd := range f.Commands() {
		switch c := cmd.(type) {
		case render.Clear:
			screen.Fill(c.Color.RGBA())
		case render.Text:
			d.drawText(screen, c)
		case render.Sprite:
			d.drawSprite(screen, c)
		case render.Rect:
			drawRoundedRect(screen, c)
		}
	}
}

// drawText places the top of the text at c.Y; text.Draw expects a baseline
func (d *Drawer) drawText(screen *ebiten.Image, c render.Text) {
	face := d.Face(c.Font)
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, c.Text, face, int(math.Round(c.X)), int(math.Round(c.Y))+ascent, c.Color.RGBA())
}

func (d *Drawer) drawSprite(screen *ebiten.Image, c render.Sprite) {
	name, frame := c.Name, 0
	if c.AnimationKey != "" {
		name = c.DefaultSprite
		if d.anims != nil {
			name, frame = d.anims.Resolve(c.AnimationKey, c.DefaultSprite)
		}
	}

	x, y := float32(c.X), float32(c.Y)
	vector.DrawFilledRect(screen, x, y, SpriteSize, SpriteSize, SpriteColor(name), false)

	// Frame marker along the bottom edge so animation is visible
	marker := float32(2 * (frame%(SpriteSize/2) + 1))
	vector.DrawFilledRect(screen, x, y+SpriteSize-2, marker, 2, color.White, false)
}

// SpriteColor returns the placeholder tint for a sprite name.
func SpriteColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	v := h.Sum32()
	// Keep channels bright enough to see on black
	return color.RGBA{
		R: uint8(v>>24) | 0x40,
		G: uint8(v>>16) | 0x40,
		B: uint8(v>>8) | 0x40,
		A: 0xff,
	}
}

// CornerRadius clamps r so opposite corners never overlap.
func CornerRadius(r, w, h float64) float64 {
	limit := math.Min(w, h) / 2
	if r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}
	return r
}

func drawRoundedRect(screen *ebiten.Image, c render.Rect) {
	clr := c.Color.RGBA()
	r := CornerRadius(c.BorderRadius, c.W, c.H)
	if r == 0 {
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), clr, false)
		return
	}

	x, y, w, h, rr := float32(c.X), float32(c.Y), float32(c.W), float32(c.H), float32(r)
	vector.DrawFilledRect(screen, x+rr, y, w-2*rr, h, clr, true)
	vector.DrawFilledRect(screen, x, y+rr, w, h-2*rr, clr, true)
	vector.DrawFilledCircle(screen, x+rr, y+rr, rr, clr, true)
	vector.DrawFilledCircle(screen, x+w-rr, y+rr, rr, clr, true)
	vector.DrawFilledCircle(screen, x+rr, y+h-rr, rr, clr, true)
	vector.DrawFilledCircle(screen, x+w-rr, y+h-rr, rr, clr, true)
}
