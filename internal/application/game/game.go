// Package game provides the ebiten loop that feeds input to the controller
// and hands each frame to the drawer.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wizzy/internal/application/controller"
	"github.com/younwookim/wizzy/internal/application/render"
	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/domain/geom"
	"github.com/younwookim/wizzy/internal/domain/input"
)

// InputSource yields one input snapshot per frame.
// ok is false once the source is exhausted.
type InputSource interface {
	Next() (in input.State, ok bool)
}

// InputRecorder receives every input the game consumes
type InputRecorder interface {
	RecordFrame(in input.State)
}

// Ticker is advanced once per frame after the controller runs
type Ticker interface {
	Tick()
}

// Drawer paints a frame
type Drawer interface {
	Draw(screen *ebiten.Image, f *render.Frame)
}

// Game implements ebiten.Game and owns the GameState.
type Game struct {
	state    *state.GameState
	ctrl     *controller.Controller
	input    InputSource
	drawer   Drawer
	recorder InputRecorder
	tickers  []Ticker
	frame    render.Frame
	frames   int
	screenW  int
	screenH  int
}

// New creates a new Game driving st.
func New(st *state.GameState, ctrl *controller.Controller, input InputSource, drawer Drawer, screenW, screenH int) *Game {
	return &Game{
		state:   st,
		ctrl:    ctrl,
		input:   input,
		drawer:  drawer,
		screenW: screenW,
		screenH: screenH,
	}
}

// SetRecorder records every consumed input to r.
func (g *Game) SetRecorder(r InputRecorder) {
	g.recorder = r
}

// AddTicker registers t to be ticked after each update.
func (g *Game) AddTicker(t Ticker) {
	g.tickers = append(g.tickers, t)
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in, ok := g.input.Next()
	if !ok {
		return ebiten.Termination
	}

	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	g.frame = g.ctrl.Update(g.state, in, g.Canvas())
	for _, t := range g.tickers {
		t.Tick()
	}
	g.frames++

	return nil
}

// Draw renders the last computed frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.drawer == nil {
		return
	}
	g.drawer.Draw(screen, &g.frame)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Canvas returns the drawable area passed to the controller.
func (g *Game) Canvas() geom.Bounds {
	return geom.New(0, 0, float64(g.screenW), float64(g.screenH))
}

// State returns the game state, for persistence once the loop ends.
func (g *Game) State() *state.GameState {
	return g.state
}

// Frames returns how many updates have run.
func (g *Game) Frames() int {
	return g.frames
}

// LastFrame returns the commands computed by the latest update.
func (g *Game) LastFrame() render.Frame {
	return g.frame
}
