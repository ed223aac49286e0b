package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/wizzy/internal/domain/input"
)

// DefaultActionKeys mirror the gamepad action button on a keyboard
var DefaultActionKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace}

// InputSystem reads player input from ebiten
type InputSystem struct {
	actionKeys   []ebiten.Key
	actionButton ebiten.StandardGamepadButton
	gamepadIDs   []ebiten.GamepadID
}

// NewInputSystem creates a new input system.
// With no keys given, DefaultActionKeys are used.
func NewInputSystem(actionKeys ...ebiten.Key) *InputSystem {
	if len(actionKeys) == 0 {
		actionKeys = DefaultActionKeys
	}
	return &InputSystem{
		actionKeys:   actionKeys,
		actionButton: ebiten.StandardGamepadButtonRightBottom,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() input.State {
	mx, my := ebiten.CursorPosition()
	return input.State{
		ActionJustPressed:  s.actionJustPressed(),
		PointerX:           mx,
		PointerY:           my,
		PointerPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PointerJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Next returns the live input for this frame. Live input never runs out.
func (s *InputSystem) Next() (input.State, bool) {
	return s.GetInput(), true
}

// actionJustPressed checks the first gamepad, then the keyboard fallback
func (s *InputSystem) actionJustPressed() bool {
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	if len(s.gamepadIDs) > 0 {
		id := s.gamepadIDs[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, s.actionButton) {
			return true
		}
	}

	for _, k := range s.actionKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
