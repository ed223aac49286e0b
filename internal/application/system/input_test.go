package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem_DefaultKeys(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	assert.Equal(t, DefaultActionKeys, sys.actionKeys)
	assert.Equal(t, ebiten.StandardGamepadButtonRightBottom, sys.actionButton)
}

func TestNewInputSystem_CustomKeys(t *testing.T) {
	sys := NewInputSystem(ebiten.KeyEnter)

	assert.Equal(t, []ebiten.Key{ebiten.KeyEnter}, sys.actionKeys)
}
