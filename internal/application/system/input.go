package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the raw device state for one frame
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Attack bool // just pressed
	Fire   bool // just pressed
	Dash   bool // just pressed
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Fire: inpututil.IsKeyJustPressed(ebiten.KeyK) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Dash: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
	}
}

// PlayerInput converts device state into player commands.
// Opposite keys cancel out; y grows downward.
func (in InputState) PlayerInput() PlayerInput {
	var pi PlayerInput
	if in.Left {
		pi.MoveX--
	}
	if in.Right {
		pi.MoveX++
	}
	if in.Up {
		pi.MoveY--
	}
	if in.Down {
		pi.MoveY++
	}
	pi.Attack = in.Attack
	pi.Fire = in.Fire
	pi.Dash = in.Dash
	return pi
}
