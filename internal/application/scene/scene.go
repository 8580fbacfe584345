// Package scene defines the screens the arena viewer can show.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the viewer. The game loop forwards ticks and
// frames to the active scene only.
type Scene interface {
	// Update runs one fixed tick of dt seconds. A non-nil next scene
	// replaces this one; an error stops the viewer.
	Update(dt float64) (next Scene, err error)

	// Draw renders the current match state. It never mutates the simulation.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes active.
	OnEnter()

	// OnExit runs when the scene is replaced or the viewer closes.
	// Pending recordings are flushed here.
	OnExit()
}
