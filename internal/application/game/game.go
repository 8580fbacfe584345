// Package game adapts the active arena scene to ebiten's fixed-tick loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arena/internal/application/scene"
)

// Game implements ebiten.Game over a single active scene
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene, ticking tickRate
// times per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tickRate int) *Game {
	if tickRate <= 0 {
		tickRate = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tickRate),
	}
	g.current.OnEnter()
	return g
}

// Update advances the active scene by one fixed tick and swaps scenes
// when it asks for a transition
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the active scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical arena viewport size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs the current scene's OnExit, e.g. to flush a recording
// when the window closes.
func (g *Game) Close() {
	g.current.OnExit()
}
