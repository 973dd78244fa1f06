// Package scene holds the screen abstraction driven by game.Game
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. game.Game forwards each tick and frame
// to the active scene and swaps in whatever Update returns.
type Scene interface {
	// Update advances one fixed tick of dt seconds. A non-nil next replaces
	// this scene; an error ends the run.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes active
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes, and is
	// where the playing scene flushes its recording
	OnExit()
}
