package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"entropia/model"
)

// controls are the one-shot keys that act on the game rather than the player.
type controls struct {
	restart     bool
	freshMaze   bool
	togglePause bool
}

// handleInput reads the keyboard and mouse for this tick. Pause, restart and quit are
// handled here; everything else becomes the returned intent.
func (g *Game) handleInput() (model.Intent, error) {
	// escape exits the game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return model.Intent{}, ebiten.Termination
	}

	fresh := inpututil.IsKeyJustPressed(ebiten.KeyN)
	err := g.applyControls(controls{
		restart:     fresh || inpututil.IsKeyJustPressed(ebiten.KeyR),
		freshMaze:   fresh,
		togglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
	})
	if err != nil || g.paused {
		return model.Intent{}, err
	}

	fire := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	return model.Intent{
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Fire:      fire,
	}, nil
}

// applyControls restarts before looking at pause, so a restart works while paused and
// resumes play.
func (g *Game) applyControls(c controls) error {
	if c.restart {
		if err := g.session.Reset(c.freshMaze); err != nil {
			return err
		}
		g.paused = false
	}

	if c.togglePause {
		g.paused = !g.paused
		g.log.Debug("Pause toggled", "paused", g.paused)
	}
	return nil
}
