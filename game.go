package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"entropia/model"
	"entropia/session"
)

// Game adapts a session to ebiten's Update/Draw loop.
type Game struct {
	session    *session.Session
	crosshairs *Crosshairs
	log        *log.Logger

	paused bool
	last   time.Time

	// minimap caches the static grid image, rebuilt when the maze changes
	minimap     *ebiten.Image
	minimapGrid *model.Grid

	screenWidth  int
	screenHeight int
}

func NewGame(s *session.Session, crosshairs *Crosshairs, logger *log.Logger) *Game {
	cfg := s.Config()
	return &Game{
		session:      s,
		crosshairs:   crosshairs,
		log:          logger,
		screenWidth:  cfg.Screen.Width,
		screenHeight: cfg.Screen.Height,
	}
}

// Layout returns the fixed logical screen size; the render view is defined in those pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update gathers input and advances the session by the wall time since the last tick.
func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	intent, err := g.handleInput()
	if err != nil {
		return err
	}
	if g.paused {
		return nil
	}

	g.session.Update(dt, intent)
	g.crosshairs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screenSurface{screen})
	g.crosshairs.Draw(screen, g.screenWidth, g.screenHeight)
	g.drawMinimap(screen)
	g.drawUI(screen)
}
