package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"entropia/session"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", snap.Player.Lives), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies: %d", len(snap.Enemies)), 10, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.1fs", snap.Elapsed), 10, 58)

	ebitenutil.DebugPrintAt(screen, "move with WASD or arrows, space to fire, P to pause", 10, g.screenHeight-40)
	ebitenutil.DebugPrintAt(screen, "R to restart, N for a new maze, ESC to exit", 10, g.screenHeight-20)

	switch {
	case snap.Status.Terminal():
		msg := "GAME OVER"
		if snap.Status == session.Won {
			msg = "YOU WIN"
		}
		ebitenutil.DebugPrintAt(screen, msg+" - press R to restart", g.screenWidth/2-80, g.screenHeight/2)
	case g.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenWidth/2-20, g.screenHeight/2)
	}
}
