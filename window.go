package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"entropia/config"
)

func setWindow(cfg config.Screen) {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("entropia")
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.VSync)
}
