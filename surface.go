package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws frame rectangles straight onto an ebiten image.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) FillRect(x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(s.img, x, y, w, h, c, false)
}
