package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"entropia/model"
)

// hitIndicatorTicks is how many updates the crosshairs stay red after a kill.
const hitIndicatorTicks = 12

// Crosshairs is drawn at the screen centre and turns red briefly when a shot kills an enemy.
// It listens for events on the game goroutine, so it needs no locking.
type Crosshairs struct {
	hitTimer int
}

func NewCrosshairs() *Crosshairs {
	return &Crosshairs{}
}

func (c *Crosshairs) Emit(e model.Event) {
	if e.Kind == model.EnemyHit {
		c.ActivateHitIndicator(hitIndicatorTicks)
	}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer -= 1
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image, width, height int) {
	clr := color.RGBA{255, 255, 255, 200}
	if c.IsHitIndicatorActive() {
		clr = color.RGBA{255, 40, 40, 255}
	}
	cx, cy := float32(width)/2, float32(height)/2
	vector.StrokeLine(screen, cx-8, cy, cx-3, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+3, cy, cx+8, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy-3, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+3, cx, cy+8, 2, clr, false)
}
