package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"entropia/model"
)

const minimapScale = 6

// generateStaticMinimap draws the walls of g once per maze.
func (g *Game) generateStaticMinimap(grid *model.Grid) {
	g.minimap = ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tileColor := color.RGBA{140, 140, 140, 255}
			if grid.At(x, y) == model.Wall {
				tileColor = color.RGBA{50, 50, 50, 255}
			}
			vector.DrawFilledRect(g.minimap, float32(x*minimapScale), float32(y*minimapScale), float32(minimapScale), float32(minimapScale), tileColor, false)
		}
	}
	g.minimapGrid = grid
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	grid := g.session.Grid()
	if g.minimapGrid != grid {
		g.generateStaticMinimap(grid)
	}

	originX := float32(g.screenWidth - grid.Width()*minimapScale - 10)
	originY := float32(10)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(originX), float64(originY))
	screen.DrawImage(g.minimap, op)

	toScreen := func(x, y float64) (float32, float32) {
		return originX + float32(x*minimapScale), originY + float32(y*minimapScale)
	}

	if obj, ok := g.session.Objective(); ok {
		x, y := toScreen(obj.Position.X, obj.Position.Y)
		vector.DrawFilledCircle(screen, x, y, minimapScale/2, colornames.Gold, false)
	}
	for _, e := range g.session.Enemies() {
		x, y := toScreen(e.Position.X, e.Position.Y)
		vector.DrawFilledCircle(screen, x, y, minimapScale/2, color.RGBA{255, 0, 0, 255}, false)
	}
	for _, p := range g.session.Projectiles() {
		x, y := toScreen(p.Position.X, p.Position.Y)
		c := colornames.Orange
		if p.Owner == model.OwnerEnemy {
			c = colornames.Yellow
		}
		vector.DrawFilledCircle(screen, x, y, 1.5, c, false)
	}

	g.drawMinimapPlayer(screen, toScreen)
}

func (g *Game) drawMinimapPlayer(screen *ebiten.Image, toScreen func(x, y float64) (float32, float32)) {
	p := g.session.Player()
	playerX, playerY := toScreen(p.Position.X, p.Position.Y)

	// calculate triangle points
	triangleSize := float32(minimapScale)
	angle := p.Angle

	x1 := playerX + triangleSize*float32(math.Cos(angle))
	y1 := playerY + triangleSize*float32(math.Sin(angle))
	x2 := playerX + triangleSize*float32(math.Cos(angle+2.5))
	y2 := playerY + triangleSize*float32(math.Sin(angle+2.5))
	x3 := playerX + triangleSize*float32(math.Cos(angle-2.5))
	y3 := playerY + triangleSize*float32(math.Sin(angle-2.5))

	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR, vertices[i].ColorG, vertices[i].ColorB, vertices[i].ColorA = 0, 1, 1, 1
	}
	screen.DrawTriangles(vertices, indices, whitePixel, nil)
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()
