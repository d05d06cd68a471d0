package render

import (
	"math"

	"entropia/model"
)

const (
	// Epsilon floors wall distances so size calculations never divide by zero.
	Epsilon = 1e-4

	// farSlope replaces the inverse slope of a zero ray direction component.
	farSlope = 1e30
)

// Side is the grid axis a ray crossed when it entered the wall cell.
type Side int

const (
	SideX Side = iota // crossed a vertical grid line
	SideY             // crossed a horizontal grid line
)

type Hit struct {
	// Distance is the fisheye-corrected perpendicular distance, or the max depth on a miss.
	Distance float64
	// Raw is the distance travelled along the ray.
	Raw          float64
	Side         Side
	Hit          bool
	CellX, CellY int
}

// ZBuffer holds one perpendicular wall distance per ray.
type ZBuffer []float64

// CastRay steps a DDA cursor from (x, y) along angle until it enters a wall, leaves the grid
// or passes maxDepth. heading is the camera heading used for the perpendicular correction.
func CastRay(g *model.Grid, x, y, angle, heading, maxDepth float64) Hit {
	miss := Hit{Distance: maxDepth, Raw: maxDepth}

	mapX, mapY := model.CellOf(x, y)
	if !g.InBounds(mapX, mapY) {
		return miss
	}

	dirX, dirY := math.Cos(angle), math.Sin(angle)
	deltaDistX, deltaDistY := farSlope, farSlope
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (x - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - x) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - y) * deltaDistY
	}

	for {
		var raw float64
		var side Side
		if sideDistX < sideDistY {
			raw = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			raw = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}

		if raw > maxDepth || !g.InBounds(mapX, mapY) {
			return miss
		}

		if g.At(mapX, mapY) == model.Wall {
			// project onto the view direction to remove fisheye bowing
			perp := raw * math.Cos(angle-heading)
			perp = math.Min(math.Max(perp, Epsilon), maxDepth)
			return Hit{
				Distance: perp,
				Raw:      raw,
				Side:     side,
				Hit:      true,
				CellX:    mapX,
				CellY:    mapY,
			}
		}
	}
}

// Caster casts every ray of a View and keeps the resulting hits and z-buffer.
type Caster struct {
	view View
	hits []Hit
	zbuf ZBuffer
}

func NewCaster(v View) *Caster {
	return &Caster{
		view: v,
		hits: make([]Hit, v.Rays),
		zbuf: make(ZBuffer, v.Rays),
	}
}

// Cast recomputes every ray for pose. The returned z-buffer is owned by the caster and is
// overwritten by the next Cast.
func (c *Caster) Cast(g *model.Grid, pose model.Pose) ZBuffer {
	for i := range c.hits {
		angle := pose.Angle + c.view.RayOffset(i)
		h := CastRay(g, pose.X, pose.Y, angle, pose.Angle, c.view.MaxDepth)
		c.hits[i] = h
		c.zbuf[i] = h.Distance
	}
	return c.zbuf
}

// Hits returns the per-ray results of the last Cast.
func (c *Caster) Hits() []Hit {
	return c.hits
}
