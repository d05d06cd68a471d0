package sim

import (
	"math"

	"entropia/model"
)

// slide moves (x, y) by (dx, dy) one axis at a time so a blocked axis does not stop motion
// along the other. The X move is tested at the current Y and the Y move at the current X.
// If both pass alone but the combined target is a wall, the smaller component is dropped.
func slide(g *model.Grid, x, y, dx, dy float64) (float64, float64) {
	nx, ny := x+dx, y+dy
	okX := g.OpenAt(nx, y)
	okY := g.OpenAt(x, ny)

	switch {
	case okX && okY:
		if g.OpenAt(nx, ny) {
			return nx, ny
		}
		if math.Abs(dx) < math.Abs(dy) {
			return x, ny
		}
		return nx, y
	case okX:
		return nx, y
	case okY:
		return x, ny
	default:
		return x, y
	}
}

// chase steps the enemy toward the player, stopping once it is within stop distance.
func (s *Simulator) chase(w *model.World, e *model.Enemy, dt float64) {
	speed := s.cfg.Enemy.Speed
	if speed <= 0 {
		return
	}
	px, py := w.Player.Position.X, w.Player.Position.Y
	dist := e.DistanceTo(px, py)
	if dist <= s.cfg.Enemy.StopDistance {
		return
	}

	step := math.Min(speed*dt, dist-s.cfg.Enemy.StopDistance)
	dx := (px - e.Position.X) / dist * step
	dy := (py - e.Position.Y) / dist * step
	e.Position.X, e.Position.Y = slide(w.Grid, e.Position.X, e.Position.Y, dx, dy)
}
