package sim

import (
	"math"

	"entropia/model"
)

func (s *Simulator) updateEnemies(w *model.World, dt float64) {
	px, py := w.Player.Position.X, w.Player.Position.Y
	w.Enemies.Each(func(_ model.Handle, e *model.Enemy) bool {
		s.chase(w, e, dt)

		if !s.canSee(w.Grid, e.Position.X, e.Position.Y, px, py) {
			e.VisionTimer = 0
			return true
		}

		e.VisionTimer += dt
		if e.VisionTimer >= s.cfg.Enemy.VisionThreshold {
			angle := math.Atan2(py-e.Position.Y, px-e.Position.X)
			w.AddProjectile(model.NewProjectile(e.Position.X, e.Position.Y, angle,
				s.cfg.Enemy.ProjectileSpeed, model.OwnerEnemy))
			e.VisionTimer = 0
			s.emit(model.ShotFired, e.Position.X, e.Position.Y)
		}
		return true
	})
}

// canSee samples the segment between the two points at least every sight step. Every sample,
// both endpoints included, must be an open cell inside the grid.
func (s *Simulator) canSee(g *model.Grid, x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if r := s.cfg.Enemy.FireRange; r > 0 && dist > r {
		return false
	}

	steps := int(math.Ceil(dist / s.cfg.Enemy.SightStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !g.OpenAt(x1+t*dx, y1+t*dy) {
			return false
		}
	}
	return true
}
