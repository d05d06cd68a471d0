package sim

import (
	"math"

	"entropia/model"
)

func (s *Simulator) updateSpawn(w *model.World, dt float64) {
	cfg := s.cfg.Spawn
	if cfg.Interval <= 0 {
		return
	}
	w.Timers.Spawn += dt
	if w.Timers.Spawn < cfg.Interval {
		return
	}
	w.Timers.Spawn = 0

	for i := 0; i < cfg.Batch; i++ {
		if cfg.MaxEnemies > 0 && w.Enemies.Len() >= cfg.MaxEnemies {
			return
		}
		x, y, ok := s.placeEnemy(w)
		if !ok {
			if s.hooks.SpawnSkipped != nil {
				s.hooks.SpawnSkipped(cfg.Attempts)
			}
			continue
		}
		id := w.AddEnemy(model.NewEnemy(x, y))
		if s.hooks.Spawned != nil {
			s.hooks.Spawned(id, x, y)
		}
	}
}

// placeEnemy picks a random open cell centre in front of the player and at least the minimum
// spawn distance away, giving up after the configured number of attempts.
func (s *Simulator) placeEnemy(w *model.World) (float64, float64, bool) {
	p := w.Player
	for i := 0; i < s.cfg.Spawn.Attempts; i++ {
		x, y, ok := s.randomOpenCell(w.Grid)
		if !ok {
			continue
		}
		if math.Abs(model.Bearing(p.Position.X, p.Position.Y, p.Angle, x, y)) > model.HalfPi {
			continue
		}
		if math.Hypot(x-p.Position.X, y-p.Position.Y) < s.cfg.Spawn.MinDistance {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

// randomOpenCell draws one random cell and reports its centre if it is open.
func (s *Simulator) randomOpenCell(g *model.Grid) (float64, float64, bool) {
	cx := s.rng.Intn(g.Width())
	cy := s.rng.Intn(g.Height())
	if !g.IsOpen(cx, cy) {
		return 0, 0, false
	}
	return float64(cx) + 0.5, float64(cy) + 0.5, true
}

func (s *Simulator) updatePickup(w *model.World, dt float64) {
	if w.Pickup == nil || s.cfg.Pickup.Interval <= 0 {
		return
	}
	w.Timers.Pickup += dt
	if w.Timers.Pickup < s.cfg.Pickup.Interval {
		return
	}
	w.Timers.Pickup = 0

	for i := 0; i < s.cfg.Pickup.Attempts; i++ {
		if x, y, ok := s.randomOpenCell(w.Grid); ok {
			w.Pickup.Position.X, w.Pickup.Position.Y = x, y
			if s.hooks.PickupMoved != nil {
				s.hooks.PickupMoved(x, y)
			}
			return
		}
	}
}
