package sim

import (
	"entropia/model"
)

func (s *Simulator) updateProjectiles(w *model.World, dt float64) {
	radius := s.cfg.Sim.HitRadius
	w.Projectiles.Each(func(id model.Handle, p *model.Projectile) bool {
		if p.State != model.Active {
			w.Projectiles.Remove(id)
			return true
		}

		p.Advance(dt)
		x, y := p.Pos()
		cx, cy := model.CellOf(x, y)

		switch {
		case !w.Grid.InBounds(cx, cy):
			p.State = model.OutOfBounds
			s.emit(model.WallHit, x, y)
		case w.Grid.At(cx, cy) == model.Wall:
			p.State = model.WallImpact
			s.emit(model.WallHit, x, y)
		case p.Owner == model.OwnerPlayer:
			if target, ok := nearestEnemy(w, x, y, radius); ok {
				w.Enemies.Remove(target)
				p.State = model.EntityHit
				s.emit(model.EnemyHit, x, y)
			}
		default:
			if w.Player.Alive() && p.DistanceTo(w.Player.Position.X, w.Player.Position.Y) <= radius {
				w.Player.Hit()
				p.State = model.EntityHit
				s.emit(model.PlayerHit, x, y)
			}
		}

		if p.State != model.Active {
			w.Projectiles.Remove(id)
		}
		return true
	})
}

// nearestEnemy returns the closest live enemy within radius of (x, y). Ties go to the
// enemy inserted first.
func nearestEnemy(w *model.World, x, y, radius float64) (model.Handle, bool) {
	var best model.Handle
	bestDist := radius
	found := false
	w.Enemies.Each(func(id model.Handle, e *model.Enemy) bool {
		if d := e.DistanceTo(x, y); d < bestDist || (!found && d <= radius) {
			best, bestDist, found = id, d, true
		}
		return true
	})
	return best, found
}
