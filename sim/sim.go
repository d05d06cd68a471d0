// Package sim advances a model.World by fixed time steps: player and enemy motion, enemy
// sight and fire, spawning, projectiles and the pickup objective.
package sim

import (
	"math/rand"

	"entropia/config"
	"entropia/model"
)

// Hooks are optional callbacks for world changes that are not player-facing events.
type Hooks struct {
	Spawned      func(id model.Handle, x, y float64)
	PickupMoved  func(x, y float64)
	SpawnSkipped func(attempts int)
}

type Simulator struct {
	cfg   config.Config
	rng   *rand.Rand
	hooks Hooks

	events []model.Event
}

func New(cfg config.Config, rng *rand.Rand) *Simulator {
	return &Simulator{cfg: cfg, rng: rng}
}

func (s *Simulator) SetHooks(h Hooks) {
	s.hooks = h
}

// Step advances w by dt seconds and returns the events raised during the step. The returned
// slice is reused by the next Step.
func (s *Simulator) Step(w *model.World, in model.Intent, dt float64) []model.Event {
	s.events = s.events[:0]
	w.Timers.Elapsed += dt

	s.updatePlayer(w, in, dt)
	s.updateEnemies(w, dt)
	s.updateProjectiles(w, dt)
	s.updateSpawn(w, dt)
	s.updatePickup(w, dt)

	w.Compact()
	return s.events
}

func (s *Simulator) emit(kind model.EventKind, x, y float64) {
	s.events = append(s.events, model.Event{Kind: kind, X: x, Y: y})
}

func (s *Simulator) updatePlayer(w *model.World, in model.Intent, dt float64) {
	p := &w.Player
	if turn := in.Turn(); turn != 0 {
		p.Rotate(turn * s.cfg.Player.TurnSpeed * dt)
	}
	if move := in.Move(); move != 0 {
		dirX, dirY := p.Direction()
		step := move * s.cfg.Player.Speed * dt
		p.Position.X, p.Position.Y = slide(w.Grid, p.Position.X, p.Position.Y, dirX*step, dirY*step)
	}

	if p.FireCooldown > 0 {
		p.FireCooldown -= dt
	}
	if in.Fire && p.FireCooldown <= 0 {
		w.AddProjectile(model.NewProjectile(p.Position.X, p.Position.Y, p.Angle,
			s.cfg.Player.ProjectileSpeed, model.OwnerPlayer))
		p.FireCooldown = s.cfg.Player.FireCooldown
		s.emit(model.ShotFired, p.Position.X, p.Position.Y)
	}
}
