package session

import (
	"github.com/jinzhu/copier"

	"entropia/config"
	"entropia/model"
	"entropia/render"
)

func (s *Session) ID() string            { return s.id }
func (s *Session) Status() Status        { return s.status }
func (s *Session) Lives() int            { return s.world.Player.Lives }
func (s *Session) Grid() *model.Grid     { return s.world.Grid }
func (s *Session) Player() model.Player  { return s.world.Player }
func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) View() render.View     { return s.renderer.View() }

// Objective returns a copy of the pickup, if the session has one.
func (s *Session) Objective() (model.Pickup, bool) {
	if s.world.Pickup == nil {
		return model.Pickup{}, false
	}
	return *s.world.Pickup, true
}

func (s *Session) Enemies() []model.Enemy {
	return s.world.Enemies.Items()
}

func (s *Session) Projectiles() []model.Projectile {
	return s.world.Projectiles.Items()
}

// Snapshot is a detached copy of the session state for HUD and debug consumers.
type Snapshot struct {
	ID          string
	Status      Status
	Elapsed     float64
	Player      model.Player
	Enemies     []model.Enemy
	Projectiles []model.Projectile
	Pickup      *model.Pickup
}

// Snapshot deep-copies the observable state. Mutating the result never affects the session.
func (s *Session) Snapshot() Snapshot {
	src := Snapshot{
		ID:          s.id,
		Status:      s.status,
		Elapsed:     s.world.Timers.Elapsed,
		Player:      s.world.Player,
		Enemies:     s.world.Enemies.Items(),
		Projectiles: s.world.Projectiles.Items(),
		Pickup:      s.world.Pickup,
	}
	var snap Snapshot
	if err := copier.CopyWithOption(&snap, &src, copier.Option{DeepCopy: true}); err != nil {
		// copying between identical struct types only fails on programming errors
		panic(err)
	}
	return snap
}
