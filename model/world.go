package model

// Timers holds the world's interval clocks so a reset discards them with the entities.
type Timers struct {
	// Elapsed is total simulated time in seconds.
	Elapsed float64
	Spawn   float64
	Pickup  float64
}

// World is everything the simulator mutates and the renderer reads for one session.
type World struct {
	Grid        *Grid
	Player      Player
	Enemies     *Pool[Enemy]
	Projectiles *Pool[Projectile]
	// Pickup is nil when the objective is disabled.
	Pickup *Pickup
	Timers Timers

	nextID Handle
}

func NewWorld(grid *Grid, player Player) *World {
	return &World{
		Grid:        grid,
		Player:      player,
		Enemies:     NewPool[Enemy](),
		Projectiles: NewPool[Projectile](),
	}
}

func (w *World) newHandle() Handle {
	w.nextID++
	return w.nextID
}

// AddEnemy places a new enemy and returns its handle.
func (w *World) AddEnemy(e Enemy) Handle {
	e.ID = w.newHandle()
	w.Enemies.Insert(e.ID, e)
	return e.ID
}

// AddProjectile places a new projectile and returns its handle.
func (w *World) AddProjectile(p Projectile) Handle {
	p.ID = w.newHandle()
	w.Projectiles.Insert(p.ID, p)
	return p.ID
}

// Compact drops every entity marked for removal during the last pass.
func (w *World) Compact() {
	w.Enemies.Compact()
	w.Projectiles.Compact()
}
