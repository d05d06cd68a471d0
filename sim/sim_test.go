package sim

import (
	"math"
	"math/rand"
	"testing"

	"entropia/config"
	"entropia/model"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Enemy.Speed = 0
	cfg.Spawn.Interval = 0
	cfg.Pickup.Interval = 0
	return cfg
}

func mustGrid(t *testing.T, lines ...string) *model.Grid {
	t.Helper()
	g, err := model.GridFromStrings(lines...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func corridor(t *testing.T) *model.Grid {
	return mustGrid(t,
		"#########",
		"#.......#",
		"#########",
	)
}

func count(events []model.Event, kind model.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func newSim(cfg config.Config) *Simulator {
	return New(cfg, rand.New(rand.NewSource(1)))
}

func TestEnemyFiresAtVisionThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.VisionThreshold = 1.0
	s := newSim(cfg)
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))
	id := w.AddEnemy(model.NewEnemy(4.5, 1.5))

	for step := 1; step <= 4; step++ {
		events := s.Step(w, model.Intent{}, 0.25)
		shots := count(events, model.ShotFired)
		if step < 4 && shots != 0 {
			t.Fatalf("step %d: enemy fired early", step)
		}
		if step == 4 && shots != 1 {
			t.Fatalf("step 4: got %d shots, want 1", shots)
		}
	}

	if n := w.Projectiles.Len(); n != 1 {
		t.Fatalf("got %d projectiles, want 1", n)
	}
	for _, p := range w.Projectiles.Items() {
		if p.Owner != model.OwnerEnemy || math.Abs(p.Angle-math.Pi) > 1e-9 {
			t.Errorf("unexpected projectile %+v", p)
		}
	}
	e, _ := w.Enemies.Get(id)
	if e.VisionTimer != 0 {
		t.Errorf("vision timer %v after firing, want 0", e.VisionTimer)
	}
}

func TestVisionTimerResetsWhenSightBreaks(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.VisionThreshold = 1.0
	cfg.Enemy.FireRange = 0
	s := newSim(cfg)
	g := mustGrid(t,
		"#########",
		"#.......#",
		"###.#####",
		"#.......#",
		"#########",
	)
	w := model.NewWorld(g, model.NewPlayer(2.5, 1.5, 0, 3))
	id := w.AddEnemy(model.NewEnemy(5.5, 1.5))
	timer := func() float64 {
		e, ok := w.Enemies.Get(id)
		if !ok {
			t.Fatal("enemy vanished")
		}
		return e.VisionTimer
	}

	shots := 0
	step := func() {
		shots += count(s.Step(w, model.Intent{}, 0.25), model.ShotFired)
	}

	step()
	step()
	if got := timer(); got != 0.5 {
		t.Fatalf("timer %v, want 0.5", got)
	}

	w.Player.Position.X, w.Player.Position.Y = 1.5, 3.5
	step()
	if got := timer(); got != 0 {
		t.Fatalf("timer %v after losing sight, want 0", got)
	}

	w.Player.Position.X, w.Player.Position.Y = 2.5, 1.5
	step()
	if got := timer(); got != 0.25 {
		t.Fatalf("timer %v after regaining sight, want 0.25", got)
	}
	if shots != 0 {
		t.Fatalf("enemy fired %d shots without reaching the threshold", shots)
	}
	if w.Projectiles.Len() != 0 {
		t.Fatalf("got %d projectiles, want 0", w.Projectiles.Len())
	}
}

func TestFireRangeLimitsSight(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.FireRange = 2
	s := newSim(cfg)
	g := corridor(t)
	if s.canSee(g, 5.5, 1.5, 1.5, 1.5) {
		t.Error("target beyond fire range should not be seen")
	}
	if !s.canSee(g, 3.5, 1.5, 1.5, 1.5) {
		t.Error("target in range with a clear line should be seen")
	}
	if !s.canSee(g, 1.5, 1.5, 1.5, 1.5) {
		t.Error("coincident points should be seen")
	}
}

func TestSlideAlongWall(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Speed = 0.6 * math.Sqrt2
	s := newSim(cfg)
	g := mustGrid(t,
		"#####",
		"#.#.#",
		"#...#",
		"#####",
	)
	w := model.NewWorld(g, model.NewPlayer(1.9, 1.5, math.Pi/4, 3))

	s.Step(w, model.Intent{Forward: true}, 1)
	if math.Abs(w.Player.Position.X-1.9) > 1e-9 || math.Abs(w.Player.Position.Y-2.1) > 1e-9 {
		t.Fatalf("player at (%v, %v), want (1.9, 2.1)", w.Player.Position.X, w.Player.Position.Y)
	}
}

func TestSlide(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#..##",
		"#.###",
		"#####",
	)
	cases := []struct {
		name         string
		x, y, dx, dy float64
		wantX, wantY float64
	}{
		{"open", 1.5, 1.5, 0.3, 0.2, 1.8, 1.7},
		{"x blocked", 2.5, 1.5, 0.7, 0.2, 2.5, 1.7},
		{"both blocked", 1.5, 2.5, 0.7, 0.7, 1.5, 2.5},
		{"diagonal corner keeps larger axis", 1.5, 1.5, 0.6, 0.8, 1.5, 2.3},
		{"out of bounds", 1.5, 1.5, -2, 0, 1.5, 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := slide(g, c.x, c.y, c.dx, c.dy)
			if math.Abs(x-c.wantX) > 1e-9 || math.Abs(y-c.wantY) > 1e-9 {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, c.wantX, c.wantY)
			}
			if !g.OpenAt(x, y) {
				t.Errorf("ended inside a wall at (%v, %v)", x, y)
			}
		})
	}
}

func TestSlideRejectsLeavingGrid(t *testing.T) {
	g := mustGrid(t, "...", "...")
	x, y := slide(g, 0.5, 0.5, -1, 0)
	if x != 0.5 || y != 0.5 {
		t.Fatalf("moved off the grid to (%v, %v)", x, y)
	}
}

func TestEnemyChasesAndStops(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.Speed = 1
	cfg.Enemy.StopDistance = 0.8
	cfg.Enemy.VisionThreshold = 1e9
	s := newSim(cfg)
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))
	far := w.AddEnemy(model.NewEnemy(6.5, 1.5))
	near := w.AddEnemy(model.NewEnemy(2.0, 1.5))

	s.Step(w, model.Intent{}, 0.5)

	e, _ := w.Enemies.Get(far)
	if math.Abs(e.Position.X-6.0) > 1e-9 {
		t.Errorf("far enemy at x=%v, want 6.0", e.Position.X)
	}
	e, _ = w.Enemies.Get(near)
	if e.Position.X != 2.0 {
		t.Errorf("enemy inside stop distance moved to x=%v", e.Position.X)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.Player.FireCooldown = 0.5
	s := newSim(cfg)
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))

	shots := 0
	for i := 0; i < 3; i++ {
		shots += count(s.Step(w, model.Intent{Fire: true}, 0.25), model.ShotFired)
	}
	if shots != 2 {
		t.Fatalf("got %d shots, want 2", shots)
	}
}

func TestPlayerProjectileHitsWall(t *testing.T) {
	s := newSim(testConfig())
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))

	var events []model.Event
	events = append(events, s.Step(w, model.Intent{Fire: true}, 1.0/60)...)
	for i := 0; i < 60; i++ {
		events = append(events, s.Step(w, model.Intent{}, 1.0/60)...)
	}
	if count(events, model.ShotFired) != 1 || count(events, model.WallHit) != 1 {
		t.Fatalf("unexpected events %v", events)
	}
	if n := w.Projectiles.Len(); n != 0 {
		t.Fatalf("%d projectiles left after impact", n)
	}
}

func TestPlayerProjectileKillsEnemy(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.VisionThreshold = 1e9
	s := newSim(cfg)
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))
	w.AddEnemy(model.NewEnemy(4.5, 1.5))

	var events []model.Event
	events = append(events, s.Step(w, model.Intent{Fire: true}, 1.0/60)...)
	for i := 0; i < 60; i++ {
		events = append(events, s.Step(w, model.Intent{}, 1.0/60)...)
	}
	if count(events, model.EnemyHit) != 1 || count(events, model.WallHit) != 0 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Enemies.Len() != 0 || w.Projectiles.Len() != 0 {
		t.Fatalf("enemies=%d projectiles=%d, want 0 and 0", w.Enemies.Len(), w.Projectiles.Len())
	}
}

func TestPlayerProjectileHitsNearestEnemy(t *testing.T) {
	cases := []struct {
		name          string
		first, second float64
		wantFirst     bool
	}{
		{"later enemy nearer", 4.75, 4.375, false},
		{"tie goes to first", 4.75, 4.25, true},
		{"first enemy nearer", 4.625, 4.25, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Enemy.VisionThreshold = 1e9
			s := newSim(cfg)
			w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))
			first := w.AddEnemy(model.NewEnemy(c.first, 1.5))
			second := w.AddEnemy(model.NewEnemy(c.second, 1.5))
			w.AddProjectile(model.NewProjectile(4.5, 1.5, 0, 0, model.OwnerPlayer))

			events := s.Step(w, model.Intent{}, 1.0/60)
			if count(events, model.EnemyHit) != 1 {
				t.Fatalf("unexpected events %v", events)
			}
			_, firstAlive := w.Enemies.Get(first)
			_, secondAlive := w.Enemies.Get(second)
			if firstAlive == c.wantFirst || secondAlive == !c.wantFirst {
				t.Fatalf("first alive=%v second alive=%v", firstAlive, secondAlive)
			}
			if w.Enemies.Len() != 1 || w.Projectiles.Len() != 0 {
				t.Fatalf("enemies=%d projectiles=%d, want 1 and 0", w.Enemies.Len(), w.Projectiles.Len())
			}
		})
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	s := newSim(testConfig())
	w := model.NewWorld(corridor(t), model.NewPlayer(1.5, 1.5, 0, 3))
	w.AddProjectile(model.NewProjectile(2.5, 1.5, math.Pi, 1, model.OwnerEnemy))

	var events []model.Event
	for i := 0; i < 3; i++ {
		events = append(events, s.Step(w, model.Intent{}, 0.25)...)
	}
	if count(events, model.PlayerHit) != 1 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Player.Lives != 2 {
		t.Fatalf("lives %d, want 2", w.Player.Lives)
	}
	if w.Projectiles.Len() != 0 {
		t.Fatal("projectile survived the hit")
	}
}

func TestProjectileLeavesGrid(t *testing.T) {
	s := newSim(testConfig())
	w := model.NewWorld(mustGrid(t, "....", "...."), model.NewPlayer(0.5, 1.5, 0, 3))
	w.AddProjectile(model.NewProjectile(3.5, 0.5, 0, 1, model.OwnerPlayer))

	events := s.Step(w, model.Intent{}, 1)
	if count(events, model.WallHit) != 1 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Projectiles.Len() != 0 {
		t.Fatal("projectile outside the grid was kept")
	}
}

func room(t *testing.T) *model.Grid {
	return mustGrid(t,
		"#########",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#########",
	)
}

func TestSpawnInFrontOfPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn = config.Spawn{Interval: 1, Attempts: 200, Batch: 5, MaxEnemies: 50, MinDistance: 2}
	s := newSim(cfg)
	w := model.NewWorld(room(t), model.NewPlayer(4.5, 4.5, 0, 3))

	spawned := 0
	s.SetHooks(Hooks{Spawned: func(model.Handle, float64, float64) { spawned++ }})

	s.Step(w, model.Intent{}, 0.5)
	if w.Enemies.Len() != 0 {
		t.Fatal("spawned before the interval elapsed")
	}
	s.Step(w, model.Intent{}, 0.5)
	if w.Enemies.Len() != 5 || spawned != 5 {
		t.Fatalf("got %d enemies (%d hooks), want 5", w.Enemies.Len(), spawned)
	}

	for _, e := range w.Enemies.Items() {
		x, y := e.Pos()
		if !w.Grid.OpenAt(x, y) {
			t.Errorf("enemy spawned in a wall at (%v, %v)", x, y)
		}
		if b := model.Bearing(4.5, 4.5, 0, x, y); math.Abs(b) > model.HalfPi {
			t.Errorf("enemy spawned behind the player at (%v, %v)", x, y)
		}
		if d := math.Hypot(x-4.5, y-4.5); d < 2 {
			t.Errorf("enemy spawned %v cells away", d)
		}
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn = config.Spawn{Interval: 1, Attempts: 200, Batch: 5, MaxEnemies: 2, MinDistance: 0}
	s := newSim(cfg)
	w := model.NewWorld(room(t), model.NewPlayer(4.5, 4.5, 0, 3))

	s.Step(w, model.Intent{}, 1)
	s.Step(w, model.Intent{}, 1)
	if n := w.Enemies.Len(); n != 2 {
		t.Fatalf("got %d enemies, want 2", n)
	}
}

func TestSpawnFailureIsNotFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn = config.Spawn{Interval: 1, Attempts: 10, Batch: 2, MaxEnemies: 5, MinDistance: 100}
	s := newSim(cfg)
	w := model.NewWorld(room(t), model.NewPlayer(4.5, 4.5, 0, 3))

	skipped := 0
	s.SetHooks(Hooks{SpawnSkipped: func(int) { skipped++ }})
	s.Step(w, model.Intent{}, 1)
	if w.Enemies.Len() != 0 || skipped != 2 {
		t.Fatalf("enemies=%d skipped=%d, want 0 and 2", w.Enemies.Len(), skipped)
	}
}

func TestPickupRelocates(t *testing.T) {
	cfg := testConfig()
	cfg.Pickup.Interval = 1
	cfg.Pickup.Attempts = 100
	s := newSim(cfg)
	w := model.NewWorld(room(t), model.NewPlayer(4.5, 4.5, 0, 3))
	w.Pickup = model.NewPickup(1.5, 1.5, 0.6)

	moved := false
	s.SetHooks(Hooks{PickupMoved: func(float64, float64) { moved = true }})
	s.Step(w, model.Intent{}, 1)
	if !moved {
		t.Fatal("pickup was not relocated")
	}
	x, y := w.Pickup.Pos()
	if !w.Grid.OpenAt(x, y) {
		t.Fatalf("pickup relocated into a wall at (%v, %v)", x, y)
	}
	if w.Timers.Pickup != 0 {
		t.Fatalf("pickup timer %v, want 0", w.Timers.Pickup)
	}
}

func TestClock(t *testing.T) {
	c := NewClock(4, 1)
	steps := []struct {
		dt   float64
		want int
	}{
		{0.5, 2},
		{0.125, 0},
		{0.125, 1},
		{10, 4},
		{-1, 0},
		{0, 0},
	}
	for i, s := range steps {
		if got := c.Advance(s.dt); got != s.want {
			t.Fatalf("advance %d (%v): got %d steps, want %d", i, s.dt, got, s.want)
		}
	}
	if c.Step() != 0.25 {
		t.Fatalf("step %v, want 0.25", c.Step())
	}
}
