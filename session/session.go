// Package session runs one game: it owns the world, steps the simulator on a fixed clock,
// renders frames and reports the Win and GameOver transitions.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"entropia/config"
	"entropia/maze"
	"entropia/model"
	"entropia/render"
	"entropia/sim"
)

type Status int

const (
	Running Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "game over"
	default:
		return "running"
	}
}

// Terminal reports whether the session has ended and only a Reset can continue it.
func (s Status) Terminal() bool {
	return s != Running
}

type Option func(*Session)

// WithLogger sets the base logger. Session logs carry a session id field.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.baseLog = l }
}

// WithSink routes simulation events, typically to audio.
func WithSink(sink model.EventSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithSeed overrides the configured maze seed.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

type Session struct {
	cfg     config.Config
	seed    int64
	rng     *rand.Rand
	baseLog *log.Logger
	log     *log.Logger
	sink    model.EventSink

	// level is the hand-authored map, nil when mazes are generated
	level *maze.Level

	id       string
	world    *model.World
	sim      *sim.Simulator
	renderer *render.Renderer
	clock    *sim.Clock
	status   Status

	// pendingFire holds a fire intent until a simulation step consumes it.
	pendingFire bool
}

// New validates cfg, generates the first maze and places the player at the maze start.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:  cfg,
		seed: cfg.Maze.Seed,
		sink: model.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.baseLog == nil {
		s.baseLog = log.New(io.Discard)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	s.sim = sim.New(cfg, s.rng)
	s.renderer = render.NewRenderer(ViewFromConfig(cfg))
	s.clock = sim.NewClock(cfg.Sim.TickRate, cfg.Sim.MaxFrameTime)

	var grid *model.Grid
	if cfg.Maze.Level != "" {
		lvl, err := maze.LoadLevel(cfg.Maze.Level)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.level = lvl
		grid = lvl.Grid
	} else {
		g, err := maze.Generate(cfg.Maze.Width, cfg.Maze.Height, s.rng)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		grid = g
	}
	s.start(grid)
	s.log.Info("Session started",
		"seed", s.seed,
		"level", cfg.Maze.Level,
		"width", grid.Width(),
		"height", grid.Height(),
		"openCells", grid.OpenCells())
	return s, nil
}

// ViewFromConfig builds the render view for the configured screen.
func ViewFromConfig(cfg config.Config) render.View {
	return render.View{
		Width:        cfg.Screen.Width,
		Height:       cfg.Screen.Height,
		FOV:          cfg.View.FOV(),
		Rays:         cfg.View.Rays,
		MaxDepth:     cfg.View.MaxDepth,
		WallScale:    cfg.View.WallScale,
		LightFalloff: cfg.View.LightFalloff,
	}
}

// start replaces all per-session state with a fresh world on grid.
func (s *Session) start(grid *model.Grid) {
	s.id = uuid.NewString()
	s.log = s.baseLog.With("session", s.id)

	start := maze.Start
	if s.level != nil {
		start = s.level.Player
	}
	player := model.NewPlayer(float64(start.X)+0.5, float64(start.Y)+0.5, 0, s.cfg.Player.Lives)
	s.world = model.NewWorld(grid, player)

	if s.cfg.Pickup.Enabled {
		goal := maze.Farthest(grid, start.X, start.Y)
		if s.level != nil && s.level.HasExit {
			goal = s.level.Exit
		}
		s.world.Pickup = model.NewPickup(float64(goal.X)+0.5, float64(goal.Y)+0.5, s.cfg.Pickup.Size)
	}
	if s.level != nil {
		for _, p := range s.level.Enemies {
			s.world.AddEnemy(model.NewEnemy(float64(p.X)+0.5, float64(p.Y)+0.5))
		}
	}

	s.sim.SetHooks(sim.Hooks{
		Spawned: func(id model.Handle, x, y float64) {
			s.log.Debug("Spawned enemy", "id", id, "x", x, "y", y)
		},
		SpawnSkipped: func(attempts int) {
			s.log.Debug("No spawn position found", "attempts", attempts)
		},
		PickupMoved: func(x, y float64) {
			s.log.Debug("Relocated pickup", "x", x, "y", y)
		},
	})

	s.clock.Reset()
	s.status = Running
	s.pendingFire = false
}

// Update advances the simulation by frameDt seconds of wall time, forwards the resulting
// events to the sink and returns the session status. A terminal session does not step.
func (s *Session) Update(frameDt float64, in model.Intent) Status {
	if s.status.Terminal() {
		return s.status
	}

	s.pendingFire = s.pendingFire || in.Fire
	steps := s.clock.Advance(frameDt)
	for i := 0; i < steps; i++ {
		in.Fire = s.pendingFire
		s.pendingFire = false

		for _, e := range s.sim.Step(s.world, in, s.clock.Step()) {
			s.sink.Emit(e)
		}

		if st := s.evaluate(); st.Terminal() {
			s.status = st
			s.log.Info("Session ended",
				"status", st,
				"elapsed", s.world.Timers.Elapsed,
				"lives", s.world.Player.Lives)
			break
		}
	}
	return s.status
}

// evaluate checks GameOver before Win, so a fatal hit on the step the player reaches the
// objective still loses.
func (s *Session) evaluate() Status {
	p := &s.world.Player
	if !p.Alive() {
		return Lost
	}
	if s.world.Pickup != nil && s.world.Pickup.Contains(p.Position.X, p.Position.Y) {
		return Won
	}
	return Running
}

// Reset starts over with a fresh player and no entities beyond the level's own. freshMap
// also generates a new maze; a level session always restarts on its level.
func (s *Session) Reset(freshMap bool) error {
	grid := s.world.Grid
	if freshMap && s.level == nil {
		g, err := maze.Generate(s.cfg.Maze.Width, s.cfg.Maze.Height, s.rng)
		if err != nil {
			return fmt.Errorf("session: reset: %w", err)
		}
		grid = g
	}
	prev := s.id
	s.start(grid)
	s.log.Info("Session reset", "previous", prev, "freshMap", freshMap)
	return nil
}

// Frame renders the current world.
func (s *Session) Frame() render.Frame {
	return s.renderer.Frame(s.world)
}

// Draw renders the current world onto surface.
func (s *Session) Draw(surface render.Surface) {
	s.Frame().Draw(surface)
}
