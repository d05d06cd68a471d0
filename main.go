package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"entropia/audio"
	"entropia/config"
	"entropia/model"
	"entropia/session"
	"entropia/term"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to a config file (yaml, toml or json)")
		terminal   = pflag.Bool("term", false, "play in the terminal instead of a window")
		seed       = pflag.Int64("seed", 0, "maze seed, 0 for a random maze")
		level      = pflag.String("level", "", "play a level image instead of a generated maze")
		debug      = pflag.Bool("debug", false, "enable debug logging")
		mute       = pflag.Bool("mute", false, "disable sound")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "entropia",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", "path", *configPath, "error", err)
	}

	if *level != "" {
		cfg.Maze.Level = *level
	}

	opts := []session.Option{session.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}

	var sinks model.MultiSink
	crosshairs := NewCrosshairs()
	if !*terminal {
		sinks = append(sinks, crosshairs)
	}
	if cfg.Audio.Enabled && !*mute {
		player := audio.NewPlayer()
		defer player.Close()
		if err := player.Initialize(); err != nil {
			// the game runs fine without sound
			logger.Warn("Audio unavailable", "error", err)
		}
		sinks = append(sinks, player)
	}
	opts = append(opts, session.WithSink(sinks))

	s, err := session.New(cfg, opts...)
	if err != nil {
		logger.Fatal("Failed to start session", "error", err)
	}

	if *terminal {
		if err := runTerminal(s, logger); err != nil {
			logger.Fatal("Terminal session failed", "error", err)
		}
		return
	}

	setWindow(cfg.Screen)
	if err := ebiten.RunGame(NewGame(s, crosshairs, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("Game loop failed", "error", err)
	}
}

func runTerminal(s *session.Session, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.Run(ctx, s, screen, logger)
}
