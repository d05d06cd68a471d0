// Package config loads the tuning surface of the game from defaults, an optional file and
// ENTROPIA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Screen Screen `mapstructure:"screen"`
	View   View   `mapstructure:"view"`
	Maze   Maze   `mapstructure:"maze"`
	Player Player `mapstructure:"player"`
	Enemy  Enemy  `mapstructure:"enemy"`
	Spawn  Spawn  `mapstructure:"spawn"`
	Pickup Pickup `mapstructure:"pickup"`
	Sim    Sim    `mapstructure:"sim"`
	Audio  Audio  `mapstructure:"audio"`
}

type Screen struct {
	Width      int  `mapstructure:"width"`
	Height     int  `mapstructure:"height"`
	Fullscreen bool `mapstructure:"fullscreen"`
	VSync      bool `mapstructure:"vsync"`
}

type View struct {
	FOVDegrees float64 `mapstructure:"fov_degrees"`
	Rays       int     `mapstructure:"rays"`
	// MaxDepth is the farthest wall distance in cells; rays that leave the grid report it.
	MaxDepth     float64 `mapstructure:"max_depth"`
	WallScale    float64 `mapstructure:"wall_scale"`
	LightFalloff float64 `mapstructure:"light_falloff"`
}

type Maze struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// Seed 0 picks a time based seed.
	Seed int64 `mapstructure:"seed"`
	// Level is an optional level image that replaces the generated maze.
	Level string `mapstructure:"level"`
}

type Player struct {
	Speed           float64 `mapstructure:"speed"`
	TurnSpeed       float64 `mapstructure:"turn_speed"`
	Lives           int     `mapstructure:"lives"`
	FireCooldown    float64 `mapstructure:"fire_cooldown"`
	ProjectileSpeed float64 `mapstructure:"projectile_speed"`
}

type Enemy struct {
	Speed           float64 `mapstructure:"speed"`
	VisionThreshold float64 `mapstructure:"vision_threshold"`
	// FireRange limits sight to this many cells; 0 disables the limit.
	FireRange       float64 `mapstructure:"fire_range"`
	ProjectileSpeed float64 `mapstructure:"projectile_speed"`
	SightStep       float64 `mapstructure:"sight_step"`
	StopDistance    float64 `mapstructure:"stop_distance"`
}

type Spawn struct {
	// Interval 0 disables spawning.
	Interval    float64 `mapstructure:"interval"`
	Attempts    int     `mapstructure:"attempts"`
	Batch       int     `mapstructure:"batch"`
	MaxEnemies  int     `mapstructure:"max_enemies"`
	MinDistance float64 `mapstructure:"min_distance"`
}

type Pickup struct {
	Enabled  bool    `mapstructure:"enabled"`
	Size     float64 `mapstructure:"size"`
	Interval float64 `mapstructure:"interval"`
	Attempts int     `mapstructure:"attempts"`
}

type Sim struct {
	TickRate     float64 `mapstructure:"tick_rate"`
	MaxFrameTime float64 `mapstructure:"max_frame_time"`
	HitRadius    float64 `mapstructure:"hit_radius"`
}

type Audio struct {
	Enabled bool `mapstructure:"enabled"`
}

// FOV returns the field of view in radians.
func (v View) FOV() float64 {
	return v.FOVDegrees * math.Pi / 180
}

var defaults = map[string]any{
	"screen.width":      800,
	"screen.height":     400,
	"screen.fullscreen": false,
	"screen.vsync":      true,

	"view.fov_degrees":   60.0,
	"view.rays":          120,
	"view.max_depth":     12.0,
	"view.wall_scale":    1.0,
	"view.light_falloff": 0.25,

	"maze.width":  21,
	"maze.height": 21,
	"maze.seed":   0,
	"maze.level":  "",

	"player.speed":            3.6,
	"player.turn_speed":       3.0,
	"player.lives":            3,
	"player.fire_cooldown":    0.25,
	"player.projectile_speed": 12.0,

	"enemy.speed":            1.2,
	"enemy.vision_threshold": 5.0,
	"enemy.fire_range":       4.0,
	"enemy.projectile_speed": 4.8,
	"enemy.sight_step":       0.25,
	"enemy.stop_distance":    0.8,

	"spawn.interval":     10.0,
	"spawn.attempts":     20,
	"spawn.batch":        3,
	"spawn.max_enemies":  8,
	"spawn.min_distance": 4.0,

	"pickup.enabled":  true,
	"pickup.size":     0.6,
	"pickup.interval": 30.0,
	"pickup.attempts": 50,

	"sim.tick_rate":      60.0,
	"sim.max_frame_time": 0.25,
	"sim.hit_radius":     0.4,

	"audio.enabled": true,
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("entropia")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the built-in configuration.
func Default() Config {
	c, err := decode(newViper())
	if err != nil {
		// the defaults table is static; failing here is a programming error
		panic(err)
	}
	return c
}

// Load reads defaults, then the file at path (if non-empty), then ENTROPIA_* environment
// overrides, and validates the result.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func decode(v *viper.Viper) (Config, error) {
	// AutomaticEnv only applies to keys viper already knows about, which the defaults provide
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Validate checks the constraints the renderer and simulator rely on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.View.FOVDegrees > 0 && c.View.FOVDegrees < 180, "view.fov_degrees must be in (0, 180), got %v", c.View.FOVDegrees)
	check(c.View.Rays > 0, "view.rays must be positive, got %d", c.View.Rays)
	check(c.View.MaxDepth > 0, "view.max_depth must be positive, got %v", c.View.MaxDepth)
	check(c.View.WallScale > 0, "view.wall_scale must be positive, got %v", c.View.WallScale)
	check(c.View.LightFalloff >= 0, "view.light_falloff must not be negative, got %v", c.View.LightFalloff)
	check(c.Maze.Width >= 5 && c.Maze.Width%2 == 1, "maze.width must be odd and >= 5, got %d", c.Maze.Width)
	check(c.Maze.Height >= 5 && c.Maze.Height%2 == 1, "maze.height must be odd and >= 5, got %d", c.Maze.Height)
	check(c.Player.Lives > 0, "player.lives must be positive, got %d", c.Player.Lives)
	check(c.Player.Speed >= 0 && c.Player.TurnSpeed >= 0, "player speeds must not be negative")
	check(c.Player.ProjectileSpeed > 0, "player.projectile_speed must be positive")
	check(c.Enemy.Speed >= 0, "enemy.speed must not be negative")
	check(c.Enemy.ProjectileSpeed > 0, "enemy.projectile_speed must be positive")
	check(c.Enemy.VisionThreshold > 0, "enemy.vision_threshold must be positive")
	check(c.Enemy.SightStep > 0 && c.Enemy.SightStep <= 1, "enemy.sight_step must be in (0, 1], got %v", c.Enemy.SightStep)
	check(c.Spawn.Interval >= 0, "spawn.interval must not be negative")
	check(c.Spawn.Attempts >= 0 && c.Spawn.Batch >= 0 && c.Spawn.MaxEnemies >= 0, "spawn counts must not be negative")
	check(!c.Pickup.Enabled || c.Pickup.Size > 0, "pickup.size must be positive when enabled")
	check(c.Sim.TickRate > 0, "sim.tick_rate must be positive, got %v", c.Sim.TickRate)
	check(c.Sim.MaxFrameTime > 0, "sim.max_frame_time must be positive")
	check(c.Sim.HitRadius > 0, "sim.hit_radius must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
