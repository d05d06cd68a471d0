package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Handle identifies an entity for the lifetime of a session. Handles are never reused.
type Handle uint64

type Entity struct {
	ID       Handle
	Position geom.Vector2
}

func (e *Entity) Pos() (float64, float64) {
	return e.Position.X, e.Position.Y
}

// DistanceTo returns the euclidean distance from the entity to (x, y).
func (e *Entity) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-e.Position.X, y-e.Position.Y)
}

// -- enemy

type Enemy struct {
	Entity
	// VisionTimer accumulates seconds of unbroken line of sight to the player.
	VisionTimer float64
}

func NewEnemy(x, y float64) Enemy {
	return Enemy{Entity: Entity{Position: geom.Vector2{X: x, Y: y}}}
}

// -- projectile

type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// ProjectileState is the projectile lifecycle. Every state other than Active is terminal.
type ProjectileState int

const (
	Active ProjectileState = iota
	WallImpact
	OutOfBounds
	EntityHit
)

func (s ProjectileState) String() string {
	switch s {
	case WallImpact:
		return "wall-impact"
	case OutOfBounds:
		return "out-of-bounds"
	case EntityHit:
		return "entity-hit"
	default:
		return "active"
	}
}

type Projectile struct {
	Entity
	Angle float64
	Speed float64
	Owner Owner
	State ProjectileState
}

func NewProjectile(x, y, angle, speed float64, owner Owner) Projectile {
	return Projectile{
		Entity: Entity{Position: geom.Vector2{X: x, Y: y}},
		Angle:  angle,
		Speed:  speed,
		Owner:  owner,
		State:  Active,
	}
}

// Advance moves the projectile along its direction for dt seconds.
func (p *Projectile) Advance(dt float64) {
	p.Position.X += math.Cos(p.Angle) * p.Speed * dt
	p.Position.Y += math.Sin(p.Angle) * p.Speed * dt
}

// -- pickup

// Pickup is the session objective. The player wins by entering its half-size box.
type Pickup struct {
	Entity
	Size float64
}

func NewPickup(x, y, size float64) *Pickup {
	return &Pickup{Entity: Entity{Position: geom.Vector2{X: x, Y: y}}, Size: size}
}

// Contains reports whether (x, y) lies within the pickup's half-size bounding box.
func (p *Pickup) Contains(x, y float64) bool {
	half := p.Size / 2
	return math.Abs(x-p.Position.X) <= half && math.Abs(y-p.Position.Y) <= half
}
