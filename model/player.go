package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type Player struct {
	Position geom.Vector2
	// Angle is the heading in radians, 0 facing +x and increasing toward +y.
	Angle float64
	Lives int
	// FireCooldown counts down to the next allowed shot.
	FireCooldown float64
}

func NewPlayer(x, y, angle float64, lives int) Player {
	return Player{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    angle,
		Lives:    lives,
	}
}

func (p *Player) Pose() Pose {
	return Pose{X: p.Position.X, Y: p.Position.Y, Angle: p.Angle}
}

// Rotate turns the heading by angle and wraps it into (-Pi, Pi].
func (p *Player) Rotate(angle float64) {
	p.Angle = NormalizeAngle(p.Angle + angle)
}

// Direction returns the unit heading vector.
func (p *Player) Direction() (float64, float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Hit removes a life, never going below zero.
func (p *Player) Hit() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// Pose is a camera position and heading.
type Pose struct {
	X, Y  float64
	Angle float64
}
