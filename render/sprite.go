package render

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"

	"entropia/model"
)

// Kind tags what a draw command or sprite represents.
type Kind int

const (
	KindCeiling Kind = iota
	KindFloor
	KindWall
	KindEnemy
	KindPlayerShot
	KindEnemyShot
	KindPickup
)

func (k Kind) String() string {
	switch k {
	case KindCeiling:
		return "ceiling"
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindEnemy:
		return "enemy"
	case KindPlayerShot:
		return "player-shot"
	case KindEnemyShot:
		return "enemy-shot"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Anchor is where a billboard sits relative to the wall slice at its depth.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorCenter
	AnchorTop
)

// Class describes how a billboard of one kind is sized and anchored.
type Class struct {
	Kind Kind
	// Scale is the sprite height in wall heights.
	Scale float64
	// Aspect is width over height.
	Aspect float64
	// MinSize is the smallest edge in pixels, so distant small sprites stay visible.
	MinSize float64
	Anchor  Anchor
	Color   color.RGBA
}

var (
	EnemyClass = Class{
		Kind:   KindEnemy,
		Scale:  0.75,
		Aspect: 0.5,
		Anchor: AnchorCenter,
		Color:  colornames.Crimson,
	}
	PlayerShotClass = Class{
		Kind:    KindPlayerShot,
		Scale:   0.08,
		Aspect:  1,
		MinSize: 3,
		Anchor:  AnchorCenter,
		Color:   colornames.Orange,
	}
	EnemyShotClass = Class{
		Kind:    KindEnemyShot,
		Scale:   0.08,
		Aspect:  1,
		MinSize: 3,
		Anchor:  AnchorCenter,
		Color:   colornames.Yellow,
	}
	PickupClass = Class{
		Kind:    KindPickup,
		Scale:   0.3,
		Aspect:  1,
		MinSize: 4,
		Anchor:  AnchorBottom,
		Color:   colornames.Gold,
	}
)

// Sprite is a billboard projected to screen space.
type Sprite struct {
	Kind  Kind
	ID    model.Handle
	X, Y  float64
	W, H  float64
	Depth float64
	// Ray is the z-buffer slot the sprite was tested against.
	Ray   int
	Color color.RGBA
}

// Projector maps world points to screen billboards and tests them against a z-buffer.
type Projector struct {
	View View
}

// Project projects the point (x, y) seen from pose. It reports false when the point is
// outside the field of view, degenerate, or behind the wall on its ray.
func (p Projector) Project(pose model.Pose, x, y float64, class Class, zbuf ZBuffer) (Sprite, bool) {
	v := p.View
	if len(zbuf) != v.Rays {
		return Sprite{}, false
	}

	dx, dy := x-pose.X, y-pose.Y
	dist := math.Hypot(dx, dy)
	if dist < Epsilon {
		return Sprite{}, false
	}

	bearing := model.NormalizeAngle(math.Atan2(dy, dx) - pose.Angle)
	if math.Abs(bearing) > v.FOV/2 {
		return Sprite{}, false
	}

	depth := dist * math.Cos(bearing)
	if depth < Epsilon {
		return Sprite{}, false
	}

	ray := v.RayIndex(bearing)
	if depth >= zbuf[ray] {
		return Sprite{}, false
	}

	h := math.Max(class.Scale*v.ProjectedHeight(depth), class.MinSize)
	w := math.Max(h*class.Aspect, class.MinSize)
	cx := v.ScreenX(bearing)

	return Sprite{
		Kind:  class.Kind,
		X:     cx - w/2,
		Y:     p.anchorY(depth, h, class.Anchor),
		W:     w,
		H:     h,
		Depth: depth,
		Ray:   ray,
		Color: shadeColor(class.Color, v.Shade(depth)),
	}, true
}

// anchorY places a sprite of height h vertically relative to the wall slice at depth.
func (p Projector) anchorY(depth, h float64, anchor Anchor) float64 {
	horizon := float64(p.View.Height) / 2
	half := p.View.ProjectedHeight(depth) / 2
	switch anchor {
	case AnchorBottom:
		return horizon + half - h
	case AnchorTop:
		return horizon - half
	default:
		return horizon - h/2
	}
}

// shadeColor scales the rgb channels of c by intensity, keeping alpha.
func shadeColor(c color.RGBA, intensity float64) color.RGBA {
	intensity = geom.Clamp(intensity, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: c.A,
	}
}
