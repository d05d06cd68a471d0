package render

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// View is the camera frustum and screen the caster and projector share. Both use
// RayOffset/RayIndex so a wall column and a sprite on the same bearing always land on the
// same z-buffer slot.
type View struct {
	Width, Height int
	FOV           float64
	Rays          int
	MaxDepth      float64
	WallScale     float64
	LightFalloff  float64
}

// RayOffset returns the angle of ray i relative to the heading. Each ray sits at the
// centre of its angular bin.
func (v View) RayOffset(i int) float64 {
	return -v.FOV/2 + (float64(i)+0.5)*v.FOV/float64(v.Rays)
}

// RayIndex maps a normalized bearing to the ray whose bin contains it, clamped to a valid index.
func (v View) RayIndex(bearing float64) int {
	i := int(math.Floor((bearing + v.FOV/2) / v.FOV * float64(v.Rays)))
	return geom.ClampInt(i, 0, v.Rays-1)
}

// Column returns the screen x span [x0, x1) covered by ray i.
func (v View) Column(i int) (int, int) {
	return i * v.Width / v.Rays, (i + 1) * v.Width / v.Rays
}

// ScreenX maps a normalized bearing linearly across the screen width.
func (v View) ScreenX(bearing float64) float64 {
	return (bearing + v.FOV/2) / v.FOV * float64(v.Width)
}

// ProjectedHeight is the unclamped screen height of a wall-sized object at depth.
func (v View) ProjectedHeight(depth float64) float64 {
	return v.WallScale * float64(v.Height) / math.Max(depth, Epsilon)
}

// WallHeight is the projected wall height at depth, clamped to the screen.
func (v View) WallHeight(depth float64) float64 {
	return math.Min(v.ProjectedHeight(depth), float64(v.Height))
}

// Shade returns the light intensity in (0, 1] at depth. It never increases with distance.
func (v View) Shade(depth float64) float64 {
	return 1 / (1 + v.LightFalloff*math.Max(depth, 0))
}
