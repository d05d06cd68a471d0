package model

import "math"

const (
	Pi     = math.Pi
	Pi2    = 2 * math.Pi
	HalfPi = math.Pi / 2
)

// NormalizeAngle wraps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Pi2)
	if a <= -Pi {
		a += Pi2
	} else if a > Pi {
		a -= Pi2
	}
	return a
}

// Bearing returns the angle from (fromX, fromY) to (toX, toY) relative to heading,
// normalized into (-Pi, Pi].
func Bearing(fromX, fromY, heading, toX, toY float64) float64 {
	return NormalizeAngle(math.Atan2(toY-fromY, toX-fromX) - heading)
}

func Radians(degrees float64) float64 {
	return degrees * Pi / 180
}
