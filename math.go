package auv

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// WrapAngle returns the provided heading in ]-π; π].
func WrapAngle(θ float64) float64 {
	θ = math.Mod(θ, 2*math.Pi)
	if θ <= -math.Pi {
		θ += 2 * math.Pi
	} else if θ > math.Pi {
		θ -= 2 * math.Pi
	}
	return θ
}

// vec2 returns the first two components of v as a point.
func vec2(v []float64) r2.Point {
	return r2.Point{X: v[0], Y: v[1]}
}
