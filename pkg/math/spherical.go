// Package math provides the geometry helpers used by the manipulation engine.
//
// World space is Y-up. Spherical coordinates treat world up as the polar
// axis, so conversions remap (x, y, z) to (x, -z, y) before applying the
// textbook formulas.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spherical is a point in spherical coordinates.
type Spherical struct {
	Radius float64 // Distance from the origin
	Theta  float64 // Polar angle from world up, [0, π]
	Phi    float64 // Azimuth around world up from +X, (-π, π]
}

// ToSpherical converts a world-space vector to spherical coordinates.
// On the polar axis (and at the origin) Phi is 0.
func ToSpherical(v mgl64.Vec3) Spherical {
	x, y, z := v[0], -v[2], v[1]
	horizontal := math.Hypot(x, y)

	s := Spherical{Radius: math.Sqrt(x*x + y*y + z*z)}

	switch {
	case horizontal == 0 && z < 0:
		s.Theta = math.Pi
	case horizontal == 0:
		s.Theta = 0
	case z == 0:
		s.Theta = math.Pi / 2
	default:
		s.Theta = math.Atan2(horizontal, z)
	}

	if horizontal != 0 {
		s.Phi = WrapAngle(math.Atan2(y, x))
	}
	return s
}

// ToCartesian converts spherical coordinates back to a world-space vector.
func ToCartesian(s Spherical) mgl64.Vec3 {
	sinTheta, cosTheta := math.Sincos(s.Theta)
	sinPhi, cosPhi := math.Sincos(s.Phi)

	horizontal := s.Radius * sinTheta
	x := horizontal * cosPhi
	y := horizontal * sinPhi
	z := s.Radius * cosTheta

	return mgl64.Vec3{x, z, -y}
}

// WrapAngle folds an angle in radians into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
