package math

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// Up is the canonical axis sticks are authored along.
var Up = mgl64.Vec3{0, 1, 0}

// Midpoint returns (a+b)/2.
func Midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b).Mul(0.5)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of v and false when v has zero length.
func Normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// AlignY returns the rotation taking +Y onto dir.
// A zero direction yields the identity rotation.
func AlignY(dir mgl64.Vec3) mgl64.Quat {
	n, ok := Normalize(dir)
	if !ok {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(Up, n)
}
