// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/pkg/math"
)

// parallelEpsilon is the smallest |dir·normal| treated as a plane crossing.
const parallelEpsilon = 1e-9

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir mgl64.Vec3) Ray {
	n, _ := math.Normalize(dir)
	return Ray{Origin: origin, Direction: n}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is an infinite plane given by a unit normal and a point on it.
type Plane struct {
	Normal mgl64.Vec3
	Point  mgl64.Vec3
}

// NewPlane creates a plane from a normal (normalized here) and a coplanar point.
func NewPlane(normal, point mgl64.Vec3) Plane {
	n, _ := math.Normalize(normal)
	return Plane{Normal: n, Point: point}
}

// IntersectPlane returns where the ray crosses the plane.
// Rays parallel to the plane and crossings behind the origin miss.
func (r Ray) IntersectPlane(p Plane) (mgl64.Vec3, bool) {
	denom := r.Direction.Dot(p.Normal)
	if gomath.Abs(denom) < parallelEpsilon {
		return mgl64.Vec3{}, false
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = gomath.Max(tmin, t1)
		tmax = gomath.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectSphere returns the nearest non-negative distance to a sphere.
func (r Ray) IntersectSphere(center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := gomath.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectCapsule returns the nearest non-negative distance to a capsule
// (a cylinder from start to end with hemispherical caps).
func (r Ray) IntersectCapsule(start, end mgl64.Vec3, radius float64) (float64, bool) {
	best := gomath.Inf(1)

	axis := end.Sub(start)
	axisLen := axis.Len()
	if axisLen > 0 {
		if t, ok := r.intersectCylinder(start, axis.Mul(1/axisLen), axisLen, radius); ok {
			best = t
		}
	}

	for _, c := range [2]mgl64.Vec3{start, end} {
		if t, ok := r.IntersectSphere(c, radius); ok && t < best {
			best = t
		}
	}

	if gomath.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// intersectCylinder tests the open side of a finite cylinder with a unit axis.
func (r Ray) intersectCylinder(base, axis mgl64.Vec3, height, radius float64) (float64, bool) {
	oc := r.Origin.Sub(base)
	dPerp := r.Direction.Sub(axis.Mul(r.Direction.Dot(axis)))
	oPerp := oc.Sub(axis.Mul(oc.Dot(axis)))

	a := dPerp.Dot(dPerp)
	if a == 0 {
		return 0, false // Parallel to the axis: only the caps can be hit
	}
	b := oPerp.Dot(dPerp)
	c := oPerp.Dot(oPerp) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}

	sq := gomath.Sqrt(disc)
	for _, t := range [2]float64{(-b - sq) / a, (-b + sq) / a} {
		if t < 0 {
			continue
		}
		h := r.At(t).Sub(base).Dot(axis)
		if h >= 0 && h <= height {
			return t, true
		}
	}
	return 0, false
}
