package picking

import "github.com/go-gl/mathgl/mgl64"

// Sphere is a pickable sphere.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectRay implements scene.Shape.
func (s Sphere) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	return Ray{Origin: origin, Direction: dir}.IntersectSphere(s.Center, s.Radius)
}

// Capsule is a pickable cylinder with rounded ends.
type Capsule struct {
	Start, End mgl64.Vec3
	Radius     float64
}

// IntersectRay implements scene.Shape.
func (c Capsule) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	return Ray{Origin: origin, Direction: dir}.IntersectCapsule(c.Start, c.End, c.Radius)
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b mgl64.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	for axis := 0; axis < 3; axis++ {
		if box.Min[axis] > box.Max[axis] {
			box.Min[axis], box.Max[axis] = box.Max[axis], box.Min[axis]
		}
	}
	return box
}

// Expand grows the box by d on every side.
func (b AABB) Expand(d float64) AABB {
	pad := mgl64.Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// IntersectRay implements scene.Shape.
func (b AABB) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	return Ray{Origin: origin, Direction: dir}.IntersectAABB(b)
}
