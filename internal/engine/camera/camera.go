// Package camera provides the editor's perspective camera and its orbit
// controller.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/pkg/math"
)

// Lens holds projection settings.
type Lens struct {
	FOV  float64 // Vertical field of view, degrees
	Near float64
	Far  float64
}

// DefaultLens returns the editor's default projection.
func DefaultLens() Lens {
	return Lens{FOV: 75, Near: 0.1, Far: 1000}
}

// Camera is a perspective camera aimed at a target point.
type Camera struct {
	position mgl64.Vec3
	target   mgl64.Vec3
	up       mgl64.Vec3
	lens     Lens
	aspect   float64
}

// New creates a camera at position looking at target.
func New(position, target mgl64.Vec3, lens Lens, aspect float64) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		position: position,
		target:   target,
		up:       math.Up,
		lens:     lens,
		aspect:   aspect,
	}
}

// Position returns the camera position in world space.
func (c *Camera) Position() mgl64.Vec3 {
	return c.position
}

// SetPosition moves the camera without re-aiming it.
func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.position = p
}

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl64.Vec3 {
	return c.target
}

// LookAt re-aims the camera at target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.target = target
}

// Direction returns the unit world-space view direction.
func (c *Camera) Direction() mgl64.Vec3 {
	d, ok := math.Normalize(c.target.Sub(c.position))
	if !ok {
		return mgl64.Vec3{0, 0, -1}
	}
	return d
}

// Aspect returns the viewport aspect ratio.
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// SetAspect updates the aspect ratio after a viewport resize.
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.position, c.target, c.up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.lens.FOV), c.aspect, c.lens.Near, c.lens.Far)
}

// ViewProjection returns projection × view.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
