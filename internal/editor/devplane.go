package editor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Faultbox/stickman/internal/engine/scene"
	"github.com/Faultbox/stickman/pkg/math"
)

// DevPlane is a debug square that turns to face the camera every tick.
// It draws the plane drags are projected onto and cannot be picked.
type DevPlane struct {
	id     uuid.UUID
	view   View
	center mgl64.Vec3
	size   float64
	normal mgl64.Vec3
}

// NewDevPlane creates a plane of the given edge length centered at center.
func NewDevPlane(view View, center mgl64.Vec3, size float64) *DevPlane {
	p := &DevPlane{id: uuid.New(), view: view, center: center, size: size}
	p.Tick()
	return p
}

func (p *DevPlane) ID() uuid.UUID          { return p.id }
func (p *DevPlane) Meshes() []scene.Mesh   { return nil }
func (p *DevPlane) Normal() mgl64.Vec3     { return p.normal }
func (p *DevPlane) Center() mgl64.Vec3     { return p.center }
func (p *DevPlane) SetCenter(c mgl64.Vec3) { p.center = c }

// Tick implements scene.Ticker.
func (p *DevPlane) Tick() {
	p.normal = p.view.Direction().Mul(-1)
}

// Corners returns the square's corners in winding order.
func (p *DevPlane) Corners() [4]mgl64.Vec3 {
	rot := math.AlignY(p.normal)
	u := rot.Rotate(mgl64.Vec3{1, 0, 0}).Mul(p.size / 2)
	v := rot.Rotate(mgl64.Vec3{0, 0, 1}).Mul(p.size / 2)
	return [4]mgl64.Vec3{
		p.center.Sub(u).Sub(v),
		p.center.Add(u).Sub(v),
		p.center.Add(u).Add(v),
		p.center.Sub(u).Add(v),
	}
}

func (p *DevPlane) PointerDown(Pointer)       {}
func (p *DevPlane) PointerMove(Pointer) error { return nil }
func (p *DevPlane) PointerUp(Pointer)         {}

func (p *DevPlane) Wheel(Pointer) error {
	return fmt.Errorf("dev plane wheel: %w", ErrUnsupported)
}

func (p *DevPlane) manipulable() {}
