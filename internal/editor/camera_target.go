package editor

import (
	"github.com/google/uuid"

	"github.com/Faultbox/stickman/internal/engine/camera"
	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/engine/scene"
)

// CameraTarget lets the orbit controller receive pointer input whenever
// nothing in the scene is grabbed. It has no meshes of its own.
type CameraTarget struct {
	id    uuid.UUID
	orbit *camera.Orbit
}

// NewCameraTarget wraps an orbit controller.
func NewCameraTarget(orbit *camera.Orbit) *CameraTarget {
	return &CameraTarget{id: uuid.New(), orbit: orbit}
}

func (c *CameraTarget) ID() uuid.UUID        { return c.id }
func (c *CameraTarget) Meshes() []scene.Mesh { return nil }

// Orbit returns the wrapped controller.
func (c *CameraTarget) Orbit() *camera.Orbit { return c.orbit }

// Camera returns the controlled camera.
func (c *CameraTarget) Camera() *camera.Camera { return c.orbit.Camera() }

// Tick implements scene.Ticker.
func (c *CameraTarget) Tick() { c.orbit.Tick() }

func (c *CameraTarget) PointerDown(p Pointer) {
	c.orbit.PointerDown(p.Event.Button, p.Event.Mods)
}

func (c *CameraTarget) PointerMove(p Pointer) error {
	c.orbit.PointerMove(p.DX, p.DY)
	return nil
}

func (c *CameraTarget) PointerUp(Pointer) {
	c.orbit.PointerUp()
}

func (c *CameraTarget) Wheel(p Pointer) error {
	c.orbit.Wheel(p.Event.WheelY)
	return nil
}

func (c *CameraTarget) KeyDown(k input.Key) { c.orbit.KeyDown(k) }
func (c *CameraTarget) KeyUp(k input.Key)   { c.orbit.KeyUp(k) }

func (c *CameraTarget) manipulable() {}
