// Package editor implements the interactive manipulation layer: the objects
// a user can grab in the scene and the dispatcher that routes pointer input
// to them or to the camera.
package editor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/engine/picking"
	"github.com/Faultbox/stickman/internal/engine/scene"
)

// ErrUnsupported is returned by manipulables for interactions they do not
// implement. It matches errors.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("interaction not supported: %w", errors.ErrUnsupported)

// View is the camera state a drag needs.
type View interface {
	Position() mgl64.Vec3
	Direction() mgl64.Vec3
}

// Pointer carries everything a manipulable may need about one pointer event.
type Pointer struct {
	Event  input.Event
	DX, DY float64 // Movement since the previous pointer event, pixels
	Ray    picking.Ray
	Hit    picking.Intersection // Set on the grabbing PointerDown
	View   View
}

// Manipulable is a scene object that receives pointer interaction.
// The set of implementations is closed: *Stick, *CameraTarget and *DevPlane.
type Manipulable interface {
	scene.Object

	PointerDown(p Pointer)
	PointerMove(p Pointer) error
	PointerUp(p Pointer)
	Wheel(p Pointer) error

	manipulable()
}

var (
	_ Manipulable = (*Stick)(nil)
	_ Manipulable = (*CameraTarget)(nil)
	_ Manipulable = (*DevPlane)(nil)
)
