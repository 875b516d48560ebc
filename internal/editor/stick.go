package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/engine/picking"
	"github.com/Faultbox/stickman/internal/engine/scene"
	"github.com/Faultbox/stickman/internal/logger"
	"github.com/Faultbox/stickman/pkg/math"
)

// Stick drag errors. The stick keeps its last valid pose when a drag fails.
var (
	ErrNoPlaneHit     = errors.New("pointer ray does not cross the drag plane")
	ErrDegenerateDrag = errors.New("drag anchor coincides with the pivot")
)

const (
	// handleRadiusScale is the authored handle radius relative to the stick radius.
	handleRadiusScale = 0.1

	// DefaultHandleMagnification is the handle scale while handles are shown.
	DefaultHandleMagnification = 11.0
)

// PivotMode selects the point that stays fixed while a rotate handle is dragged.
type PivotMode int

const (
	// PivotAroundFarPoint keeps the opposite endpoint fixed.
	PivotAroundFarPoint PivotMode = iota
	// PivotAroundCenter keeps the midpoint fixed.
	PivotAroundCenter
)

func (m PivotMode) String() string {
	switch m {
	case PivotAroundFarPoint:
		return "far_point"
	case PivotAroundCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParsePivotMode parses the names produced by PivotMode.String.
func ParsePivotMode(s string) (PivotMode, error) {
	switch strings.ToLower(s) {
	case "far_point", "far":
		return PivotAroundFarPoint, nil
	case "center", "centre":
		return PivotAroundCenter, nil
	default:
		return 0, fmt.Errorf("unknown pivot mode %q", s)
	}
}

// HandleKind identifies a stick handle.
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleMove
	HandleRotate
)

// Handle is a handle on a stick. For rotate handles Index is the endpoint
// the handle sits on: 0 for start, 1 for end.
type Handle struct {
	Kind  HandleKind
	Index int
}

type rotateHandle struct {
	id       uuid.UUID
	endpoint int
}

type dragState struct {
	plane  picking.Plane
	offset mgl64.Vec3 // handle position − hit point
	anchor mgl64.Vec3 // where the grabbed handle should be
}

// Stick is a capsule-shaped segment with a move handle at its midpoint and
// rotate handles on its endpoints.
type Stick struct {
	id     uuid.UUID
	radius float64
	length float64

	start, end  mgl64.Vec3
	center      mgl64.Vec3
	orientation mgl64.Quat
	pivot       PivotMode

	bodyID  uuid.UUID
	moveID  uuid.UUID
	rotates []rotateHandle

	magnification float64
	handleScale   float64
	shown         bool

	selected Handle
	drag     dragState
}

// StickOption customizes a new stick.
type StickOption func(*Stick)

// WithPivotMode sets the initial pivot mode.
func WithPivotMode(m PivotMode) StickOption {
	return func(s *Stick) { s.pivot = m }
}

// WithSingleRotateHandle keeps only the rotate handle on the end point.
func WithSingleRotateHandle() StickOption {
	return func(s *Stick) { s.rotates = s.rotates[1:] }
}

// WithHandleMagnification sets the handle scale used while handles are shown.
func WithHandleMagnification(f float64) StickOption {
	return func(s *Stick) {
		if f > 0 {
			s.magnification = f
		}
	}
}

// NewStick creates a stick between two world-space points. Its length is
// fixed here; rotations preserve it.
func NewStick(radius float64, start, end mgl64.Vec3, opts ...StickOption) *Stick {
	s := &Stick{
		id:            uuid.New(),
		radius:        radius,
		length:        start.Sub(end).Len(),
		start:         start,
		end:           end,
		bodyID:        uuid.New(),
		moveID:        uuid.New(),
		rotates:       []rotateHandle{{id: uuid.New(), endpoint: 0}, {id: uuid.New(), endpoint: 1}},
		magnification: DefaultHandleMagnification,
		handleScale:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.place()
	return s
}

// ID implements scene.Object.
func (s *Stick) ID() uuid.UUID { return s.id }

// Meshes implements scene.Object: the body and every handle.
func (s *Stick) Meshes() []scene.Mesh {
	hr := s.HandleRadius()
	meshes := make([]scene.Mesh, 0, 2+len(s.rotates))
	meshes = append(meshes,
		scene.Mesh{ID: s.bodyID, Shape: picking.Capsule{Start: s.start, End: s.end, Radius: s.radius}},
		scene.Mesh{ID: s.moveID, Shape: picking.Sphere{Center: s.center, Radius: hr}},
	)
	for _, r := range s.rotates {
		meshes = append(meshes, scene.Mesh{ID: r.id, Shape: picking.Sphere{Center: s.endpoint(r.endpoint), Radius: hr}})
	}
	return meshes
}

func (s *Stick) Start() mgl64.Vec3       { return s.start }
func (s *Stick) End() mgl64.Vec3         { return s.end }
func (s *Stick) Center() mgl64.Vec3      { return s.center }
func (s *Stick) Orientation() mgl64.Quat { return s.orientation }
func (s *Stick) Length() float64         { return s.length }
func (s *Stick) Radius() float64         { return s.radius }
func (s *Stick) PivotMode() PivotMode    { return s.pivot }
func (s *Stick) Selection() Handle       { return s.selected }
func (s *Stick) HandlesShown() bool      { return s.shown }

// Bounds returns the axis-aligned box around the stick body.
func (s *Stick) Bounds() picking.AABB {
	return picking.NewAABB(s.start, s.end).Expand(s.radius)
}

// SetPivotMode changes the rotation pivot for subsequent drags.
func (s *Stick) SetPivotMode(m PivotMode) {
	s.pivot = m
}

// HandleRadius returns the current handle radius in world units.
func (s *Stick) HandleRadius() float64 {
	return s.radius * handleRadiusScale * s.handleScale
}

// RotateHandles returns the endpoints that carry rotate handles.
func (s *Stick) RotateHandles() []Handle {
	out := make([]Handle, len(s.rotates))
	for i, r := range s.rotates {
		out[i] = Handle{Kind: HandleRotate, Index: r.endpoint}
	}
	return out
}

// PickHandle classifies a hit mesh.
func (s *Stick) PickHandle(meshID uuid.UUID) Handle {
	if meshID == s.moveID {
		return Handle{Kind: HandleMove}
	}
	for _, r := range s.rotates {
		if r.id == meshID {
			return Handle{Kind: HandleRotate, Index: r.endpoint}
		}
	}
	return Handle{Kind: HandleNone}
}

// HandlePosition returns the world position of a handle.
func (s *Stick) HandlePosition(h Handle) mgl64.Vec3 {
	if h.Kind == HandleRotate {
		return s.endpoint(h.Index)
	}
	return s.center
}

// OnGrab starts a drag from a pick hit. The drag plane faces the camera and
// passes through the hit point.
func (s *Stick) OnGrab(view View, hit picking.Intersection) {
	s.selected = s.PickHandle(hit.Mesh)
	s.drag = dragState{
		plane:  picking.NewPlane(view.Direction(), hit.Point),
		offset: s.HandlePosition(s.selected).Sub(hit.Point),
	}
	s.drag.anchor = hit.Point.Add(s.drag.offset)

	logger.Debug("stick grabbed",
		zap.Stringer("id", s.id),
		zap.Int("handle", int(s.selected.Kind)),
		zap.Int("index", s.selected.Index),
	)
}

// OnDrag moves the grabbed handle to follow the ray. On error the stick is
// left unchanged.
func (s *Stick) OnDrag(ray picking.Ray) error {
	if s.selected.Kind == HandleNone {
		return nil
	}

	p, ok := ray.IntersectPlane(s.drag.plane)
	if !ok {
		return ErrNoPlaneHit
	}
	anchor := p.Add(s.drag.offset)

	switch s.selected.Kind {
	case HandleMove:
		delta := anchor.Sub(s.center)
		s.start = s.start.Add(delta)
		s.end = s.end.Add(delta)
		s.center = s.center.Add(delta)
	case HandleRotate:
		if err := s.rotate(anchor, s.selected.Index); err != nil {
			return err
		}
	}

	s.drag.anchor = anchor
	s.orientation = math.AlignY(s.end.Sub(s.start))
	return nil
}

// OnRelease ends the drag.
func (s *Stick) OnRelease() {
	s.selected = Handle{}
}

// ShowHandles enlarges the handles so they can be grabbed.
func (s *Stick) ShowHandles() {
	if s.shown {
		return
	}
	s.handleScale = s.magnification
	s.shown = true
}

// HideHandles returns the handles to their authored size.
func (s *Stick) HideHandles() {
	if !s.shown {
		return
	}
	s.handleScale = 1
	s.shown = false
}

// PointerDown implements Manipulable.
func (s *Stick) PointerDown(p Pointer) {
	s.OnGrab(p.View, p.Hit)
}

// PointerMove implements Manipulable.
func (s *Stick) PointerMove(p Pointer) error {
	return s.OnDrag(p.Ray)
}

// PointerUp implements Manipulable.
func (s *Stick) PointerUp(Pointer) {
	s.OnRelease()
}

// OnWheel always fails: sticks cannot be resized with the wheel.
func (s *Stick) OnWheel(delta float64) error {
	return fmt.Errorf("stick wheel %g: %w", delta, ErrUnsupported)
}

// Wheel implements Manipulable.
func (s *Stick) Wheel(p Pointer) error {
	return s.OnWheel(p.Event.WheelY)
}

func (s *Stick) manipulable() {}

// rotate swings the grabbed endpoint toward anchor around the pivot.
func (s *Stick) rotate(anchor mgl64.Vec3, endpoint int) error {
	switch s.pivot {
	case PivotAroundCenter:
		dir, ok := math.Normalize(anchor.Sub(s.center))
		if !ok {
			return ErrDegenerateDrag
		}
		half := dir.Mul(s.length / 2)
		grabbed, other := s.center.Add(half), s.center.Sub(half)
		if endpoint == 0 {
			s.start, s.end = grabbed, other
		} else {
			s.start, s.end = other, grabbed
		}

	default:
		fixed := s.endpoint(1 - endpoint)
		dir, ok := math.Normalize(anchor.Sub(fixed))
		if !ok {
			return ErrDegenerateDrag
		}
		moved := fixed.Add(dir.Mul(s.length))
		if endpoint == 0 {
			s.start = moved
		} else {
			s.end = moved
		}
		s.center = math.Midpoint(s.start, s.end)
	}
	return nil
}

func (s *Stick) endpoint(i int) mgl64.Vec3 {
	if i == 0 {
		return s.start
	}
	return s.end
}

// place derives the assembly transform from the endpoints.
func (s *Stick) place() {
	s.center = math.Midpoint(s.start, s.end)
	s.orientation = math.AlignY(s.end.Sub(s.start))
}
