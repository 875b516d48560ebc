package editor

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/engine/picking"
	"github.com/Faultbox/stickman/internal/engine/scene"
	"github.com/Faultbox/stickman/internal/logger"
)

// Dispatcher routes input events either to the manipulable under the
// pointer or to the camera.
type Dispatcher struct {
	reg    *scene.Registry
	camera *CameraTarget
	src    input.Source
	vp     picking.Viewport

	enabled    bool
	buttonDown bool
	grabbed    Manipulable
	grabHit    picking.Intersection
	lastX      float64
	lastY      float64
	hovered    uuid.UUID

	onKey func(input.Key)
}

// NewDispatcher creates an enabled dispatcher. src may be nil when events
// are fed through Handle directly.
func NewDispatcher(reg *scene.Registry, cam *CameraTarget, src input.Source, vp picking.Viewport) *Dispatcher {
	cam.Camera().SetAspect(vp.Aspect())
	return &Dispatcher{
		reg:     reg,
		camera:  cam,
		src:     src,
		vp:      vp,
		enabled: true,
	}
}

// ToggleInteractions enables or disables every pointer and key handler.
func (d *Dispatcher) ToggleInteractions(enabled bool) {
	d.enabled = enabled
	logger.Debug("interactions toggled", zap.Bool("enabled", enabled))
}

// Enabled reports whether interactions are on.
func (d *Dispatcher) Enabled() bool { return d.enabled }

// Viewport returns the current viewport.
func (d *Dispatcher) Viewport() picking.Viewport { return d.vp }

// Grabbed returns the object being dragged, if any, with the hit that
// grabbed it.
func (d *Dispatcher) Grabbed() (Manipulable, picking.Intersection, bool) {
	return d.grabbed, d.grabHit, d.grabbed != nil
}

// Hovered returns the object under the pointer as of the last move.
func (d *Dispatcher) Hovered() (uuid.UUID, bool) {
	return d.hovered, d.hovered != uuid.Nil
}

// OnKey registers a callback for key presses the dispatcher itself does not
// consume. It runs even while interactions are disabled.
func (d *Dispatcher) OnKey(fn func(input.Key)) {
	d.onKey = fn
}

// Pump collects one batch from the input source and handles it.
// Returns true if the source asked to quit.
func (d *Dispatcher) Pump() bool {
	if d.src == nil {
		return false
	}
	quit := d.src.Update()
	for _, ev := range d.src.Events() {
		d.Handle(ev)
	}
	return quit
}

// Handle routes a single event.
func (d *Dispatcher) Handle(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		d.PointerDown(ev)
	case input.EventPointerMove:
		d.PointerMove(ev)
	case input.EventPointerUp:
		d.PointerUp(ev)
	case input.EventWheel:
		d.Wheel(ev)
	case input.EventKeyDown:
		d.KeyDown(ev)
	case input.EventKeyUp:
		d.KeyUp(ev)
	case input.EventResize:
		d.Resize(ev.Width, ev.Height)
	}
}

// PointerDown grabs the nearest manipulable under the pointer, or starts a
// camera drag when there is none.
func (d *Dispatcher) PointerDown(ev input.Event) {
	if !d.enabled {
		return
	}
	d.lastX, d.lastY = ev.X, ev.Y
	d.buttonDown = true

	p := d.pointer(ev)
	if entry, hit, ok := picking.Pick(ev.X, ev.Y, d.vp, d.camera.Camera(), d.reg); ok {
		if m, ok := entry.Object.(Manipulable); ok && ev.Button == input.ButtonLeft {
			p.Hit = hit
			d.grabbed, d.grabHit = m, hit
			m.PointerDown(p)
			return
		}
	}
	d.camera.PointerDown(p)
}

// PointerMove drags the grabbed object or the camera. With no button held
// it updates which stick shows its handles.
func (d *Dispatcher) PointerMove(ev input.Event) {
	if !d.enabled {
		return
	}
	p := d.pointer(ev)
	p.DX, p.DY = ev.X-d.lastX, ev.Y-d.lastY
	d.lastX, d.lastY = ev.X, ev.Y

	if d.grabbed != nil {
		if err := d.grabbed.PointerMove(p); err != nil {
			logger.Debug("drag step rejected", zap.Stringer("id", d.grabbed.ID()), zap.Error(err))
		}
		return
	}

	d.camera.PointerMove(p)
	if !d.buttonDown {
		d.hover(ev.X, ev.Y)
	}
}

// PointerUp releases the grab or ends the camera drag.
func (d *Dispatcher) PointerUp(ev input.Event) {
	if !d.enabled {
		return
	}
	p := d.pointer(ev)
	d.buttonDown = false

	if d.grabbed != nil {
		d.grabbed.PointerUp(p)
		d.grabbed, d.grabHit = nil, picking.Intersection{}
	}
	d.camera.PointerUp(p)
}

// Wheel goes to the grabbed object if there is one, else to the camera.
func (d *Dispatcher) Wheel(ev input.Event) {
	if !d.enabled {
		return
	}
	p := d.pointer(ev)

	if d.grabbed != nil {
		if err := d.grabbed.Wheel(p); err != nil {
			if errors.Is(err, errors.ErrUnsupported) {
				logger.Debug("wheel ignored", zap.Stringer("id", d.grabbed.ID()), zap.Error(err))
				return
			}
			logger.Warn("wheel failed", zap.Stringer("id", d.grabbed.ID()), zap.Error(err))
		}
		return
	}
	if err := d.camera.Wheel(p); err != nil {
		logger.Warn("camera wheel failed", zap.Error(err))
	}
}

// KeyDown forwards modifier keys to the camera and other keys to the
// OnKey callback.
func (d *Dispatcher) KeyDown(ev input.Event) {
	if d.onKey != nil && ev.Key != input.KeyShift && ev.Key != input.KeyControl {
		d.onKey(ev.Key)
	}
	if !d.enabled {
		return
	}
	d.camera.KeyDown(ev.Key)
}

// KeyUp forwards key releases to the camera.
func (d *Dispatcher) KeyUp(ev input.Event) {
	if !d.enabled {
		return
	}
	d.camera.KeyUp(ev.Key)
}

// Resize updates the viewport and the camera aspect ratio.
func (d *Dispatcher) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.vp.Width, d.vp.Height = float64(width), float64(height)
	d.camera.Camera().SetAspect(d.vp.Aspect())
}

func (d *Dispatcher) pointer(ev input.Event) Pointer {
	cam := d.camera.Camera()
	return Pointer{
		Event: ev,
		Ray:   picking.ScreenToRay(ev.X, ev.Y, d.vp, cam),
		View:  cam,
	}
}

// hover shows handles on the stick under the pointer and hides them on
// every other stick.
func (d *Dispatcher) hover(x, y float64) {
	d.hovered = uuid.Nil
	if entry, _, ok := picking.Pick(x, y, d.vp, d.camera.Camera(), d.reg); ok {
		d.hovered = entry.ID
	}

	d.reg.Each(func(e scene.Entry) bool {
		s, ok := e.Object.(*Stick)
		if !ok {
			return true
		}
		if e.ID == d.hovered {
			s.ShowHandles()
		} else {
			s.HideHandles()
		}
		return true
	})
}
