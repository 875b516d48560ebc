package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/logger"
	"github.com/Faultbox/stickman/pkg/math"
)

// State is the orbit controller's interaction mode.
type State int

const (
	StateIdle State = iota
	StatePanning
	StateOrbiting
	StateDollying
	StateResetting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanning:
		return "panning"
	case StateOrbiting:
		return "orbiting"
	case StateDollying:
		return "dollying"
	case StateResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// OrbitConfig holds orbit controller settings.
type OrbitConfig struct {
	DefaultPosition mgl64.Vec3
	Target          mgl64.Vec3

	// Radians per pixel of pointer movement, also world units per pixel when panning.
	Sensitivity float64

	// Polar angle limits: theta stays in [MinTheta, π/2 − CeilingMargin].
	MinTheta      float64
	CeilingMargin float64

	// Reset animation length in ticks per world unit of distance.
	ResetFramesPerUnit float64
}

// DefaultOrbitConfig returns the editor's default orbit settings.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		DefaultPosition:    mgl64.Vec3{10, 10, 20},
		Target:             mgl64.Vec3{0, 0, 0},
		Sensitivity:        0.02,
		MinTheta:           1e-3,
		CeilingMargin:      0.04,
		ResetFramesPerUnit: 5,
	}
}

// MaxTheta returns the polar angle ceiling.
func (c OrbitConfig) MaxTheta() float64 {
	return gomath.Pi/2 - c.CeilingMargin
}

// Orbit drives a camera around a fixed look-at target from pointer input.
type Orbit struct {
	cam   *Camera
	cfg   OrbitConfig
	state State

	buttonDown bool
	shiftHeld  bool
	ctrlHeld   bool

	resetting bool
	resetStep int
}

// NewOrbit places cam at the configured default position aimed at the target.
func NewOrbit(cam *Camera, cfg OrbitConfig) *Orbit {
	cam.SetPosition(cfg.DefaultPosition)
	cam.LookAt(cfg.Target)
	return &Orbit{cam: cam, cfg: cfg}
}

// Camera returns the controlled camera.
func (o *Orbit) Camera() *Camera {
	return o.cam
}

// Config returns the controller settings.
func (o *Orbit) Config() OrbitConfig {
	return o.cfg
}

// State returns the current interaction mode.
func (o *Orbit) State() State {
	if o.resetting {
		return StateResetting
	}
	return o.state
}

// Resetting reports whether the reset animation is running.
func (o *Orbit) Resetting() bool {
	return o.resetting
}

// ResetStepCount returns the number of reset ticks taken so far.
func (o *Orbit) ResetStepCount() int {
	return o.resetStep
}

// Spherical returns the camera position relative to the target.
func (o *Orbit) Spherical() math.Spherical {
	return math.ToSpherical(o.cam.Position().Sub(o.cfg.Target))
}

// KeyDown records held modifier keys.
func (o *Orbit) KeyDown(k input.Key) {
	switch k {
	case input.KeyShift:
		o.shiftHeld = true
	case input.KeyControl:
		o.ctrlHeld = true
	}
}

// KeyUp releases held modifier keys.
func (o *Orbit) KeyUp(k input.Key) {
	switch k {
	case input.KeyShift:
		o.shiftHeld = false
	case input.KeyControl:
		o.ctrlHeld = false
	}
}

// PointerDown starts an orbit, pan or dolly drag. Only the left button is
// recognized, and nothing starts while a reset is running.
func (o *Orbit) PointerDown(b input.Button, mods input.Modifiers) {
	if o.resetting || b != input.ButtonLeft {
		return
	}

	o.buttonDown = true
	o.shiftHeld = o.shiftHeld || mods.Has(input.ModShift)
	o.ctrlHeld = o.ctrlHeld || mods.Has(input.ModCtrl)

	switch {
	case o.shiftHeld:
		o.state = StatePanning
	case o.ctrlHeld:
		o.state = StateDollying
	default:
		o.state = StateOrbiting
	}
}

// PointerMove applies a pointer delta in pixels to the active drag.
func (o *Orbit) PointerMove(dx, dy float64) {
	if o.resetting || !o.buttonDown {
		return
	}

	switch o.state {
	case StateOrbiting:
		o.orbit(dx, dy)
	case StatePanning, StateDollying:
		o.pan(dx, dy)
	}
}

// PointerUp ends the drag and clears modifiers.
func (o *Orbit) PointerUp() {
	o.buttonDown = false
	o.shiftHeld = false
	o.ctrlHeld = false
	o.state = StateIdle
}

// Wheel moves the camera one unit along its view direction, backwards when
// deltaY is positive. The camera never crosses the ground plane from above.
func (o *Orbit) Wheel(deltaY float64) {
	if o.resetting || deltaY == 0 {
		return
	}

	step := o.cam.Direction()
	if deltaY > 0 {
		step = step.Mul(-1)
	}

	pos := o.cam.Position()
	if pos.Y() >= 0 && pos.Y()+step.Y() < 0 {
		logger.Debug("camera wheel blocked at ground plane", zap.Float64("y", pos.Y()))
		return
	}
	o.cam.SetPosition(pos.Add(step))
}

// Reset starts animating the camera back to its default position.
func (o *Orbit) Reset() {
	if o.resetting {
		return
	}
	o.resetting = true
	o.resetStep = 0
	o.buttonDown = false
	o.state = StateIdle

	logger.Debug("camera reset started",
		zap.Int("frames", ResetFrames(o.cam.Position(), o.cfg.DefaultPosition, o.cfg.ResetFramesPerUnit)),
	)
}

// Tick advances the reset animation. It is a no-op when no reset is running.
func (o *Orbit) Tick() {
	if !o.resetting {
		return
	}

	next, done := ResetStep(o.cam.Position(), o.cfg.DefaultPosition, o.resetStep, o.cfg.ResetFramesPerUnit)
	o.cam.SetPosition(next)
	o.cam.LookAt(o.cfg.Target)

	if done {
		o.resetStep = 0
		o.resetting = false
		logger.Debug("camera reset finished")
		return
	}
	o.resetStep++
}

func (o *Orbit) orbit(dx, dy float64) {
	s := o.Spherical()
	s.Phi = math.WrapAngle(s.Phi + dx*o.cfg.Sensitivity)
	s.Theta = math.Clamp(s.Theta+dy*o.cfg.Sensitivity, o.cfg.MinTheta, o.cfg.MaxTheta())

	o.cam.SetPosition(math.ToCartesian(s).Add(o.cfg.Target))
	o.cam.LookAt(o.cfg.Target)
}

// pan slides the camera and its look-at point along world axes, keeping
// the view direction. It tracks the pointer exactly only while the camera
// faces down -Z. The next orbit step re-aims at the configured target.
func (o *Orbit) pan(dx, dy float64) {
	var delta mgl64.Vec3
	if o.shiftHeld {
		delta[0] = -dx * o.cfg.Sensitivity
	}
	if o.ctrlHeld {
		delta[2] = dy * o.cfg.Sensitivity
	}
	o.cam.SetPosition(o.cam.Position().Add(delta))
	o.cam.LookAt(o.cam.Target().Add(delta))
}
