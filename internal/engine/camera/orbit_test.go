package camera

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/pkg/math"
)

func newTestOrbit() *Orbit {
	cam := New(mgl64.Vec3{}, mgl64.Vec3{}, DefaultLens(), 16.0/9.0)
	return NewOrbit(cam, DefaultOrbitConfig())
}

func TestNewOrbitPlacesCamera(t *testing.T) {
	o := newTestOrbit()
	if got := o.Camera().Position(); got != (mgl64.Vec3{10, 10, 20}) {
		t.Errorf("initial position = %v, want default", got)
	}
	if o.State() != StateIdle {
		t.Errorf("initial state = %v, want idle", o.State())
	}
}

func TestOrbitDragRotatesAzimuth(t *testing.T) {
	o := newTestOrbit()
	before := o.Spherical()

	o.PointerDown(input.ButtonLeft, 0)
	if o.State() != StateOrbiting {
		t.Fatalf("state = %v, want orbiting", o.State())
	}
	o.PointerMove(100, 0)

	after := o.Spherical()
	if d := math.WrapAngle(after.Phi - before.Phi - 2.0); gomath.Abs(d) > 1e-9 {
		t.Errorf("phi changed by %v, want 2.0", after.Phi-before.Phi)
	}
	if gomath.Abs(after.Theta-before.Theta) > 1e-9 {
		t.Errorf("theta changed from %v to %v", before.Theta, after.Theta)
	}
	if gomath.Abs(after.Radius-before.Radius) > 1e-9 {
		t.Errorf("radius changed from %v to %v", before.Radius, after.Radius)
	}

	pos := o.Camera().Position()
	if rt := math.ToCartesian(math.ToSpherical(pos)); !rt.ApproxEqualThreshold(pos, 1e-9) {
		t.Errorf("round trip of %v = %v", pos, rt)
	}
	if o.Camera().Target() != (mgl64.Vec3{}) {
		t.Errorf("camera re-aimed at %v, want origin", o.Camera().Target())
	}
}

func TestOrbitThetaStaysClamped(t *testing.T) {
	o := newTestOrbit()
	cfg := o.Config()
	rng := rand.New(rand.NewSource(42))

	o.PointerDown(input.ButtonLeft, 0)
	for i := 0; i < 500; i++ {
		o.PointerMove(rng.Float64()*600-300, rng.Float64()*600-300)
		theta := o.Spherical().Theta
		if theta < cfg.MinTheta-1e-9 || theta > cfg.MaxTheta()+1e-9 {
			t.Fatalf("drag %d: theta %v outside [%v, %v]", i, theta, cfg.MinTheta, cfg.MaxTheta())
		}
	}

	// Push hard against both limits.
	o.PointerMove(0, 1e6)
	if got := o.Spherical().Theta; gomath.Abs(got-cfg.MaxTheta()) > 1e-9 {
		t.Errorf("theta at floor limit = %v, want %v", got, cfg.MaxTheta())
	}
	o.PointerMove(0, -1e6)
	if got := o.Spherical().Theta; gomath.Abs(got-cfg.MinTheta) > 1e-9 {
		t.Errorf("theta at height limit = %v, want %v", got, cfg.MinTheta)
	}
}

func TestOrbitIgnoresMoveWithoutButton(t *testing.T) {
	o := newTestOrbit()
	o.PointerMove(50, 50)
	if got := o.Camera().Position(); got != (mgl64.Vec3{10, 10, 20}) {
		t.Errorf("position moved to %v without a button down", got)
	}

	o.PointerDown(input.ButtonRight, 0)
	o.PointerMove(50, 50)
	if got := o.Camera().Position(); got != (mgl64.Vec3{10, 10, 20}) {
		t.Errorf("right button drag moved the camera to %v", got)
	}
}

func TestOrbitPan(t *testing.T) {
	tests := []struct {
		name  string
		mods  input.Modifiers
		keys  []input.Key
		state State
		want  mgl64.Vec3
	}{
		{"shift modifier", input.ModShift, nil, StatePanning, mgl64.Vec3{9.8, 10, 20}},
		{"shift key", 0, []input.Key{input.KeyShift}, StatePanning, mgl64.Vec3{9.8, 10, 20}},
		{"control", input.ModCtrl, nil, StateDollying, mgl64.Vec3{10, 10, 20.1}},
		{"both", input.ModShift | input.ModCtrl, nil, StatePanning, mgl64.Vec3{9.8, 10, 20.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrbit()
			for _, k := range tt.keys {
				o.KeyDown(k)
			}
			o.PointerDown(input.ButtonLeft, tt.mods)
			if o.State() != tt.state {
				t.Fatalf("state = %v, want %v", o.State(), tt.state)
			}
			dir := o.Camera().Direction()
			o.PointerMove(10, 5)
			if got := o.Camera().Position(); !got.ApproxEqualThreshold(tt.want, 1e-12) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
			if got := o.Camera().Direction(); !got.ApproxEqualThreshold(dir, 1e-12) {
				t.Errorf("direction = %v, want %v (pan must not re-aim)", got, dir)
			}
			wantTarget := tt.want.Sub(mgl64.Vec3{10, 10, 20})
			if got := o.Camera().Target(); !got.ApproxEqualThreshold(wantTarget, 1e-12) {
				t.Errorf("target = %v, want %v", got, wantTarget)
			}
		})
	}
}

func TestOrbitAfterPanReaimsAtTarget(t *testing.T) {
	o := newTestOrbit()
	o.PointerDown(input.ButtonLeft, input.ModShift)
	o.PointerMove(200, 0)
	o.PointerUp()

	o.PointerDown(input.ButtonLeft, 0)
	o.PointerMove(1, 0)
	if got := o.Camera().Target(); got != o.Config().Target {
		t.Errorf("target after orbit = %v, want %v", got, o.Config().Target)
	}
}

func TestOrbitKeyUpClearsModifier(t *testing.T) {
	o := newTestOrbit()
	o.KeyDown(input.KeyControl)
	o.KeyUp(input.KeyControl)
	o.PointerDown(input.ButtonLeft, 0)
	if o.State() != StateOrbiting {
		t.Errorf("state = %v, want orbiting after control released", o.State())
	}
}

func TestOrbitPointerUpReturnsToIdle(t *testing.T) {
	o := newTestOrbit()
	o.KeyDown(input.KeyShift)
	o.PointerDown(input.ButtonLeft, 0)
	o.PointerUp()

	if o.State() != StateIdle {
		t.Errorf("state = %v, want idle", o.State())
	}
	o.PointerDown(input.ButtonLeft, 0)
	if o.State() != StateOrbiting {
		t.Errorf("shift should be cleared by pointer up, state = %v", o.State())
	}
}

func TestOrbitWheel(t *testing.T) {
	o := newTestOrbit()
	start := o.Camera().Position()
	dir := o.Camera().Direction()

	o.Wheel(-1)
	if got := o.Camera().Position(); !got.ApproxEqualThreshold(start.Add(dir), 1e-12) {
		t.Errorf("zoom in = %v, want %v", got, start.Add(dir))
	}

	o.Wheel(1)
	if got := o.Camera().Position(); !got.ApproxEqualThreshold(start, 1e-12) {
		t.Errorf("zoom out = %v, want %v", got, start)
	}
}

func TestOrbitWheelStopsAtGround(t *testing.T) {
	cam := New(mgl64.Vec3{}, mgl64.Vec3{}, DefaultLens(), 1)
	cfg := DefaultOrbitConfig()
	cfg.DefaultPosition = mgl64.Vec3{0, 0.5, 0.5}
	o := NewOrbit(cam, cfg)

	o.Wheel(-1)
	if got := cam.Position(); got != cfg.DefaultPosition {
		t.Errorf("camera crossed the ground plane to %v", got)
	}

	o.Wheel(1)
	if got := cam.Position(); got.Y() <= 0.5 {
		t.Errorf("zoom out should move up and back, got %v", got)
	}
}

func TestOrbitResetConverges(t *testing.T) {
	o := newTestOrbit()
	cam := o.Camera()
	cam.SetPosition(mgl64.Vec3{30, 10, 20})

	frames := ResetFrames(cam.Position(), o.Config().DefaultPosition, o.Config().ResetFramesPerUnit)
	o.Reset()
	if !o.Resetting() || o.State() != StateResetting {
		t.Fatalf("expected reset in progress, state %v", o.State())
	}

	for i := 0; i < frames; i++ {
		o.Tick()
	}

	if got := cam.Position(); got != o.Config().DefaultPosition {
		t.Errorf("position after %d ticks = %v, want exactly %v", frames, got, o.Config().DefaultPosition)
	}
	if o.Resetting() {
		t.Error("reset still in progress")
	}
	if o.ResetStepCount() != 0 {
		t.Errorf("step counter = %d, want 0", o.ResetStepCount())
	}
	if cam.Target() != o.Config().Target {
		t.Errorf("camera aimed at %v, want %v", cam.Target(), o.Config().Target)
	}
}

func TestOrbitIgnoresInputWhileResetting(t *testing.T) {
	o := newTestOrbit()
	cam := o.Camera()
	cam.SetPosition(mgl64.Vec3{30, 10, 20})
	o.Reset()

	o.PointerDown(input.ButtonLeft, 0)
	o.PointerMove(100, 100)
	o.Wheel(-1)

	if got := cam.Position(); got != (mgl64.Vec3{30, 10, 20}) {
		t.Errorf("input moved the camera during reset: %v", got)
	}
	if o.State() != StateResetting {
		t.Errorf("state = %v, want resetting", o.State())
	}
}

func TestOrbitTickWithoutResetIsNoop(t *testing.T) {
	o := newTestOrbit()
	o.Camera().SetPosition(mgl64.Vec3{1, 2, 3})
	o.Tick()
	if got := o.Camera().Position(); got != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Tick() moved the camera to %v", got)
	}
}
