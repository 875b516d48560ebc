package editor

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// StickConfig holds the dimensions and behavior shared by preset sticks.
type StickConfig struct {
	Radius              float64
	Length              float64
	Pivot               PivotMode
	HandleMagnification float64
}

// DefaultStickConfig returns the editor's stick defaults.
func DefaultStickConfig() StickConfig {
	return StickConfig{
		Radius:              0.25,
		Length:              2,
		Pivot:               PivotAroundFarPoint,
		HandleMagnification: DefaultHandleMagnification,
	}
}

// legSpread is the angle of the upper legs from vertical.
const legSpread = 30.0

// NewStick creates a vertical stick of the configured size standing on base.
func (c StickConfig) NewStick(base mgl64.Vec3) *Stick {
	return NewStick(c.Radius, base, base.Add(mgl64.Vec3{0, c.Length, 0}), c.options()...)
}

// NewStickman builds a torso with two bent legs hanging from hip.
// The returned sticks are ordered torso, left thigh, left shin, right thigh,
// right shin.
func NewStickman(hip mgl64.Vec3, cfg StickConfig) []*Stick {
	l := cfg.Length
	spread := mgl64.DegToRad(legSpread)
	dx, dy := l*gomath.Sin(spread), l*gomath.Cos(spread)

	leftKnee := hip.Add(mgl64.Vec3{-dx, -dy, 0})
	rightKnee := hip.Add(mgl64.Vec3{dx, -dy, 0})
	down := mgl64.Vec3{0, -l, 0}

	opts := cfg.options()
	return []*Stick{
		NewStick(cfg.Radius, hip, hip.Add(mgl64.Vec3{0, l, 0}), opts...),
		NewStick(cfg.Radius, hip, leftKnee, opts...),
		NewStick(cfg.Radius, leftKnee, leftKnee.Add(down), opts...),
		NewStick(cfg.Radius, hip, rightKnee, opts...),
		NewStick(cfg.Radius, rightKnee, rightKnee.Add(down), opts...),
	}
}

func (c StickConfig) options() []StickOption {
	return []StickOption{
		WithPivotMode(c.Pivot),
		WithHandleMagnification(c.HandleMagnification),
	}
}
