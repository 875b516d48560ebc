package editor

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/pkg/math"
)

// BendSide selects which side of the chord the arc bulges away from.
type BendSide int

const (
	BendLeft BendSide = iota
	BendRight
)

// Arc describes a bent stick in its local XY plane. The chord runs along +Y
// and is centered on the origin.
type Arc struct {
	Angle  float64 // Subtended angle, radians
	Radius float64
	Center mgl64.Vec2
	Start  mgl64.Vec2
	End    mgl64.Vec2
}

// Bend fits an arc of the stick's length whose endpoints are chord apart.
// A chord equal to the length has no bend and returns math.ErrStraightArc.
func (s *Stick) Bend(chord float64, side BendSide) (Arc, error) {
	angle, err := math.ArcAngleFromChord(chord, s.length)
	if err != nil {
		return Arc{}, fmt.Errorf("bend stick %s: %w", s.id, err)
	}
	radius, err := math.ArcRadius(s.length, angle)
	if err != nil {
		return Arc{}, fmt.Errorf("bend stick %s: %w", s.id, err)
	}

	start := mgl64.Vec2{0, -chord / 2}
	end := mgl64.Vec2{0, chord / 2}
	left, right, err := math.ArcCenters(start, end, radius)
	if err != nil {
		return Arc{}, fmt.Errorf("bend stick %s: %w", s.id, err)
	}

	center := left
	if side == BendRight {
		center = right
	}
	return Arc{Angle: angle, Radius: radius, Center: center, Start: start, End: end}, nil
}

// Points samples the arc from Start to End in n segments.
func (a Arc) Points(n int) []mgl64.Vec2 {
	if n < 1 {
		n = 1
	}
	from := a.Start.Sub(a.Center)
	to := a.End.Sub(a.Center)
	a0 := gomath.Atan2(from.Y(), from.X())
	sweep := math.WrapAngle(gomath.Atan2(to.Y(), to.X()) - a0)
	if a.Angle > gomath.Pi {
		sweep -= gomath.Copysign(2*gomath.Pi, sweep)
	}

	out := make([]mgl64.Vec2, n+1)
	for i := range out {
		t := a0 + sweep*float64(i)/float64(n)
		out[i] = a.Center.Add(mgl64.Vec2{gomath.Cos(t), gomath.Sin(t)}.Mul(a.Radius))
	}
	return out
}

// ToWorld maps a point of the stick's local arc frame into world space.
func (s *Stick) ToWorld(p mgl64.Vec2) mgl64.Vec3 {
	return s.center.Add(s.orientation.Rotate(mgl64.Vec3{p.X(), p.Y(), 0}))
}
