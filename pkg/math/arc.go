package math

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Arc-fit errors.
var (
	ErrInvalidArc      = errors.New("arc length must be positive and chord length non-negative")
	ErrOverCompressed  = errors.New("chord length exceeds arc length")
	ErrStraightArc     = errors.New("arc angle is zero")
	ErrDegenerateChord = errors.New("arc endpoints coincide")
	ErrNoCircle        = errors.New("no circle of that radius passes through both points")
)

// ArcAngleFromChord returns the angle subtended by a circular arc of the given
// length whose endpoints are chordLength apart.
// Uses the Taylor approximation sqrt(24·(1 − chord/arc)), which loses accuracy
// for large bend angles.
func ArcAngleFromChord(chordLength, arcLength float64) (float64, error) {
	if arcLength <= 0 || chordLength < 0 {
		return 0, fmt.Errorf("chord %g, arc %g: %w", chordLength, arcLength, ErrInvalidArc)
	}

	radicand := 24 * (1 - chordLength/arcLength)
	if radicand < 0 {
		return 0, fmt.Errorf("chord %g, arc %g: %w", chordLength, arcLength, ErrOverCompressed)
	}
	return math.Sqrt(radicand), nil
}

// ArcRadius returns the radius of an arc with the given length and angle.
func ArcRadius(arcLength, arcAngle float64) (float64, error) {
	if arcAngle == 0 {
		return 0, ErrStraightArc
	}
	return arcLength / arcAngle, nil
}

// ArcCenters returns both centers of the circles of the given radius passing
// through start and end. The first center lies to the left of start→end,
// the second to the right; they are mirror images across the chord.
func ArcCenters(start, end mgl64.Vec2, radius float64) (mgl64.Vec2, mgl64.Vec2, error) {
	chord := end.Sub(start)
	d := chord.Len()
	if d == 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}, ErrDegenerateChord
	}

	half := d / 2
	discriminant := radius*radius - half*half
	if radius <= 0 || discriminant < 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}, fmt.Errorf("radius %g, chord %g: %w", radius, d, ErrNoCircle)
	}

	h := math.Sqrt(discriminant)
	mid := start.Add(end).Mul(0.5)
	left := mgl64.Vec2{-chord[1] / d, chord[0] / d}

	return mid.Add(left.Mul(h)), mid.Sub(left.Mul(h)), nil
}
