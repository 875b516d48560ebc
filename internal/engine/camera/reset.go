package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// ResetFrames returns how many ticks a reset from current to target is
// scheduled to take: floor(distance × framesPerUnit).
func ResetFrames(current, target mgl64.Vec3, framesPerUnit float64) int {
	return int(gomath.Floor(current.Sub(target).Len() * framesPerUnit))
}

// ResetStep advances a reset animation by one tick.
//
// The frame budget is recomputed from the remaining distance every tick and
// each tick removes step/frames of the residual, so the camera eases out.
// Step 0 does not move. Once step reaches the budget the result snaps
// exactly to target and done is true.
func ResetStep(current, target mgl64.Vec3, step int, framesPerUnit float64) (next mgl64.Vec3, done bool) {
	frames := ResetFrames(current, target, framesPerUnit)
	if step >= frames {
		return target, true
	}
	if step == 0 {
		return current, false
	}

	residual := current.Sub(target)
	return current.Sub(residual.Mul(float64(step) / float64(frames))), false
}
