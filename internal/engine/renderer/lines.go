package renderer

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/pkg/math"
)

// Color is an RGB color in [0, 1].
type Color [3]float32

// Common editor colors.
var (
	ColorGrid     = Color{0.3, 0.3, 0.35}
	ColorAxisX    = Color{0.8, 0.25, 0.25}
	ColorAxisZ    = Color{0.25, 0.4, 0.8}
	ColorStick    = Color{0.9, 0.9, 0.9}
	ColorMove     = Color{0.95, 0.75, 0.2}
	ColorRotate   = Color{0.3, 0.85, 0.45}
	ColorSelected = Color{1, 0.4, 0.9}
	ColorDevPlane = Color{0.5, 0.5, 0.6}
	ColorBend     = Color{0.4, 0.7, 1}
)

// floatsPerVertex is position (3) + color (3).
const floatsPerVertex = 6

// Lines accumulates line-list vertices for one frame.
type Lines struct {
	verts []float32
}

// Reset empties the batch, keeping its storage.
func (l *Lines) Reset() {
	l.verts = l.verts[:0]
}

// Len returns the number of vertices.
func (l *Lines) Len() int {
	return len(l.verts) / floatsPerVertex
}

// Vertices returns the interleaved vertex data.
func (l *Lines) Vertices() []float32 {
	return l.verts
}

// Line adds a segment.
func (l *Lines) Line(a, b mgl64.Vec3, c Color) {
	l.vertex(a, c)
	l.vertex(b, c)
}

// Loop adds a closed polyline.
func (l *Lines) Loop(points []mgl64.Vec3, c Color) {
	for i := range points {
		l.Line(points[i], points[(i+1)%len(points)], c)
	}
}

// Grid adds a square grid on the ground plane (y = 0) with half cells on
// each side of the origin. The X and Z axes are highlighted.
func (l *Lines) Grid(half int, step float64, c Color) {
	extent := float64(half) * step
	for i := -half; i <= half; i++ {
		p := float64(i) * step
		cx, cz := c, c
		if i == 0 {
			cx, cz = ColorAxisX, ColorAxisZ
		}
		l.Line(mgl64.Vec3{-extent, 0, p}, mgl64.Vec3{extent, 0, p}, cx)
		l.Line(mgl64.Vec3{p, 0, -extent}, mgl64.Vec3{p, 0, extent}, cz)
	}
}

// Circle adds a circle of the given radius around normal.
func (l *Lines) Circle(center, normal mgl64.Vec3, radius float64, segments int, c Color) {
	if segments < 3 {
		segments = 3
	}
	rot := math.AlignY(normal)
	u := rot.Rotate(mgl64.Vec3{1, 0, 0}).Mul(radius)
	v := rot.Rotate(mgl64.Vec3{0, 0, 1}).Mul(radius)

	points := make([]mgl64.Vec3, segments)
	for i := range points {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		points[i] = center.Add(u.Mul(gomath.Cos(a))).Add(v.Mul(gomath.Sin(a)))
	}
	l.Loop(points, c)
}

// Capsule adds a wireframe capsule: the axis, rings at both ends and four
// lines along the sides.
func (l *Lines) Capsule(start, end mgl64.Vec3, radius float64, c Color) {
	axis := end.Sub(start)
	l.Line(start, end, c)
	l.Circle(start, axis, radius, 16, c)
	l.Circle(end, axis, radius, 16, c)

	rot := math.AlignY(axis)
	for _, side := range [...]mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}} {
		off := rot.Rotate(side).Mul(radius)
		l.Line(start.Add(off), end.Add(off), c)
	}
}

// Box adds the twelve edges of an axis-aligned box.
func (l *Lines) Box(lo, hi mgl64.Vec3, c Color) {
	corner := func(x, y, z int) mgl64.Vec3 {
		pick := func(i, axis int) float64 {
			if i == 0 {
				return lo[axis]
			}
			return hi[axis]
		}
		return mgl64.Vec3{pick(x, 0), pick(y, 1), pick(z, 2)}
	}
	for _, y := range [2]int{0, 1} {
		l.Loop([]mgl64.Vec3{corner(0, y, 0), corner(1, y, 0), corner(1, y, 1), corner(0, y, 1)}, c)
	}
	for _, xz := range [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		l.Line(corner(xz[0], 0, xz[1]), corner(xz[0], 1, xz[1]), c)
	}
}

// Cross adds three axis-aligned segments of length 2·size through center.
func (l *Lines) Cross(center mgl64.Vec3, size float64, c Color) {
	for axis := 0; axis < 3; axis++ {
		var d mgl64.Vec3
		d[axis] = size
		l.Line(center.Sub(d), center.Add(d), c)
	}
}

func (l *Lines) vertex(p mgl64.Vec3, c Color) {
	l.verts = append(l.verts,
		float32(p[0]), float32(p[1]), float32(p[2]),
		c[0], c[1], c[2],
	)
}
