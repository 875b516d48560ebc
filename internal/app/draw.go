package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/editor"
	"github.com/Faultbox/stickman/internal/engine/renderer"
	"github.com/Faultbox/stickman/internal/engine/scene"
	"github.com/Faultbox/stickman/internal/logger"
)

// gridHalf is the number of grid cells on each side of the origin.
const gridHalf = 20

const (
	bendChord    = 0.8 // Preview chord as a fraction of stick length
	bendSegments = 16
)

// Draw fills lines with the grid and every scene object.
func (e *Editor) Draw(lines *renderer.Lines) {
	lines.Reset()
	lines.Grid(gridHalf, 1, renderer.ColorGrid)

	grabbed, _, _ := e.dispatcher.Grabbed()
	e.registry.Each(func(en scene.Entry) bool {
		switch o := en.Object.(type) {
		case *editor.Stick:
			drawStick(lines, o, editor.Manipulable(o) == grabbed)
			if e.bend {
				drawBend(lines, o)
			}
		case *editor.DevPlane:
			lines.Loop(o.Corners()[:], renderer.ColorDevPlane)
		}
		return true
	})
}

func drawStick(lines *renderer.Lines, s *editor.Stick, grabbed bool) {
	body := renderer.ColorStick
	if grabbed {
		body = renderer.ColorSelected
	}
	lines.Capsule(s.Start(), s.End(), s.Radius(), body)
	if grabbed {
		b := s.Bounds()
		lines.Box(b.Min, b.Max, renderer.ColorSelected)
	}

	hr := s.HandleRadius()
	move := renderer.ColorMove
	if sel := s.Selection(); sel.Kind == editor.HandleMove {
		move = renderer.ColorSelected
	}
	lines.Cross(s.Center(), hr, move)

	axis := s.End().Sub(s.Start())
	for _, h := range s.RotateHandles() {
		c := renderer.ColorRotate
		if s.Selection() == h {
			c = renderer.ColorSelected
		}
		lines.Circle(s.HandlePosition(h), axis, hr, 12, c)
	}
}

func drawBend(lines *renderer.Lines, s *editor.Stick) {
	arc, err := s.Bend(s.Length()*bendChord, editor.BendLeft)
	if err != nil {
		logger.Debug("bend preview skipped", zap.Stringer("id", s.ID()), zap.Error(err))
		return
	}
	pts := arc.Points(bendSegments)
	for i := 1; i < len(pts); i++ {
		lines.Line(s.ToWorld(pts[i-1]), s.ToWorld(pts[i]), renderer.ColorBend)
	}
}
