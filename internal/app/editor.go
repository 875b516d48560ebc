// Package app wires the editor together: scene, camera, input dispatch,
// keyboard shortcuts, the fixed-step tick and drawing.
package app

import (
	"context"
	"fmt"
	gomath "math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/config"
	"github.com/Faultbox/stickman/internal/editor"
	"github.com/Faultbox/stickman/internal/engine/camera"
	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/engine/picking"
	"github.com/Faultbox/stickman/internal/engine/scene"
	"github.com/Faultbox/stickman/internal/logger"
)

// maxTicksPerUpdate bounds catch-up after a stall.
const maxTicksPerUpdate = 10

// spawnSpacing is the X distance between sticks added with a shortcut.
const spawnSpacing = 2.0

// Editor is the windowless core of the application. Everything here can be
// driven from tests with an input.Queue.
type Editor struct {
	registry   *scene.Registry
	orbit      *camera.Orbit
	camera     *editor.CameraTarget
	dispatcher *editor.Dispatcher
	devPlane   *editor.DevPlane

	stick   editor.StickConfig
	spawned int
	bend    bool

	step time.Duration
	acc  time.Duration

	quit bool
}

// NewEditor builds a scene with one stickman from the config.
func NewEditor(cfg *config.Config, src input.Source) (*Editor, error) {
	stick, err := cfg.Stick.Editor()
	if err != nil {
		return nil, fmt.Errorf("stick config: %w", err)
	}
	if cfg.Interaction.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate %d: %w", cfg.Interaction.TickRate, config.ErrInvalid)
	}

	vp := picking.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	orbitCfg := cfg.Camera.Orbit()
	cam := camera.New(orbitCfg.DefaultPosition, orbitCfg.Target, cfg.Camera.Lens(), vp.Aspect())

	e := &Editor{
		registry: scene.NewRegistry(),
		orbit:    camera.NewOrbit(cam, orbitCfg),
		stick:    stick,
		step:     time.Second / time.Duration(cfg.Interaction.TickRate),
	}
	e.camera = editor.NewCameraTarget(e.orbit)
	e.dispatcher = editor.NewDispatcher(e.registry, e.camera, src, vp)
	e.dispatcher.OnKey(e.HandleKey)
	e.devPlane = editor.NewDevPlane(cam, orbitCfg.Target, 10)

	if err := e.AddStickman(); err != nil {
		return nil, err
	}
	if cfg.Interaction.DevPlane {
		e.ToggleDevPlane()
	}

	logger.Info("editor ready",
		zap.Int("objects", e.registry.Len()),
		zap.Duration("tick", e.step),
		zap.Stringer("pivot", stick.Pivot),
	)
	return e, nil
}

func (e *Editor) Registry() *scene.Registry       { return e.registry }
func (e *Editor) Orbit() *camera.Orbit            { return e.orbit }
func (e *Editor) Dispatcher() *editor.Dispatcher  { return e.dispatcher }
func (e *Editor) DevPlane() *editor.DevPlane      { return e.devPlane }
func (e *Editor) StickConfig() editor.StickConfig { return e.stick }
func (e *Editor) Quit() bool                      { return e.quit }
func (e *Editor) BendPreview() bool               { return e.bend }

// Pump handles one batch of input. Returns true when the editor should exit,
// either on a quit event or because ctx is done.
func (e *Editor) Pump(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		logger.Info("editor interrupted", zap.Error(err))
		e.quit = true
		return true
	}
	if e.dispatcher.Pump() {
		e.quit = true
	}
	return e.quit
}

// Update runs as many fixed ticks as elapsed covers and returns how many ran.
func (e *Editor) Update(elapsed time.Duration) int {
	e.acc += elapsed
	n := 0
	for e.acc >= e.step && n < maxTicksPerUpdate {
		e.acc -= e.step
		e.Tick()
		n++
	}
	if n == maxTicksPerUpdate {
		e.acc = 0
	}
	return n
}

// Tick advances the camera and every ticking scene object by one step.
func (e *Editor) Tick() {
	e.camera.Tick()
	e.registry.Each(func(en scene.Entry) bool {
		if t, ok := en.Object.(scene.Ticker); ok {
			t.Tick()
		}
		return true
	})
}

// HandleKey runs keyboard shortcuts.
func (e *Editor) HandleKey(k input.Key) {
	var err error
	switch k {
	case input.KeyEscape:
		e.quit = true
	case input.KeyR:
		e.orbit.Reset()
	case input.KeyN:
		err = e.AddStick()
	case input.KeyM:
		err = e.AddStickman()
	case input.KeyP:
		e.TogglePivot()
	case input.KeyB:
		e.ToggleBendPreview()
	case input.KeyF1:
		e.ToggleDevPlane()
	}
	if err != nil {
		logger.Warn("shortcut failed", zap.Int("key", int(k)), zap.Error(err))
	}
}

// AddStick adds a vertical stick next to the previous spawn.
func (e *Editor) AddStick() error {
	s := e.stick.NewStick(e.spawnPoint())
	if err := e.registry.Add(s); err != nil {
		return err
	}
	logger.Debug("stick added", zap.Stringer("id", s.ID()))
	return nil
}

// AddStickman adds a stickman standing on the ground next to the previous spawn.
func (e *Editor) AddStickman() error {
	hip := e.spawnPoint()
	hip[1] = e.stick.Length*(1+gomath.Cos(mgl64.DegToRad(30))) + e.stick.Radius

	for _, s := range editor.NewStickman(hip, e.stick) {
		if err := e.registry.Add(s); err != nil {
			return err
		}
	}
	logger.Debug("stickman added", zap.Float64("x", hip.X()))
	return nil
}

// TogglePivot switches every stick, and sticks added later, between the
// two pivot modes.
func (e *Editor) TogglePivot() {
	if e.stick.Pivot == editor.PivotAroundFarPoint {
		e.stick.Pivot = editor.PivotAroundCenter
	} else {
		e.stick.Pivot = editor.PivotAroundFarPoint
	}
	e.forEachStick(func(s *editor.Stick) { s.SetPivotMode(e.stick.Pivot) })
	logger.Info("pivot mode", zap.Stringer("mode", e.stick.Pivot))
}

// ToggleBendPreview shows or hides the bent shape of every stick.
func (e *Editor) ToggleBendPreview() {
	e.bend = !e.bend
	logger.Debug("bend preview", zap.Bool("shown", e.bend))
}

// ToggleDevPlane shows or hides the camera-facing dev plane.
func (e *Editor) ToggleDevPlane() {
	if _, ok := e.registry.Get(e.devPlane.ID()); ok {
		e.registry.Remove(e.devPlane.ID())
		return
	}
	if err := e.registry.Add(e.devPlane); err != nil {
		logger.Warn("dev plane", zap.Error(err))
	}
}

// Apply takes the reloadable parts of a new config: stick defaults, pivot
// mode and log level.
func (e *Editor) Apply(cfg *config.Config) error {
	stick, err := cfg.Stick.Editor()
	if err != nil {
		return err
	}
	if cfg.Logging.Level != logger.Level().String() {
		logger.SetLevel(cfg.Logging.Level)
		logger.Info("log level changed", zap.Stringer("level", logger.Level()))
	}
	if stick.Pivot != e.stick.Pivot {
		e.forEachStick(func(s *editor.Stick) { s.SetPivotMode(stick.Pivot) })
	}
	e.stick = stick
	return nil
}

func (e *Editor) forEachStick(fn func(*editor.Stick)) {
	e.registry.Each(func(en scene.Entry) bool {
		if s, ok := en.Object.(*editor.Stick); ok {
			fn(s)
		}
		return true
	})
}

func (e *Editor) spawnPoint() mgl64.Vec3 {
	p := e.orbit.Config().Target.Add(mgl64.Vec3{float64(e.spawned) * spawnSpacing, 0, 0})
	p[1] = 0
	e.spawned++
	return p
}
