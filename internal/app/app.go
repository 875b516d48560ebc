package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/config"
	"github.com/Faultbox/stickman/internal/engine/input"
	"github.com/Faultbox/stickman/internal/engine/renderer"
	"github.com/Faultbox/stickman/internal/engine/window"
	"github.com/Faultbox/stickman/internal/logger"
)

// App is the windowed editor.
type App struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	events   *window.Events
	editor   *Editor
	lines    renderer.Lines

	reloads chan *config.Config
}

// New opens the window and builds the editor.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing editor",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config:  cfg,
		reloads: make(chan *config.Config, 1),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.events = window.NewEvents()
	a.editor, err = NewEditor(cfg, a.events)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create editor: %w", err)
	}
	a.editor.Dispatcher().Resize(width, height)

	return a, nil
}

// Watch hot-reloads the config file at path until ctx is done. Reloaded
// configs are applied on the main loop.
func (a *App) Watch(ctx context.Context, path string) {
	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config) {
			select {
			case a.reloads <- cfg:
			default: // A newer reload is already pending
			}
		})
		if err != nil {
			logger.Warn("config watch stopped", zap.Error(err))
		}
	}()
}

// Run starts the main loop. It returns when the window is closed, Esc is
// pressed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting editor loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if a.editor.Pump(ctx) {
			return nil
		}
		for _, ev := range a.events.Events() {
			if ev.Type == input.EventResize {
				a.renderer.Resize(ev.Width, ev.Height)
			}
		}

		select {
		case cfg := <-a.reloads:
			if err := a.editor.Apply(cfg); err != nil {
				logger.Warn("config not applied", zap.Error(err))
			}
		default:
		}

		// 2. Fixed-step update
		a.editor.Update(dt)

		// 3. Render
		a.renderer.Begin()
		a.editor.Draw(&a.lines)
		a.renderer.DrawLines(&a.lines, a.editor.Orbit().Camera().ViewProjection())

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Close releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing editor")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
