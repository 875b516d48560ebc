// Package config handles editor configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/stickman/internal/editor"
	"github.com/Faultbox/stickman/internal/engine/camera"
)

// Config holds all editor settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Stick       StickConfig       `yaml:"stick"`
	Interaction InteractionConfig `yaml:"interaction"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the lens and orbit controller settings.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"` // Default (and reset) position
	Target   [3]float64 `yaml:"target"`

	FOV  float64 `yaml:"fov"` // Vertical, degrees
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`

	Sensitivity        float64 `yaml:"sensitivity"`
	MinTheta           float64 `yaml:"min_theta"`
	CeilingMargin      float64 `yaml:"ceiling_margin"`
	ResetFramesPerUnit float64 `yaml:"reset_frames_per_unit"`
}

// StickConfig holds the defaults for new sticks.
type StickConfig struct {
	Radius              float64 `yaml:"radius"`
	Length              float64 `yaml:"length"`
	HandleMagnification float64 `yaml:"handle_magnification"`
	Pivot               string  `yaml:"pivot"` // far_point or center
}

// InteractionConfig holds dispatcher and scheduler settings.
type InteractionConfig struct {
	TickRate int  `yaml:"tick_rate"` // Fixed updates per second
	DevPlane bool `yaml:"dev_plane"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	orbit := camera.DefaultOrbitConfig()
	lens := camera.DefaultLens()
	stick := editor.DefaultStickConfig()

	return &Config{
		Window: WindowConfig{
			Title:  "Stickman",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:           orbit.DefaultPosition,
			Target:             orbit.Target,
			FOV:                lens.FOV,
			Near:               lens.Near,
			Far:                lens.Far,
			Sensitivity:        orbit.Sensitivity,
			MinTheta:           orbit.MinTheta,
			CeilingMargin:      orbit.CeilingMargin,
			ResetFramesPerUnit: orbit.ResetFramesPerUnit,
		},
		Stick: StickConfig{
			Radius:              stick.Radius,
			Length:              stick.Length,
			HandleMagnification: stick.HandleMagnification,
			Pivot:               stick.Pivot.String(),
		},
		Interaction: InteractionConfig{
			TickRate: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Lens returns the camera lens.
func (c CameraConfig) Lens() camera.Lens {
	return camera.Lens{FOV: c.FOV, Near: c.Near, Far: c.Far}
}

// Orbit returns the orbit controller settings.
func (c CameraConfig) Orbit() camera.OrbitConfig {
	return camera.OrbitConfig{
		DefaultPosition:    mgl64.Vec3(c.Position),
		Target:             mgl64.Vec3(c.Target),
		Sensitivity:        c.Sensitivity,
		MinTheta:           c.MinTheta,
		CeilingMargin:      c.CeilingMargin,
		ResetFramesPerUnit: c.ResetFramesPerUnit,
	}
}

// Editor returns the stick settings for the editor package.
func (c StickConfig) Editor() (editor.StickConfig, error) {
	pivot, err := editor.ParsePivotMode(c.Pivot)
	if err != nil {
		return editor.StickConfig{}, err
	}
	return editor.StickConfig{
		Radius:              c.Radius,
		Length:              c.Length,
		Pivot:               pivot,
		HandleMagnification: c.HandleMagnification,
	}, nil
}
