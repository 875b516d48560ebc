package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/stickman/internal/editor"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the settings the editor cannot run without. All problems
// are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.FOV > 0 && cam.FOV < 180, "camera fov %g", cam.FOV)
	check(cam.Near > 0 && cam.Far > cam.Near, "camera clip range [%g, %g]", cam.Near, cam.Far)
	check(cam.Sensitivity > 0, "camera sensitivity %g", cam.Sensitivity)
	check(cam.MinTheta >= 0 && cam.MinTheta < math.Pi/2-cam.CeilingMargin, "camera theta range [%g, π/2-%g]", cam.MinTheta, cam.CeilingMargin)
	check(cam.ResetFramesPerUnit > 0, "camera reset_frames_per_unit %g", cam.ResetFramesPerUnit)
	check(cam.Position != cam.Target, "camera position equals target")

	check(c.Stick.Radius > 0, "stick radius %g", c.Stick.Radius)
	check(c.Stick.Length > 0, "stick length %g", c.Stick.Length)
	check(c.Stick.HandleMagnification >= 1, "stick handle_magnification %g", c.Stick.HandleMagnification)
	if _, err := editor.ParsePivotMode(c.Stick.Pivot); err != nil {
		errs = append(errs, fmt.Errorf("%w: stick pivot: %w", ErrInvalid, err))
	}

	check(c.Interaction.TickRate > 0, "interaction tick_rate %d", c.Interaction.TickRate)

	return errors.Join(errs...)
}
