package director

import (
	"github.com/Carmen-Shannon/eventhorizon/engine/input"
	"github.com/rs/zerolog"
)

// DirectorOption is a functional option for configuring a Director.
type DirectorOption func(*directorImpl)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - bindings: the key bindings to use
//
// Returns:
//   - DirectorOption: option function to apply
func WithBindings(bindings input.Bindings) DirectorOption {
	return func(d *directorImpl) {
		d.keymap = input.NewKeymap(bindings)
	}
}

// WithResizer sets what a resolution change resizes.
//
// Parameters:
//   - r: the output to resize, normally the window
//
// Returns:
//   - DirectorOption: option function to apply
func WithResizer(r Resizer) DirectorOption {
	return func(d *directorImpl) {
		d.resizer = r
	}
}

// WithTaskSubmitter moves resolution saves off the frame loop.
//
// Parameters:
//   - t: the background task runner
//
// Returns:
//   - DirectorOption: option function to apply
func WithTaskSubmitter(t TaskSubmitter) DirectorOption {
	return func(d *directorImpl) {
		d.tasks = t
	}
}

// WithUniformSink sets the function receiving the marshaled camera uniform each frame.
//
// Parameters:
//   - sink: receives the uniform bytes, laid out as in camera_uniform.wgsl
//
// Returns:
//   - DirectorOption: option function to apply
func WithUniformSink(sink func(data []byte)) DirectorOption {
	return func(d *directorImpl) {
		d.sink = sink
	}
}

// WithProjection sets the perspective parameters. Non-positive values are ignored.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - DirectorOption: option function to apply
func WithProjection(fov, near, far float64) DirectorOption {
	return func(d *directorImpl) {
		if fov > 0 {
			d.fov = fov
		}
		if near > 0 {
			d.near = near
		}
		if far > d.near {
			d.far = far
		}
	}
}

// WithLogger sets the logger for actions.
func WithLogger(logger zerolog.Logger) DirectorOption {
	return func(d *directorImpl) {
		d.logger = logger
	}
}
