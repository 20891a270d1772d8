package camera

import "github.com/rs/zerolog"

// CinematicControllerOption is a functional option for configuring a CinematicController.
type CinematicControllerOption func(*cinematicControllerImpl)

// WithRotationSpeed sets the base angular speed applied while a rotation key is held.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - CinematicControllerOption: functional option to set the rotation speed
func WithRotationSpeed(speed float64) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		cc.rotationSpeed = speed
	}
}

// WithMoveSpeed sets the base speed applied while a manual movement key is held.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CinematicControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float64) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithMoveEasing sets the easing rate of the movement velocities.
// Higher values reach the target speed sooner. Non-positive values are ignored.
//
// Parameters:
//   - k: easing rate in 1/s
//
// Returns:
//   - CinematicControllerOption: functional option to set the movement easing
func WithMoveEasing(k float64) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		if k > 0 {
			cc.moveEasing = k
		}
	}
}

// WithRotationEasing sets the easing rate of the angular velocities.
// Higher values reach the target speed sooner. Non-positive values are ignored.
//
// Parameters:
//   - k: easing rate in 1/s
//
// Returns:
//   - CinematicControllerOption: functional option to set the rotation easing
func WithRotationEasing(k float64) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		if k > 0 {
			cc.rotationEasing = k
		}
	}
}

// WithSmoothing enables or disables eased input.
// When disabled, held keys apply their full speed immediately and stop dead on release.
//
// Parameters:
//   - enabled: true for eased input (default), false for direct input
//
// Returns:
//   - CinematicControllerOption: functional option to set the smoothing mode
func WithSmoothing(enabled bool) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		cc.smoothingEnabled = enabled
	}
}

// WithInitialMode starts the controller in the given mode instead of ModeManual.
// Unknown modes are ignored.
//
// Parameters:
//   - mode: the starting mode
//
// Returns:
//   - CinematicControllerOption: functional option to set the starting mode
func WithInitialMode(mode Mode) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		if mode.valid() {
			cc.mode = mode
			cc.orbitRadius = mode.defaultRadius()
		}
	}
}

// WithLogger sets the logger used for mode changes and resets.
//
// Parameters:
//   - logger: the zerolog logger to use
//
// Returns:
//   - CinematicControllerOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) CinematicControllerOption {
	return func(cc *cinematicControllerImpl) {
		cc.logger = logger
	}
}
