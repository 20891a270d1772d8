package camera

import "github.com/go-gl/mathgl/mgl64"

// CinematicController drives a Camera's position and orientation once per frame.
// It owns the active Mode, the timing accumulators of the scripted modes and the eased
// velocity state of manual input. While attached it is the only writer of the camera.
type CinematicController interface {
	// Update advances the camera by one frame: the active mode moves the position first,
	// then the orientation basis is rotated by the held rotation keys and re-orthonormalized.
	// Must be called from the frame loop, before the frame is rendered.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the previous frame in seconds
	//   - input: the state of the camera keys for this frame
	Update(deltaTime float64, input InputSnapshot)

	// CycleMode switches to the next mode in the fixed cycle
	// Manual → SmoothOrbit → WaveMotion → RisingSpiral → CloseFlyby → Manual.
	// The orbit angle and cinematic time are zeroed and the orientation is refreshed
	// once so the camera never keeps a stale look direction.
	//
	// Returns:
	//   - Mode: the newly active mode
	CycleMode() Mode

	// SetMode jumps directly to a mode with the same side effects as CycleMode.
	// Values outside the defined modes are ignored.
	//
	// Parameters:
	//   - mode: the mode to activate
	SetMode(mode Mode)

	// Mode returns the active mode.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// ModeName returns the display name of the active mode.
	//
	// Returns:
	//   - string: human-readable mode name
	ModeName() string

	// Reset moves the camera back to its initial position facing the origin, zeroes the
	// orbit angle and cinematic time and stops any residual eased motion.
	Reset()

	// Camera returns the camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// InitialPosition returns the position Reset restores.
	//
	// Returns:
	//   - mgl64.Vec3: world-space reset position
	InitialPosition() mgl64.Vec3

	// OrbitAngle returns the scripted-mode orbit angle accumulator.
	//
	// Returns:
	//   - float64: angle in radians
	OrbitAngle() float64

	// OrbitRadius returns the current scripted-mode orbit radius.
	//
	// Returns:
	//   - float64: radius in world units
	OrbitRadius() float64

	// CinematicTime returns the time accumulated since the last mode change or reset.
	//
	// Returns:
	//   - float64: time in seconds
	CinematicTime() float64

	// RotationSpeed returns the base angular speed for rotation keys.
	//
	// Returns:
	//   - float64: radians per second
	RotationSpeed() float64

	// MoveSpeed returns the base speed for manual movement keys.
	//
	// Returns:
	//   - float64: world units per second
	MoveSpeed() float64

	// SmoothingEnabled reports whether manual input is eased.
	//
	// Returns:
	//   - bool: true for eased input, false for direct input
	SmoothingEnabled() bool

	// SetSmoothingEnabled switches between eased and direct input response.
	//
	// Parameters:
	//   - enabled: true to ease velocities, false to apply them immediately
	SetSmoothingEnabled(enabled bool)
}
