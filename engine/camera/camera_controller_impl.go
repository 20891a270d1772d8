package camera

import (
	"sync"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Defaults for the controller tuning. The easing rates are the k in 1 - e^(-k·dt).
const (
	DefaultRotationSpeed  = 0.3
	DefaultMoveSpeed      = 0.8
	DefaultMoveEasing     = 12.0
	DefaultRotationEasing = 15.0
)

// nominalFrameTime is the time step used to refresh the orientation after a mode change.
const nominalFrameTime = 1.0 / 60.0

// cinematicControllerImpl is the single implementation of CinematicController.
type cinematicControllerImpl struct {
	mu *sync.Mutex

	camera          Camera
	initialPosition mgl64.Vec3

	mode Mode

	// Scripted-mode accumulators
	orbitAngle    float64
	orbitRadius   float64
	cinematicTime float64

	// Input tuning
	rotationSpeed    float64
	moveSpeed        float64
	moveEasing       float64
	rotationEasing   float64
	smoothingEnabled bool

	smoothing inputSmoothing

	logger zerolog.Logger
}

// Compile-time interface compliance check
var _ CinematicController = &cinematicControllerImpl{}

// NewCinematicController creates a controller bound to cam, starting in ModeManual.
// The camera is not moved until the first Update or Reset.
//
// Parameters:
//   - cam: the camera to drive
//   - initialPosition: the position restored by Reset
//   - options: functional options to configure the controller
//
// Returns:
//   - CinematicController: the newly created controller
func NewCinematicController(cam Camera, initialPosition mgl64.Vec3, options ...CinematicControllerOption) CinematicController {
	cc := &cinematicControllerImpl{
		mu:               &sync.Mutex{},
		camera:           cam,
		initialPosition:  initialPosition,
		mode:             ModeManual,
		orbitRadius:      ModeManual.defaultRadius(),
		rotationSpeed:    DefaultRotationSpeed,
		moveSpeed:        DefaultMoveSpeed,
		moveEasing:       DefaultMoveEasing,
		rotationEasing:   DefaultRotationEasing,
		smoothingEnabled: true,
		logger:           zerolog.Nop(),
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cinematicControllerImpl) Update(deltaTime float64, input InputSnapshot) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if deltaTime < 0 {
		deltaTime = 0
	}
	cc.cinematicTime += deltaTime

	cc.camera.SetPosition(cc.advancePosition(deltaTime, input))
	cc.updateOrientation(deltaTime, input)
}

func (cc *cinematicControllerImpl) CycleMode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.switchMode(cc.mode.Next())
	return cc.mode
}

func (cc *cinematicControllerImpl) SetMode(mode Mode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !mode.valid() {
		cc.logger.Warn().Int("mode", int(mode)).Msg("ignoring unknown camera mode")
		return
	}
	cc.switchMode(mode)
}

func (cc *cinematicControllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cinematicControllerImpl) ModeName() string {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode.String()
}

func (cc *cinematicControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.orbitAngle = 0
	cc.cinematicTime = 0
	cc.orbitRadius = cc.mode.defaultRadius()
	cc.smoothing.reset()

	cc.camera.SetPosition(cc.initialPosition)
	cc.camera.LookAt(common.WorldOrigin)

	cc.logger.Debug().
		Str("mode", cc.mode.String()).
		Floats64("position", cc.initialPosition[:]).
		Msg("camera reset")
}

func (cc *cinematicControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cinematicControllerImpl) InitialPosition() mgl64.Vec3 {
	return cc.initialPosition
}

func (cc *cinematicControllerImpl) OrbitAngle() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitAngle
}

func (cc *cinematicControllerImpl) OrbitRadius() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitRadius
}

func (cc *cinematicControllerImpl) CinematicTime() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cinematicTime
}

func (cc *cinematicControllerImpl) RotationSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotationSpeed
}

func (cc *cinematicControllerImpl) MoveSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cinematicControllerImpl) SmoothingEnabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.smoothingEnabled
}

func (cc *cinematicControllerImpl) SetSmoothingEnabled(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.smoothingEnabled = enabled
}

// switchMode activates mode, zeroes the accumulators and refreshes the orientation once
// with a nominal frame time and no keys held.
// Caller must hold the mutex.
func (cc *cinematicControllerImpl) switchMode(mode Mode) {
	prev := cc.mode
	cc.mode = mode
	cc.cinematicTime = 0
	cc.orbitAngle = 0
	cc.orbitRadius = mode.defaultRadius()

	cc.updateOrientation(nominalFrameTime, InputSnapshot{})

	cc.logger.Debug().
		Str("from", prev.String()).
		Str("to", mode.String()).
		Msg("camera mode changed")
}
