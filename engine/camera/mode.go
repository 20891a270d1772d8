package camera

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects how the controller moves the camera each frame.
type Mode int

const (
	// ModeManual moves the camera from held keys along its local axes.
	ModeManual Mode = iota
	// ModeSmoothOrbit circles the origin at a fixed radius with a gentle height swell.
	ModeSmoothOrbit
	// ModeWaveMotion traces a figure-eight around the origin.
	ModeWaveMotion
	// ModeRisingSpiral spirals upward and drops back to the floor periodically.
	ModeRisingSpiral
	// ModeCloseFlyby sweeps close to the origin with an oscillating radius.
	ModeCloseFlyby

	// ModeCount is the number of modes in the cycle.
	ModeCount
)

// spiralMaxHeight is the height above which the rising spiral restarts.
const spiralMaxHeight = 8.0

// String returns the human-readable name of the mode for UI display.
//
// Returns:
//   - string: display name, or "Unknown" for an out-of-range value
func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "Manual Control"
	case ModeSmoothOrbit:
		return "Smooth Orbit"
	case ModeWaveMotion:
		return "Wave Motion"
	case ModeRisingSpiral:
		return "Rising Spiral"
	case ModeCloseFlyby:
		return "Close Fly-by"
	default:
		return "Unknown"
	}
}

// ParseMode looks up a mode by its config key (manual, orbit, wave, spiral, flyby)
// or by its display name, ignoring case.
//
// Parameters:
//   - name: the mode name
//
// Returns:
//   - Mode: the matching mode
//   - bool: false if no mode matches
func ParseMode(name string) (Mode, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "manual":
		return ModeManual, true
	case "orbit", "smooth_orbit":
		return ModeSmoothOrbit, true
	case "wave", "wave_motion":
		return ModeWaveMotion, true
	case "spiral", "rising_spiral":
		return ModeRisingSpiral, true
	case "flyby", "close_flyby":
		return ModeCloseFlyby, true
	}
	for m := range ModeCount {
		if strings.ToLower(m.String()) == key {
			return m, true
		}
	}
	return ModeManual, false
}

// Next returns the mode that follows m in the cycle, wrapping back to ModeManual.
//
// Returns:
//   - Mode: the next mode
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % int(ModeCount))
}

// Scripted reports whether the mode computes its own position and faces the origin.
//
// Returns:
//   - bool: true for every mode except ModeManual
func (m Mode) Scripted() bool {
	return m != ModeManual
}

// valid reports whether m is one of the defined modes.
func (m Mode) valid() bool {
	return m >= ModeManual && m < ModeCount
}

// defaultRadius returns the orbit radius a mode starts from.
func (m Mode) defaultRadius() float64 {
	switch m {
	case ModeWaveMotion:
		return 12.0
	case ModeRisingSpiral:
		return 10.0
	case ModeCloseFlyby:
		return 6.0
	default:
		return 15.0
	}
}

// smoothOrbitPosition advances the orbit angle and returns the camera position on a
// radius 15 circle in the XZ plane with height 3 + 1.5·sin(θ/2).
func (cc *cinematicControllerImpl) smoothOrbitPosition(dt float64) mgl64.Vec3 {
	cc.orbitAngle += 0.25 * dt
	cc.orbitRadius = 15.0
	return mgl64.Vec3{
		math.Cos(cc.orbitAngle) * cc.orbitRadius,
		3.0 + math.Sin(cc.orbitAngle*0.5)*1.5,
		math.Sin(cc.orbitAngle) * cc.orbitRadius,
	}
}

// waveMotionPosition advances the orbit angle and returns a figure-eight position.
func (cc *cinematicControllerImpl) waveMotionPosition(dt float64) mgl64.Vec3 {
	cc.orbitAngle += 0.3 * dt
	return mgl64.Vec3{
		math.Cos(cc.orbitAngle) * 12.0,
		2.0 + math.Sin(cc.orbitAngle*1.5)*3.0,
		math.Sin(cc.orbitAngle*2.0) * 8.0,
	}
}

// risingSpiralPosition advances the orbit angle and returns a position on a spiral whose
// height grows with cinematic time. Once the height passes spiralMaxHeight it drops back
// to 1 and cinematic time restarts.
func (cc *cinematicControllerImpl) risingSpiralPosition(dt float64) mgl64.Vec3 {
	cc.orbitAngle += 0.35 * dt
	cc.orbitRadius = 10.0 + math.Sin(cc.cinematicTime*0.3)*3.0

	p := mgl64.Vec3{
		math.Cos(cc.orbitAngle) * cc.orbitRadius,
		1.0 + cc.cinematicTime*0.4,
		math.Sin(cc.orbitAngle) * cc.orbitRadius,
	}
	if p[1] > spiralMaxHeight {
		p[1] = 1.0
		cc.cinematicTime = 0
	}
	return p
}

// closeFlybyPosition advances the orbit angle and returns a close pass with an
// oscillating radius and height.
func (cc *cinematicControllerImpl) closeFlybyPosition(dt float64) mgl64.Vec3 {
	cc.orbitAngle += 0.5 * dt
	cc.orbitRadius = 6.0 + math.Sin(cc.orbitAngle*0.7)*2.0
	return mgl64.Vec3{
		math.Cos(cc.orbitAngle) * cc.orbitRadius,
		1.5 + math.Cos(cc.orbitAngle*1.3)*2.0,
		math.Sin(cc.orbitAngle) * cc.orbitRadius,
	}
}

// manualPosition eases the movement velocities toward the held keys and returns the
// camera position moved along its own forward and up axes.
func (cc *cinematicControllerImpl) manualPosition(dt float64, in InputSnapshot) mgl64.Vec3 {
	cc.smoothing.stepMove(in, cc.moveSpeed, blend(cc.smoothingEnabled, cc.moveEasing, dt))

	pos := cc.camera.Position()
	forward, _, up := cc.camera.Basis()
	movement := forward.Mul(cc.smoothing.moveForward * dt).
		Add(up.Mul(cc.smoothing.moveUp * dt))
	return pos.Add(movement)
}

// advancePosition dispatches to the position law of the active mode.
func (cc *cinematicControllerImpl) advancePosition(dt float64, in InputSnapshot) mgl64.Vec3 {
	switch cc.mode {
	case ModeSmoothOrbit:
		return cc.smoothOrbitPosition(dt)
	case ModeWaveMotion:
		return cc.waveMotionPosition(dt)
	case ModeRisingSpiral:
		return cc.risingSpiralPosition(dt)
	case ModeCloseFlyby:
		return cc.closeFlybyPosition(dt)
	default:
		return cc.manualPosition(dt, in)
	}
}
