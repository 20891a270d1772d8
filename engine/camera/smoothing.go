package camera

import "github.com/Carmen-Shannon/eventhorizon/common"

// inputSmoothing holds the eased per-axis velocities that give manual control its inertia.
// Each controller owns one, so cameras never share velocity state.
type inputSmoothing struct {
	moveForward float64 // units/s along the camera forward axis
	moveUp      float64 // units/s along the camera up axis

	rotUp      float64 // rad/s around the camera up axis
	rotRight   float64 // rad/s around the camera right axis
	rotForward float64 // rad/s around the camera forward axis
}

// ease moves current toward target by the blend factor and returns the new value.
func ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// blend returns the per-frame blend factor for an easing rate.
// When smoothing is disabled the factor is 1, so velocities jump straight to their targets.
func blend(enabled bool, k, dt float64) float64 {
	if !enabled {
		return 1
	}
	return common.SmoothingFactor(k, dt)
}

// stepMove eases the movement velocities toward the targets implied by in.
func (s *inputSmoothing) stepMove(in InputSnapshot, speed, factor float64) {
	tf, tu := in.moveTargets(speed)
	s.moveForward = ease(s.moveForward, tf, factor)
	s.moveUp = ease(s.moveUp, tu, factor)
}

// stepRotation eases the angular velocities toward the targets implied by in.
func (s *inputSmoothing) stepRotation(in InputSnapshot, speed, factor float64) {
	tu, tr, tf := in.rotationTargets(speed)
	s.rotUp = ease(s.rotUp, tu, factor)
	s.rotRight = ease(s.rotRight, tr, factor)
	s.rotForward = ease(s.rotForward, tf, factor)
}

func (s *inputSmoothing) reset() {
	*s = inputSmoothing{}
}
