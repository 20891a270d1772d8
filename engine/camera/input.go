package camera

// InputSnapshot is the per-frame state of the logical camera keys.
// The controller only reads it; polling the keyboard is the caller's job.
type InputSnapshot struct {
	MoveForward  bool
	MoveBackward bool
	MoveUp       bool
	MoveDown     bool

	// Rotation around the camera's up axis.
	YawLeft  bool
	YawRight bool

	// Rotation around the camera's right axis.
	PitchUp   bool
	PitchDown bool

	// Rotation around the camera's forward axis.
	RollLeft  bool
	RollRight bool
}

// moveTargets returns the target forward and up speeds for the held movement keys.
// Backward is evaluated after forward and down after up, so when both keys of a
// pair are held the second one wins.
func (in InputSnapshot) moveTargets(speed float64) (forward, up float64) {
	if in.MoveForward {
		forward = speed
	}
	if in.MoveBackward {
		forward = -speed
	}
	if in.MoveUp {
		up = speed
	}
	if in.MoveDown {
		up = -speed
	}
	return forward, up
}

// rotationTargets returns the target angular speeds around up, right and forward.
// Opposing keys are summed, so holding both keys of a pair cancels out.
func (in InputSnapshot) rotationTargets(speed float64) (up, right, forward float64) {
	if in.YawLeft {
		up += speed
	}
	if in.YawRight {
		up -= speed
	}
	if in.PitchUp {
		right += speed
	}
	if in.PitchDown {
		right -= speed
	}
	if in.RollLeft {
		forward += speed
	}
	if in.RollRight {
		forward -= speed
	}
	return up, right, forward
}
