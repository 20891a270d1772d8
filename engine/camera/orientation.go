package camera

import (
	"math"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/go-gl/mathgl/mgl64"
)

// frameRotation is the rotation to apply this frame around each current basis axis, in radians.
type frameRotation struct {
	up      float64
	right   float64
	forward float64
}

// sourceBasis returns the basis the frame's rotation starts from.
// Scripted modes always face the origin. Manual mode keeps the camera's basis unless one
// of its vectors has collapsed, in which case it falls back to facing the origin too.
// ok is false when the camera sits on the origin and no direction can be derived.
func (cc *cinematicControllerImpl) sourceBasis() (forward, right, up mgl64.Vec3, ok bool) {
	if !cc.mode.Scripted() {
		forward, right, up = cc.camera.Basis()
		if forward.Len() >= common.MinVectorLength &&
			right.Len() >= common.MinVectorLength &&
			up.Len() >= common.MinVectorLength {
			return forward, right, up, true
		}
	}
	return common.Basis(common.WorldOrigin.Sub(cc.camera.Position()))
}

// rotateBasis applies rot to the basis in fixed order: around up (moves forward and right),
// then around the rotated right (moves forward and up), then around the rotated forward
// (moves right and up). Angles at or below common.MinRotationAngle are skipped.
func rotateBasis(forward, right, up mgl64.Vec3, rot frameRotation) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	if math.Abs(rot.up) > common.MinRotationAngle {
		forward = common.RotateAroundAxis(forward, up, rot.up)
		right = common.RotateAroundAxis(right, up, rot.up)
	}
	if math.Abs(rot.right) > common.MinRotationAngle {
		forward = common.RotateAroundAxis(forward, right, rot.right)
		up = common.RotateAroundAxis(up, right, rot.right)
	}
	if math.Abs(rot.forward) > common.MinRotationAngle {
		right = common.RotateAroundAxis(right, forward, rot.forward)
		up = common.RotateAroundAxis(up, forward, rot.forward)
	}
	return forward, right, up
}

// orthonormalize removes floating-point drift from a nearly orthonormal basis with
// Gram-Schmidt, keeping forward as the reference direction, then flips up if needed so
// (right × forward) · up stays positive.
func orthonormalize(forward, right, up mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	f := common.SafeNormalize(forward)
	if f.Len() == 0 {
		f = defaultForward
	}

	r := common.SafeNormalize(right.Sub(f.Mul(f.Dot(right))))
	if r.Len() == 0 {
		r = common.SafeNormalize(f.Cross(common.WorldUp))
		if r.Len() == 0 {
			r = common.SafeNormalize(f.Cross(common.WorldRight))
		}
	}

	u := common.SafeNormalize(up.Sub(f.Mul(f.Dot(up))).Sub(r.Mul(r.Dot(up))))
	if u.Len() == 0 {
		u = common.SafeNormalize(r.Cross(f))
	}

	if r.Cross(f).Dot(u) < 0 {
		u = u.Mul(-1)
	}
	return f, r, u
}

// updateOrientation eases the angular velocities toward the held rotation keys, rotates
// the source basis by this frame's increments, re-orthonormalizes it and commits it
// straight to the camera.
func (cc *cinematicControllerImpl) updateOrientation(dt float64, in InputSnapshot) {
	cc.smoothing.stepRotation(in, cc.rotationSpeed, blend(cc.smoothingEnabled, cc.rotationEasing, dt))

	forward, right, up, ok := cc.sourceBasis()
	if !ok {
		cc.camera.LookAt(common.WorldOrigin)
		return
	}

	forward, right, up = rotateBasis(forward, right, up, frameRotation{
		up:      cc.smoothing.rotUp * dt,
		right:   cc.smoothing.rotRight * dt,
		forward: cc.smoothing.rotForward * dt,
	})
	forward, right, up = orthonormalize(forward, right, up)

	cc.camera.SetBasis(forward, right, up)
}
