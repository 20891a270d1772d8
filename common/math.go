package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinVectorLength is the shortest vector length treated as a usable direction.
// Anything shorter is considered degenerate and is never divided by.
const MinVectorLength = 1e-3

// MinRotationAngle is the smallest per-frame rotation angle worth applying.
const MinRotationAngle = 1e-4

var (
	// WorldOrigin is the scene's focal point.
	WorldOrigin = mgl64.Vec3{0, 0, 0}
	// WorldUp is the reference up direction used to rebuild a camera basis.
	WorldUp = mgl64.Vec3{0, 1, 0}
	// WorldRight is the fallback reference used when a direction is parallel to WorldUp.
	WorldRight = mgl64.Vec3{1, 0, 0}
)

// SafeNormalize returns v scaled to unit length.
// The length is checked before dividing, so a vector shorter than MinVectorLength
// is returned as the zero vector instead of producing NaN or Inf components.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl64.Vec3: the unit vector, or the zero vector if v is degenerate
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < MinVectorLength {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / l)
}

// RotateAroundAxis rotates v around an arbitrary axis by angle radians using Rodrigues' formula:
//
//	v' = v*cos(θ) + (a × v)*sin(θ) + a*(a·v)*(1-cos(θ))
//
// A zero angle or an axis shorter than MinVectorLength leaves v untouched.
//
// Parameters:
//   - v: the vector to rotate
//   - axis: rotation axis (need not be unit length)
//   - angle: rotation angle in radians, counter-clockwise looking down the axis
//
// Returns:
//   - mgl64.Vec3: the rotated vector
func RotateAroundAxis(v, axis mgl64.Vec3, angle float64) mgl64.Vec3 {
	if angle == 0 || axis.Len() < MinVectorLength {
		return v
	}

	a := axis.Normalize()
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)

	return v.Mul(cosA).
		Add(a.Cross(v).Mul(sinA)).
		Add(a.Mul(a.Dot(v) * (1.0 - cosA)))
}

// Basis builds a right-handed camera basis facing direction dir.
// right = dir × WorldUp (or dir × WorldRight when dir is vertical), up = right × forward.
//
// Parameters:
//   - dir: the viewing direction (need not be unit length)
//
// Returns:
//   - forward, right, up: unit basis vectors
//   - ok: false if dir is degenerate, in which case all vectors are zero
func Basis(dir mgl64.Vec3) (forward, right, up mgl64.Vec3, ok bool) {
	forward = SafeNormalize(dir)
	if forward.Len() == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	right = SafeNormalize(forward.Cross(WorldUp))
	if right.Len() < MinVectorLength {
		right = SafeNormalize(forward.Cross(WorldRight))
	}
	up = SafeNormalize(right.Cross(forward))
	return forward, right, up, true
}

// IsFinite reports whether every component of v is a finite number.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: false if any component is NaN or ±Inf
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// SmoothingFactor returns the exponential blend coefficient 1 - e^(-k*dt).
// Moving a value toward its target by this fraction every frame gives the same
// easing curve regardless of frame rate.
//
// Parameters:
//   - k: easing rate; larger values converge faster
//   - dt: elapsed time in seconds
//
// Returns:
//   - float64: blend factor in [0, 1)
func SmoothingFactor(k, dt float64) float64 {
	if dt <= 0 || k <= 0 {
		return 0
	}
	return 1.0 - math.Exp(-k*dt)
}

// Mat4To32 narrows a double precision matrix to the float32 layout used by GPU buffers.
// Both matrices are column-major.
//
// Parameters:
//   - m: the source matrix
//
// Returns:
//   - [16]float32: the narrowed matrix
func Mat4To32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i := range 16 {
		out[i] = float32(m[i])
	}
	return out
}
