package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithBasis sets the camera's initial orientation basis verbatim.
// The caller is responsible for passing an orthonormal, right-handed triple.
//
// Parameters:
//   - forward, right, up: basis vectors
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera basis
func WithBasis(forward, right, up mgl64.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.forward = forward
		c.right = right
		c.up = up
	}
}

// WithLookAt orients the camera toward a world-space point.
// Apply it after WithPosition, since the direction is taken from the current position.
//
// Parameters:
//   - x, y, z: world-space coordinates of the point to face
//
// Returns:
//   - CameraBuilderOption: a function that orients the camera
func WithLookAt(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt(mgl64.Vec3{x, y, z})
	}
}
