package camera

import (
	"sync"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	defaultForward = mgl64.Vec3{0, 0, -1}
	defaultRight   = mgl64.Vec3{1, 0, 0}
	defaultUp      = mgl64.Vec3{0, 1, 0}
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl64.Vec3

	forward mgl64.Vec3
	right   mgl64.Vec3
	up      mgl64.Vec3
}

// Camera is the externally owned camera record the controller drives.
// It exposes a world-space position and a forward/right/up orientation basis.
// While a CinematicController is attached it is the only writer; renderers read
// the basis between frames through the accessors or ViewMatrix.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position
	Position() mgl64.Vec3

	// Forward returns the unit viewing direction.
	//
	// Returns:
	//   - mgl64.Vec3: forward basis vector
	Forward() mgl64.Vec3

	// Right returns the unit right direction.
	//
	// Returns:
	//   - mgl64.Vec3: right basis vector
	Right() mgl64.Vec3

	// Up returns the unit up direction.
	//
	// Returns:
	//   - mgl64.Vec3: up basis vector
	Up() mgl64.Vec3

	// Basis returns forward, right and up in a single locked read.
	//
	// Returns:
	//   - forward, right, up: the orientation basis
	Basis() (forward, right, up mgl64.Vec3)

	// SetPosition moves the camera without touching its orientation.
	//
	// Parameters:
	//   - p: new world-space position
	SetPosition(p mgl64.Vec3)

	// SetBasis commits an orientation basis verbatim. No look-at recompute happens,
	// so incremental rotations applied by the caller are preserved.
	//
	// Parameters:
	//   - forward, right, up: the new basis vectors
	SetBasis(forward, right, up mgl64.Vec3)

	// LookAt orients the camera to face a world-space point, rebuilding right and up
	// from the world up axis. If the target coincides with the camera position the
	// default basis (looking down -Z) is used instead.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target mgl64.Vec3)

	// ViewMatrix returns the world-to-view matrix built from the current position and basis.
	//
	// Returns:
	//   - mgl64.Mat4: column-major view matrix
	ViewMatrix() mgl64.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at the origin looking down -Z, then applies options in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:      &sync.Mutex{},
		forward: defaultForward,
		right:   defaultRight,
		up:      defaultUp,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Forward() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward
}

func (c *cameraImpl) Right() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Basis() (forward, right, up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward, c.right, c.up
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) SetBasis(forward, right, up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forward = forward
	c.right = right
	c.up = up
}

func (c *cameraImpl) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target)
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl64.LookAtV(c.position, c.position.Add(c.forward), c.up)
}

// lookAt rebuilds the basis to face target.
// Caller must hold the mutex.
func (c *cameraImpl) lookAt(target mgl64.Vec3) {
	forward, right, up, ok := common.Basis(target.Sub(c.position))
	if !ok {
		c.forward, c.right, c.up = defaultForward, defaultRight, defaultUp
		return
	}
	c.forward, c.right, c.up = forward, right, up
}
