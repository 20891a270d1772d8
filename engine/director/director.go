// Package director runs the per-frame application logic: it turns key state into
// camera input and actions, drives the cinematic controller, and keeps the
// resolution preset and GPU camera uniform in step.
package director

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/eventhorizon/engine/camera"
	"github.com/Carmen-Shannon/eventhorizon/engine/input"
	"github.com/Carmen-Shannon/eventhorizon/engine/resolution"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

const (
	// DefaultFov is the vertical field of view in radians.
	DefaultFov = 45.0 * math.Pi / 180.0
	// DefaultNear is the near clip distance.
	DefaultNear = 0.01
	// DefaultFar is the far clip distance.
	DefaultFar = 10000.0
)

// Resizer changes the output size, normally the window.
type Resizer interface {
	SetSize(width, height int)
}

// TaskSubmitter runs work off the frame loop.
type TaskSubmitter interface {
	SubmitTask(name string, task func() error)
}

// Director owns one frame of application logic.
type Director interface {
	// Tick handles newly pressed action keys, then advances the controller by dt
	// with the held camera keys.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous frame
	Tick(dt float64)

	// Render builds the GPU camera uniform for the current camera and hands it to the sink.
	//
	// Returns:
	//   - camera.GPUCameraUniform: the uniform built this frame
	Render() camera.GPUCameraUniform

	// Resize records the output size used for the projection aspect ratio.
	//
	// Parameters:
	//   - width: output width in pixels
	//   - height: output height in pixels
	Resize(width, height int)
}

type directorImpl struct {
	mu *sync.Mutex

	keys       input.KeyReader
	keymap     *input.Keymap
	controller camera.CinematicController
	registry   resolution.Registry

	resizer Resizer
	tasks   TaskSubmitter
	sink    func(data []byte)

	fov, near, far float64
	aspect         float64

	logger zerolog.Logger
}

var _ Director = &directorImpl{}

// NewDirector creates a Director reading keys and driving the given controller and registry.
// The aspect ratio starts at the registry's current preset.
//
// Parameters:
//   - keys: the key state source
//   - controller: the cinematic controller to drive
//   - registry: the resolution preset registry
//   - options: functional options to configure the director
//
// Returns:
//   - Director: the new director
func NewDirector(keys input.KeyReader, controller camera.CinematicController, registry resolution.Registry, options ...DirectorOption) Director {
	d := &directorImpl{
		mu:         &sync.Mutex{},
		keys:       keys,
		keymap:     input.NewKeymap(input.DefaultBindings()),
		controller: controller,
		registry:   registry,
		fov:        DefaultFov,
		near:       DefaultNear,
		far:        DefaultFar,
		logger:     zerolog.Nop(),
	}
	p := registry.Current()
	d.aspect = float64(p.Width) / float64(p.Height)

	for _, option := range options {
		option(d)
	}
	return d
}

func (d *directorImpl) Tick(dt float64) {
	for _, action := range d.keymap.Actions(d.keys) {
		d.handle(action)
	}
	d.controller.Update(dt, d.keymap.Snapshot(d.keys))
}

// handle runs one triggered action.
func (d *directorImpl) handle(action input.Action) {
	switch action {
	case input.ActionCycleMode:
		mode := d.controller.CycleMode()
		d.logger.Info().Str("mode", mode.String()).Msg("camera mode changed")
	case input.ActionReset:
		d.controller.Reset()
		d.logger.Info().Str("mode", d.controller.ModeName()).Msg("camera reset")
	case input.ActionNextResolution:
		d.registry.Next()
		d.applyResolution()
	case input.ActionPreviousResolution:
		d.registry.Previous()
		d.applyResolution()
	case input.ActionSaveResolution:
		d.save()
	default:
		d.logger.Warn().Stringer("action", action).Msg("unhandled action")
	}
}

// applyResolution resizes the output to the registry's current preset.
func (d *directorImpl) applyResolution() {
	p := d.registry.Current()
	d.logger.Info().
		Str("preset", p.Label).
		Int("width", p.Width).
		Int("height", p.Height).
		Msg("resolution changed")
	if d.resizer != nil {
		d.resizer.SetSize(p.Width, p.Height)
	}
}

// save persists the selection made at the time of the key press, on the task pool
// when one is set. Later preset changes do not affect a queued save.
func (d *directorImpl) save() {
	idx := d.registry.CurrentIndex()
	if d.tasks == nil {
		d.registry.PersistIndex(idx)
		return
	}
	d.tasks.SubmitTask("save_resolution", func() error {
		d.registry.PersistIndex(idx)
		return nil
	})
}

func (d *directorImpl) Render() camera.GPUCameraUniform {
	d.mu.Lock()
	aspect := d.aspect
	d.mu.Unlock()

	proj := mgl64.Perspective(d.fov, aspect, d.near, d.far)
	uniform := camera.NewGPUCameraUniform(d.controller.Camera(), proj)
	if d.sink != nil {
		d.sink(uniform.Marshal())
	}
	return uniform
}

func (d *directorImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.aspect = float64(width) / float64(height)
}
