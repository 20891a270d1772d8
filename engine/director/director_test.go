package director

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/Carmen-Shannon/eventhorizon/engine/camera"
	"github.com/Carmen-Shannon/eventhorizon/engine/resolution"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[uint32]bool

func (f fakeKeys) IsKeyDown(keyCode uint32) bool {
	return f[keyCode]
}

type fakeResizer struct {
	sizes [][2]int
}

func (f *fakeResizer) SetSize(width, height int) {
	f.sizes = append(f.sizes, [2]int{width, height})
}

type fakeTasks struct {
	names []string
}

func (f *fakeTasks) SubmitTask(name string, task func() error) {
	f.names = append(f.names, name)
	_ = task()
}

// queuedTasks holds submitted tasks until drain is called, like a busy worker pool.
type queuedTasks struct {
	pending []func() error
}

func (q *queuedTasks) SubmitTask(_ string, task func() error) {
	q.pending = append(q.pending, task)
}

func (q *queuedTasks) drain() {
	for _, task := range q.pending {
		_ = task()
	}
	q.pending = nil
}

type fixture struct {
	keys       fakeKeys
	controller camera.CinematicController
	registry   resolution.Registry
	path       string
}

func newFixture(t *testing.T, options ...DirectorOption) (*fixture, Director) {
	t.Helper()
	f := &fixture{keys: fakeKeys{}}
	f.path = filepath.Join(t.TempDir(), resolution.ConfigFileName)
	f.registry = resolution.NewRegistry(resolution.WithConfigPath(f.path))

	start := mgl64.Vec3{0, 2, 20}
	cam := camera.NewCamera(camera.WithPosition(start.X(), start.Y(), start.Z()), camera.WithLookAt(0, 0, 0))
	f.controller = camera.NewCinematicController(cam, start, camera.WithSmoothing(false))
	return f, NewDirector(f.keys, f.controller, f.registry, options...)
}

func TestTickCyclesModeOncePerPress(t *testing.T) {
	f, d := newFixture(t)

	f.keys[common.KeyC] = true
	d.Tick(1.0 / 60)
	assert.Equal(t, camera.ModeSmoothOrbit, f.controller.Mode())

	d.Tick(1.0 / 60)
	assert.Equal(t, camera.ModeSmoothOrbit, f.controller.Mode(), "held key fires once")

	f.keys[common.KeyC] = false
	d.Tick(1.0 / 60)
	f.keys[common.KeyC] = true
	d.Tick(1.0 / 60)
	assert.Equal(t, camera.ModeWaveMotion, f.controller.Mode())
}

func TestTickResetRestoresInitialPosition(t *testing.T) {
	f, d := newFixture(t)

	f.keys[common.KeyD] = true
	for range 30 {
		d.Tick(1.0 / 60)
	}
	assert.NotEqual(t, f.controller.InitialPosition(), f.controller.Camera().Position())

	f.keys[common.KeyD] = false
	f.keys[common.KeyR] = true
	d.Tick(0)
	assert.Equal(t, f.controller.InitialPosition(), f.controller.Camera().Position())
}

func TestTickMovesCameraFromHeldKeys(t *testing.T) {
	f, d := newFixture(t)
	start := f.controller.Camera().Position()

	f.keys[common.KeyD] = true
	d.Tick(0.5)

	moved := f.controller.Camera().Position().Sub(start)
	assert.InDelta(t, camera.DefaultMoveSpeed*0.5, moved.Len(), 1e-9)
	assert.Less(t, f.controller.Camera().Position().Len(), start.Len(), "forward points at the origin")
}

func TestResolutionKeysResizeOutput(t *testing.T) {
	resizer := &fakeResizer{}
	f, d := newFixture(t, WithResizer(resizer))
	require.Equal(t, resolution.DefaultIndex, f.registry.CurrentIndex())

	f.keys[common.KeyRightBracket] = true
	d.Tick(1.0 / 60)
	f.keys[common.KeyRightBracket] = false
	assert.Equal(t, "1440p QHD", f.registry.CurrentName())

	f.keys[common.KeyLeftBracket] = true
	d.Tick(1.0 / 60)
	d.Tick(1.0 / 60)
	f.keys[common.KeyLeftBracket] = false
	d.Tick(1.0 / 60)
	f.keys[common.KeyLeftBracket] = true
	d.Tick(1.0 / 60)
	assert.Equal(t, "720p HD", f.registry.CurrentName())

	assert.Equal(t, [][2]int{{2560, 1440}, {1920, 1080}, {1280, 720}}, resizer.sizes)
}

func TestSaveKeyUsesTaskSubmitter(t *testing.T) {
	tasks := &fakeTasks{}
	f, d := newFixture(t, WithTaskSubmitter(tasks))
	f.registry.Select(2)

	f.keys[common.KeyP] = true
	d.Tick(1.0 / 60)

	assert.Equal(t, []string{"save_resolution"}, tasks.names)
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", string(data))
}

func TestQueuedSaveWritesIndexFromKeyPress(t *testing.T) {
	tasks := &queuedTasks{}
	f, d := newFixture(t, WithTaskSubmitter(tasks))
	require.Equal(t, resolution.DefaultIndex, f.registry.CurrentIndex())

	f.keys[common.KeyP] = true
	d.Tick(1.0 / 60)
	f.keys[common.KeyP] = false

	f.keys[common.KeyRightBracket] = true
	d.Tick(1.0 / 60)
	require.Equal(t, resolution.DefaultIndex+1, f.registry.CurrentIndex())
	require.Len(t, tasks.pending, 1)

	tasks.drain()
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Equal(t, "5\n", string(data))
}

func TestQueuedSavesKeepTheirOwnIndex(t *testing.T) {
	tasks := &queuedTasks{}
	f, d := newFixture(t, WithTaskSubmitter(tasks))

	f.registry.Select(3)
	f.keys[common.KeyP] = true
	d.Tick(1.0 / 60)
	f.keys[common.KeyP] = false
	d.Tick(1.0 / 60)

	f.registry.Select(8)
	f.keys[common.KeyP] = true
	d.Tick(1.0 / 60)
	require.Len(t, tasks.pending, 2)

	// Run the later save first, then the earlier one.
	_ = tasks.pending[1]()
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Equal(t, "8\n", string(data))

	_ = tasks.pending[0]()
	data, err = os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Equal(t, "3\n", string(data))
}

func TestSaveKeyWithoutSubmitterWritesDirectly(t *testing.T) {
	f, d := newFixture(t)
	f.registry.Select(9)

	f.keys[common.KeyP] = true
	d.Tick(1.0 / 60)

	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Equal(t, "9\n", string(data))
}

func TestResolutionIsOnlySavedOnRequest(t *testing.T) {
	f, d := newFixture(t)

	f.keys[common.KeyRightBracket] = true
	d.Tick(1.0 / 60)

	_, err := os.Stat(f.path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, resolution.DefaultIndex, resolution.NewRegistry(resolution.WithConfigPath(f.path)).CurrentIndex())
}

func TestRenderBuildsUniform(t *testing.T) {
	var received []byte
	f, d := newFixture(t, WithUniformSink(func(data []byte) { received = data }))
	d.Resize(1000, 1000)
	d.Resize(0, 50)

	u := d.Render()
	require.Len(t, received, 112)
	assert.Equal(t, u.Marshal(), received)

	cam := f.controller.Camera()
	expected := mgl64.Perspective(DefaultFov, 1, DefaultNear, DefaultFar).Mul4(cam.ViewMatrix())
	for i := range 16 {
		assert.InDelta(t, expected[i], float64(u.ViewProj[i]), 1e-4)
	}
	assert.Equal(t, float32(20), u.CameraPosition[2])
}

func TestWithProjectionIgnoresInvalidValues(t *testing.T) {
	_, d := newFixture(t, WithProjection(-1, 0, 0.001))
	impl := d.(*directorImpl)
	assert.Equal(t, DefaultFov, impl.fov)
	assert.Equal(t, DefaultNear, impl.near)
	assert.Equal(t, DefaultFar, impl.far)
	assert.InDelta(t, 1920.0/1080.0, impl.aspect, 1e-12)
}
