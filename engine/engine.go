package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/eventhorizon/engine/profiler"
	"github.com/Carmen-Shannon/eventhorizon/engine/window"
	"github.com/rs/zerolog"
)

// engine implements the Engine interface.
// Drives the per-frame loop on the window thread and owns the background task pool.
type engine struct {
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	closeOnce   sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float64)
	renderCallback func(deltaTime float64)
	resizeCallback func(width, height int)

	lastFrame        time.Time
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// taskPool runs work that must stay off the frame loop, such as file I/O.
	// Workers idle-exit, so tasks are tracked with a WaitGroup rather than pool.Wait().
	taskPool    worker.DynamicWorkerPool
	taskWorkers int
	tasks       sync.WaitGroup
	taskMu      *sync.Mutex
	nextTaskID  int

	logger zerolog.Logger
}

// Engine is the main entry point for the engine.
// It runs the frame loop on the window thread and manages the window lifetime.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called first in every frame.
	// Use this for input processing and camera updates.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetRenderCallback registers the function called after the tick callback in every frame.
	// Use this to hand the updated camera to the renderer.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float64))

	// SetResizeCallback registers the function called when the window framebuffer changes size.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SubmitTask queues work on the background pool so it never blocks a frame.
	// Errors returned by the task are logged at warn level.
	//
	// Parameters:
	//   - name: short task name used in logs
	//   - task: the work to run
	SubmitTask(name string, task func() error)

	// Run starts the frame loop and blocks until the window closes.
	// Waits for queued background tasks, then closes the window.
	Run()

	// Quit stops the frame loop at the start of the next frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, workers, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		taskWorkers: 1,
		taskMu:      &sync.Mutex{},
		logger:      zerolog.Nop(),
	}

	for _, opt := range options {
		opt(e)
	}

	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger.With().Str("component", "profiler").Logger()))

	// Queue size of 256 leaves headroom for bursts of key-triggered saves.
	e.taskPool = worker.NewDynamicWorkerPool(e.taskWorkers, 256, 1*time.Second)

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			e.logger.Debug().Int("width", width).Int("height", height).Msg("framebuffer resized")
			if e.resizeCallback != nil {
				e.resizeCallback(width, height)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		e.logger.Error().Msg("engine has no window, nothing to run")
		return
	}

	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	e.signalQuit()
	e.tasks.Wait()
	e.closeWindow()
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// closeWindow releases the platform window once.
func (e *engine) closeWindow() {
	e.closeOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("failed to close window")
		}
	})
}

// frame runs one iteration of the loop: tick, then render, then profiling and frame limiting.
// It is called from the window message loop, so callbacks always run on the window thread.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) frame() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("frame recovered from panic")
			e.signalQuit()
		}
	}()

	select {
	case <-e.quitChannel:
		e.closeWindow()
		return
	default:
	}

	now := time.Now()
	dt := now.Sub(e.lastFrame).Seconds()
	e.lastFrame = now

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		elapsed := time.Since(now)
		if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) SubmitTask(name string, task func() error) {
	e.taskMu.Lock()
	id := e.nextTaskID
	e.nextTaskID++
	e.taskMu.Unlock()

	e.tasks.Add(1)
	e.taskPool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer e.tasks.Done()
			if err := task(); err != nil {
				e.logger.Warn().Err(err).Str("task", name).Int("task_id", id).Msg("background task failed")
				return nil, err
			}
			e.logger.Debug().Str("task", name).Int("task_id", id).Msg("background task done")
			return nil, nil
		},
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float64)) {
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frame rate cap to the minimum frame duration; non-positive means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
