package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and keyboard state.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// IsKeyDown reports whether the key is held as of the last processed events.
	// Unknown or out-of-range codes report false.
	//
	// Parameters:
	//   - keyCode: GLFW key code
	//
	// Returns:
	//   - bool: true while the key is held
	IsKeyDown(keyCode uint32) bool

	// SetSize requests a new client area size. The stored size follows once the
	// platform reports the resulting framebuffer size.
	//
	// Parameters:
	//   - width: requested width in pixels
	//   - height: requested height in pixels
	SetSize(width, height int)

	// SetTitle replaces the title bar text.
	//
	// Parameters:
	//   - title: the window title text
	SetTitle(title string)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, key state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// closeOnEscape makes the Escape key close the window.
	closeOnEscape bool

	// keys holds the held state of every GLFW key code.
	keys [common.MaxKeyCode]bool
	mu   *sync.Mutex

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Panics if the platform window cannot be created; use TryNewWindow to handle the error.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w, err := TryNewWindow(options...)
	if err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// TryNewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: error if the platform window cannot be created
func TryNewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:         "Event Horizon",
		maxWidth:      7680,
		maxHeight:     4320,
		minWidth:      256,
		minHeight:     144,
		width:         1920,
		height:        1080,
		closeOnEscape: true,
		mu:            &sync.Mutex{},
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) IsKeyDown(keyCode uint32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if keyCode >= uint32(len(w.keys)) {
		return false
	}
	return w.keys[keyCode]
}

// setKey records a key transition. Codes outside the table are dropped.
func (w *engineWindow) setKey(keyCode int, down bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if keyCode < 0 || keyCode >= len(w.keys) {
		return
	}
	w.keys[keyCode] = down
}

// releaseAllKeys clears the key table, used when focus is lost so no key sticks.
func (w *engineWindow) releaseAllKeys() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys = [common.MaxKeyCode]bool{}
}

// setSize stores the framebuffer size and notifies the resize callback.
func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	w.width = width
	w.height = height
	w.mu.Unlock()

	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) SetSize(width, height int) {
	width = min(max(width, w.minWidth), w.maxWidth)
	height = min(max(height, w.minHeight), w.maxHeight)
	platformSetSize(w, width, height)
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}
