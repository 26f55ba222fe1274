package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/orbit-go/engine/orbit"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input capture. It owns the raw
// pointer/wheel decoding and hands the orbit engine normalized events:
// a left-button press becomes a drag-start, movement with the button held
// becomes rotates, release becomes a drag-end, and scroll becomes zooms.
// The window itself never touches camera state — it is the capture-layer
// collaborator the engine expects in front of it.
type Window interface {
	// SetEventCallback sets the function receiving normalized input events.
	// Events arrive on the thread running ProcessMessages.
	//
	// Parameters:
	//   - callback: function receiving each orbit.Event (or nil to disable)
	SetEventCallback(callback func(ev orbit.Event))

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

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

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
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// captureWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type captureWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width, height are the current framebuffer dimensions in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onEvent receives normalized input events for the orbit engine.
	onEvent func(ev orbit.Event)

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)
}

var _ Window = &captureWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (already spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &captureWindow{
		title:  "orbit-go",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// emit forwards a normalized event to the configured callback.
func (w *captureWindow) emit(ev orbit.Event) {
	if w.onEvent != nil {
		w.onEvent(ev)
	}
}

func (w *captureWindow) SetEventCallback(callback func(ev orbit.Event)) {
	w.onEvent = callback
}

func (w *captureWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *captureWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *captureWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *captureWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *captureWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *captureWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *captureWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *captureWindow) ProcessMessages() {
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

func (w *captureWindow) Width() int {
	return w.width
}

func (w *captureWindow) Height() int {
	return w.height
}
