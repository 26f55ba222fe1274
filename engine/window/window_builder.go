package window

import "github.com/Carmen-Shannon/orbit-go/engine/orbit"

// WindowBuilderOption is a functional option for configuring a captureWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *captureWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *captureWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *captureWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *captureWindow) {
		w.height = height
	}
}

// WithEventCallback sets the normalized input event callback up front, so no
// events are dropped between window creation and the first Set call.
//
// Parameters:
//   - callback: function receiving each orbit.Event
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithEventCallback(callback func(ev orbit.Event)) WindowBuilderOption {
	return func(w *captureWindow) {
		w.onEvent = callback
	}
}
