package orbit

// EventKind discriminates the input event variants consumed by the engine.
type EventKind int

const (
	// EventKindZoom is a mouse wheel / scroll event.
	EventKindZoom EventKind = iota
	// EventKindRotate is a pointer move interpreted as an orbit rotation.
	EventKindRotate
	// EventKindDragStart begins a drag gesture.
	EventKindDragStart
	// EventKindDragEnd ends a drag gesture.
	EventKindDragEnd
)

// Event is a normalized input event. It carries no platform resources and is
// immutable; the capture layer that decodes raw pointer/wheel input builds one
// via the constructor matching the event kind. Dispatch inside the engine is a
// single flat switch on Kind.
type Event struct {
	kind EventKind

	// deltaY is the wheel vertical delta, platform-native sign convention
	// (positive = scroll down/away = zoom out). Zoom events only.
	deltaY int

	// clientX, clientY are the pointer's viewport-relative coordinates.
	// Pointer events only.
	clientX, clientY float64

	// width, height are the observed element's dimensions in pixels, used to
	// normalize drag distance to an angle. Pointer events only.
	width, height float64
}

// Zoom creates a wheel event with the given vertical delta.
//
// Parameters:
//   - deltaY: signed wheel delta (positive = scroll away = zoom out)
//
// Returns:
//   - Event: the zoom event
func Zoom(deltaY int) Event {
	return Event{kind: EventKindZoom, deltaY: deltaY}
}

// Rotate creates a pointer-move event interpreted as an orbit rotation.
//
// Parameters:
//   - clientX, clientY: pointer coordinates relative to the viewport
//   - width, height: viewport dimensions in pixels
//
// Returns:
//   - Event: the rotate event
func Rotate(clientX, clientY, width, height float64) Event {
	return Event{kind: EventKindRotate, clientX: clientX, clientY: clientY, width: width, height: height}
}

// DragStart creates a pointer-down event beginning a drag gesture.
//
// Parameters:
//   - clientX, clientY: pointer coordinates relative to the viewport
//   - width, height: viewport dimensions in pixels
//
// Returns:
//   - Event: the drag-start event
func DragStart(clientX, clientY, width, height float64) Event {
	return Event{kind: EventKindDragStart, clientX: clientX, clientY: clientY, width: width, height: height}
}

// DragEnd creates a pointer-up event ending a drag gesture.
//
// Parameters:
//   - clientX, clientY: pointer coordinates relative to the viewport
//   - width, height: viewport dimensions in pixels
//
// Returns:
//   - Event: the drag-end event
func DragEnd(clientX, clientY, width, height float64) Event {
	return Event{kind: EventKindDragEnd, clientX: clientX, clientY: clientY, width: width, height: height}
}

// Kind returns the event's discriminant.
func (e Event) Kind() EventKind {
	return e.kind
}
