package orbit

import "github.com/Carmen-Shannon/orbit-go/common"

// State tracks the drag gesture lifecycle between calls: whether a drag is
// active and the last observed pointer coordinates. It is opaque by design —
// callers obtain one from NewState, thread it through every Apply call, and
// persist the returned value verbatim for the next call. The last pointer is
// only meaningful while interpreting a rotate relative to the previous sample;
// outside a drag it is stale and unused.
//
// State is a value: Apply never mutates its input, it returns a replacement.
// Calls against the same logical camera must be serialized — feeding one stale
// state into two concurrent calls silently discards one of the updates.
type State struct {
	dragging    bool
	lastPointer common.Vector2
}

// NewState returns the initial idle state. The last-pointer value is zeroed
// and is not read until a drag begins.
//
// Returns:
//   - State: the idle state
func NewState() State {
	return State{}
}
