// package orbit computes camera orbit, zoom, and drag-rotation updates around
// a fixed target point, driven by normalized pointer and wheel events. The
// engine is pure: every call takes the current position and interaction state
// and returns replacements; nothing is stored between calls. Attaching input
// listeners and decoding raw platform events is the caller's job (see
// engine/window for the GLFW capture layer).
package orbit

import (
	"math"

	"github.com/Carmen-Shannon/orbit-go/common"
)

const (
	// zoomBase is the exponential base of the wheel damping curve.
	zoomBase = 0.98

	// polarEpsilon keeps the polar angle off the exact poles so the
	// spherical-to-Cartesian conversion never collapses, regardless of how
	// the polar bounds are configured.
	polarEpsilon = 2e-23
)

// upAxis is the canonical vertical axis the configured up vector is aligned to
// before spherical conversion.
var upAxis = common.Vector3{Y: 1}

// Apply processes one input event against the current camera position and
// interaction state, returning the new position and new state. It is total
// over finite inputs and never fails structurally: a zero-length position on a
// zoom or rotate divides by zero and degrades to non-finite output, and an up
// vector exactly anti-parallel to (0,1,0) degenerates the alignment rotation.
// Both are caller obligations, not checked preconditions.
//
// Rotate events are processed whether or not a drag is active; capture layers
// that want drag gating must filter events before dispatch.
//
// Parameters:
//   - opts: the per-call configuration
//   - ev: the normalized input event
//   - position: the current world-space camera position
//   - st: the interaction state returned by the previous call (or NewState)
//
// Returns:
//   - common.Vector3: the new camera position
//   - State: the new interaction state to persist for the next call
func Apply(opts Options, ev Event, position common.Vector3, st State) (common.Vector3, State) {
	switch ev.kind {
	case EventKindZoom:
		return applyZoom(opts, ev, position), st
	case EventKindRotate:
		return applyRotate(opts, ev, position, st)
	case EventKindDragStart:
		return position, State{dragging: true, lastPointer: common.Vector2{X: ev.clientX, Y: ev.clientY}}
	case EventKindDragEnd:
		return position, State{dragging: false, lastPointer: common.Vector2{X: ev.clientX, Y: ev.clientY}}
	}
	return position, st
}

// ApplyDefault processes one input event using DefaultOptions.
//
// Parameters:
//   - ev: the normalized input event
//   - position: the current world-space camera position
//   - st: the interaction state returned by the previous call (or NewState)
//
// Returns:
//   - common.Vector3: the new camera position
//   - State: the new interaction state to persist for the next call
func ApplyDefault(ev Event, position common.Vector3, st State) (common.Vector3, State) {
	return Apply(DefaultOptions(), ev, position, st)
}

// applyZoom scales the position along its radius. The wheel delta is damped
// logarithmically so a single large scroll tick cannot produce an outsized
// jump, then the scaled radius is clamped to the configured distance bounds.
func applyZoom(opts Options, ev Event, position common.Vector3) common.Vector3 {
	radius := position.Length()
	factor := math.Pow(zoomBase, opts.zoomSpeed+math.Log(1+math.Abs(float64(ev.deltaY))))

	var scale float64
	if ev.deltaY > 0 {
		// Wheel away: zoom out, clamp against the far bound.
		scale = math.Min(opts.maxDistance, radius/factor) / radius
	} else {
		scale = math.Max(opts.minDistance, radius*factor) / radius
	}
	return position.Scale(scale)
}

// applyRotate orbits the position around the target. The offset is rotated
// into a frame where the configured up vector is vertical, converted to
// spherical angles, advanced by the pointer delta (previous minus current,
// scaled so a full-viewport drag covers a full circle), clamped, and converted
// back. The radius is taken from the original offset so the rotation preserves
// distance exactly.
func applyRotate(opts Options, ev Event, position common.Vector3, st State) (common.Vector3, State) {
	upQuat := common.QuaternionBetween(opts.up, upAxis)
	upQuatInverse := upQuat.Conjugate().Normalize()

	offset := position.Sub(opts.target)
	radius := offset.Length()
	aligned := upQuat.Rotate(offset)

	theta := math.Atan2(aligned.X, aligned.Z)
	phi := math.Atan2(math.Sqrt(aligned.X*aligned.X+aligned.Z*aligned.Z), aligned.Y)

	theta += 2 * math.Pi * (st.lastPointer.X - ev.clientX) / ev.width * opts.rotateSpeed
	phi += 2 * math.Pi * (st.lastPointer.Y - ev.clientY) / ev.height * opts.rotateSpeed

	theta = clamp(theta, opts.minAzimuthAngle, opts.maxAzimuthAngle)
	phi = clamp(phi, opts.minPolarAngle, opts.maxPolarAngle)
	phi = clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	sinPhi := math.Sin(phi)
	rotated := common.Vector3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	}

	newPosition := opts.target.Add(upQuatInverse.Rotate(rotated))
	newState := State{dragging: st.dragging, lastPointer: common.Vector2{X: ev.clientX, Y: ev.clientY}}
	return newPosition, newState
}

// clamp limits v to [lo, hi]. When lo > hi the lower bound wins (min is
// applied first, max last); ranges are not validated.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
