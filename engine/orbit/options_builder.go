package orbit

import "github.com/Carmen-Shannon/orbit-go/common"

// Option is a functional option for configuring Options.
// Use the With* functions to create options.
type Option func(*Options)

// WithDistanceBounds sets the minimum and maximum orbit radius for zoom.
// Bounds are not validated; callers must supply 0 <= min <= max.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - Option: option function to apply
func WithDistanceBounds(min, max float64) Option {
	return func(o *Options) {
		o.minDistance = min
		o.maxDistance = max
	}
}

// WithPolarBounds sets the minimum and maximum polar angle in radians,
// measured from the up axis. Bounds are not validated; callers must supply
// 0 <= min <= max <= pi. An inverted range clamps to the lower bound.
//
// Parameters:
//   - min: minimum polar angle in radians
//   - max: maximum polar angle in radians
//
// Returns:
//   - Option: option function to apply
func WithPolarBounds(min, max float64) Option {
	return func(o *Options) {
		o.minPolarAngle = min
		o.maxPolarAngle = max
	}
}

// WithAzimuthBounds sets the minimum and maximum azimuth in radians.
// The range may be unbounded (use ±Inf). An inverted range clamps to the
// lower bound.
//
// Parameters:
//   - min: minimum azimuth in radians
//   - max: maximum azimuth in radians
//
// Returns:
//   - Option: option function to apply
func WithAzimuthBounds(min, max float64) Option {
	return func(o *Options) {
		o.minAzimuthAngle = min
		o.maxAzimuthAngle = max
	}
}

// WithRotateSpeed sets the pointer delta multiplier. A full-viewport drag
// covers 2*pi*speed radians.
//
// Parameters:
//   - speed: positive multiplier for pointer movement
//
// Returns:
//   - Option: option function to apply
func WithRotateSpeed(speed float64) Option {
	return func(o *Options) {
		o.rotateSpeed = speed
	}
}

// WithZoomSpeed sets the wheel damping speed term.
//
// Parameters:
//   - speed: positive zoom speed
//
// Returns:
//   - Option: option function to apply
func WithZoomSpeed(speed float64) Option {
	return func(o *Options) {
		o.zoomSpeed = speed
	}
}

// WithUp sets the unit vector defining the orbit's polar axis.
// An up vector exactly anti-parallel to (0,1,0) degenerates the alignment
// rotation and produces unspecified results.
//
// Parameters:
//   - up: unit polar axis
//
// Returns:
//   - Option: option function to apply
func WithUp(up common.Vector3) Option {
	return func(o *Options) {
		o.up = up
	}
}

// WithTarget sets the world-space pivot point the camera orbits around.
//
// Parameters:
//   - target: world-space pivot
//
// Returns:
//   - Option: option function to apply
func WithTarget(target common.Vector3) Option {
	return func(o *Options) {
		o.target = target
	}
}
