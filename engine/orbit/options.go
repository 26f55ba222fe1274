package orbit

import (
	"math"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// Options is the immutable per-call configuration for the transform engine.
// Build one from DefaultOptions or NewOptions; With produces an overridden
// copy without touching the original.
type Options struct {
	// minDistance, maxDistance clamp the orbit radius during zoom.
	// 0 <= minDistance <= maxDistance.
	minDistance, maxDistance float64

	// minPolarAngle, maxPolarAngle clamp the polar angle in radians,
	// measured from the up axis. 0 <= min <= max <= pi.
	minPolarAngle, maxPolarAngle float64

	// minAzimuthAngle, maxAzimuthAngle clamp the azimuth in radians.
	// The range may be unbounded.
	minAzimuthAngle, maxAzimuthAngle float64

	// rotateSpeed scales pointer deltas; zoomSpeed scales wheel damping.
	// Both are positive.
	rotateSpeed, zoomSpeed float64

	// up is the unit vector defining the orbit's polar axis.
	up common.Vector3

	// target is the world-space pivot point.
	target common.Vector3
}

// DefaultOptions returns the documented default configuration: unbounded zoom
// and azimuth ranges, full [0, pi] polar range, unit speeds, Y-up, and the
// origin as the orbit target.
//
// Returns:
//   - Options: the default configuration
func DefaultOptions() Options {
	return Options{
		minDistance:     0,
		maxDistance:     math.Inf(1),
		minPolarAngle:   0,
		maxPolarAngle:   math.Pi,
		minAzimuthAngle: math.Inf(-1),
		maxAzimuthAngle: math.Inf(1),
		rotateSpeed:     1,
		zoomSpeed:       1,
		up:              common.Vector3{Y: 1},
		target:          common.Vector3{},
	}
}

// NewOptions returns the default configuration with the given overrides
// applied in order.
//
// Parameters:
//   - options: functional options to apply over the defaults
//
// Returns:
//   - Options: the configured value
func NewOptions(options ...Option) Options {
	return DefaultOptions().With(options...)
}

// With returns a copy of o with the given overrides applied in order.
// The receiver is left unchanged.
//
// Parameters:
//   - options: functional options to apply
//
// Returns:
//   - Options: the overridden copy
func (o Options) With(options ...Option) Options {
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// MinDistance returns the lower zoom radius bound.
func (o Options) MinDistance() float64 {
	return o.minDistance
}

// MaxDistance returns the upper zoom radius bound.
func (o Options) MaxDistance() float64 {
	return o.maxDistance
}

// MinPolarAngle returns the lower polar angle bound in radians.
func (o Options) MinPolarAngle() float64 {
	return o.minPolarAngle
}

// MaxPolarAngle returns the upper polar angle bound in radians.
func (o Options) MaxPolarAngle() float64 {
	return o.maxPolarAngle
}

// MinAzimuthAngle returns the lower azimuth bound in radians.
func (o Options) MinAzimuthAngle() float64 {
	return o.minAzimuthAngle
}

// MaxAzimuthAngle returns the upper azimuth bound in radians.
func (o Options) MaxAzimuthAngle() float64 {
	return o.maxAzimuthAngle
}

// RotateSpeed returns the pointer delta multiplier.
func (o Options) RotateSpeed() float64 {
	return o.rotateSpeed
}

// ZoomSpeed returns the wheel damping speed term.
func (o Options) ZoomSpeed() float64 {
	return o.zoomSpeed
}

// Up returns the orbit's polar axis.
func (o Options) Up() common.Vector3 {
	return o.up
}

// Target returns the world-space pivot point.
func (o Options) Target() common.Vector3 {
	return o.target
}
