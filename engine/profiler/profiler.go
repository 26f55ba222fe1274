// package profiler provides lightweight frame-loop instrumentation for
// applications driving the orbit engine from a render loop.
package profiler

import (
	"log"
	"time"
)

// Profiler tracks frame rate, frame time, and input event throughput.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount int
	eventCount int
	worstFrame time.Duration
	lastFrame  time.Time
	lastTick   time.Time
	interval   time.Duration
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often accumulated stats are logged.
//
// Parameters:
//   - interval: logging interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.interval = interval
	}
}

// NewProfiler creates a new Profiler. The logging interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	now := time.Now()
	p := &Profiler{
		lastFrame: now,
		lastTick:  now,
		interval:  time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// CountEvent records one processed input event for the current interval.
func (p *Profiler) CountEvent() {
	p.eventCount++
}

// Tick should be called once per frame. Tracks the worst frame time seen in
// the current interval and logs FPS, worst frame, and events/sec when the
// interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	frame := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++
	if frame > p.worstFrame {
		p.worstFrame = frame
	}

	elapsed := now.Sub(p.lastTick)
	if elapsed < p.interval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	eventsPerSec := float64(p.eventCount) / elapsed.Seconds()
	log.Printf("[Profiler] FPS: %.2f | Worst frame: %.2f ms | Input events: %.1f/s",
		fps, float64(p.worstFrame.Microseconds())/1000.0, eventsPerSec)

	p.frameCount = 0
	p.eventCount = 0
	p.worstFrame = 0
	p.lastTick = now
	return true
}
