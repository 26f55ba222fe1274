// Command orbitdemo is the reference integration of the orbit engine: a GLFW
// window captures pointer and wheel input, every normalized event runs through
// orbit.Apply against a persisted position and state, and the resulting camera
// position drives a WebGPU render of a spinning cube grid.
package main

import (
	"flag"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/config"
	"github.com/Carmen-Shannon/orbit-go/engine/orbit"
	"github.com/Carmen-Shannon/orbit-go/engine/profiler"
	"github.com/Carmen-Shannon/orbit-go/engine/window"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults apply when empty)")
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
		}
		cfg = loaded
	}

	// The caller-owned trio the engine round-trips: options, position, state.
	opts := cfg.OrbitOptions()
	position := cfg.Camera.Position.Vector3()
	state := orbit.NewState()

	prof := profiler.NewProfiler(profiler.WithInterval(5 * time.Second))

	win := window.NewWindow(
		window.WithTitle(cfg.Display.Title),
		window.WithWidth(cfg.Display.Width),
		window.WithHeight(cfg.Display.Height),
		window.WithEventCallback(func(ev orbit.Event) {
			position, state = orbit.Apply(opts, ev, position, state)
			prof.CountEvent()
		}),
	)
	defer func() { _ = win.Close() }()

	grid := newCubeGrid(cfg.Grid)
	r, err := newCubeRenderer(win, grid.count())
	if err != nil {
		logger.Fatal("failed to initialize renderer", zap.Error(err))
	}
	defer r.release()

	win.SetResizeCallback(r.resize)

	// Per-frame instance prep fans out across a reusable worker pool; a
	// WaitGroup provides the frame barrier since pool workers idle-exit.
	pool := worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, time.Second)

	view := make([]float32, 16)
	proj := make([]float32, 16)
	viewProj := make([]float32, 16)
	start := time.Now()

	win.SetUpdateCallback(func() {
		width, height := win.Width(), win.Height()
		if width <= 0 || height <= 0 {
			return
		}

		grid.update(pool, time.Since(start).Seconds()*0.4)

		common.LookAt(view, position, opts.Target(), opts.Up())
		common.Perspective(proj, 45.0*math.Pi/180.0, float64(width)/float64(height), 0.1, 1000)
		common.Mul4(viewProj, proj, view)

		if frameErr := r.frame(viewProj, grid.instances); frameErr != nil {
			logger.Warn("frame failed", zap.Error(frameErr))
		}
		prof.Tick()
	})

	logger.Info("orbit demo running",
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()),
		zap.Int("cubes", grid.count()),
		zap.Float64("min_distance", opts.MinDistance()),
		zap.Float64("max_distance", opts.MaxDistance()),
	)

	win.ProcessMessages()

	logger.Info("orbit demo stopped", zap.Float64("final_radius", position.Sub(opts.Target()).Length()))
}

// cubeGrid holds the flat per-instance model matrix data for the demo scene.
type cubeGrid struct {
	extent    int
	spacing   float64
	instances []float32
}

func newCubeGrid(cfg config.GridConfig) *cubeGrid {
	extent := cfg.Extent
	if extent < 1 {
		extent = 1
	}
	return &cubeGrid{
		extent:    extent,
		spacing:   cfg.Spacing,
		instances: make([]float32, extent*extent*16),
	}
}

func (g *cubeGrid) count() int {
	return g.extent * g.extent
}

// update rebuilds every instance's model matrix, one grid row per pool task.
// Rows write disjoint slices of the instance data, so no locking is needed.
func (g *cubeGrid) update(pool worker.DynamicWorkerPool, angle float64) {
	var wg sync.WaitGroup
	half := float64(g.extent-1) / 2

	for row := 0; row < g.extent; row++ {
		wg.Add(1)
		rowCap := row // capture for closure
		pool.SubmitTask(worker.Task{
			ID: rowCap,
			Do: func() (any, error) {
				defer wg.Done()
				for col := 0; col < g.extent; col++ {
					idx := (rowCap*g.extent + col) * 16
					pos := common.Vector3{
						X: (float64(col) - half) * g.spacing,
						Z: (float64(rowCap) - half) * g.spacing,
					}
					yaw := angle + 0.35*float64(rowCap+col)
					common.ModelMatrix(g.instances[idx:idx+16], pos, yaw, 1)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
