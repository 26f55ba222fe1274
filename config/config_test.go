package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/orbit-go/common"
)

const sampleYAML = `
display:
  width: 800
  height: 600
  title: test window
camera:
  position: {x: 0, y: 0, z: 30}
  target: {x: 1, y: 2, z: 3}
  up: {x: 0, y: 2, z: 0}
  min_distance: 5
  max_distance: 100
  min_polar_angle: 0.1
  max_polar_angle: 1.5
  rotate_speed: 2
  zoom_speed: 0.5
grid:
  extent: 4
  spacing: 2.5
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Display.Width != 800 || cfg.Display.Height != 600 {
		t.Errorf("display: got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.Title != "test window" {
		t.Errorf("title: got %q", cfg.Display.Title)
	}
	if cfg.Camera.Position.Vector3() != (common.Vector3{Z: 30}) {
		t.Errorf("position: got %v", cfg.Camera.Position.Vector3())
	}
	if cfg.Grid.Extent != 4 || cfg.Grid.Spacing != 2.5 {
		t.Errorf("grid: got %+v", cfg.Grid)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestOrbitOptionsMapping(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opts := cfg.OrbitOptions()
	if opts.Target() != (common.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("target: got %v", opts.Target())
	}
	// The configured up vector is normalized before use.
	if opts.Up() != (common.Vector3{Y: 1}) {
		t.Errorf("up: got %v", opts.Up())
	}
	if opts.MinDistance() != 5 || opts.MaxDistance() != 100 {
		t.Errorf("distance bounds: got [%v, %v]", opts.MinDistance(), opts.MaxDistance())
	}
	if opts.MinPolarAngle() != 0.1 || opts.MaxPolarAngle() != 1.5 {
		t.Errorf("polar bounds: got [%v, %v]", opts.MinPolarAngle(), opts.MaxPolarAngle())
	}
	if opts.RotateSpeed() != 2 || opts.ZoomSpeed() != 0.5 {
		t.Errorf("speeds: got rotate=%v zoom=%v", opts.RotateSpeed(), opts.ZoomSpeed())
	}
}

func TestOrbitOptionsDefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	opts := cfg.OrbitOptions()

	if !math.IsInf(opts.MaxDistance(), 1) {
		t.Errorf("unset max distance must stay unbounded, got %v", opts.MaxDistance())
	}
	if opts.MaxPolarAngle() != math.Pi {
		t.Errorf("unset polar bounds must stay [0, pi], got max %v", opts.MaxPolarAngle())
	}
	if opts.Up() != (common.Vector3{Y: 1}) {
		t.Errorf("unset up must stay Y-up, got %v", opts.Up())
	}
	if opts.RotateSpeed() != 1 || opts.ZoomSpeed() != 1 {
		t.Errorf("unset speeds must stay 1, got rotate=%v zoom=%v", opts.RotateSpeed(), opts.ZoomSpeed())
	}
}

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		t.Errorf("default display: %+v", cfg.Display)
	}
	opts := cfg.OrbitOptions()
	if opts.MinDistance() >= opts.MaxDistance() {
		t.Errorf("default distance bounds inverted: [%v, %v]", opts.MinDistance(), opts.MaxDistance())
	}
	if opts.MinPolarAngle() >= opts.MaxPolarAngle() {
		t.Errorf("default polar bounds inverted: [%v, %v]", opts.MinPolarAngle(), opts.MaxPolarAngle())
	}
}
