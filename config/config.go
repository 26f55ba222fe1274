// package config loads the demo application's YAML configuration: window
// dimensions, camera placement and orbit constraints, and the demo scene grid.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/orbit"
	"gopkg.in/yaml.v3"
)

// Config holds all demo configuration values.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Grid    GridConfig    `yaml:"grid"`
}

// DisplayConfig configures the window.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig configures the initial camera placement and the orbit engine.
// Zero max bounds mean unbounded; zero speeds fall back to 1.
type CameraConfig struct {
	Position        VectorConfig `yaml:"position"`
	Target          VectorConfig `yaml:"target"`
	Up              VectorConfig `yaml:"up"`
	MinDistance     float64      `yaml:"min_distance"`
	MaxDistance     float64      `yaml:"max_distance"`
	MinPolarAngle   float64      `yaml:"min_polar_angle"`
	MaxPolarAngle   float64      `yaml:"max_polar_angle"`
	MinAzimuthAngle float64      `yaml:"min_azimuth_angle"`
	MaxAzimuthAngle float64      `yaml:"max_azimuth_angle"`
	RotateSpeed     float64      `yaml:"rotate_speed"`
	ZoomSpeed       float64      `yaml:"zoom_speed"`
}

// VectorConfig is a YAML-friendly 3D vector.
type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vector3 converts the YAML vector to a common.Vector3.
func (v VectorConfig) Vector3() common.Vector3 {
	return common.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// GridConfig configures the demo cube grid.
type GridConfig struct {
	// Extent is the number of cubes per side; the grid is Extent x Extent.
	Extent int `yaml:"extent"`
	// Spacing is the world-space distance between neighboring cubes.
	Spacing float64 `yaml:"spacing"`
}

// Default returns the configuration used when no file is supplied: a 1280x720
// window, a camera 40 units out on a raised diagonal orbiting the origin with
// sane distance bounds, and an 8x8 cube grid.
//
// Returns:
//   - *Config: the default configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			Title:  "orbit-go demo",
		},
		Camera: CameraConfig{
			Position:      VectorConfig{X: 20, Y: 25, Z: 20},
			Up:            VectorConfig{Y: 1},
			MinDistance:   2,
			MaxDistance:   200,
			MinPolarAngle: 0.05,
			MaxPolarAngle: math.Pi/2 - 0.05,
			RotateSpeed:   1,
			ZoomSpeed:     1,
		},
		Grid: GridConfig{
			Extent:  8,
			Spacing: 4,
		},
	}
}

// Load reads and parses a YAML configuration file.
//
// Parameters:
//   - filename: path to the YAML file
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the file cannot be read or parsed
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// OrbitOptions converts the camera section into orbit engine options.
// Unset bounds stay at the engine defaults; unset speeds fall back to 1.
//
// Returns:
//   - orbit.Options: the configured engine options
func (c *Config) OrbitOptions() orbit.Options {
	cam := c.Camera
	opts := []orbit.Option{
		orbit.WithTarget(cam.Target.Vector3()),
	}

	if up := cam.Up.Vector3(); up != (common.Vector3{}) {
		opts = append(opts, orbit.WithUp(up.Normalize()))
	}
	if cam.MaxDistance > 0 {
		opts = append(opts, orbit.WithDistanceBounds(cam.MinDistance, cam.MaxDistance))
	}
	if cam.MaxPolarAngle > 0 {
		opts = append(opts, orbit.WithPolarBounds(cam.MinPolarAngle, cam.MaxPolarAngle))
	}
	if cam.MinAzimuthAngle != 0 || cam.MaxAzimuthAngle != 0 {
		opts = append(opts, orbit.WithAzimuthBounds(cam.MinAzimuthAngle, cam.MaxAzimuthAngle))
	}
	if cam.RotateSpeed > 0 {
		opts = append(opts, orbit.WithRotateSpeed(cam.RotateSpeed))
	}
	if cam.ZoomSpeed > 0 {
		opts = append(opts, orbit.WithZoomSpeed(cam.ZoomSpeed))
	}
	return orbit.NewOptions(opts...)
}
