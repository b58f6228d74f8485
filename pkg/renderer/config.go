package renderer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
)

// Config contains rendering configuration
type Config struct {
	Width      int        `yaml:"width"`      // Image width in pixels
	Height     int        `yaml:"height"`     // Image height in pixels
	Gamma      float64    `yaml:"gamma"`      // Output gamma
	Smooth     bool       `yaml:"smooth"`     // Per-vertex normals in vertex buffers
	Shadows    bool       `yaml:"shadows"`    // Cast shadow rays towards lights
	Background [3]float64 `yaml:"background"` // Color for rays that miss everything
	Ambient    [3]float64 `yaml:"ambient"`    // Ambient light color
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Gamma:      2.0,
		Smooth:     true,
		Shadows:    true,
		Background: [3]float64{0, 0, 0},
		Ambient:    [3]float64{1, 1, 1},
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep their
// default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

// Validate checks the config for values the renderer cannot use
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	return nil
}

// RenderConfig returns the draw-time settings shared with the geometry package
func (c Config) RenderConfig() geometry.RenderConfig {
	return geometry.RenderConfig{Smooth: c.Smooth}
}

// BackgroundColor returns the background as a color vector
func (c Config) BackgroundColor() core.Vec3 {
	return core.NewVec3(c.Background[0], c.Background[1], c.Background[2])
}

// AmbientColor returns the ambient light as a color vector
func (c Config) AmbientColor() core.Vec3 {
	return core.NewVec3(c.Ambient[0], c.Ambient[1], c.Ambient[2])
}
