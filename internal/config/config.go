// Package config loads lifepaint settings from YAML, layering a user file over
// embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"lifepaint/internal/patterns"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Tools      ToolsConfig      `yaml:"tools"`
	Patterns   []PatternConfig  `yaml:"patterns"`
	Log        LogConfig        `yaml:"log"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// GridConfig sizes the world in pixels. The grid has Width/CellSize columns
// and Height/CellSize rows.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// Cols returns the number of grid columns.
func (g GridConfig) Cols() int { return g.Width / g.CellSize }

// Rows returns the number of grid rows.
func (g GridConfig) Rows() int { return g.Height / g.CellSize }

// SimulationConfig holds tick timing and seeding.
type SimulationConfig struct {
	Interval     time.Duration `yaml:"interval"`
	MinInterval  time.Duration `yaml:"min_interval"`
	MaxInterval  time.Duration `yaml:"max_interval"`
	IntervalStep time.Duration `yaml:"interval_step"`
	Seed         int64         `yaml:"seed"` // 0 = time-based
	FillDensity  float64       `yaml:"fill_density"`
}

// ViewportConfig bounds the zoom accumulator and sets wheel step factors.
type ViewportConfig struct {
	MinZoom     float64 `yaml:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom"`
	ZoomInStep  float64 `yaml:"zoom_in_step"`
	ZoomOutStep float64 `yaml:"zoom_out_step"`
}

// ToolsConfig holds paint tool parameters.
type ToolsConfig struct {
	SprayDensity float64 `yaml:"spray_density"`
	SprayRadius  int     `yaml:"spray_radius"`
	Stamp        string  `yaml:"stamp"`
}

// PatternConfig is a named pattern given as [dx, dy] pairs.
type PatternConfig struct {
	Name  string   `yaml:"name"`
	Cells [][2]int `yaml:"cells"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig controls headless stats output.
type TelemetryConfig struct {
	Every int `yaml:"every"` // write a row every N generations
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a working simulation.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	} else if c.Grid.Cols() <= 0 || c.Grid.Rows() <= 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than one %dpx cell", c.Grid.Width, c.Grid.Height, c.Grid.CellSize))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Simulation.MinInterval <= 0 || c.Simulation.MaxInterval < c.Simulation.MinInterval {
		errs = append(errs, fmt.Errorf("simulation interval bounds [%v, %v] are invalid", c.Simulation.MinInterval, c.Simulation.MaxInterval))
	}
	if c.Viewport.MinZoom <= 0 || c.Viewport.MaxZoom < c.Viewport.MinZoom {
		errs = append(errs, fmt.Errorf("viewport zoom bounds [%g, %g] are invalid", c.Viewport.MinZoom, c.Viewport.MaxZoom))
	}
	if c.Tools.SprayDensity < 0 || c.Tools.SprayDensity > 1 {
		errs = append(errs, fmt.Errorf("tools.spray_density must be in [0, 1], got %g", c.Tools.SprayDensity))
	}
	if c.Tools.SprayRadius < 0 {
		errs = append(errs, fmt.Errorf("tools.spray_radius must not be negative, got %d", c.Tools.SprayRadius))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Catalog returns the built-in patterns plus every pattern named in the
// configuration.
func (c *Config) Catalog() (*patterns.Catalog, error) {
	cat := patterns.Builtin()
	for _, pc := range c.Patterns {
		cells := make([]patterns.Offset, len(pc.Cells))
		for i, xy := range pc.Cells {
			cells[i] = patterns.Offset{DX: xy[0], DY: xy[1]}
		}
		if err := cat.Register(patterns.New(pc.Name, cells)); err != nil {
			return nil, fmt.Errorf("registering pattern: %w", err)
		}
	}
	return cat, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
