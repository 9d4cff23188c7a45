// Package config handles hexdrape configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
)

// Terrain sources.
const (
	SourceNoise = "noise"
	SourceImage = "image"
	SourceFlat  = "flat"
)

// Config holds all settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
	Probe   ProbeConfig   `yaml:"probe"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig holds hex grid generation settings.
type GridConfig struct {
	HexRadius    float32 `yaml:"hex_radius"`
	StartX       float32 `yaml:"start_x"`
	StartZ       float32 `yaml:"start_z"`
	MaxVertices  int     `yaml:"max_vertices"`
	SafetyMargin int     `yaml:"safety_margin"`
	Lift         float32 `yaml:"lift"` // Render offset above the terrain
}

// Ceiling returns the per-buffer vertex ceiling.
func (g GridConfig) Ceiling() int {
	return g.MaxVertices - g.SafetyMargin
}

// TerrainConfig selects and shapes the surface the grid is draped over.
type TerrainConfig struct {
	Source       string  `yaml:"source"` // noise, image or flat
	Path         string  `yaml:"path"`   // Heightmap image for the image source
	Seed         int64   `yaml:"seed"`
	Octaves      int     `yaml:"octaves"`
	Persistence  float64 `yaml:"persistence"`
	Frequency    float64 `yaml:"frequency"`
	Width        int     `yaml:"width"` // Samples along X
	Depth        int     `yaml:"depth"` // Samples along Z
	TileSize     float32 `yaml:"tile_size"`
	HeightScale  float32 `yaml:"height_scale"`
	IslandRadius float32 `yaml:"island_radius"`
}

// ProbeConfig holds the downward containment probe window.
type ProbeConfig struct {
	Lift        float32 `yaml:"lift"`
	MaxDistance float32 `yaml:"max_distance"`
}

// ViewerConfig holds display settings.
type ViewerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	ClimbCost  float32 `yaml:"climb_cost"` // Path cost per unit of elevation change
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			HexRadius:    hex.DefaultRadius,
			StartX:       1,
			StartZ:       1,
			MaxVertices:  hexgrid.MaxMeshVertices,
			SafetyMargin: hexgrid.SafetyMargin,
			Lift:         0.03,
		},
		Terrain: TerrainConfig{
			Source:       SourceNoise,
			Seed:         1,
			Octaves:      5,
			Persistence:  0.5,
			Frequency:    0.04,
			Width:        129,
			Depth:        129,
			TileSize:     0.5,
			HeightScale:  4,
			IslandRadius: 0.85,
		},
		Probe: ProbeConfig{
			Lift:        10,
			MaxDistance: 100,
		},
		Viewer: ViewerConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			ClimbCost: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that would make generation fail or never end.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.HexRadius <= 0 {
		errs = append(errs, fmt.Errorf("grid.hex_radius must be positive, got %v", c.Grid.HexRadius))
	}
	if c.Grid.MaxVertices > hexgrid.MaxMeshVertices {
		errs = append(errs, fmt.Errorf("grid.max_vertices %d exceeds the %d vertex mesh limit", c.Grid.MaxVertices, hexgrid.MaxMeshVertices))
	}
	if ceiling := c.Grid.Ceiling(); ceiling < hex.DirectionCount {
		errs = append(errs, fmt.Errorf("grid ceiling %d (max_vertices - safety_margin) cannot hold one cell", ceiling))
	}

	switch c.Terrain.Source {
	case SourceNoise, SourceFlat:
		if c.Terrain.Width < 2 || c.Terrain.Depth < 2 {
			errs = append(errs, fmt.Errorf("terrain needs at least 2x2 samples, got %dx%d", c.Terrain.Width, c.Terrain.Depth))
		}
	case SourceImage:
		if c.Terrain.Path == "" {
			errs = append(errs, errors.New("terrain.path is required for the image source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown terrain.source %q", c.Terrain.Source))
	}
	if c.Terrain.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain.tile_size must be positive, got %v", c.Terrain.TileSize))
	}

	if c.Probe.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("probe.max_distance must be positive, got %v", c.Probe.MaxDistance))
	}
	return errors.Join(errs...)
}
