package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.HexRadius != 0.25 {
		t.Errorf("expected hex radius 0.25, got %v", cfg.Grid.HexRadius)
	}
	if cfg.Grid.Ceiling() != 64950 {
		t.Errorf("expected ceiling 64950, got %d", cfg.Grid.Ceiling())
	}
	if cfg.Grid.StartX != 1 || cfg.Grid.StartZ != 1 {
		t.Errorf("expected start (1, 1), got (%v, %v)", cfg.Grid.StartX, cfg.Grid.StartZ)
	}
	if cfg.Grid.Lift != 0.03 {
		t.Errorf("expected lift 0.03, got %v", cfg.Grid.Lift)
	}
	if cfg.Terrain.Source != SourceNoise {
		t.Errorf("expected noise terrain, got %s", cfg.Terrain.Source)
	}
	if cfg.Probe.Lift != 10 || cfg.Probe.MaxDistance != 100 {
		t.Errorf("expected probe 10/100, got %v/%v", cfg.Probe.Lift, cfg.Probe.MaxDistance)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
grid:
  hex_radius: 0.5
  start_x: -3
  max_vertices: 1200
  safety_margin: 0

terrain:
  source: image
  path: island.png
  tile_size: 2

viewer:
  width: 1920
  fullscreen: true

logging:
  level: debug
  log_file: hexdrape.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Grid.HexRadius != 0.5 {
		t.Errorf("expected radius 0.5, got %v", cfg.Grid.HexRadius)
	}
	if cfg.Grid.StartX != -3 || cfg.Grid.StartZ != 1 {
		t.Errorf("expected start (-3, 1), got (%v, %v)", cfg.Grid.StartX, cfg.Grid.StartZ)
	}
	if cfg.Grid.Ceiling() != 1200 {
		t.Errorf("expected ceiling 1200, got %d", cfg.Grid.Ceiling())
	}
	if cfg.Terrain.Source != SourceImage || cfg.Terrain.Path != "island.png" {
		t.Errorf("expected image terrain from island.png, got %s %s", cfg.Terrain.Source, cfg.Terrain.Path)
	}
	// Untouched keys keep their defaults.
	if cfg.Terrain.Octaves != 5 {
		t.Errorf("expected default octaves 5, got %d", cfg.Terrain.Octaves)
	}
	if cfg.Viewer.Width != 1920 || cfg.Viewer.Height != 720 || !cfg.Viewer.Fullscreen {
		t.Errorf("unexpected viewer config %+v", cfg.Viewer)
	}
	if cfg.Logging.LogFile != "hexdrape.log" {
		t.Errorf("expected log file 'hexdrape.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
grid:
  hex_radius: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/hexdrape.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero radius", func(c *Config) { c.Grid.HexRadius = 0 }, "hex_radius"},
		{"ceiling below one cell", func(c *Config) { c.Grid.MaxVertices = 100; c.Grid.SafetyMargin = 95 }, "cannot hold one cell"},
		{"over mesh limit", func(c *Config) { c.Grid.MaxVertices = 70000 }, "mesh limit"},
		{"unknown source", func(c *Config) { c.Terrain.Source = "lidar" }, "unknown terrain.source"},
		{"image without path", func(c *Config) { c.Terrain.Source = SourceImage }, "terrain.path"},
		{"tiny noise map", func(c *Config) { c.Terrain.Width = 1 }, "2x2"},
		{"zero tile size", func(c *Config) { c.Terrain.TileSize = 0 }, "tile_size"},
		{"zero probe range", func(c *Config) { c.Probe.MaxDistance = 0 }, "max_distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("grid:\n  hex_radius: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{"debug", []string{"-debug"}, func(t *testing.T, c *Config) {
			if c.Logging.Level != "debug" {
				t.Errorf("expected log level 'debug', got %s", c.Logging.Level)
			}
		}},
		{"seed and radius", []string{"-seed", "42", "-radius", "0.75"}, func(t *testing.T, c *Config) {
			if c.Terrain.Seed != 42 || c.Grid.HexRadius != 0.75 {
				t.Errorf("expected seed 42 radius 0.75, got %d %v", c.Terrain.Seed, c.Grid.HexRadius)
			}
		}},
		{"heightmap implies image", []string{"-heightmap", "peaks.bmp"}, func(t *testing.T, c *Config) {
			if c.Terrain.Source != SourceImage || c.Terrain.Path != "peaks.bmp" {
				t.Errorf("expected image source peaks.bmp, got %s %s", c.Terrain.Source, c.Terrain.Path)
			}
		}},
		{"fullscreen", []string{"-fullscreen"}, func(t *testing.T, c *Config) {
			if !c.Viewer.Fullscreen {
				t.Error("expected fullscreen")
			}
		}},
		{"windowed", []string{"-windowed", "-width", "800", "-height", "600"}, func(t *testing.T, c *Config) {
			if c.Viewer.Fullscreen || c.Viewer.Width != 800 || c.Viewer.Height != 600 {
				t.Errorf("expected 800x600 windowed, got %+v", c.Viewer)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.name, flag.ContinueOnError)
			f := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	yamlContent := `
viewer:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-width", "1920"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	// Width from flag, height from file
	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewer.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("grid:\n  hex_radius: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-source", "voxels"}); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(f); err == nil {
		t.Error("expected Load to fail")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.Terrain.Seed = 99

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Terrain.Seed != 99 {
		t.Errorf("expected seed 99 after reload, got %d", loaded.Terrain.Seed)
	}
}
