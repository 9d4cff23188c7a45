package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Seed       int64
	Radius     float64
	Source     string
	Heightmap  string
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
}

// RegisterFlags registers the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log", "", "Write logs to this file as well")
	fs.Int64Var(&f.Seed, "seed", 0, "Terrain noise seed")
	fs.Float64Var(&f.Radius, "radius", 0, "Hex cell radius")
	fs.StringVar(&f.Source, "source", "", "Terrain source: noise, image or flat")
	fs.StringVar(&f.Heightmap, "heightmap", "", "Heightmap image, PNG, BMP or TGA (implies -source image)")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Seed != 0 {
		cfg.Terrain.Seed = f.Seed
	}
	if f.Radius > 0 {
		cfg.Grid.HexRadius = float32(f.Radius)
	}
	if f.Source != "" {
		cfg.Terrain.Source = f.Source
	}
	if f.Heightmap != "" {
		cfg.Terrain.Source = SourceImage
		cfg.Terrain.Path = f.Heightmap
	}
	if f.Windowed {
		cfg.Viewer.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Viewer.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Viewer.Height = f.Height
	}
}
