// Package world assembles a terrain surface and the hex grid draped over it.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hexdrape/internal/config"
	"github.com/Faultbox/hexdrape/internal/engine/picking"
	"github.com/Faultbox/hexdrape/internal/terrain"
	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// World is a generated grid together with the terrain it was built on.
type World struct {
	Terrain *terrain.Heightmap
	Grid    *hexgrid.Grid
	Probe   terrain.Probe

	// Lift is how far above the terrain the grid is drawn.
	Lift float32
}

// LoadTerrain builds the heightmap selected by cfg.
func LoadTerrain(cfg config.TerrainConfig) (*terrain.Heightmap, error) {
	switch cfg.Source {
	case config.SourceNoise:
		return terrain.GenerateNoise(terrain.NoiseParams{
			Seed:         cfg.Seed,
			Octaves:      cfg.Octaves,
			Persistence:  cfg.Persistence,
			Frequency:    cfg.Frequency,
			TilesX:       cfg.Width,
			TilesZ:       cfg.Depth,
			TileSize:     cfg.TileSize,
			HeightScale:  cfg.HeightScale,
			IslandRadius: cfg.IslandRadius,
		}), nil
	case config.SourceImage:
		return terrain.LoadImage(cfg.Path, cfg.TileSize, cfg.HeightScale)
	case config.SourceFlat:
		return terrain.Flat(cfg.Width, cfg.Depth, cfg.TileSize, 0), nil
	default:
		return nil, fmt.Errorf("unknown terrain source %q", cfg.Source)
	}
}

// Build loads the terrain and grows the grid over it.
func Build(cfg *config.Config, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}

	surface, err := LoadTerrain(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("loading terrain: %w", err)
	}
	lo, hi := surface.Bounds()
	log.Info("terrain ready",
		zap.String("source", cfg.Terrain.Source),
		zap.Int("samples_x", surface.TilesX),
		zap.Int("samples_z", surface.TilesZ),
		zap.Float32("min_x", lo.X), zap.Float32("min_z", lo.Y),
		zap.Float32("max_x", hi.X), zap.Float32("max_z", hi.Y),
	)

	probe := terrain.Probe{
		Surface:     surface,
		Lift:        cfg.Probe.Lift,
		MaxDistance: cfg.Probe.MaxDistance,
	}

	gen := hexgrid.NewGenerator(hex.NewLayout(cfg.Grid.HexRadius), surface, probe)
	gen.Ceiling = cfg.Grid.Ceiling()
	gen.Logger = log.Named("generator")

	grid, err := gen.Generate(math.Vec2{X: cfg.Grid.StartX, Y: cfg.Grid.StartZ})
	if err != nil {
		return nil, fmt.Errorf("generating grid: %w", err)
	}

	return &World{
		Terrain: surface,
		Grid:    grid,
		Probe:   probe,
		Lift:    cfg.Grid.Lift,
	}, nil
}

// CellAtGround returns the cell over ground position (x, z).
func (w *World) CellAtGround(x, z float32) (*hexgrid.Cell, bool) {
	return w.Grid.CellAt(math.Vec3{X: x, Y: w.Terrain.HeightAt(x, z), Z: z})
}

// CellUnder casts ray onto the terrain and returns the cell it lands in along
// with the hit point.
func (w *World) CellUnder(ray picking.Ray, maxDist float32) (*hexgrid.Cell, math.Vec3, bool) {
	hit, ok := ray.IntersectSurface(w.Terrain, maxDist, w.Terrain.TileSize/4)
	if !ok {
		return nil, math.Vec3{}, false
	}
	c, ok := w.Grid.CellAt(hit)
	return c, hit, ok
}
