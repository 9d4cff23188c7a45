package hexgrid

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Generator grows a grid from a seed cell until the containment test stops it.
//
// Generate runs to completion on the calling goroutine and is not re-entrant;
// a Generator may be reused for sequential runs.
type Generator struct {
	Layout  hex.Layout
	Heights HeightSampler
	Bounds  Containment

	// Ceiling is the per-buffer vertex limit. Zero means DefaultCeiling.
	Ceiling int

	// Logger receives rollover and summary records. Nil disables logging.
	Logger *zap.Logger
}

// NewGenerator creates a generator with the default ceiling.
func NewGenerator(layout hex.Layout, heights HeightSampler, bounds Containment) *Generator {
	return &Generator{
		Layout:  layout,
		Heights: heights,
		Bounds:  bounds,
		Ceiling: DefaultCeiling,
	}
}

// Generate flood-fills the lattice starting with logical (0,0) at the ground
// position start (X, Z) and returns the finished grid.
//
// Bounds must reject every point beyond some finite distance from start; an
// unbounded containment test makes Generate run until memory is exhausted.
func (g *Generator) Generate(start math.Vec2) (*Grid, error) {
	if g.Heights == nil || g.Bounds == nil {
		return nil, errors.New("hexgrid: generator needs a height sampler and a containment test")
	}
	ceiling := g.Ceiling
	if ceiling == 0 {
		ceiling = DefaultCeiling
	}
	acc, err := NewAccumulator(ceiling)
	if err != nil {
		return nil, err
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}

	began := time.Now()
	reg := NewRegistry()
	origin := math.Vec3{X: start.X, Z: start.Y}

	seed := NewCell(hex.Coord{}, origin)
	if err := reg.Register(seed); err != nil {
		return nil, err
	}
	frontier := []*Cell{seed}

	for len(frontier) > 0 {
		c := frontier[0]
		frontier[0] = nil
		frontier = frontier[1:]

		if !c.Realized() {
			if !acc.Fits(hex.DirectionCount) {
				sealed := acc.Seal()
				log.Debug("mesh buffer sealed",
					zap.Int("buffer", acc.Index()-1),
					zap.Int("vertices", len(sealed.Vertices)),
					zap.Int("indices", len(sealed.Indices)),
				)
			}
			if err := Realize(c, g.Layout, g.Heights, reg, acc); err != nil {
				return nil, err
			}
		}

		for _, d := range hex.Directions {
			coord := c.Coord.Neighbor(d)
			if reg.Contains(coord) {
				continue
			}
			center := g.Layout.NeighborCenter(c.Center, d)
			if !g.Bounds.InBounds(center) {
				continue
			}
			n := NewCell(coord, center)
			if err := reg.Register(n); err != nil {
				return nil, fmt.Errorf("expand %v towards %v: %w", c.Coord, d, err)
			}
			frontier = append(frontier, n)
		}
	}

	buffers := acc.Finish()
	grid := &Grid{
		Layout:  g.Layout,
		Origin:  origin,
		Ratio:   WorldToLogicalRatio(g.Layout),
		Buffers: buffers,
		Stats:   statsFor(reg.Len(), buffers, time.Since(began)),
		cells:   reg,
	}
	log.Info("hex grid generated", zap.Object("stats", grid.Stats))
	return grid, nil
}
