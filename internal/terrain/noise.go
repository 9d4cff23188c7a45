package terrain

import (
	gomath "math"

	"github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/hexdrape/pkg/math"
)

// Noise is octave simplex noise normalized to [0, 1].
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}
	for i := range n.Amplitudes {
		n.Amplitudes[i] = gomath.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the noise value at the given point.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		fFreq := float64(int(1) << octave)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	if sumOfAmplitudes == 0 {
		return 0
	}
	return sum / sumOfAmplitudes
}

// NoiseParams configures GenerateNoise.
type NoiseParams struct {
	Seed        int64
	Octaves     int
	Persistence float64
	Frequency   float64 // Base noise frequency per world unit

	TilesX      int
	TilesZ      int
	TileSize    float32
	HeightScale float32

	// IslandRadius is the fraction of the half-extent kept as land. Samples
	// beyond it become holes. Zero or less keeps every sample.
	IslandRadius float32
}

// GenerateNoise builds an island heightmap from octave simplex noise. Heights
// fall off towards the island rim so the coast meets the holes at sea level.
func GenerateNoise(p NoiseParams) *Heightmap {
	h := NewHeightmap(p.TilesX, p.TilesZ, p.TileSize)
	n := NewNoise(p.Octaves, p.Persistence, p.Seed)

	lo, hi := h.Bounds()
	center := lo.Add(hi).Scale(0.5)
	halfExtent := min(hi.X-lo.X, hi.Y-lo.Y) / 2

	for x := range p.TilesX {
		for z := range p.TilesZ {
			wx := h.Origin.X + float32(x)*p.TileSize
			wz := h.Origin.Y + float32(z)*p.TileSize

			falloff := float32(1)
			if p.IslandRadius > 0 && halfExtent > 0 {
				d := center.Distance(math.Vec2{X: wx, Y: wz}) / (halfExtent * p.IslandRadius)
				if d > 1 {
					h.Set(x, z, float32(gomath.NaN()))
					continue
				}
				falloff = 1 - d*d
			}

			v := n.Eval2(float64(wx)*p.Frequency, float64(wz)*p.Frequency)
			h.Set(x, z, float32(v)*p.HeightScale*falloff)
		}
	}
	return h
}
