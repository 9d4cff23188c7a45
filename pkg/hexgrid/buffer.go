package hexgrid

import (
	"fmt"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

const (
	// MaxMeshVertices is the hard per-mesh vertex limit of the render backend.
	// It keeps every index addressable with 16 bits.
	MaxMeshVertices = 65000

	// SafetyMargin is kept free below MaxMeshVertices.
	SafetyMargin = 50

	// DefaultCeiling is the vertex count at which a buffer is sealed.
	DefaultCeiling = MaxMeshVertices - SafetyMargin
)

// MeshBuffer is a sealed line-list mesh: Indices holds pairs of offsets into
// Vertices, one pair per drawn segment.
type MeshBuffer struct {
	Vertices []math.Vec3
	Indices  []uint16
}

// Lines returns the number of line segments in the buffer.
func (b MeshBuffer) Lines() int {
	return len(b.Indices) / 2
}

// Validate checks the buffer against a vertex ceiling and its own index range.
func (b MeshBuffer) Validate(ceiling int) error {
	if len(b.Vertices) > ceiling {
		return fmt.Errorf("%d vertices, ceiling %d: %w", len(b.Vertices), ceiling, ErrBufferOverflow)
	}
	if len(b.Indices)%2 != 0 {
		return fmt.Errorf("odd index count %d in line list", len(b.Indices))
	}
	for _, idx := range b.Indices {
		if int(idx) >= len(b.Vertices) {
			return fmt.Errorf("index %d out of range for %d vertices", idx, len(b.Vertices))
		}
	}
	return nil
}

// Accumulator collects cell geometry into the active buffer and seals it into an
// immutable MeshBuffer when asked.
type Accumulator struct {
	ceiling  int
	vertices []math.Vec3
	indices  []uint16
	sealed   []MeshBuffer
}

// NewAccumulator creates an accumulator whose buffers hold at most ceiling vertices.
func NewAccumulator(ceiling int) (*Accumulator, error) {
	if ceiling < hex.DirectionCount || ceiling > MaxMeshVertices {
		return nil, fmt.Errorf("ceiling %d outside [%d, %d]: %w", ceiling, hex.DirectionCount, MaxMeshVertices, ErrCeilingTooSmall)
	}
	a := &Accumulator{ceiling: ceiling}
	a.reset()
	return a, nil
}

// Ceiling returns the vertex ceiling.
func (a *Accumulator) Ceiling() int {
	return a.ceiling
}

// Index returns the position the active buffer will take once sealed.
func (a *Accumulator) Index() int {
	return len(a.sealed)
}

// VertexCount returns the number of vertices in the active buffer.
func (a *Accumulator) VertexCount() int {
	return len(a.vertices)
}

// Fits reports whether n more vertices fit in the active buffer.
func (a *Accumulator) Fits(n int) bool {
	return len(a.vertices)+n <= a.ceiling
}

// AppendCell appends a cell's corners and returns the offset of the first one.
func (a *Accumulator) AppendCell(corners [hex.DirectionCount]math.Vec3) (uint16, error) {
	if !a.Fits(len(corners)) {
		return 0, fmt.Errorf("append to buffer %d with %d vertices: %w", a.Index(), len(a.vertices), ErrBufferOverflow)
	}
	base := uint16(len(a.vertices))
	a.vertices = append(a.vertices, corners[:]...)
	return base, nil
}

// AppendLine records a segment between two vertices of the active buffer.
func (a *Accumulator) AppendLine(i, j uint16) {
	a.indices = append(a.indices, i, j)
}

// Seal closes the active buffer, returns it and opens an empty one.
func (a *Accumulator) Seal() MeshBuffer {
	b := MeshBuffer{Vertices: a.vertices, Indices: a.indices}
	a.sealed = append(a.sealed, b)
	a.reset()
	return b
}

// Finish seals the active buffer, partial or not, and returns every sealed buffer.
// The accumulator must not be used afterwards.
func (a *Accumulator) Finish() []MeshBuffer {
	a.Seal()
	out := a.sealed
	a.sealed = nil
	return out
}

func (a *Accumulator) reset() {
	// Line lists over hexes average well under two indices per vertex.
	a.vertices = make([]math.Vec3, 0, min(a.ceiling, 4096))
	a.indices = make([]uint16, 0, 2*min(a.ceiling, 4096))
}
