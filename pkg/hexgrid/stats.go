package hexgrid

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Stats summarizes one generation run.
type Stats struct {
	Cells    int
	Vertices int
	Indices  int
	Buffers  int
	Elapsed  time.Duration
}

func statsFor(cells int, buffers []MeshBuffer, elapsed time.Duration) Stats {
	s := Stats{Cells: cells, Buffers: len(buffers), Elapsed: elapsed}
	for _, b := range buffers {
		s.Vertices += len(b.Vertices)
		s.Indices += len(b.Indices)
	}
	return s
}

// String formats the summary the way it is shown to users.
func (s Stats) String() string {
	return fmt.Sprintf("Time to generate: %.3fs\nTotal vertices: %d\nTotal indexes: %d\nHex cell count: %d\nMesh buffers: %d",
		s.Elapsed.Seconds(), s.Vertices, s.Indices, s.Cells, s.Buffers)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("cells", s.Cells)
	enc.AddInt("vertices", s.Vertices)
	enc.AddInt("indices", s.Indices)
	enc.AddInt("buffers", s.Buffers)
	enc.AddDuration("elapsed", s.Elapsed)
	return nil
}
