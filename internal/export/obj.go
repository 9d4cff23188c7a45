// Package export writes generated grids to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/hexdrape/pkg/hexgrid"
)

// WriteOBJ writes every mesh buffer as a Wavefront OBJ group of line elements.
// Vertices are lifted by lift on Y. Every buffer is validated against ceiling
// first; nothing is written if one fails.
func WriteOBJ(w io.Writer, buffers []hexgrid.MeshBuffer, ceiling int, lift float32) error {
	for i, b := range buffers {
		if err := b.Validate(ceiling); err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# hexdrape grid, %d buffers\n", len(buffers))

	// OBJ indices are 1-based and global across groups.
	base := 1
	for i, b := range buffers {
		fmt.Fprintf(bw, "g buffer_%d\n", i)
		for _, v := range b.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y+lift, v.Z)
		}
		for j := 0; j+1 < len(b.Indices); j += 2 {
			fmt.Fprintf(bw, "l %d %d\n", base+int(b.Indices[j]), base+int(b.Indices[j+1]))
		}
		base += len(b.Vertices)
	}
	return bw.Flush()
}

// SaveOBJ writes the grid to an OBJ file at path.
func SaveOBJ(path string, grid *hexgrid.Grid, ceiling int, lift float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, grid.Buffers, ceiling, lift); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
