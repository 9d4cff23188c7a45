package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
	"github.com/Faultbox/hexdrape/pkg/math"
)

func sevenCells(t *testing.T) *hexgrid.Grid {
	t.Helper()
	gen := hexgrid.NewGenerator(hex.NewLayout(hex.DefaultRadius), hexgrid.Flat(1), hexgrid.Radius(math.Vec2{}, 0.5))
	grid, err := gen.Generate(math.Vec2{})
	if err != nil {
		t.Fatal(err)
	}
	return grid
}

func TestCellOutline(t *testing.T) {
	grid := sevenCells(t)
	c, _ := grid.Lookup(hex.Coord{})

	lines := CellOutline(c, 0.5)
	if len(lines) != 36 {
		t.Fatalf("got %d floats, want 36", len(lines))
	}
	for i := 1; i < len(lines); i += 3 {
		if lines[i] != 1.5 {
			t.Errorf("float %d = %v, want lifted height 1.5", i, lines[i])
		}
	}
	// Last edge closes the loop back to vertex 0.
	if lines[33] != c.Vertices[0].X || lines[35] != c.Vertices[0].Z {
		t.Error("outline does not close on the first vertex")
	}

	if CellOutline(hexgrid.NewCell(hex.Coord{}, math.Vec3{}), 0) != nil {
		t.Error("an unrealized cell has no outline")
	}
}

func TestPathLines(t *testing.T) {
	grid := sevenCells(t)
	path := hexgrid.NewPathFinder(grid).FindPath(hex.Coord{X: 0, Z: 2}, hex.Coord{X: 0, Z: -2})
	if len(path) != 3 {
		t.Fatalf("path has %d cells, want 3", len(path))
	}

	lines := PathLines(path, 0.1)
	if len(lines) != 2*2*3 {
		t.Fatalf("got %d floats, want 12", len(lines))
	}
	if PathLines(path[:1], 0.1) != nil {
		t.Error("a single-cell path has no segments")
	}
}

func TestBBoxWireframe(t *testing.T) {
	if n := len(BBoxWireframe(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})); n != 72 {
		t.Errorf("got %d floats, want 72", n)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "hexview")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	// 2x2: bottom row red, top row blue, as OpenGL returns it.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	name, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "hexview_2024-03-01_12-30-00.png"); name != want {
		t.Errorf("filename = %s, want %s", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); b == 0 || r != 0 {
		t.Error("top-left pixel should be blue after the flip")
	}

	if _, err := sc.CaptureFromPixels(pixels[:4], 2, 2); err == nil {
		t.Error("short pixel data should fail")
	}
}
