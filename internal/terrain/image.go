package terrain

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder registration
	gomath "math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// LoadImage reads a grayscale heightmap from a PNG, BMP or TGA file. Luminance maps
// linearly onto [0, heightScale]; fully transparent pixels become holes. The
// top row of the image is the far (+Z) edge of the terrain.
func LoadImage(path string, tileSize, heightScale float32) (*Heightmap, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %s: %w", path, err)
	}
	h, err := FromImage(img, tileSize, heightScale)
	if err != nil {
		return nil, fmt.Errorf("%s heightmap %s: %w", format, path, err)
	}
	return h, nil
}

func decodeFile(path string) (image.Image, string, error) {
	// TGA has no magic number, so it is picked by extension.
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		img, err := decodeTGA(data)
		return img, "tga", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(f)
}

// FromImage converts a decoded image into a heightmap.
func FromImage(img image.Image, tileSize, heightScale float32) (*Heightmap, error) {
	b := img.Bounds()
	if b.Dx() < 2 || b.Dy() < 2 {
		return nil, fmt.Errorf("image %dx%d too small, need at least 2x2", b.Dx(), b.Dy())
	}

	h := NewHeightmap(b.Dx(), b.Dy(), tileSize)
	for px := 0; px < b.Dx(); px++ {
		for py := 0; py < b.Dy(); py++ {
			c := img.At(b.Min.X+px, b.Min.Y+py)
			z := b.Dy() - 1 - py
			if _, _, _, a := c.RGBA(); a == 0 {
				h.Set(px, z, float32(gomath.NaN()))
				continue
			}
			g := color.Gray16Model.Convert(c).(color.Gray16)
			h.Set(px, z, float32(g.Y)/0xffff*heightScale)
		}
	}
	return h, nil
}
