package terrain

import (
	"image/color"
	gomath "math"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, w, h int, bpp, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

// grayTGA is a 2x2 uncompressed grayscale image stored bottom row first.
func grayTGA() []byte {
	return append(tgaHeader(tgaGray, 2, 2, 8, 0), 10, 20, 30, 40)
}

func TestDecodeTGAGray(t *testing.T) {
	img, err := decodeTGA(grayTGA())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 30}, {1, 0, 40}, {0, 1, 10}, {1, 1, 20},
	}
	for _, tt := range tests {
		c := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA)
		if c.R != tt.want || c.A != 255 {
			t.Errorf("pixel (%d, %d) = %v, want gray %d", tt.x, tt.y, c, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(tgaTrueColorRLE, 3, 1, 24, 0x20)
	data = append(data,
		0x81, 0, 0, 255, // run of two red pixels (BGR)
		0x00, 255, 0, 0, // one raw blue pixel
	)
	img, err := decodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for x, want := range []color.NRGBA{red, red, blue} {
		if got := img.At(x, 0).(color.NRGBA); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 2}},
		{"color mapped", func() []byte { d := tgaHeader(tgaTrueColor, 1, 1, 24, 0); d[1] = 1; return d }()},
		{"bad type", tgaHeader(1, 1, 1, 8, 0)},
		{"bad gray depth", tgaHeader(tgaGray, 1, 1, 16, 0)},
		{"bad color depth", tgaHeader(tgaTrueColor, 1, 1, 16, 0)},
		{"truncated pixels", append(tgaHeader(tgaTrueColor, 2, 1, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(tgaGrayRLE, 4, 1, 8, 0), 0x81, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadImageTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "height.TGA")
	if err := os.WriteFile(path, grayTGA(), 0o644); err != nil {
		t.Fatal(err)
	}
	h, err := LoadImage(path, 1, 1)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	// Top-left pixel lands on the +Z edge.
	if got, want := h.Altitudes[0][1], float32(30)/255; gomath.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("altitude[0][1] = %v, want %v", got, want)
	}
	if got, want := h.Altitudes[1][0], float32(20)/255; gomath.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("altitude[1][0] = %v, want %v", got, want)
	}
}
