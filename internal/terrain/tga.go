package terrain

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

// decodeTGA decodes an uncompressed or RLE TGA image. True-color images may be
// 24 or 32 bit, grayscale images 8 bit.
func decodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	gray := imageType == tgaGray || imageType == tgaGrayRLE
	rle := imageType == tgaTrueColorRLE || imageType == tgaGrayRLE
	switch {
	case gray && bpp != 8:
		return nil, fmt.Errorf("unsupported grayscale TGA bit depth %d", bpp)
	case !gray && imageType != tgaTrueColor && imageType != tgaTrueColorRLE:
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor marks top-to-bottom row order.
	topToBottom := descriptor&0x20 != 0

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	put := func(idx int, px []byte) {
		x, y := idx%width, idx/width
		if !topToBottom {
			y = height - 1 - y
		}
		var c color.NRGBA
		if gray {
			c = color.NRGBA{R: px[0], G: px[0], B: px[0], A: 255}
		} else {
			c = color.NRGBA{R: px[2], G: px[1], B: px[0], A: 255}
			if bytesPerPixel == 4 {
				c.A = px[3]
			}
		}
		img.SetNRGBA(x, y, c)
	}

	pixelCount := width * height
	if !rle {
		if len(pixelData) < pixelCount*bytesPerPixel {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := range pixelCount {
			put(i, pixelData[i*bytesPerPixel:])
		}
		return img, nil
	}

	pixelIdx, dataIdx := 0, 0
	for pixelIdx < pixelCount {
		if dataIdx >= len(pixelData) {
			return nil, fmt.Errorf("TGA RLE data truncated at pixel %d", pixelIdx)
		}
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run of one repeated pixel
			if dataIdx+bytesPerPixel > len(pixelData) {
				return nil, fmt.Errorf("TGA RLE data truncated at pixel %d", pixelIdx)
			}
			px := pixelData[dataIdx : dataIdx+bytesPerPixel]
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				put(pixelIdx, px)
				pixelIdx++
			}
			continue
		}

		// Raw packet
		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if dataIdx+bytesPerPixel > len(pixelData) {
				return nil, fmt.Errorf("TGA RLE data truncated at pixel %d", pixelIdx)
			}
			put(pixelIdx, pixelData[dataIdx:])
			dataIdx += bytesPerPixel
			pixelIdx++
		}
	}
	return img, nil
}
