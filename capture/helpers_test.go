package capture

import (
	"image"
	"image/color"
)

// gradientImage returns an opaque image whose pixels encode their position.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}
