package photobooth

import (
	"image"
	"image/color"
	"testing"
)

// solidImage returns an opaque w x h image filled with (r, g, b).
func solidImage(w, h int, r, g, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
	return img
}

// patternImage returns an opaque image whose pixels vary with position so
// that misplaced or resampled copies are detectable.
func patternImage(w, h int, seed uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x*7) + seed,
				G: uint8(y*5) + seed,
				B: uint8(x+y) ^ seed,
				A: 255,
			})
		}
	}
	return img
}

// photosOf returns n pattern images of size w x h.
func photosOf(n, w, h int) []image.Image {
	photos := make([]image.Image, n)
	for i := range photos {
		photos[i] = patternImage(w, h, uint8(i*40))
	}
	return photos
}

// subImage copies the r region of img into a new image anchored at (0,0).
func subImage(t *testing.T, img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	t.Helper()
	if !r.In(img.Rect) {
		t.Fatalf("region %v outside image %v", r, img.Rect)
	}
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		src := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+r.Dx()*4], img.Pix[src:src+r.Dx()*4])
	}
	return out
}
