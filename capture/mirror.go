package capture

import (
	"image"

	"golang.org/x/image/draw"
)

// Mirror returns a horizontally flipped copy of img anchored at (0,0), the
// way a selfie camera shows the user.
func Mirror(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)

	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for l, r := 0, (w-1)*4; l < r; l, r = l+4, r-4 {
			row[l], row[r] = row[r], row[l]
			row[l+1], row[r+1] = row[r+1], row[l+1]
			row[l+2], row[r+2] = row[r+2], row[l+2]
			row[l+3], row[r+3] = row[r+3], row[l+3]
		}
	}
	return out
}
