// Package blur implements a separable Gaussian blur over premultiplied
// RGBA images. It is used to render soft glows the way a canvas
// shadowBlur does.
package blur

import (
	"image"
	"math"
	"sync"
)

// SigmaForShadowBlur converts a canvas shadowBlur value to the standard
// deviation of the equivalent Gaussian (half the blur value).
func SigmaForShadowBlur(shadowBlur float64) float64 {
	return shadowBlur / 2
}

// Kernel returns a normalized 1D Gaussian kernel for sigma with
// 2*ceil(3*sigma)+1 taps. For sigma <= 0 it returns the identity kernel [1].
func Kernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

var kernels sync.Map // quantized sigma (1/100 px) -> []float32

func cachedKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	if k, ok := kernels.Load(key); ok {
		return k.([]float32)
	}
	k, _ := kernels.LoadOrStore(key, Kernel(sigma))
	return k.([]float32)
}

// Gaussian blurs img in place with standard deviation sigma. Pixels
// outside the image are treated as transparent, so content fades out at
// the borders instead of smearing the edge pixels. sigma <= 0 leaves img
// unchanged.
func Gaussian(img *image.RGBA, sigma float64) {
	b := img.Rect
	if sigma <= 0 || b.Empty() {
		return
	}
	w, h := b.Dx(), b.Dy()
	kernel := cachedKernel(sigma)

	temp := getBuffer(w * h * 4)
	defer putBuffer(temp)

	horizontal(img, temp, kernel)
	vertical(temp, img, kernel)
}

// horizontal convolves every row of src into temp.
func horizontal(src *image.RGBA, temp []float32, kernel []float32) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	half := len(kernel) / 2

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := temp[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			var r, g, bl, a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				i := kx * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				bl += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}
			o := x * 4
			out[o+0], out[o+1], out[o+2], out[o+3] = r, g, bl, a
		}
	}
}

// vertical convolves every column of temp into dst.
func vertical(temp []float32, dst *image.RGBA, kernel []float32) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	half := len(kernel) / 2

	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			var r, g, bl, a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				i := (ky*w + x) * 4
				r += temp[i+0] * weight
				g += temp[i+1] * weight
				bl += temp[i+2] * weight
				a += temp[i+3] * weight
			}
			o := x * 4
			row[o+0] = clampUint8(r)
			row[o+1] = clampUint8(g)
			row[o+2] = clampUint8(bl)
			row[o+3] = clampUint8(a)
			// Rounding may push a colour channel above alpha.
			for c := 0; c < 3; c++ {
				if row[o+c] > row[o+3] {
					row[o+c] = row[o+3]
				}
			}
		}
	}
}

type floatBuffer struct {
	data []float32
}

var bufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// getBuffer returns a pooled buffer of exactly n elements. Every element is
// overwritten by horizontal, so it is not cleared.
func getBuffer(n int) []float32 {
	fb := bufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		fb.data = make([]float32, n)
	}
	return fb.data[:n]
}

func putBuffer(buf []float32) {
	// Keep at most 16M floats (a 2048x2048 canvas) in the pool.
	if cap(buf) <= 16<<20 {
		bufferPool.Put(&floatBuffer{data: buf})
	}
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
