package blur

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestKernelIdentity(t *testing.T) {
	for _, sigma := range []float64{0, -3} {
		k := Kernel(sigma)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("Kernel(%v) = %v, want [1]", sigma, k)
		}
	}
}

func TestKernelNormalizedAndSymmetric(t *testing.T) {
	tests := []struct {
		sigma    float64
		wantSize int
	}{
		{0.5, 5},
		{1, 7},
		{2, 13},
		{5, 31},
	}
	for _, tt := range tests {
		k := Kernel(tt.sigma)
		if len(k) != tt.wantSize {
			t.Errorf("Kernel(%v) len = %d, want %d", tt.sigma, len(k), tt.wantSize)
		}
		var sum float64
		for i, v := range k {
			sum += float64(v)
			if j := len(k) - 1 - i; math.Abs(float64(v-k[j])) > 1e-6 {
				t.Errorf("Kernel(%v) asymmetric at %d", tt.sigma, i)
			}
		}
		if math.Abs(sum-1) > 1e-4 {
			t.Errorf("Kernel(%v) sum = %v, want 1", tt.sigma, sum)
		}
		if c := len(k) / 2; k[c] < k[0] {
			t.Errorf("Kernel(%v) peak not at centre", tt.sigma)
		}
	}
}

func TestSigmaForShadowBlur(t *testing.T) {
	if got := SigmaForShadowBlur(10); got != 5 {
		t.Errorf("SigmaForShadowBlur(10) = %v, want 5", got)
	}
}

func TestGaussianZeroSigma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 1, color.RGBA{R: 200, A: 200})
	Gaussian(img, 0)
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 200, A: 200}) {
		t.Errorf("pixel changed to %v", got)
	}
}

func TestGaussianSpreadsAndConservesAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 41, 41))
	for y := 18; y < 23; y++ {
		for x := 18; x < 23; x++ {
			img.SetRGBA(x, y, color.RGBA{G: 255, B: 255, A: 255})
		}
	}
	before := totalAlpha(img)

	Gaussian(img, 2)

	if got := img.RGBAAt(20, 20).A; got == 0 || got == 255 {
		t.Errorf("centre alpha = %d, want partially blurred", got)
	}
	if img.RGBAAt(20, 15).A == 0 {
		t.Error("blur did not spread 3px out")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("blur reached the far corner")
	}
	if after := totalAlpha(img); math.Abs(float64(after-before)) > float64(before)*0.03 {
		t.Errorf("total alpha %d -> %d, want conserved", before, after)
	}
	// Premultiplied invariant.
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+1] > img.Pix[i+3] || img.Pix[i+2] > img.Pix[i+3] {
			t.Fatalf("colour exceeds alpha at byte %d", i)
		}
	}
}

func TestGaussianFadesAtEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 255, 255
	}
	Gaussian(img, 3)

	if got := img.RGBAAt(10, 10).A; got != 255 {
		t.Errorf("interior alpha = %d, want 255", got)
	}
	if got := img.RGBAAt(0, 10).A; got >= 200 {
		t.Errorf("edge alpha = %d, want faded", got)
	}
}

func totalAlpha(img *image.RGBA) int {
	var sum int
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}

func BenchmarkGaussian(b *testing.B) {
	img := image.NewRGBA(image.Rect(0, 0, 720, 600))
	b.ReportAllocs()
	for b.Loop() {
		Gaussian(img, 5)
	}
}
