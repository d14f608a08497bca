package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
)

func TestDataURLRoundTrip(t *testing.T) {
	src := gradientImage(12, 7)

	url, err := EncodeDataURL(src)
	if err != nil {
		t.Fatalf("EncodeDataURL() error = %v", err)
	}
	if !strings.HasPrefix(string(url), "data:image/png;base64,") {
		t.Fatalf("data URL prefix = %.30q", url)
	}
	if got := url.MediaType(); got != "image/png" {
		t.Errorf("MediaType() = %q, want image/png", got)
	}

	img, format, err := DecodeDataURL(string(url))
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds() != src.Rect {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Rect)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y))
			if want := src.NRGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecodeDataURLJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gradientImage(16, 16), nil); err != nil {
		t.Fatal(err)
	}
	url := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	img, format, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if format != "jpeg" || img.Bounds().Dx() != 16 {
		t.Errorf("got %s %v, want jpeg 16x16", format, img.Bounds())
	}
}

func TestDecodeDataURLInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalidDataURL},
		{"no scheme", "image/png;base64,AAAA", ErrInvalidDataURL},
		{"no comma", "data:image/png;base64", ErrInvalidDataURL},
		{"not base64", "data:image/png,rawdata", ErrInvalidDataURL},
		{"not an image", "data:text/plain;base64,aGVsbG8=", ErrInvalidDataURL},
		{"bad payload", "data:image/png;base64,***", ErrInvalidDataURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeDataURL(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("DecodeDataURL(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestDecodeDataURLCorruptImage(t *testing.T) {
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a png"))
	_, _, err := DecodeDataURL(url)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrInvalidDataURL) {
		t.Errorf("corrupt payload reported as malformed URL: %v", err)
	}
}

func TestDataURLImageHonoursContext(t *testing.T) {
	url, err := EncodeDataURL(gradientImage(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := url.Image(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Image() error = %v, want context.Canceled", err)
	}
	if img, err := url.Image(context.Background()); err != nil || img.Bounds().Dx() != 2 {
		t.Errorf("Image() = %v, %v", img, err)
	}
}

func TestMediaTypeMalformed(t *testing.T) {
	if got := DataURL("garbage").MediaType(); got != "" {
		t.Errorf("MediaType() = %q, want empty", got)
	}
}
