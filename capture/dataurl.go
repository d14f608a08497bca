package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/photobooth"
)

// DataURL is an image encoded as "data:image/<format>;base64,<payload>",
// the form a captured shot travels in between capture and compositing.
type DataURL string

// Compile-time check.
var _ photobooth.Source = DataURL("")

// Image decodes the data URL. It implements photobooth.Source.
func (d DataURL) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := DecodeDataURL(string(d))
	return img, err
}

// MediaType returns the media type of the data URL, e.g. "image/png", or
// "" when d is malformed.
func (d DataURL) MediaType() string {
	mt, _, ok := splitDataURL(string(d))
	if !ok {
		return ""
	}
	return mt
}

// DecodeDataURL decodes a base64 image data URL. It accepts PNG, JPEG,
// GIF, BMP and WebP payloads and returns the detected format name.
func DecodeDataURL(s string) (image.Image, string, error) {
	mt, payload, ok := splitDataURL(s)
	if !ok {
		return nil, "", ErrInvalidDataURL
	}
	if !strings.HasPrefix(mt, "image/") {
		return nil, "", fmt.Errorf("%w: media type %q", ErrInvalidDataURL, mt)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("capture: decode %s: %w", mt, err)
	}
	return img, format, nil
}

// EncodeDataURL encodes img as a PNG data URL.
func EncodeDataURL(img image.Image) (DataURL, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("capture: encode png: %w", err)
	}
	return DataURL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// splitDataURL returns the media type and base64 payload of s. Only
// base64 data URLs are accepted.
func splitDataURL(s string) (mediaType, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	header, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	params := strings.Split(header, ";")
	if params[len(params)-1] != "base64" {
		return "", "", false
	}
	return strings.ToLower(params[0]), payload, true
}
