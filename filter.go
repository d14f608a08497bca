package photobooth

import (
	"fmt"
	"image"
	"math"
)

// FilterKind is a per-pixel colour transform applied to every placement
// after all photos are drawn. Filters only touch the RGB channels.
type FilterKind int

// Filters.
const (
	FilterNormal FilterKind = iota
	FilterGrayscale
	FilterSepia
	FilterContrast
	FilterVintage
	FilterCool
	FilterSoft
	FilterGolden
	FilterDreamy
)

var filterNames = [...]struct{ id, label string }{
	FilterNormal:    {"normal", "Normal"},
	FilterGrayscale: {"grayscale", "B&W"},
	FilterSepia:     {"sepia", "Sepia"},
	FilterContrast:  {"contrast", "Vivid"},
	FilterVintage:   {"vintage", "Vintage"},
	FilterCool:      {"cool", "Cool"},
	FilterSoft:      {"soft", "Soft"},
	FilterGolden:    {"golden", "Golden"},
	FilterDreamy:    {"dreamy", "Dreamy"},
}

// Filters returns every filter in display order.
func Filters() []FilterKind {
	return []FilterKind{FilterNormal, FilterGrayscale, FilterSepia, FilterContrast, FilterVintage, FilterCool, FilterSoft, FilterGolden, FilterDreamy}
}

// Valid reports whether f is a known filter.
func (f FilterKind) Valid() bool {
	return f >= FilterNormal && f <= FilterDreamy
}

// String returns the filter id, e.g. "sepia".
func (f FilterKind) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FilterKind(%d)", int(f))
	}
	return filterNames[f].id
}

// Label returns the human readable name shown by selectors.
func (f FilterKind) Label() string {
	if !f.Valid() {
		return f.String()
	}
	return filterNames[f].label
}

// ParseFilter parses a filter id such as "golden".
func ParseFilter(s string) (FilterKind, error) {
	for i := range filterNames {
		if filterNames[i].id == s {
			return FilterKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FilterKind) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFilter, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FilterKind) UnmarshalText(text []byte) error {
	v, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Transform maps one pixel through the filter. Inputs and outputs are
// 0-255 channel values; every output channel is clamped to [0, 255] and
// rounded half to even.
func (f FilterKind) Transform(r, g, b uint8) (uint8, uint8, uint8) {
	fr, fg, fb := float64(r), float64(g), float64(b)

	switch f {
	case FilterGrayscale:
		gray := fr*0.299 + fg*0.587 + fb*0.114
		return channel(gray), channel(gray), channel(gray)
	case FilterSepia:
		return channel(fr*0.393 + fg*0.769 + fb*0.189),
			channel(fr*0.349 + fg*0.686 + fb*0.168),
			channel(fr*0.272 + fg*0.534 + fb*0.131)
	case FilterContrast:
		const factor = 1.4
		return channel((fr-128)*factor + 128),
			channel((fg-128)*factor + 128),
			channel((fb-128)*factor + 128)
	case FilterVintage:
		return channel(fr*1.1 + 20), channel(fg*0.9 + 10), channel(fb * 0.7)
	case FilterCool:
		return channel(fr * 0.9), channel(fg), channel(fb*1.2 + 20)
	case FilterSoft:
		return channel((fr-128)*0.8 + 128 + 20),
			channel((fg-128)*0.8 + 128 + 20),
			channel((fb-128)*0.8 + 128 + 20)
	case FilterGolden:
		return channel(fr*1.1 + 30), channel(fg*1.1 + 20), channel(fb * 0.9)
	case FilterDreamy:
		return channel(fr*1.05 + 10), channel(fg * 0.95), channel(fb*1.1 + 20)
	default:
		return r, g, b
	}
}

// channel clamps v to [0, 255] and rounds the way a canvas stores
// ImageData (round half to even).
func channel(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// ApplyFilter runs f over the pixels of img inside r, in place. The
// rectangle is clipped to the image bounds. Alpha is left untouched and
// FilterNormal does not touch the buffer at all.
func ApplyFilter(img *image.NRGBA, r image.Rectangle, f FilterKind) {
	if f == FilterNormal || !f.Valid() {
		return
	}
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}

	rowLen := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		row := img.Pix[off : off+rowLen : off+rowLen]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2] = f.Transform(row[i], row[i+1], row[i+2])
		}
	}
}
