package photobooth

import (
	"fmt"
	"image"
)

// DefaultGap is the spacing in pixels between collage cells.
const DefaultGap = 8

// polaroidExtraBottom is the additional bottom margin of the Polaroid frame.
const polaroidExtraBottom = 40

// LayoutMode selects how many photos a collage holds and how they are
// arranged on the canvas.
type LayoutMode int

// Layout modes.
const (
	// Single is one full-size photo.
	Single LayoutMode = iota

	// Grid2 is two half-size photos side by side.
	Grid2

	// Grid3 is two half-size photos on top and one centred below.
	Grid3

	// Grid4 is a 2x2 grid of half-size photos.
	Grid4

	// Vertical3 is a strip of three full-size photos.
	Vertical3

	// Vertical4 is a strip of four full-size photos.
	Vertical4
)

// layoutSpec is the static description of a layout mode.
type layoutSpec struct {
	id     string
	label  string
	count  int
	layout func(w, h, pad, gap, extra int) (cw, ch int, cells []Placement)
}

var layoutSpecs = [...]layoutSpec{
	Single:    {id: "single", label: "1 Foto", count: 1, layout: singleLayout},
	Grid2:     {id: "grid-2", label: "2 Foto", count: 2, layout: grid2Layout},
	Grid3:     {id: "grid-3", label: "3 Foto", count: 3, layout: grid3Layout},
	Grid4:     {id: "grid-4", label: "4 Foto", count: 4, layout: grid4Layout},
	Vertical3: {id: "vertical-3", label: "Strip 3", count: 3, layout: verticalLayout(3)},
	Vertical4: {id: "vertical-4", label: "Strip 4", count: 4, layout: verticalLayout(4)},
}

// LayoutModes returns every layout mode in display order.
func LayoutModes() []LayoutMode {
	return []LayoutMode{Single, Grid2, Grid3, Grid4, Vertical3, Vertical4}
}

// Valid reports whether m is a known layout mode.
func (m LayoutMode) Valid() bool {
	return m >= Single && m <= Vertical4
}

// String returns the mode id, e.g. "grid-4". It is also the <mode> part of
// exported file names.
func (m LayoutMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
	return layoutSpecs[m].id
}

// Label returns the human readable name shown by selectors.
func (m LayoutMode) Label() string {
	if !m.Valid() {
		return m.String()
	}
	return layoutSpecs[m].label
}

// PhotoCount returns the number of photos the mode requires.
// Unknown modes report 1, matching the single-photo fallback.
func (m LayoutMode) PhotoCount() int {
	if !m.Valid() {
		return 1
	}
	return layoutSpecs[m].count
}

// ParseLayoutMode parses a mode id such as "grid-3".
func ParseLayoutMode(s string) (LayoutMode, error) {
	for i := range layoutSpecs {
		if layoutSpecs[i].id == s {
			return LayoutMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m LayoutMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayout, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LayoutMode) UnmarshalText(text []byte) error {
	v, err := ParseLayoutMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Placement is the destination rectangle of one photo on the canvas.
type Placement struct {
	X, Y          int
	Width, Height int
}

// Rect returns the placement as an image.Rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Area returns Width*Height.
func (p Placement) Area() int {
	return p.Width * p.Height
}

// Layout is the computed geometry of a composition.
type Layout struct {
	Mode       LayoutMode
	Frame      FrameKind
	Width      int
	Height     int
	Padding    int
	Gap        int
	Placements []Placement
}

// Bounds returns the canvas rectangle.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// ContentBounds returns the canvas minus the frame padding (and the extra
// Polaroid bottom margin). All placements lie inside it.
func (l Layout) ContentBounds() image.Rectangle {
	extra := 0
	if l.Frame == FramePolaroid {
		extra = polaroidExtraBottom
	}
	return image.Rect(l.Padding, l.Padding, l.Width-l.Padding, l.Height-l.Padding-extra)
}

// ComputeLayout computes the canvas size and placements for mode and frame,
// given the size of the source photos (all photos share the size of the
// first one). It uses DefaultGap between cells.
func ComputeLayout(mode LayoutMode, frame FrameKind, w, h int) (Layout, error) {
	return computeLayout(mode, frame, w, h, DefaultGap)
}

func computeLayout(mode LayoutMode, frame FrameKind, w, h, gap int) (Layout, error) {
	if !mode.Valid() {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidLayout, int(mode))
	}
	if !frame.Valid() {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidFrame, int(frame))
	}
	if w <= 0 || h <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if mode != Single && mode != Vertical3 && mode != Vertical4 && (w < 2 || h < 2) {
		// Half-size grid cells would be empty.
		return Layout{}, fmt.Errorf("%w: %dx%d too small for %s", ErrInvalidSize, w, h, mode)
	}

	pad := frame.Padding()
	extra := 0
	if frame == FramePolaroid {
		extra = polaroidExtraBottom
	}

	cw, ch, cells := layoutSpecs[mode].layout(w, h, pad, gap, extra)
	return Layout{
		Mode:       mode,
		Frame:      frame,
		Width:      cw,
		Height:     ch,
		Padding:    pad,
		Gap:        gap,
		Placements: cells,
	}, nil
}

func singleLayout(w, h, pad, _, extra int) (int, int, []Placement) {
	return w + 2*pad, h + 2*pad + extra, []Placement{{X: pad, Y: pad, Width: w, Height: h}}
}

func grid2Layout(w, h, pad, gap, extra int) (int, int, []Placement) {
	cw, ch := w/2, h/2
	return 2*cw + gap + 2*pad, ch + 2*pad + extra, []Placement{
		{X: pad, Y: pad, Width: cw, Height: ch},
		{X: pad + cw + gap, Y: pad, Width: cw, Height: ch},
	}
}

func grid3Layout(w, h, pad, gap, extra int) (int, int, []Placement) {
	cw, ch := w/2, h/2
	return 2*cw + gap + 2*pad, 2*ch + gap + 2*pad + extra, []Placement{
		{X: pad, Y: pad, Width: cw, Height: ch},
		{X: pad + cw + gap, Y: pad, Width: cw, Height: ch},
		{X: pad + (cw+gap)/2, Y: pad + ch + gap, Width: cw, Height: ch},
	}
}

func grid4Layout(w, h, pad, gap, extra int) (int, int, []Placement) {
	cw, ch := w/2, h/2
	return 2*cw + gap + 2*pad, 2*ch + gap + 2*pad + extra, []Placement{
		{X: pad, Y: pad, Width: cw, Height: ch},
		{X: pad + cw + gap, Y: pad, Width: cw, Height: ch},
		{X: pad, Y: pad + ch + gap, Width: cw, Height: ch},
		{X: pad + cw + gap, Y: pad + ch + gap, Width: cw, Height: ch},
	}
}

func verticalLayout(n int) func(w, h, pad, gap, extra int) (int, int, []Placement) {
	return func(w, h, pad, gap, extra int) (int, int, []Placement) {
		cells := make([]Placement, n)
		for i := range cells {
			cells[i] = Placement{X: pad, Y: pad + i*(h+gap), Width: w, Height: h}
		}
		return w + 2*pad, n*h + (n-1)*gap + 2*pad + extra, cells
	}
}
