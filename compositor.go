package photobooth

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Request holds the user-selected parameters of one composition.
type Request struct {
	Mode   LayoutMode
	Filter FilterKind
	Frame  FrameKind

	// Caption is printed in the bottom strip of the Polaroid frame.
	// Other frames ignore it.
	Caption string
}

// Validate checks that every enum in r is known.
func (r Request) Validate() error {
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLayout, int(r.Mode))
	}
	if !r.Filter.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFilter, int(r.Filter))
	}
	if !r.Frame.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFrame, int(r.Frame))
	}
	return nil
}

// Composition is the finished collage.
type Composition struct {
	// Image is the output canvas: frame decoration plus placed, filtered
	// photos. Alpha is straight (not premultiplied).
	Image *image.NRGBA

	// Layout is the geometry the image was built from.
	Layout Layout

	Request Request

	// Missing lists the placement indices left blank because their photo
	// was nil (for example a failed decode).
	Missing []int
}

// Compositor builds collages. It holds no per-composition state and is
// safe for concurrent use.
type Compositor struct {
	gap    int
	interp draw.Interpolator
}

// NewCompositor creates a Compositor.
func NewCompositor(opts ...CompositorOption) *Compositor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Compositor{
		gap:    options.gap,
		interp: options.interp,
	}
}

// Compose composites photos according to req.
//
// len(photos) must equal req.Mode.PhotoCount(), otherwise ErrPhotoCount is
// returned and nothing is drawn. A nil entry marks a photo that could not
// be decoded: its placement is left blank and reported in
// Composition.Missing. Cell sizes derive from the first non-nil photo.
//
// The pipeline is: compute the layout, paint the frame, draw each photo
// into its placement, then run the filter over every placement.
func (c *Compositor) Compose(photos []image.Image, req Request) (*Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if want := req.Mode.PhotoCount(); len(photos) != want {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrPhotoCount, req.Mode, want, len(photos))
	}

	first := firstPhoto(photos)
	if first == nil {
		return nil, ErrNoImages
	}
	size := first.Bounds().Size()

	layout, err := computeLayout(req.Mode, req.Frame, size.X, size.Y, c.gap)
	if err != nil {
		return nil, err
	}

	canvas, err := RenderFrame(req.Frame, layout.Width, layout.Height, layout.Padding, req.Caption)
	if err != nil {
		return nil, err
	}

	var missing []int
	for i, p := range layout.Placements {
		img := photos[i]
		if img == nil {
			Logger().Warn("photobooth: photo missing, leaving placement blank",
				"index", i, "mode", req.Mode.String())
			missing = append(missing, i)
			continue
		}
		c.drawPhoto(canvas, p.Rect(), img)
	}

	for _, p := range layout.Placements {
		ApplyFilter(canvas, p.Rect(), req.Filter)
	}

	Logger().Debug("photobooth: composed",
		"mode", req.Mode.String(),
		"filter", req.Filter.String(),
		"frame", req.Frame.String(),
		"width", layout.Width,
		"height", layout.Height)

	return &Composition{
		Image:   canvas,
		Layout:  layout,
		Request: req,
		Missing: missing,
	}, nil
}

// drawPhoto draws img into dr with source-over. Same-size photos are
// copied directly; others are resampled with the configured interpolator.
func (c *Compositor) drawPhoto(dst *image.NRGBA, dr image.Rectangle, img image.Image) {
	sr := img.Bounds()
	if sr.Size() == dr.Size() {
		draw.Draw(dst, dr, img, sr.Min, draw.Over)
		return
	}
	c.interp.Scale(dst, dr, img, sr, draw.Over, nil)
}

func firstPhoto(photos []image.Image) image.Image {
	for _, p := range photos {
		if p != nil {
			return p
		}
	}
	return nil
}
