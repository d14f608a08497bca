package photobooth

import "golang.org/x/image/draw"

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	// Defaults: 8 px gap, Catmull-Rom scaling
//	c := photobooth.NewCompositor()
//
//	// Faster, blockier previews
//	c := photobooth.NewCompositor(photobooth.WithInterpolator(draw.NearestNeighbor))
type CompositorOption func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor creation.
type compositorOptions struct {
	gap    int
	interp draw.Interpolator
}

// defaultOptions returns the default compositor options.
func defaultOptions() compositorOptions {
	return compositorOptions{
		gap:    DefaultGap,
		interp: draw.CatmullRom,
	}
}

// WithGap sets the spacing between collage cells. Negative values are
// ignored.
func WithGap(gap int) CompositorOption {
	return func(o *compositorOptions) {
		if gap >= 0 {
			o.gap = gap
		}
	}
}

// WithInterpolator sets the scaler used when a photo is drawn into a cell
// of a different size (the half-size grid modes). Photos drawn at their
// own size are copied without resampling.
func WithInterpolator(interp draw.Interpolator) CompositorOption {
	return func(o *compositorOptions) {
		if interp != nil {
			o.interp = interp
		}
	}
}
