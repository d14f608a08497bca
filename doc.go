// Package photobooth composites captured photos into framed, filtered
// collages.
//
// # Overview
//
// A composition is described by three choices:
//   - a [LayoutMode] (how many photos and how they are arranged),
//   - a [FilterKind] (a per-pixel colour transform),
//   - a [FrameKind] (padding plus a decorated background).
//
// The pipeline computes the layout, paints the frame with
// github.com/gogpu/gg, draws every photo into its placement and finally
// runs the filter over each placement.
//
// # Quick Start
//
//	c := photobooth.NewCompositor()
//	comp, err := c.Compose(photos, photobooth.Request{
//	    Mode:   photobooth.Grid4,
//	    Filter: photobooth.FilterSepia,
//	    Frame:  photobooth.FrameHeart,
//	})
//	if err != nil {
//	    return err
//	}
//	png.Encode(w, comp.Image)
//
// # Interactive editing
//
// [Preview] re-renders on every parameter change, decoding sources
// concurrently, and makes sure a slow stale render never overwrites a
// newer one.
//
// # Sub-packages
//
//   - capture: data-URL codec, selfie mirroring, countdown, shutter tone,
//     capture sessions gated on the layout's photo count.
//   - export: PNG download, print page, simulated e-mail.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X right, Y down, units are pixels.
package photobooth
