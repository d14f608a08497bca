package photobooth

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Source yields one photo for a composition. Implementations decode
// lazily, e.g. capture.DataURL decodes a captured data URL.
type Source interface {
	Image(ctx context.Context) (image.Image, error)
}

// StaticSource is a Source for an already decoded image.
type StaticSource struct {
	Img image.Image
}

// Image returns s.Img.
func (s StaticSource) Image(context.Context) (image.Image, error) {
	return s.Img, nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (image.Image, error)

// Image calls f(ctx).
func (f SourceFunc) Image(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// Preview owns the shared result canvas of an editing session and
// re-renders it whenever the photo set, filter or frame changes.
//
// Every Render call takes a token from a monotonically increasing counter.
// A render only commits its result if no render with a newer token has
// committed before it, so a slow, stale render can never overwrite a newer
// one (last write wins on request order).
type Preview struct {
	comp *Compositor

	seq atomic.Uint64

	mu        sync.Mutex
	committed uint64
	current   *Composition
}

// NewPreview creates a Preview that renders with comp. A nil comp uses a
// default Compositor.
func NewPreview(comp *Compositor) *Preview {
	if comp == nil {
		comp = NewCompositor()
	}
	return &Preview{comp: comp}
}

// Render decodes all sources concurrently, then composites them once every
// decode has finished. Decode failures do not abort the render: the
// failure is logged and the placement stays blank.
//
// The returned composition is always the one this call produced. If a
// newer render committed first the result is discarded from the shared
// canvas and ErrStale is returned alongside it.
//
// The photo count is checked before anything is decoded; a mismatch
// returns ErrPhotoCount and no render runs.
func (p *Preview) Render(ctx context.Context, sources []Source, req Request) (*Composition, error) {
	token := p.seq.Add(1)

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if want := req.Mode.PhotoCount(); len(sources) != want {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrPhotoCount, req.Mode, want, len(sources))
	}

	photos, err := decodeAll(ctx, sources)
	if err != nil {
		return nil, err
	}

	comp, err := p.comp.Compose(photos, req)
	if err != nil {
		return nil, err
	}

	if !p.commit(token, comp) {
		Logger().Warn("photobooth: discarding stale render", "token", token)
		return comp, ErrStale
	}
	return comp, nil
}

// commit stores comp as the current result if token is newer than the
// last committed one.
func (p *Preview) commit(token uint64, comp *Composition) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token <= p.committed {
		return false
	}
	p.committed = token
	p.current = comp
	return true
}

// Current returns the most recently committed composition, or nil before
// the first successful render.
func (p *Preview) Current() *Composition {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Reset drops the committed composition, e.g. when the user retakes the
// photos. Renders started before Reset can no longer commit.
func (p *Preview) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.committed = p.seq.Load()
	p.current = nil
}

// decodeAll decodes every source on its own goroutine. Only context
// cancellation fails the whole batch; individual decode errors become nil
// photos.
func decodeAll(ctx context.Context, sources []Source) ([]image.Image, error) {
	photos := make([]image.Image, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if src == nil {
				Logger().Warn("photobooth: nil source", "index", i)
				return nil
			}
			img, err := src.Image(gctx)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				Logger().Warn("photobooth: decode failed", "index", i, "err", err)
				return nil
			}
			photos[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("photobooth: decode photos: %w", err)
	}
	return photos, nil
}
