package photobooth

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/photobooth/internal/blur"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// FrameKind is the decoration painted behind and around the photos.
// It also decides the canvas padding.
type FrameKind int

// Frames.
const (
	FrameNone FrameKind = iota
	FrameClassic
	FramePolaroid
	FrameNeon
	FrameVintage
	FrameHeart
	FrameStars
	FrameFilmstrip
	FrameGradient
	FrameFloral
	FrameModern
	FrameElegant
	FrameCyber
)

var frameNames = [...]struct{ id, label string }{
	FrameNone:      {"none", "Tanpa"},
	FrameClassic:   {"classic", "Classic"},
	FramePolaroid:  {"polaroid", "Polaroid"},
	FrameNeon:      {"neon", "Neon"},
	FrameVintage:   {"vintage", "Vintage"},
	FrameHeart:     {"heart", "Hearts"},
	FrameStars:     {"stars", "Stars"},
	FrameFilmstrip: {"filmstrip", "Film"},
	FrameGradient:  {"gradient", "Gradient"},
	FrameFloral:    {"floral", "Floral"},
	FrameModern:    {"modern", "Modern"},
	FrameElegant:   {"elegant", "Elegant"},
	FrameCyber:     {"cyber", "Cyber"},
}

// SelectableFrames returns the frames offered by the frame selector.
// Modern, Elegant and Cyber render and have padding entries but are not
// part of the selectable list.
func SelectableFrames() []FrameKind {
	return []FrameKind{
		FrameNone, FrameClassic, FramePolaroid, FrameNeon, FrameVintage,
		FrameHeart, FrameStars, FrameFilmstrip, FrameGradient, FrameFloral,
	}
}

// Frames returns every frame kind, including the ones that are not
// selectable.
func Frames() []FrameKind {
	all := make([]FrameKind, 0, len(frameNames))
	for i := range frameNames {
		all = append(all, FrameKind(i))
	}
	return all
}

// Valid reports whether f is a known frame kind.
func (f FrameKind) Valid() bool {
	return f >= FrameNone && f <= FrameCyber
}

// String returns the frame id, e.g. "polaroid".
func (f FrameKind) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FrameKind(%d)", int(f))
	}
	return frameNames[f].id
}

// Label returns the human readable name shown by selectors.
func (f FrameKind) Label() string {
	if !f.Valid() {
		return f.String()
	}
	return frameNames[f].label
}

// Padding returns the canvas padding in pixels for the frame.
func (f FrameKind) Padding() int {
	switch f {
	case FrameNone:
		return 0
	case FramePolaroid:
		return 40
	case FrameFilmstrip:
		return 35
	case FrameModern:
		return 50
	case FrameElegant:
		return 40
	case FrameCyber:
		return 30
	default:
		return 30
	}
}

// ParseFrame parses a frame id such as "stars".
func ParseFrame(s string) (FrameKind, error) {
	for i := range frameNames {
		if frameNames[i].id == s {
			return FrameKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFrame, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FrameKind) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrame, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FrameKind) UnmarshalText(b []byte) error {
	v, err := ParseFrame(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// captionSize is the font size of the Polaroid caption in pixels.
const captionSize = 18

var (
	captionOnce   sync.Once
	captionSource *text.FontSource
	captionErr    error
)

// captionFace returns the Go Regular face used for captions.
func captionFace() (text.Face, error) {
	captionOnce.Do(func() {
		captionSource, captionErr = text.NewFontSource(goregular.TTF)
	})
	if captionErr != nil {
		return nil, captionErr
	}
	return captionSource.Face(captionSize), nil
}

// RenderFrame paints the background and decoration of frame on a new
// width x height canvas. padding is the inset used by frames that draw
// relative to the photo area (Neon, Modern). caption is only drawn by the
// Polaroid frame, centred in its bottom strip; an empty caption draws
// nothing.
//
// FrameNone returns a fully transparent canvas.
func RenderFrame(frame FrameKind, width, height, padding int, caption string) (*image.NRGBA, error) {
	if !frame.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrame, int(frame))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	if frame == FrameNone {
		return out, nil
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	fr := frameRenderer{dc: dc, w: float64(width), h: float64(height), pad: float64(padding)}
	if err := fr.draw(frame, caption); err != nil {
		return nil, fmt.Errorf("photobooth: render %s frame: %w", frame, err)
	}

	draw.Draw(out, out.Rect, dc.Image(), image.Point{}, draw.Src)

	if frame == FrameCyber {
		if err := drawCyberOverlay(out); err != nil {
			return nil, fmt.Errorf("photobooth: render %s frame: %w", frame, err)
		}
	}
	return out, nil
}

// cyberGlowBlur is the canvas shadowBlur of the Cyber border.
const cyberGlowBlur = 10

// drawCyberOverlay composites the Cyber decoration onto out: a blurred
// copy of the cyan border (its glow), the crisp border, then the magenta
// corner brackets, which do not glow.
func drawCyberOverlay(out *image.NRGBA) error {
	w, h := out.Rect.Dx(), out.Rect.Dy()
	border := func(r *frameRenderer) {
		r.strokeRect(10, 10, r.w-20, r.h-20, 2, "#00f3ff")
	}

	glow, err := drawLayer(w, h, border)
	if err != nil {
		return err
	}
	blur.Gaussian(glow, blur.SigmaForShadowBlur(cyberGlowBlur))
	draw.Draw(out, out.Rect, glow, image.Point{}, draw.Over)

	top, err := drawLayer(w, h, func(r *frameRenderer) {
		border(r)
		r.fillRect(5, 5, 20, 4, "#ff00ff")
		r.fillRect(5, 5, 4, 20, "#ff00ff")
		r.fillRect(r.w-25, r.h-9, 20, 4, "#ff00ff")
		r.fillRect(r.w-9, r.h-25, 4, 20, "#ff00ff")
	})
	if err != nil {
		return err
	}
	draw.Draw(out, out.Rect, top, image.Point{}, draw.Over)
	return nil
}

// drawLayer runs fn on a transparent w x h gg context and returns the
// result as premultiplied RGBA.
func drawLayer(w, h int, fn func(r *frameRenderer)) (*image.RGBA, error) {
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	r := frameRenderer{dc: dc, w: float64(w), h: float64(h)}
	fn(&r)
	if r.err != nil {
		return nil, r.err
	}
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(layer, layer.Rect, dc.Image(), image.Point{}, draw.Src)
	return layer, nil
}

// frameRenderer draws one frame onto a gg context. Errors from gg fill
// and stroke operations are sticky: the first one is kept and later
// operations become no-ops.
type frameRenderer struct {
	dc   *gg.Context
	w, h float64
	pad  float64
	err  error
}

func (r *frameRenderer) fill() {
	if r.err != nil {
		r.dc.ClearPath()
		return
	}
	r.err = r.dc.Fill()
}

func (r *frameRenderer) stroke() {
	if r.err != nil {
		r.dc.ClearPath()
		return
	}
	r.err = r.dc.Stroke()
}

func (r *frameRenderer) fillRect(x, y, w, h float64, hex string) {
	r.dc.SetHexColor(hex)
	r.dc.DrawRectangle(x, y, w, h)
	r.fill()
}

func (r *frameRenderer) strokeRect(x, y, w, h, lineWidth float64, hex string) {
	r.dc.SetHexColor(hex)
	r.dc.SetLineWidth(lineWidth)
	r.dc.DrawRectangle(x, y, w, h)
	r.stroke()
}

func (r *frameRenderer) fillGradient(stops ...string) {
	g := gg.NewLinearGradientBrush(0, 0, r.w, r.h)
	last := float64(len(stops) - 1)
	for i, hex := range stops {
		g.AddColorStop(float64(i)/last, gg.Hex(hex))
	}
	r.dc.SetFillBrush(g)
	r.dc.DrawRectangle(0, 0, r.w, r.h)
	r.fill()
}

func (r *frameRenderer) draw(frame FrameKind, caption string) error {
	w, h, pad := r.w, r.h, r.pad

	switch frame {
	case FrameHeart:
		r.fillRect(0, 0, w, h, "#ffb6c1")
		r.dc.SetHexColor("#ff69b4")
		for i := 0.0; i < w; i += 40 {
			r.heart(i+20, 15, 12)
			r.heart(i+20, h-15, 12)
		}
		for i := 40.0; i < h-40; i += 40 {
			r.heart(15, i+20, 12)
			r.heart(w-15, i+20, 12)
		}

	case FrameStars:
		r.fillRect(0, 0, w, h, "#1a1a2e")
		r.dc.SetHexColor("#ffd700")
		for i := 0.0; i < w; i += 35 {
			r.star(i+17, 15, 5, 10, 5)
			r.star(i+17, h-15, 5, 10, 5)
		}
		for i := 35.0; i < h-35; i += 35 {
			r.star(15, i+17, 5, 10, 5)
			r.star(w-15, i+17, 5, 10, 5)
		}

	case FrameFilmstrip:
		r.fillRect(0, 0, w, h, "#1a1a1a")
		for i := 20.0; i < h-20; i += 30 {
			r.fillRect(8, i, 12, 18, "#ffffff")
			r.fillRect(w-20, i, 12, 18, "#ffffff")
		}

	case FrameGradient:
		r.fillGradient("#ff6b6b", "#feca57", "#48dbfb", "#ff9ff3", "#54a0ff")

	case FrameFloral:
		r.fillRect(0, 0, w, h, "#f8f4e3")
		for i := 0.0; i < w; i += 50 {
			r.flower(i+25, 20)
			r.flower(i+25, h-20)
		}
		for i := 50.0; i < h-50; i += 50 {
			r.flower(20, i+25)
			r.flower(w-20, i+25)
		}

	case FramePolaroid:
		r.fillRect(0, 0, w, h, "#ffffff")
		if caption != "" {
			r.caption(caption, "#333333")
		}

	case FrameClassic:
		r.fillRect(0, 0, w, h, "#ffffff")
		r.strokeRect(10, 10, w-20, h-20, 4, "#e5e5e5")

	case FrameVintage:
		r.fillRect(0, 0, w, h, "#d4c5a9")

	case FrameNeon:
		r.fillGradient("#ff1493", "#8b5cf6", "#00d4ff")
		r.fillRect(pad, pad, w-pad*2, h-pad*2, "#0d0520")

	case FrameModern:
		r.fillRect(0, 0, w, h, "#111111")
		r.strokeRect(pad/2, pad/2, w-pad, h-pad, 2, "#333333")

	case FrameElegant:
		r.fillRect(0, 0, w, h, "#fdfdfd")
		r.strokeRect(15, 15, w-30, h-30, 4, "#d4af37")
		r.strokeRect(22, 22, w-44, h-44, 1, "#1a1a1a")

	case FrameCyber:
		// The glowing border and the brackets are separate layers, see
		// drawCyberOverlay.
		r.fillRect(0, 0, w, h, "#050510")
	}

	return r.err
}

// heart draws a filled bezier heart whose top notch is at (x, y+size/4).
func (r *frameRenderer) heart(x, y, size float64) {
	dc := r.dc
	dc.MoveTo(x, y+size/4)
	dc.CubicTo(x, y, x-size/2, y, x-size/2, y+size/4)
	dc.CubicTo(x-size/2, y+size/2, x, y+size*0.75, x, y+size)
	dc.CubicTo(x, y+size*0.75, x+size/2, y+size/2, x+size/2, y+size/4)
	dc.CubicTo(x+size/2, y, x, y, x, y+size/4)
	dc.ClosePath()
	r.fill()
}

// star draws a filled star alternating between the outer and inner radius.
func (r *frameRenderer) star(cx, cy float64, spikes int, outer, inner float64) {
	dc := r.dc
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)

	dc.MoveTo(cx, cy-outer)
	for i := 0; i < spikes; i++ {
		dc.LineTo(cx+math.Cos(rot)*outer, cy+math.Sin(rot)*outer)
		rot += step
		dc.LineTo(cx+math.Cos(rot)*inner, cy+math.Sin(rot)*inner)
		rot += step
	}
	dc.LineTo(cx, cy-outer)
	dc.ClosePath()
	r.fill()
}

// flower draws five petals arranged radially around a round centre.
func (r *frameRenderer) flower(x, y float64) {
	dc := r.dc
	dc.SetHexColor("#e8a87c")
	for i := 0; i < 5; i++ {
		angle := float64(i) * math.Pi * 2 / 5
		dc.Push()
		dc.Translate(x+math.Cos(angle)*6, y+math.Sin(angle)*6)
		dc.Rotate(angle)
		dc.DrawEllipse(0, 0, 5, 3)
		r.fill()
		dc.Pop()
	}
	dc.SetHexColor("#f8e16c")
	dc.DrawCircle(x, y, 4)
	r.fill()
}

// caption draws s centred in the bottom strip below the padding box.
func (r *frameRenderer) caption(s, hex string) {
	face, err := captionFace()
	if err != nil {
		Logger().Warn("photobooth: caption font unavailable", "err", err)
		return
	}
	strip := r.pad + polaroidExtraBottom
	r.dc.SetFont(face)
	r.dc.SetHexColor(hex)
	r.dc.DrawStringAnchored(s, r.w/2, r.h-strip/2, 0.5, 0.5)
}
