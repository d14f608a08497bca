package capture

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/photobooth"
)

// Booth runs the capture sequence for one shot: countdown, grab a frame,
// mirror it, play the shutter beep and encode the result as a data URL.
type Booth struct {
	camera   Camera
	player   Player
	from     int
	interval time.Duration
	mirror   bool
	onTick   func(n int)
	onFlash  func()
}

// BoothOption configures a Booth.
type BoothOption func(*Booth)

// WithCountdown sets the countdown start and the time between ticks.
// A non-positive from disables the countdown.
func WithCountdown(from int, interval time.Duration) BoothOption {
	return func(b *Booth) {
		b.from = from
		b.interval = interval
	}
}

// WithTick registers a callback invoked with every countdown number.
func WithTick(fn func(n int)) BoothOption {
	return func(b *Booth) {
		b.onTick = fn
	}
}

// WithFlash registers a callback invoked right after the frame is grabbed.
func WithFlash(fn func()) BoothOption {
	return func(b *Booth) {
		b.onFlash = fn
	}
}

// WithPlayer sets the player for the shutter beep. Without one the booth
// is silent.
func WithPlayer(p Player) BoothOption {
	return func(b *Booth) {
		b.player = p
	}
}

// WithMirror enables or disables horizontal mirroring (enabled by default).
func WithMirror(enabled bool) BoothOption {
	return func(b *Booth) {
		b.mirror = enabled
	}
}

// NewBooth creates a Booth capturing from cam.
func NewBooth(cam Camera, opts ...BoothOption) *Booth {
	b := &Booth{
		camera:   cam,
		from:     DefaultCountdown,
		interval: DefaultTickInterval,
		mirror:   true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Shoot runs one capture sequence and returns the shot as a PNG data URL.
// Camera errors are returned unchanged so callers can classify them with
// errors.Is and show UserMessage.
func (b *Booth) Shoot(ctx context.Context) (DataURL, error) {
	if err := Countdown(ctx, b.from, b.interval, b.onTick); err != nil {
		return "", err
	}

	frame, err := b.camera.Frame(ctx)
	if err != nil {
		photobooth.Logger().Warn("capture: camera failed", "err", err)
		return "", err
	}
	if b.onFlash != nil {
		b.onFlash()
	}

	var shot image.Image = frame
	if b.mirror {
		shot = Mirror(frame)
	}

	if b.player != nil {
		if err := b.player.Play(ctx, ShutterWAV()); err != nil {
			photobooth.Logger().Debug("capture: shutter sound unavailable", "err", err)
		}
	}

	url, err := EncodeDataURL(shot)
	if err != nil {
		return "", fmt.Errorf("capture: shoot: %w", err)
	}

	sz := shot.Bounds().Size()
	photobooth.Logger().Debug("capture: shot taken", "width", sz.X, "height", sz.Y, "mirrored", b.mirror)
	return url, nil
}
