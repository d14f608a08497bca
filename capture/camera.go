package capture

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"
)

// Camera grabs still frames from a video source.
//
// Implementations report a refused permission with ErrPermissionDenied and
// a missing device with ErrNoCamera; any other error is a generic camera
// failure. See UserMessage.
type Camera interface {
	Frame(ctx context.Context) (image.Image, error)
}

// CameraFunc adapts a function to the Camera interface.
type CameraFunc func(ctx context.Context) (image.Image, error)

// Frame calls f(ctx).
func (f CameraFunc) Frame(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// ImageCamera is a Camera that replays a fixed list of frames in order,
// wrapping around at the end. It stands in for a webcam when shots come
// from image files.
type ImageCamera struct {
	mu     sync.Mutex
	frames []image.Image
	next   int
}

// NewImageCamera returns a camera replaying frames.
func NewImageCamera(frames ...image.Image) *ImageCamera {
	return &ImageCamera{frames: frames}
}

// LoadImageCamera decodes the image files at paths into an ImageCamera.
func LoadImageCamera(paths ...string) (*ImageCamera, error) {
	frames := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := decodeFile(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return NewImageCamera(frames...), nil
}

// Frame returns the next frame, or ErrNoCamera if the camera is empty.
func (c *ImageCamera) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.frames) == 0 {
		return nil, ErrNoCamera
	}
	img := c.frames[c.next%len(c.frames)]
	c.next++
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("capture: decode %s: %w", path, err)
	}
	return img, nil
}
