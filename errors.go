package photobooth

import "errors"

var (
	// ErrPhotoCount is returned when the number of sources does not match
	// the photo count required by the layout mode. Compositing does not run.
	ErrPhotoCount = errors.New("photobooth: photo count does not match layout")

	// ErrNoImages is returned when none of the sources could be decoded.
	ErrNoImages = errors.New("photobooth: no decodable images")

	// ErrInvalidLayout is returned for an unknown layout mode.
	ErrInvalidLayout = errors.New("photobooth: invalid layout mode")

	// ErrInvalidFilter is returned for an unknown filter kind.
	ErrInvalidFilter = errors.New("photobooth: invalid filter")

	// ErrInvalidFrame is returned for an unknown frame kind.
	ErrInvalidFrame = errors.New("photobooth: invalid frame")

	// ErrInvalidSize is returned when the source dimensions are not positive.
	ErrInvalidSize = errors.New("photobooth: invalid image size")

	// ErrStale is returned by Preview.Render when a newer render has already
	// been committed to the canvas.
	ErrStale = errors.New("photobooth: render superseded by a newer request")
)
