package capture

import "errors"

var (
	// ErrPermissionDenied is returned by a Camera when the user refused
	// camera access.
	ErrPermissionDenied = errors.New("capture: camera permission denied")

	// ErrNoCamera is returned by a Camera when no capture device exists.
	ErrNoCamera = errors.New("capture: no camera found")

	// ErrSessionFull is returned when a shot is added to a session that
	// already holds every photo its layout needs.
	ErrSessionFull = errors.New("capture: session already has all photos")

	// ErrInvalidDataURL is returned for strings that are not base64
	// image data URLs.
	ErrInvalidDataURL = errors.New("capture: invalid data URL")
)

// UserMessage returns the message shown to the user when the camera could
// not be opened. Every camera failure can be retried.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "Akses kamera ditolak. Silakan izinkan akses kamera di pengaturan browser Anda."
	case errors.Is(err, ErrNoCamera):
		return "Tidak ada kamera yang ditemukan. Pastikan perangkat Anda memiliki webcam."
	default:
		return "Gagal mengakses kamera. Silakan coba lagi."
	}
}
