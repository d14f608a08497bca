package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/photobooth"
)

// Filename returns the download name for a composition in mode created at
// t: photobooth-<mode>-<unix millis>.png.
func Filename(mode photobooth.LayoutMode, t time.Time) string {
	return fmt.Sprintf("photobooth-%s-%d.png", mode, t.UnixMilli())
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Download writes comp as a PNG into dir under Filename and returns the
// file path.
func Download(dir string, comp *photobooth.Composition, now time.Time) (string, error) {
	if comp == nil || comp.Image == nil {
		return "", ErrNoComposition
	}
	path := filepath.Join(dir, Filename(comp.Request.Mode, now))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := WritePNG(bw, comp.Image); err != nil {
		f.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}

	photobooth.Logger().Info("export: downloaded", "path", path, "mode", comp.Request.Mode.String())
	return path, nil
}
