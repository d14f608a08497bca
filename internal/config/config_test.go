package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/photobooth"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photobooth", FileName)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `mode = "grid-4"
filter = "sepia"
frame = "polaroid"
caption = "Ulang Tahun"
mirror = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != "grid-4" || cfg.Filter != "sepia" || cfg.Frame != "polaroid" || cfg.Mirror {
		t.Errorf("Load() = %+v", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Gap != photobooth.DefaultGap || cfg.TickMillis != 1000 {
		t.Errorf("defaults lost: gap=%d tick=%d", cfg.Gap, cfg.TickMillis)
	}

	req, err := cfg.Request()
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	want := photobooth.Request{Mode: photobooth.Grid4, Filter: photobooth.FilterSepia, Frame: photobooth.FramePolaroid, Caption: "Ulang Tahun"}
	if req != want {
		t.Errorf("Request() = %+v, want %+v", req, want)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("mode = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	t.Setenv("PHOTOBOOTH_FILTER", "golden")
	t.Setenv("PHOTOBOOTH_GAP", "12")
	t.Setenv("PHOTOBOOTH_MIRROR", "false")
	t.Setenv("PHOTOBOOTH_COUNTDOWN", "not-a-number")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Filter != "golden" || cfg.Gap != 12 || cfg.Mirror {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Countdown != Default().Countdown {
		t.Errorf("invalid int override changed Countdown to %d", cfg.Countdown)
	}
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("PHOTOBOOTH_FRAME=heart\nPHOTOBOOTH_MODE=grid-2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Variables already in the environment win over the file.
	t.Setenv("PHOTOBOOTH_MODE", "vertical-4")
	// Setenv registers the restore of PHOTOBOOTH_FRAME, which the .env
	// file sets for the rest of the process otherwise.
	t.Setenv("PHOTOBOOTH_FRAME", "")
	os.Unsetenv("PHOTOBOOTH_FRAME")

	cfg, err := Load(filepath.Join(dir, FileName), envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Frame != "heart" {
		t.Errorf("Frame = %q, want heart from .env", cfg.Frame)
	}
	if cfg.Mode != "vertical-4" {
		t.Errorf("Mode = %q, want vertical-4 from environment", cfg.Mode)
	}
}

func TestMissingEnvFileIgnored(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, FileName), filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("Load() error = %v, want nil for missing .env", err)
	}
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"mode", Config{Mode: "grid-9", Filter: "normal", Frame: "none"}, photobooth.ErrInvalidLayout},
		{"filter", Config{Mode: "single", Filter: "warm", Frame: "none"}, photobooth.ErrInvalidFilter},
		{"frame", Config{Mode: "single", Filter: "normal", Frame: "gold"}, photobooth.ErrInvalidFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Request(); !errors.Is(err, tt.want) {
				t.Errorf("Request() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := Config{TickMillis: 250, SentHoldMillis: 3000}
	if cfg.TickInterval() != 250*time.Millisecond || cfg.SentHold() != 3*time.Second {
		t.Errorf("durations = %v, %v", cfg.TickInterval(), cfg.SentHold())
	}
}

func TestDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != filepath.Join("/tmp/xdg", "photobooth", FileName) {
		t.Errorf("Path() = %q", got)
	}
}
