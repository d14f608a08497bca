// Package config loads the command-line defaults of photobooth from a TOML
// file, a .env file and PHOTOBOOTH_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gogpu/photobooth"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// envPrefix prefixes every environment override.
const envPrefix = "PHOTOBOOTH_"

// Config holds the defaults the CLI starts from. Flags override them.
type Config struct {
	Mode      string `toml:"mode"`
	Filter    string `toml:"filter"`
	Frame     string `toml:"frame"`
	Caption   string `toml:"caption"`
	OutputDir string `toml:"output_dir"`
	Mirror    bool   `toml:"mirror"`
	Gap       int    `toml:"gap"`

	// Countdown is the number the capture countdown starts from and
	// TickMillis the time between ticks. Zero disables the countdown.
	Countdown  int `toml:"countdown"`
	TickMillis int `toml:"tick_millis"`

	// SentHoldMillis is how long the mailer reports a send as done.
	SentHoldMillis int `toml:"sent_hold_millis"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Mode:           photobooth.Single.String(),
		Filter:         photobooth.FilterNormal.String(),
		Frame:          photobooth.FrameNone.String(),
		OutputDir:      ".",
		Mirror:         true,
		Gap:            photobooth.DefaultGap,
		Countdown:      0,
		TickMillis:     1000,
		SentHoldMillis: 3000,
	}
}

// Dir returns the config directory: $XDG_CONFIG_HOME/photobooth, falling
// back to ~/.config/photobooth.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "photobooth")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), FileName)
}

// Load reads the config file at path, writing the defaults there first if
// it does not exist. An empty path uses Path(). If envFile names an
// existing file its variables are loaded into the environment (without
// overriding variables already set) before PHOTOBOOTH_* overrides are
// applied.
func Load(path, envFile string) (Config, error) {
	if path == "" {
		path = Path()
	}
	if err := initialize(path); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	photobooth.Logger().Debug("config: loaded", "path", path, "mode", cfg.Mode, "frame", cfg.Frame)
	return cfg, nil
}

// Write stores cfg at path, creating the directory if needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func initialize(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	photobooth.Logger().Info("config: initializing", "path", path)
	return Write(path, Default())
}

func (c *Config) applyEnv() {
	c.Mode = envString("MODE", c.Mode)
	c.Filter = envString("FILTER", c.Filter)
	c.Frame = envString("FRAME", c.Frame)
	c.Caption = envString("CAPTION", c.Caption)
	c.OutputDir = envString("OUTPUT_DIR", c.OutputDir)
	c.Mirror = envBool("MIRROR", c.Mirror)
	c.Gap = envInt("GAP", c.Gap)
	c.Countdown = envInt("COUNTDOWN", c.Countdown)
	c.TickMillis = envInt("TICK_MILLIS", c.TickMillis)
	c.SentHoldMillis = envInt("SENT_HOLD_MILLIS", c.SentHoldMillis)
}

// Request parses the mode, filter and frame names into a compositing
// request.
func (c Config) Request() (photobooth.Request, error) {
	mode, err := photobooth.ParseLayoutMode(c.Mode)
	if err != nil {
		return photobooth.Request{}, err
	}
	filter, err := photobooth.ParseFilter(c.Filter)
	if err != nil {
		return photobooth.Request{}, err
	}
	frame, err := photobooth.ParseFrame(c.Frame)
	if err != nil {
		return photobooth.Request{}, err
	}
	return photobooth.Request{Mode: mode, Filter: filter, Frame: frame, Caption: c.Caption}, nil
}

// TickInterval returns TickMillis as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// SentHold returns SentHoldMillis as a duration.
func (c Config) SentHold() time.Duration {
	return time.Duration(c.SentHoldMillis) * time.Millisecond
}

func envString(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(envPrefix + key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
