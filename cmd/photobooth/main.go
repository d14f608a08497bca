// Command photobooth composes image files into a photobooth collage.
//
// Each image argument is one shot. The shots run through the capture
// sequence (countdown, mirror), are composited with the selected layout,
// filter and frame, and the result is saved as
// photobooth-<mode>-<unix millis>.png in the output directory:
//
//	photobooth -mode grid-4 -filter sepia -frame polaroid -caption "Hari Ini" a.png b.png c.png d.png
//
// Defaults come from $XDG_CONFIG_HOME/photobooth/config.toml, a .env file
// and PHOTOBOOTH_* environment variables; flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gogpu/photobooth"
	"github.com/gogpu/photobooth/capture"
	"github.com/gogpu/photobooth/export"
	"github.com/gogpu/photobooth/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "photobooth: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("photobooth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode       = fs.String("mode", "", "layout mode (single, grid-2, grid-3, grid-4, vertical-3, vertical-4)")
		filter     = fs.String("filter", "", "colour filter (normal, grayscale, sepia, contrast, vintage, cool, soft, golden, dreamy)")
		frame      = fs.String("frame", "", "decorative frame (none, classic, polaroid, neon, vintage, heart, stars, filmstrip, gradient, floral)")
		caption    = fs.String("caption", "", "caption printed on the polaroid frame")
		out        = fs.String("out", "", "output directory")
		printPath  = fs.String("print", "", "also write a print-ready HTML page to this file")
		email      = fs.String("email", "", "simulate sending the result to this address")
		mirror     = fs.Bool("mirror", true, "mirror shots horizontally like a selfie camera")
		countdown  = fs.Int("countdown", 0, "countdown seconds before each shot")
		configPath = fs.String("config", "", "config file (default $XDG_CONFIG_HOME/photobooth/config.toml)")
		envFile    = fs.String("env", ".env", "environment file")
		list       = fs.Bool("list", false, "list layouts, filters and frames and exit")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: photobooth [flags] image...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	photobooth.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer photobooth.SetLogger(nil)

	if *list {
		printChoices(stdout)
		return nil
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "filter":
			cfg.Filter = *filter
		case "frame":
			cfg.Frame = *frame
		case "caption":
			cfg.Caption = *caption
		case "out":
			cfg.OutputDir = *out
		case "mirror":
			cfg.Mirror = *mirror
		case "countdown":
			cfg.Countdown = *countdown
		}
	})

	req, err := cfg.Request()
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no images given")
	}
	if n, want := fs.NArg(), req.Mode.PhotoCount(); n != want {
		photobooth.Logger().Warn("image count differs from layout",
			"mode", req.Mode.String(), "want", want, "got", n)
	}

	cam, err := capture.LoadImageCamera(fs.Args()...)
	if err != nil {
		return err
	}
	booth := capture.NewBooth(cam,
		capture.WithCountdown(cfg.Countdown, cfg.TickInterval()),
		capture.WithMirror(cfg.Mirror),
		capture.WithTick(func(n int) { fmt.Fprintf(stdout, "%d...\n", n) }),
	)

	session := capture.NewSession(req.Mode)
	if err := session.Fill(ctx, booth); err != nil {
		return fmt.Errorf("%s: %w", capture.UserMessage(err), err)
	}

	preview := photobooth.NewPreview(photobooth.NewCompositor(photobooth.WithGap(cfg.Gap)))
	comp, err := preview.Render(ctx, session.Sources(), req)
	if err != nil {
		return err
	}

	path, err := export.Download(cfg.OutputDir, comp, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "saved %s (%dx%d)\n", path, comp.Layout.Width, comp.Layout.Height)

	// Remaining exports are independent: report failures and keep going.
	var errs []error
	if *printPath != "" {
		if err := writePrintPage(*printPath, comp); err != nil {
			photobooth.Logger().Error("print page failed", "err", err)
			errs = append(errs, err)
		} else {
			fmt.Fprintf(stdout, "print page %s\n", *printPath)
		}
	}
	if *email != "" {
		mailer := export.NewSimulatedMailer(export.WithSentHold(cfg.SentHold()))
		r, err := mailer.Send(ctx, *email, comp)
		if err != nil {
			photobooth.Logger().Error("email failed", "err", err)
			errs = append(errs, err)
		} else {
			fmt.Fprintf(stdout, "sent %s to %s (receipt %s)\n", r.Attachment, r.To, r.ID)
		}
	}
	return errors.Join(errs...)
}

func writePrintPage(path string, comp *photobooth.Composition) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.PrintPage(f, comp.Image); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printChoices(w io.Writer) {
	fmt.Fprintln(w, "layouts:")
	for _, m := range photobooth.LayoutModes() {
		fmt.Fprintf(w, "  %-12s %-8s %d photos\n", m, m.Label(), m.PhotoCount())
	}
	fmt.Fprintln(w, "filters:")
	for _, f := range photobooth.Filters() {
		fmt.Fprintf(w, "  %-12s %s\n", f, f.Label())
	}
	fmt.Fprintln(w, "frames:")
	for _, f := range photobooth.SelectableFrames() {
		fmt.Fprintf(w, "  %-12s %s\n", f, f.Label())
	}
}
