package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"linestorm/internal/config"
	"linestorm/internal/frame"
	"linestorm/internal/imageio"
	"linestorm/internal/raster"
	"linestorm/internal/surface"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json or config.toml")
	surfaceKind := flag.String("surface", "", "Output surface: window or webp (default: window)")
	outputDir := flag.String("output", "", "Frame directory for -surface webp (default: frames)")
	fps := flag.Int("fps", 0, "Target frame rate (default: 120)")
	lines := flag.Int("lines", 0, "Lines drawn per frame (default: 1000)")
	maxFrames := flag.Int("frames", 0, "Stop after N frames (default: until closed; 120 for webp)")
	seed := flag.Uint64("seed", 0, "Random seed (default: from clock)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Surface:   *surfaceKind,
		OutputDir: *outputDir,
		FPS:       *fps,
		Lines:     *lines,
		MaxFrames: *maxFrames,
		Seed:      *seed,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loopCfg, err := frameConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	buf := raster.New(raster.Config{Width: cfg.Width, Height: cfg.Height})
	rng := frame.NewRand(cfg.Seed)

	fmt.Printf("Canvas: %dx%d, %d lines/frame @ %d fps\n", cfg.Width, cfg.Height, cfg.LinesPerFrame, cfg.FPS)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var runErr error
	switch cfg.Surface {
	case config.SurfaceWebP:
		rec, err := surface.NewRecorder(cfg.OutputDir, cfg.RecordEvery, cfg.Scale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output: %s\n", cfg.OutputDir)
		runErr = run(ctx, loopCfg, buf, rec, rng)
		if err := rec.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Recorded: %d frames\n", len(rec.Frames()))
		}
	default:
		opts := surface.WindowOptions{Width: cfg.Width, Height: cfg.Height, Title: cfg.Title}
		err := surface.RunWindow(opts, func(w *surface.Window) {
			runErr = run(ctx, loopCfg, buf, w, rng)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if runErr != nil {
		var oob *raster.OutOfBoundsError
		if errors.As(runErr, &oob) {
			fmt.Fprintf(os.Stderr, "Error: pixel index %d outside buffer of %d: %v\n", oob.Index, oob.Len, runErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg frame.Config, buf *raster.PixelBuffer, surf surface.Surface, rng frame.Rand) error {
	loop := frame.New(cfg, buf, surf, rng)
	stats, err := loop.Run(ctx)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs: %d frames, %d lines", stats.Elapsed.Seconds(), stats.Frames, stats.Lines)
	if stats.PresentErrors > 0 {
		fmt.Printf(", %d present errors", stats.PresentErrors)
	}
	fmt.Println()
	return err
}

func frameConfig(cfg config.Config) (frame.Config, error) {
	color, err := cfg.Color()
	if err != nil {
		return frame.Config{}, err
	}
	fc := frame.Config{
		FPS:           cfg.FPS,
		LinesPerFrame: cfg.LinesPerFrame,
		LineColor:     color,
		MaxFrames:     cfg.MaxFrames,
		OverlayX:      cfg.OverlayX,
		OverlayY:      cfg.OverlayY,
		Log:           os.Stdout,
		Warn:          os.Stderr,
	}
	if cfg.OverlayImage != "" {
		// The loop looks the overlay up every frame; decode it once here so
		// a bad path fails before the window opens.
		images := imageio.NewCache()
		if _, err := images.Get(cfg.OverlayImage); err != nil {
			return frame.Config{}, err
		}
		fc.OverlayPath = cfg.OverlayImage
		fc.Images = images
	}
	return fc, nil
}
