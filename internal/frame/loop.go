// Package frame runs the per-frame draw loop: clear the buffer, scatter
// random lines over it, present it and sleep to hold the target frame rate.
package frame

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand/v2"
	"time"

	"linestorm/internal/raster"
	"linestorm/internal/surface"
)

// Rand supplies uniform integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ImageSource resolves an image path to decoded pixels. imageio.Cache
// implements it.
type ImageSource interface {
	Get(path string) (*image.NRGBA, error)
}

// Config holds everything one run of the loop needs.
type Config struct {
	FPS           int
	LinesPerFrame int
	LineColor     uint32
	MaxFrames     int // 0 runs until the surface closes or ctx is done

	// OverlayPath, when set, is looked up in Images every frame and blitted
	// at (OverlayX, OverlayY) after the lines.
	OverlayPath string
	OverlayX    int
	OverlayY    int
	Images      ImageSource

	// Log receives progress lines and Warn present failures; nil discards.
	Log  io.Writer
	Warn io.Writer
}

// Stats summarises a finished run.
type Stats struct {
	Frames        int
	Lines         int
	PresentErrors int
	Elapsed       time.Duration
}

// Loop owns the pixel buffer for the lifetime of a run.
type Loop struct {
	cfg  Config
	buf  *raster.PixelBuffer
	surf surface.Surface
	rng  Rand

	sleep func(time.Duration)
	now   func() time.Time
}

// New creates a loop drawing into buf and presenting on surf.
func New(cfg Config, buf *raster.PixelBuffer, surf surface.Surface, rng Rand) *Loop {
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}
	if cfg.Warn == nil {
		cfg.Warn = io.Discard
	}
	return &Loop{
		cfg:   cfg,
		buf:   buf,
		surf:  surf,
		rng:   rng,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Buffer returns the buffer the loop draws into.
func (l *Loop) Buffer() *raster.PixelBuffer {
	return l.buf
}

// FrameInterval is the target time between frames.
func (l *Loop) FrameInterval() time.Duration {
	if l.cfg.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(l.cfg.FPS)
}

// Run draws frames until ctx is done, the surface closes or MaxFrames is
// reached. An out-of-bounds draw is a bug in the geometry and stops the run
// with the raster error; present failures are logged and skipped.
func (l *Loop) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	start := l.now()
	interval := l.FrameInterval()

	// Progress reporter
	const reportEvery = 2 * time.Second
	lastReport, reportFrames := start, 0

	lastFrame := start
	for {
		if err := ctx.Err(); err != nil {
			break
		}
		if l.surf.Closed() {
			break
		}
		if l.cfg.MaxFrames > 0 && stats.Frames >= l.cfg.MaxFrames {
			break
		}

		n, err := l.DrawFrame()
		stats.Lines += n
		if err != nil {
			stats.Elapsed = l.now().Sub(start)
			return stats, fmt.Errorf("frame: frame %d: %w", stats.Frames, err)
		}

		if err := l.surf.Present(l.buf); err != nil {
			stats.PresentErrors++
			fmt.Fprintf(l.cfg.Warn, "Warning: present frame %d: %v\n", stats.Frames, err)
		}
		stats.Frames++
		reportFrames++

		// FPS lock
		elapsed := l.now().Sub(lastFrame)
		if elapsed < interval {
			l.sleep(interval - elapsed)
		}
		lastFrame = l.now()

		if since := lastFrame.Sub(lastReport); since >= reportEvery {
			fmt.Fprintf(l.cfg.Log, "  [%d frames] %.1f fps\n", stats.Frames, float64(reportFrames)/since.Seconds())
			lastReport, reportFrames = lastFrame, 0
		}
	}

	stats.Elapsed = l.now().Sub(start)
	return stats, nil
}

// DrawFrame clears the buffer and draws one frame of random lines plus the
// overlay. It returns the number of lines drawn.
func (l *Loop) DrawFrame() (int, error) {
	l.buf.Clear()

	w, h := l.buf.Width, l.buf.Height
	for i := 0; i < l.cfg.LinesPerFrame; i++ {
		x0, x1 := l.rng.IntN(w), l.rng.IntN(w)
		y0, y1 := l.rng.IntN(h), l.rng.IntN(h)
		if err := l.buf.DrawLine(x0, y0, x1, y1, l.cfg.LineColor); err != nil {
			return i, fmt.Errorf("draw line %d (%d,%d)-(%d,%d): %w", i, x0, y0, x1, y1, err)
		}
	}

	if l.cfg.OverlayPath != "" && l.cfg.Images != nil {
		img, err := l.cfg.Images.Get(l.cfg.OverlayPath)
		if err != nil {
			return l.cfg.LinesPerFrame, fmt.Errorf("overlay: %w", err)
		}
		l.buf.DrawImage(img, l.cfg.OverlayX, l.cfg.OverlayY)
	}
	return l.cfg.LinesPerFrame, nil
}
