package surface

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"linestorm/internal/raster"
)

// Recorder is a headless Surface that encodes presented frames as WebP.
type Recorder struct {
	Dir   string
	Every int     // record every Nth frame; <= 1 records all
	Scale float64 // output scale factor; 0 or 1 keeps the canvas size

	presented int
	frames    []ManifestEntry
}

// ManifestEntry describes one recorded frame.
type ManifestEntry struct {
	Frame  int    `json:"frame"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewRecorder creates dir if needed and returns a Recorder writing into it.
func NewRecorder(dir string, every int, scale float64) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("surface: create %s: %w", dir, err)
	}
	return &Recorder{Dir: dir, Every: every, Scale: scale}, nil
}

// Present encodes buf if this frame falls on the recording interval.
func (r *Recorder) Present(buf *raster.PixelBuffer) error {
	frame := r.presented
	r.presented++
	if r.Every > 1 && frame%r.Every != 0 {
		return nil
	}

	img := Rescale(buf.NRGBA(), r.Scale)

	name := fmt.Sprintf("frame_%06d.webp", frame)
	f, err := os.Create(filepath.Join(r.Dir, name))
	if err != nil {
		return fmt.Errorf("surface: create frame: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("surface: WebP encode frame %d: %w", frame, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("surface: close frame %d: %w", frame, err)
	}

	r.frames = append(r.frames, ManifestEntry{
		Frame:  frame,
		Image:  name,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	})
	return nil
}

// Closed always reports false; a recording ends when the caller stops.
func (r *Recorder) Closed() bool { return false }

// Frames returns the frames recorded so far.
func (r *Recorder) Frames() []ManifestEntry { return r.frames }

// Close writes manifest.json to the output directory.
func (r *Recorder) Close() error {
	entries := r.frames
	if entries == nil {
		entries = []ManifestEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.Dir, "manifest.json"), data, 0644)
}
