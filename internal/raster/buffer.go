package raster

import (
	"errors"
	"fmt"
)

// Config holds the fixed canvas dimensions of a PixelBuffer.
type Config struct {
	Width  int
	Height int
}

// PixelBuffer holds the rendering target as a flat slice of packed ARGB
// colors, row-major, len = Width*Height.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// ErrOutOfBounds is matched by every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("raster: index out of bounds")

// OutOfBoundsError reports a write outside the buffer.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("raster: index %d out of bounds for buffer of %d pixels", e.Index, e.Len)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// New allocates a zeroed buffer of cfg.Width x cfg.Height pixels.
func New(cfg Config) *PixelBuffer {
	if cfg.Width < 0 || cfg.Height < 0 {
		panic(fmt.Sprintf("raster: negative buffer size %dx%d", cfg.Width, cfg.Height))
	}
	return &PixelBuffer{
		Width:  cfg.Width,
		Height: cfg.Height,
		Pix:    make([]uint32, cfg.Width*cfg.Height),
	}
}

// Config returns the dimensions the buffer was created with.
func (b *PixelBuffer) Config() Config {
	return Config{Width: b.Width, Height: b.Height}
}

// Len returns the number of pixels in the buffer.
func (b *PixelBuffer) Len() int {
	return len(b.Pix)
}

// Clear resets every pixel to zero.
func (b *PixelBuffer) Clear() {
	clear(b.Pix)
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c uint32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// At returns the color at (x, y), or 0 outside the canvas.
func (b *PixelBuffer) At(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[CoordToIndex(x, y, b.Width)]
}

// WritePixel stores c at the linear index. Indices outside [0, Len())
// return an *OutOfBoundsError and leave the buffer untouched.
func (b *PixelBuffer) WritePixel(index int, c uint32) error {
	if index < 0 || index >= len(b.Pix) {
		return &OutOfBoundsError{Index: index, Len: len(b.Pix)}
	}
	b.Pix[index] = c
	return nil
}

// CoordToIndex maps (x, y) to a row-major index. It does no validation.
func CoordToIndex(x, y, width int) int {
	return y*width + x
}
