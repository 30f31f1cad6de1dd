// Package surface presents a pixel buffer: on screen in a window, or
// headless by recording frames to WebP files.
package surface

import "linestorm/internal/raster"

// Surface accepts one finished frame at a time.
//
// Present errors are recoverable: callers log them and keep going.
type Surface interface {
	Present(buf *raster.PixelBuffer) error
	// Closed reports whether the user asked to stop (window closed,
	// Escape pressed).
	Closed() bool
	Close() error
}
