package raster

import "math"

// DrawRectangle fills the w x h rectangle whose top-left corner is (x, y).
// There is no clipping: a cell that maps outside the buffer aborts the fill
// with an *OutOfBoundsError.
func (b *PixelBuffer) DrawRectangle(x, y, w, h int, c uint32) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	// Once the corner is in range every later cell index grows by at most
	// Width, so the first write past the end stops the fill before any wrap.
	start := checkedIndex(x, y, b.Width)
	for dy := 0; dy < h; dy++ {
		rowOff := start + dy*b.Width
		for dx := 0; dx < w; dx++ {
			if err := b.WritePixel(rowOff+dx, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkedIndex is CoordToIndex saturated to math.MinInt/math.MaxInt where
// y*width+x does not fit in an int.
func checkedIndex(x, y, width int) int {
	row := y * width
	if width != 0 && row/width != y {
		if (y < 0) != (width < 0) {
			return math.MinInt
		}
		return math.MaxInt
	}
	idx := row + x
	switch {
	case x > 0 && idx < row:
		return math.MaxInt
	case x < 0 && idx > row:
		return math.MinInt
	}
	return idx
}
