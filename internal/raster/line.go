package raster

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with integer Bresenham.
// Both endpoints are drawn, so exactly max(|dx|,|dy|)+1 pixels are written.
// The first write that falls outside the buffer stops the line and its
// error is returned.
func (b *PixelBuffer) DrawLine(x0, y0, x1, y1 int, c uint32) error {
	if absInt(y1-y0) < absInt(x1-x0) {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		return b.lineLow(x0, y0, x1, y1, c)
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	return b.lineHigh(x0, y0, x1, y1, c)
}

// lineLow handles |dy| < |dx| with x0 <= x1.
func (b *PixelBuffer) lineLow(x0, y0, x1, y1 int, c uint32) error {
	dx, dy := x1-x0, y1-y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	for x := x0; x <= x1; x++ {
		if err := b.WritePixel(CoordToIndex(x, y, b.Width), c); err != nil {
			return err
		}
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
	return nil
}

// lineHigh handles |dy| >= |dx| with y0 <= y1.
func (b *PixelBuffer) lineHigh(x0, y0, x1, y1 int, c uint32) error {
	dx, dy := x1-x0, y1-y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	for y := y0; y <= y1; y++ {
		if err := b.WritePixel(CoordToIndex(x, y, b.Width), c); err != nil {
			return err
		}
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
