package raster

import (
	"image"
	"image/color"
)

// DrawImage copies img into the buffer with its top-left corner at (x, y).
// Each pixel is converted to non-premultiplied RGBA and packed as ARGB.
//
// An image that does not fit entirely inside the canvas is skipped: the
// buffer is left unchanged and DrawImage reports false.
func (b *PixelBuffer) DrawImage(img image.Image, x, y int) bool {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if x < 0 || y < 0 || w > b.Width-x || h > b.Height-y {
		return false
	}

	// Fast path for the layout the image loader produces.
	if n, ok := img.(*image.NRGBA); ok {
		for sy := 0; sy < h; sy++ {
			src := n.Pix[n.PixOffset(bounds.Min.X, bounds.Min.Y+sy):]
			rowOff := CoordToIndex(x, y+sy, b.Width)
			for sx := 0; sx < w; sx++ {
				i := sx * 4
				b.Pix[rowOff+sx] = PackARGB(src[i], src[i+1], src[i+2], src[i+3])
			}
		}
		return true
	}

	for sy := 0; sy < h; sy++ {
		rowOff := CoordToIndex(x, y+sy, b.Width)
		for sx := 0; sx < w; sx++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+sx, bounds.Min.Y+sy)).(color.NRGBA)
			b.Pix[rowOff+sx] = PackARGB(c.R, c.G, c.B, c.A)
		}
	}
	return true
}
