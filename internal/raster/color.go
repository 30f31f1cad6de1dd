package raster

import "image"

// PackARGB packs 8-bit channels as A<<24 | R<<16 | G<<8 | B.
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB is the inverse of PackARGB.
func UnpackARGB(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// NRGBA converts the buffer to a new non-premultiplied image.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, c := range b.Pix {
		r, g, bl, a := UnpackARGB(c)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = bl
		img.Pix[o+3] = a
	}
	return img
}

// CopyToRGBA writes the buffer into dst for upload to a window. Alpha is
// forced opaque since window surfaces do not composite; an empty pixel shows
// as black. dst is clipped to the smaller of the two sizes.
func (b *PixelBuffer) CopyToRGBA(dst *image.RGBA) {
	r := dst.Bounds()
	w := min(r.Dx(), b.Width)
	h := min(r.Dy(), b.Height)
	for y := 0; y < h; y++ {
		src := b.Pix[CoordToIndex(0, y, b.Width):]
		row := dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y+y):]
		for x := 0; x < w; x++ {
			c := src[x]
			o := x * 4
			row[o] = uint8(c >> 16)
			row[o+1] = uint8(c >> 8)
			row[o+2] = uint8(c)
			row[o+3] = 0xff
		}
	}
}
