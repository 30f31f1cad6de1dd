package surface

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Rescale resizes img by factor. Downscaling uses CatmullRom; upscaling uses
// nearest neighbour so individual pixels stay crisp.
func Rescale(img *image.NRGBA, factor float64) *image.NRGBA {
	b := img.Bounds()
	if factor <= 0 || factor == 1 || b.Empty() {
		return img
	}
	w := max(1, int(math.Round(float64(b.Dx())*factor)))
	h := max(1, int(math.Round(float64(b.Dy())*factor)))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	var s draw.Scaler = draw.CatmullRom
	if factor > 1 {
		s = draw.NearestNeighbor
	}
	s.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
