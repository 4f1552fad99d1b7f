package render

import (
	"github.com/dgravesa/go-parallel/parallel"

	"shader-frame/internal/shader"
)

// Rasterize evaluates fn at time t for every pixel of img. Pixel (x, y)
// samples u = (x+0.5)/W, v = (y+0.5)/H. Rows are shaded in parallel.
func Rasterize(img *Image, fn shader.Func, t float64) {
	if img.W == 0 || img.H == 0 {
		return
	}
	w, h := float64(img.W), float64(img.H)
	parallel.For(img.H, func(y, _ int) {
		v := (float64(y) + 0.5) / h
		row := img.Pix[y*img.W : (y+1)*img.W]
		for x := range row {
			r, g, b := fn((float64(x)+0.5)/w, v, t)
			row[x] = Pixel{R: quantize(r), G: quantize(g), B: quantize(b)}
		}
	})
}

// quantize maps a channel in [0, 1] to a byte, clamping out-of-range input.
func quantize(c float64) uint8 {
	return uint8(shader.Clamp01(c)*255 + 0.5)
}
