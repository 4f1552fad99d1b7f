package shader

import (
	"image/color"

	"github.com/mazznoer/colorgrad"
)

var (
	skyGradient = mustGradient(
		color.RGBA{20, 40, 90, 255},
		color.RGBA{70, 130, 200, 255},
		color.RGBA{200, 220, 240, 255},
		color.RGBA{255, 255, 255, 255},
	)
	stoneGradient = mustGradient(
		color.RGBA{40, 30, 35, 255},
		color.RGBA{150, 140, 130, 255},
		color.RGBA{235, 230, 220, 255},
	)
	grayGradient = mustGradient(
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
	)
	cellGradient = mustGradient(
		color.RGBA{0, 0, 4, 255},
		color.RGBA{87, 16, 110, 255},
		color.RGBA{188, 55, 84, 255},
		color.RGBA{249, 142, 9, 255},
		color.RGBA{252, 255, 164, 255},
	)
)

func mustGradient(colors ...color.Color) colorgrad.Gradient {
	g, err := colorgrad.NewGradient().Colors(colors...).Mode(colorgrad.BlendRgb).Build()
	if err != nil {
		panic(err)
	}
	return g
}

// Shade looks up t in g. t is clamped to [0, 1] by the gradient.
func Shade(g colorgrad.Gradient, t float64) (r, gr, b float64) {
	c := g.At(t)
	return c.R, c.G, c.B
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v > 0 {
		return v
	}
	return 0
}
