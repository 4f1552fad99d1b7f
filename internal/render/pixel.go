package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Pixel is a single opaque RGB pixel.
type Pixel struct {
	R, G, B uint8
}

// P is a shorthand to create a pixel.
func P(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Image is a W x H grid of pixels stored row by row.
type Image struct {
	W, H int
	Pix  []Pixel
}

// NewImage allocates a black image. Negative sizes are treated as zero.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{W: w, H: h, Pix: make([]Pixel, w*h)}
}

// At returns the pixel at (x, y), or black outside the image.
func (m *Image) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return Pixel{}
	}
	return m.Pix[y*m.W+x]
}

// Set writes the pixel at (x, y). Writes outside the image are ignored.
func (m *Image) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Pix[y*m.W+x] = p
}

// RGBA converts the image to a standard library image.
func (m *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			p := m.Pix[y*m.W+x]
			out.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, 255})
		}
	}
	return out
}

// EncodePNG writes the image as a PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.RGBA())
}
