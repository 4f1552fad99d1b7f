// Package shader contains procedural shaders: functions from a texture
// coordinate (u, v) in [0, 1] and a time t in seconds to an RGB colour.
//
// Shaders may return channels outside [0, 1]; the rasteriser clamps.
// Every shader is safe to call from many goroutines.
package shader

import (
	"errors"
	"fmt"
	"math"

	"github.com/mazznoer/colorgrad"

	"shader-frame/internal/field"
	"shader-frame/internal/noise"
)

// Func is a procedural shader. v grows downward.
type Func func(u, v, t float64) (r, g, b float64)

// Entry is a named shader.
type Entry struct {
	Name        string
	Description string
	Fn          Func
}

// ErrUnknownShader is returned by Lookup for names that are not registered.
var ErrUnknownShader = errors.New("unknown shader")

var registry = buildRegistry()

func buildRegistry() []Entry {
	entries := []Entry{
		{"sunset", "sun setting over rippling water", Sunset},
		{"clouds", "drifting simplex clouds", Clouds},
		{"cells", "Worley cells", Cells},
		{"marble", "marble veins from improved-noise turbulence", Marble},
	}
	for _, f := range field.All() {
		entries = append(entries, Entry{
			Name:        "field-" + f.Name,
			Description: f.Description,
			Fn:          FieldShader(f, grayGradient),
		})
	}
	return entries
}

// All returns every shader in display order.
func All() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a shader by name.
func Lookup(name string) (Entry, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %q", ErrUnknownShader, name)
}

// Index returns the registry position of name, or -1.
func Index(name string) int {
	for i, e := range registry {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Sunset draws a sky with clouds and a sun above a waterline, and the
// sun's reflection streaking across the water below.
func Sunset(u, v, t float64) (r, g, b float64) {
	invV := 1 - v

	// Stretched ripples give the water a sense of perspective.
	water := invV + 0.5*noise.Improved3(invV*16, u*6+t*0.1, t*0.4)
	sky := v + 1.5*noise.PerlinSimplex3(v*4, u*2, t*0.01)
	waterline := 0.25 + 0.001*noise.Improved3(u*32, v*16, t*0.4)

	// A hump centred on u = 0.5 keeps the glow in a strip under the sun.
	reflection := 0.4*(math.Sin(2*math.Pi*(u-0.25))+1) + 0.1
	reflection = 50 * math.Pow(0.2*reflection, 2)
	water = water*reflection + 0.3*v

	if v > waterline {
		r = water * 2
		g = water*2 - 0.5
		b = (water*5 - 3.5) * 0.9
		intensity := (r + g + b) * 0.33
		b = 0.1 * math.Pow(1-intensity, 2)
		return r, g, b
	}

	cloud := math.Max(0, sky)
	r, g, b = 0.3+cloud, 0.15+cloud, 0.1+cloud
	if math.Pow(u-0.5, 2)+math.Pow(v-0.2, 2) < 0.035 {
		r += 1
		g += 1
	}
	return r, g, b
}

var cloudField = field.FBM(noise.Simplex3, 5, 2, 0.5)

// Clouds maps five octaves of simplex noise through a sky gradient.
func Clouds(u, v, t float64) (r, g, b float64) {
	n := cloudField(u*4+t*0.05, v*4, t*0.1)
	return Shade(skyGradient, 0.5+0.6*n)
}

// Cells shades the gap between the two nearest Worley features, dark on
// cell borders.
func Cells(u, v, t float64) (r, g, b float64) {
	d := field.WorleyF2MinusF1(u*8, v*8, t*0.25)
	return Shade(cellGradient, d/1.2)
}

var marbleTurbulence = field.Turbulence(noise.Improved3, 4)

// Marble bends a sine stripe pattern with turbulence.
func Marble(u, v, t float64) (r, g, b float64) {
	s := marbleTurbulence(u*4, v*4, t*0.1)
	return Shade(stoneGradient, 0.5+0.5*math.Sin(u*12+v*3+8*s))
}

// FieldShader views a field on the plane z = t/4, scaled by 8, through a
// gradient.
func FieldShader(f field.Entry, grad colorgrad.Gradient) Func {
	fn := field.Scale(f.Fn, 8, 8, 0.25)
	return func(u, v, t float64) (r, g, b float64) {
		return Shade(grad, f.Normalize(fn(u, v, t)))
	}
}
