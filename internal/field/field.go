// Package field names the scalar fields that shaders and tools can sample.
// A field is a function of (x, y, z); the shaders pass time as z.
package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"

	"shader-frame/internal/noise"
)

// Func is a scalar field over 3D space.
type Func func(x, y, z float64) float64

// Entry describes a registered field and its nominal output range.
type Entry struct {
	Name        string
	Description string
	Fn          Func
	Lo, Hi      float64
}

// Normalize maps v from the entry's nominal range to [0, 1] without
// clamping.
func (e Entry) Normalize(v float64) float64 {
	return (v - e.Lo) / (e.Hi - e.Lo)
}

// ErrUnknownField is returned by Lookup for names that are not registered.
var ErrUnknownField = errors.New("unknown field")

// Seed for the third-party comparison fields.
const comparisonSeed = 1

var (
	openSimplex = opensimplex.New(comparisonSeed)
	// alpha 2, beta 2, 3 octaves.
	classicPerlin = perlin.NewPerlin(2, 2, 3, comparisonSeed)
)

var registry = []Entry{
	{"improved", "improved gradient noise", noise.Improved3, -1, 1},
	{"improved-fixed", "improved gradient noise, 16.16 fixed point", ImprovedFixed, -1, 1},
	{"simplex2", "2D simplex noise drifting along x with z", Simplex2Drift, -1, 1},
	{"simplex3", "3D simplex noise", noise.Simplex3, -1, 1},
	{"perlin-simplex", "bit-shuffle simplex noise", noise.PerlinSimplex3, -1.25, 1.25},
	{"worley-f1", "distance to the nearest feature point", WorleyF1, 0, 2},
	{"worley-f2-f1", "distance gap between the two nearest feature points", WorleyF2MinusF1, 0, 1.5},
	{"opensimplex", "OpenSimplex noise (ojrac/opensimplex-go)", openSimplex.Eval3, -1, 1},
	{"perlin-classic", "classic Perlin noise (aquilax/go-perlin)", classicPerlin.Noise3D, -1, 1},
}

// All returns every registered field in display order.
func All() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered field names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a field by name.
func Lookup(name string) (Entry, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %q", ErrUnknownField, name)
}

// ImprovedFixed evaluates the fixed-point improved noise on float input.
// Coordinates are wrapped into one 256 period first so they fit in 16.16.
func ImprovedFixed(x, y, z float64) float64 {
	return noise.ImprovedFixed3(wrapFixed(x), wrapFixed(y), wrapFixed(z)).Float()
}

func wrapFixed(v float64) noise.Fixed {
	return noise.ToFixed(math.Mod(v, 256))
}

// Simplex2Drift samples 2D simplex noise with the plane sliding along x as
// z advances.
func Simplex2Drift(x, y, z float64) float64 {
	return noise.Simplex2(x+z, y)
}

// WorleyF1 is the distance to the nearest feature point.
func WorleyF1(x, y, z float64) float64 {
	var buf [1]noise.Feature
	noise.CellularInto(mgl64.Vec3{x, y, z}, buf[:])
	return buf[0].Distance
}

// WorleyF2MinusF1 is large inside cells and zero on cell borders.
func WorleyF2MinusF1(x, y, z float64) float64 {
	var buf [2]noise.Feature
	noise.CellularInto(mgl64.Vec3{x, y, z}, buf[:])
	return buf[1].Distance - buf[0].Distance
}
