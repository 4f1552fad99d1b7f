package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DensityAdjustment scales sample space so that the mean distance to the
// nearest feature point is 1.0.
const DensityAdjustment = 0.398150

// Feature is one feature point found by Cellular.
type Feature struct {
	// Distance from the sample to the feature point.
	Distance float64
	// ID identifies the feature point. It is stable for a given point and
	// can be used to colour cells.
	ID uint32
	// Delta is the vector from the sample to the feature point.
	Delta mgl64.Vec3
}

// poissonCount maps the top byte of a cell seed to the number of feature
// points in that cell. The distribution approximates Poisson with mean 2.5.
var poissonCount = [256]uint8{
	4, 3, 1, 1, 1, 2, 4, 2, 2, 2, 5, 1, 0, 2, 1, 2, 2, 0, 4, 3, 2, 1, 2, 1, 3, 2, 2, 4, 2, 2, 5, 1, 2, 3, 2, 2, 2, 2, 2, 3,
	2, 4, 2, 5, 3, 2, 2, 2, 5, 3, 3, 5, 2, 1, 3, 3, 4, 4, 2, 3, 0, 4, 2, 2, 2, 1, 3, 2, 2, 2, 3, 3, 3, 1, 2, 0, 2, 1, 1, 2,
	2, 2, 2, 5, 3, 2, 3, 2, 3, 2, 2, 1, 0, 2, 1, 1, 2, 1, 2, 2, 1, 3, 4, 2, 2, 2, 5, 4, 2, 4, 2, 2, 5, 4, 3, 2, 2, 5, 4, 3,
	3, 3, 5, 2, 2, 2, 2, 2, 3, 1, 1, 4, 2, 1, 3, 3, 4, 3, 2, 4, 3, 3, 3, 4, 5, 1, 4, 2, 4, 3, 1, 2, 3, 5, 3, 2, 1, 3, 1, 3,
	3, 3, 2, 3, 1, 5, 5, 4, 2, 2, 4, 1, 3, 4, 1, 5, 3, 3, 5, 3, 4, 3, 2, 2, 1, 1, 1, 1, 1, 2, 4, 5, 4, 5, 4, 2, 1, 5, 1, 1,
	2, 3, 3, 3, 2, 5, 2, 3, 3, 2, 0, 2, 1, 1, 4, 2, 1, 3, 2, 1, 2, 2, 3, 2, 5, 5, 3, 4, 5, 5, 2, 4, 4, 5, 3, 2, 2, 2, 1, 4,
	2, 3, 3, 4, 2, 5, 4, 2, 4, 2, 2, 2, 4, 5, 3, 2,
}

// Cellular returns the k feature points nearest to at, ordered by
// ascending distance. It returns nil when k <= 0.
func Cellular(at mgl64.Vec3, k int) []Feature {
	if k <= 0 {
		return nil
	}
	features := make([]Feature, k)
	CellularInto(at, features)
	return features
}

// CellularInto fills dst with the len(dst) feature points nearest to at.
// dst is scratch owned by the caller; it must not be shared with a
// concurrent call. Slots that no feature point reaches keep an infinite
// distance. A NaN coordinate yields NaN in every slot.
func CellularInto(at mgl64.Vec3, dst []Feature) {
	if len(dst) == 0 {
		return
	}
	if math.IsNaN(at[0]) || math.IsNaN(at[1]) || math.IsNaN(at[2]) {
		nan := math.NaN()
		for i := range dst {
			dst[i] = Feature{Distance: nan, Delta: mgl64.Vec3{nan, nan, nan}}
		}
		return
	}

	// Squared distances are kept during the search; sqrt is taken once at
	// the end.
	for i := range dst {
		dst[i] = Feature{Distance: math.Inf(1)}
	}

	p := at.Mul(DensityAdjustment)
	cx, cy, cz := fastfloor(p[0]), fastfloor(p[1]), fastfloor(p[2])

	// Every one of the 27 neighbouring cubes is searched.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				addSamples(cx+dx, cy+dy, cz+dz, p, dst)
			}
		}
	}

	for i := range dst {
		dst[i].Distance = math.Sqrt(dst[i].Distance) / DensityAdjustment
		dst[i].Delta = dst[i].Delta.Mul(1 / DensityAdjustment)
	}
}

// churn advances the cell's linear congruential generator.
func churn(seed uint32) uint32 {
	return 1402024253*seed + 586950981
}

// cellSeed derives the generator seed of a cube from its coordinates.
func cellSeed(xi, yi, zi int) uint32 {
	return 702395077*uint32(xi) + 915488749*uint32(yi) + 2120969693*uint32(zi)
}

// addSamples inserts the feature points of cube (xi, yi, zi) that are
// closer than the current last entry of dst.
func addSamples(xi, yi, zi int, at mgl64.Vec3, dst []Feature) {
	last := len(dst) - 1

	seed := churn(cellSeed(xi, yi, zi))
	count := int(poissonCount[seed>>24])

	for n := 0; n < count; n++ {
		seed = churn(seed)
		id := seed

		seed = churn(seed)
		fx := (float64(seed) + 0.5) * (1.0 / 4294967296.0)
		seed = churn(seed)
		fy := (float64(seed) + 0.5) * (1.0 / 4294967296.0)
		seed = churn(seed)
		fz := (float64(seed) + 0.5) * (1.0 / 4294967296.0)

		delta := mgl64.Vec3{
			float64(xi) + fx - at[0],
			float64(yi) + fy - at[1],
			float64(zi) + fz - at[2],
		}
		d2 := delta[0]*delta[0] + delta[1]*delta[1] + delta[2]*delta[2]
		if d2 >= dst[last].Distance {
			continue
		}

		index := last
		for index > 0 && d2 < dst[index-1].Distance {
			index--
		}
		copy(dst[index+1:], dst[index:last])
		dst[index] = Feature{Distance: d2, ID: id, Delta: delta}
	}
}
