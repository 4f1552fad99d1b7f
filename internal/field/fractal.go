package field

import "math"

// FBM sums octaves of f, each at lacunarity times the previous frequency
// and persistence times the previous amplitude. The sum is divided by the
// total amplitude so the result keeps f's nominal range.
func FBM(f Func, octaves int, lacunarity, persistence float64) Func {
	return func(x, y, z float64) float64 {
		var total, maxAmp float64
		amp, freq := 1.0, 1.0
		for i := 0; i < octaves; i++ {
			total += f(x*freq, y*freq, z*freq) * amp
			maxAmp += amp
			freq *= lacunarity
			amp *= persistence
		}
		if maxAmp == 0 {
			return 0
		}
		return total / maxAmp
	}
}

// Turbulence is FBM over |f| with lacunarity 2 and persistence 0.5. For a
// field in [-1, 1] the result is in [0, 1].
func Turbulence(f Func, octaves int) Func {
	abs := func(x, y, z float64) float64 {
		return math.Abs(f(x, y, z))
	}
	return FBM(abs, octaves, 2, 0.5)
}

// Scale returns f sampled at (x*sx, y*sy, z*sz).
func Scale(f Func, sx, sy, sz float64) Func {
	return func(x, y, z float64) float64 {
		return f(x*sx, y*sy, z*sz)
	}
}
