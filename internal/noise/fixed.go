package noise

import "math"

// Fixed is a 16.16 fixed-point number: the low 16 bits hold the fraction
// and FixedOne represents 1.0.
type Fixed int32

// FixedOne is 1.0 in 16.16 fixed point.
const FixedOne Fixed = 1 << 16

// fadeBits is the scale of the fixed-point fade table (1.0 == 1<<fadeBits).
const fadeBits = 12

// ToFixed rounds f to the nearest representable 16.16 value.
func ToFixed(f float64) Fixed {
	return Fixed(math.Round(f * float64(FixedOne)))
}

// Float converts f back to floating point.
func (f Fixed) Float() float64 {
	return float64(f) / float64(FixedOne)
}

// fadeTable samples fade at 257 points so that entry i+1 always exists
// for interpolation.
var fadeTable = newFadeTable()

func newFadeTable() [257]int32 {
	var t [257]int32
	for i := range t {
		t[i] = int32(float64(int32(1)<<fadeBits) * fade(float64(i)/256))
	}
	return t
}

// ImprovedFixed3 is the integer counterpart of Improved3. It shares the
// permutation table and gradient rule but replaces the fade polynomial by
// a lookup in a 12-bit table. The result differs from Improved3 by no more
// than the table's quantisation error.
func ImprovedFixed3(x, y, z Fixed) Fixed {
	const n = int32(FixedOne)

	X := int(x>>16) & 255
	Y := int(y>>16) & 255
	Z := int(z>>16) & 255

	xf := int32(x) & (n - 1)
	yf := int32(y) & (n - 1)
	zf := int32(z) & (n - 1)

	u, v, w := fadeFixed(xf), fadeFixed(yf), fadeFixed(zf)

	A := int(perm[X]) + Y
	AA := int(perm[A]) + Z
	AB := int(perm[A+1]) + Z
	B := int(perm[X+1]) + Y
	BA := int(perm[B]) + Z
	BB := int(perm[B+1]) + Z

	return Fixed(lerpFixed(w,
		lerpFixed(v,
			lerpFixed(u, gradFixed(perm[AA], xf, yf, zf), gradFixed(perm[BA], xf-n, yf, zf)),
			lerpFixed(u, gradFixed(perm[AB], xf, yf-n, zf), gradFixed(perm[BB], xf-n, yf-n, zf))),
		lerpFixed(v,
			lerpFixed(u, gradFixed(perm[AA+1], xf, yf, zf-n), gradFixed(perm[BA+1], xf-n, yf, zf-n)),
			lerpFixed(u, gradFixed(perm[AB+1], xf, yf-n, zf-n), gradFixed(perm[BB+1], xf-n, yf-n, zf-n)))))
}

// fadeFixed maps a 16-bit fraction to a 12-bit fade weight by linear
// interpolation between adjacent table entries.
func fadeFixed(t int32) int32 {
	t0 := fadeTable[t>>8]
	t1 := fadeTable[(t>>8)+1]
	return t0 + ((t & 255) * (t1 - t0) >> 8)
}

// lerpFixed interpolates with a 12-bit weight.
func lerpFixed(t, a, b int32) int32 {
	return a + (t * (b - a) >> fadeBits)
}

func gradFixed(hash uint8, x, y, z int32) int32 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v int32
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
