package noise

import "math"

// shuffleBits maps three coordinate bits to a hash contribution.
var shuffleBits = [8]int{0x15, 0x38, 0x32, 0x2c, 0x0d, 0x13, 0x07, 0x2a}

// PerlinSimplex3 is Ken Perlin's hardware-oriented simplex noise. It walks
// the four corners of the containing tetrahedron and hashes each corner
// with a bit shuffle instead of a permutation table, so its values differ
// from Simplex3. The result lies roughly in [-1.25, 1.25].
func PerlinSimplex3(x, y, z float64) float64 {
	s := (x + y + z) / 3
	w := simplexWalk{
		i: fastfloor(x + s),
		j: fastfloor(y + s),
		k: fastfloor(z + s),
	}
	s = float64(w.i+w.j+w.k) / 6
	w.u = x - float64(w.i) + s
	w.v = y - float64(w.j) + s
	w.w = z - float64(w.k) + s
	if math.IsNaN(w.u) || math.IsNaN(w.v) || math.IsNaN(w.w) {
		return math.NaN()
	}

	var hi, lo int
	if w.u >= w.w {
		if w.u < w.v {
			hi = 1
		}
	} else {
		hi = 2
		if w.v >= w.w {
			hi = 1
		}
	}
	if w.u < w.w {
		if w.u >= w.v {
			lo = 1
		}
	} else {
		lo = 2
		if w.v < w.w {
			lo = 1
		}
	}

	n := w.corner(hi)
	n += w.corner(3 - hi - lo)
	n += w.corner(lo)
	n += w.corner(0)
	return 4 * n
}

// simplexWalk is the per-call state of PerlinSimplex3: the cell, the
// offset inside it and the corner reached so far.
type simplexWalk struct {
	i, j, k int
	u, v, w float64
	a       [3]int
}

// corner returns the contribution of the current corner and then steps
// along axis next.
func (sw *simplexWalk) corner(next int) float64 {
	s := float64(sw.a[0]+sw.a[1]+sw.a[2]) / 6
	x := sw.u - float64(sw.a[0]) + s
	y := sw.v - float64(sw.a[1]) + s
	z := sw.w - float64(sw.a[2]) + s
	t := 0.6 - x*x - y*y - z*z
	h := shuffle(sw.i+sw.a[0], sw.j+sw.a[1], sw.k+sw.a[2])
	sw.a[next]++
	if t < 0 {
		return 0
	}

	b5 := h >> 5 & 1
	b4 := h >> 4 & 1
	b3 := h >> 3 & 1
	b2 := h >> 2 & 1
	b := h & 3

	var p, q, r float64
	switch b {
	case 1:
		p, q, r = x, y, z
	case 2:
		p, q, r = y, z, x
	default:
		p, q, r = z, x, y
	}
	if b5 == b3 {
		p = -p
	}
	if b5 == b4 {
		q = -q
	}
	if b5 != b4^b3 {
		r = -r
	}

	t *= t
	switch {
	case b == 0:
		return 8 * t * t * (p + (q + r))
	case b2 == 0:
		return 8 * t * t * (p + q)
	default:
		return 8 * t * t * (p + r)
	}
}

func shuffle(i, j, k int) int {
	return shuffleBit(i, j, k, 0) + shuffleBit(j, k, i, 1) + shuffleBit(k, i, j, 2) +
		shuffleBit(i, j, k, 3) + shuffleBit(j, k, i, 4) + shuffleBit(k, i, j, 5) +
		shuffleBit(i, j, k, 6) + shuffleBit(j, k, i, 7)
}

func shuffleBit(i, j, k, bit int) int {
	return shuffleBits[(i>>bit&1)<<2|(j>>bit&1)<<1|k>>bit&1]
}
