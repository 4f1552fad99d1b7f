package noise

// Improved3 returns Ken Perlin's improved gradient noise at (x, y, z).
// The result lies roughly in [-1, 1] and is zero at every integer lattice
// point. The function repeats every 256 units along each axis.
func Improved3(x, y, z float64) float64 {
	fx, fy, fz := fastfloor(x), fastfloor(y), fastfloor(z)

	// Unit cube that contains the point.
	X, Y, Z := fx&255, fy&255, fz&255

	// Position inside that cube.
	x -= float64(fx)
	y -= float64(fy)
	z -= float64(fz)

	u, v, w := fade(x), fade(y), fade(z)

	// Hash the eight cube corners.
	A := int(perm[X]) + Y
	AA := int(perm[A]) + Z
	AB := int(perm[A+1]) + Z
	B := int(perm[X+1]) + Y
	BA := int(perm[B]) + Z
	BB := int(perm[B+1]) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(perm[AA], x, y, z), grad(perm[BA], x-1, y, z)),
			lerp(u, grad(perm[AB], x, y-1, z), grad(perm[BB], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(perm[AA+1], x, y, z-1), grad(perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(perm[AB+1], x, y-1, z-1), grad(perm[BB+1], x-1, y-1, z-1))))
}

// fade is 6t^5-15t^4+10t^3. Its first and second derivatives vanish at 0
// and 1, which keeps the noise C2 continuous across cell faces.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad turns the low 4 bits of a hash into one of 12 gradient directions
// and returns its dot product with (x, y, z).
func grad(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
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
