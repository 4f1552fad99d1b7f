package noise

import "math"

// grad3 holds the simplex gradients. The last four rows repeat edges of
// the cube so that a 4-bit hash indexes the table without a modulo.
var grad3 = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// Skew and unskew factors.
var (
	f2 = 0.5 * (math.Sqrt(3) - 1)
	g2 = (3 - math.Sqrt(3)) / 6
)

// g3 is the 3D unskew step: a unit lattice step moves (1-g3, -g3, -g3).
const g3 = 1.0 / 6.0

// Simplex2 returns 2D simplex noise at (x, y), scaled to roughly [-1, 1].
func Simplex2(x, y float64) float64 {
	// Skew input space to find the containing simplex cell.
	s := (x + y) * f2
	i := fastfloor(x + s)
	j := fastfloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower triangle (0,0)->(1,0)->(1,1) or upper (0,0)->(0,1)->(1,1).
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255
	gi0 := perm[ii+int(perm[jj])] & 15
	gi1 := perm[ii+i1+int(perm[jj+j1])] & 15
	gi2 := perm[ii+1+int(perm[jj+1])] & 15

	n := corner2(gi0, x0, y0) + corner2(gi1, x1, y1) + corner2(gi2, x2, y2)
	return 70 * n
}

func corner2(gi uint8, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := &grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

// Simplex3 returns 3D simplex noise at (x, y, z), scaled to roughly
// [-1, 1].
func Simplex3(x, y, z float64) float64 {
	s := (x + y + z) / 3
	i := fastfloor(x + s)
	j := fastfloor(y + s)
	k := fastfloor(z + s)

	t := float64(i+j+k) / 6
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Offsets of the second and third corners in lattice coordinates,
	// chosen by ranking the components of the offset.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0: // X Y Z
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0: // X Z Y
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default: // Z X Y
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0: // Z Y X
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0: // Y Z X
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default: // Y X Z
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := perm[ii+int(perm[jj+int(perm[kk])])] & 15
	gi1 := perm[ii+i1+int(perm[jj+j1+int(perm[kk+k1])])] & 15
	gi2 := perm[ii+i2+int(perm[jj+j2+int(perm[kk+k2])])] & 15
	gi3 := perm[ii+1+int(perm[jj+1+int(perm[kk+1])])] & 15

	n := corner3(gi0, x0, y0, z0) +
		corner3(gi1, x1, y1, z1) +
		corner3(gi2, x2, y2, z2) +
		corner3(gi3, x3, y3, z3)
	return 32 * n
}

// corner3 is the radial falloff contribution of one tetrahedron corner.
func corner3(gi uint8, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := &grad3[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}
