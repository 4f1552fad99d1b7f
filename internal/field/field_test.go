package field

import (
	"errors"
	"math"
	"testing"

	"shader-frame/internal/noise"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if e.Name != name || e.Fn == nil {
			t.Errorf("Lookup(%q) = %+v", name, e)
		}
		if e.Hi <= e.Lo {
			t.Errorf("%s: empty range [%v, %v]", name, e.Lo, e.Hi)
		}
	}

	_, err := Lookup("nope")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownField", err)
	}
}

func TestFieldsDeterministicAndFinite(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				x, y, z := float64(i)*0.37-20, float64(i)*0.21+3, float64(i)*0.05
				v := e.Fn(x, y, z)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s(%f, %f, %f) = %v", e.Name, x, y, z, v)
				}
				if e.Fn(x, y, z) != v {
					t.Fatalf("%s not deterministic at (%f, %f, %f)", e.Name, x, y, z)
				}
			}
		})
	}
}

func TestWorleyFields(t *testing.T) {
	for i := 0; i < 300; i++ {
		x, y, z := float64(i)*0.13-10, float64(i)*0.29-5, float64(i)*0.07
		f1 := WorleyF1(x, y, z)
		gap := WorleyF2MinusF1(x, y, z)
		if f1 < 0 {
			t.Fatalf("WorleyF1(%f, %f, %f) = %v", x, y, z, f1)
		}
		if gap < 0 {
			t.Fatalf("WorleyF2MinusF1(%f, %f, %f) = %v", x, y, z, gap)
		}
	}
}

func TestImprovedFixedTracksFloat(t *testing.T) {
	for i := 0; i < 500; i++ {
		x, y, z := float64(i)*0.091-7, float64(i)*0.043, float64(i)*0.017+2
		if d := math.Abs(ImprovedFixed(x, y, z) - noise.Improved3(x, y, z)); d > 0.01 {
			t.Fatalf("fixed and float disagree by %v at (%f, %f, %f)", d, x, y, z)
		}
	}
}

func TestImprovedFixedLargeCoordinates(t *testing.T) {
	tests := [][3]float64{
		{40000.3, 1.7, 2.2},
		{-40000.3, 12.1, 0.4},
		{3.5, 1e6 + 0.25, -7.75},
		{65536.5, -65536.5, 32768.125},
	}
	for _, p := range tests {
		want := noise.Improved3(p[0], p[1], p[2])
		if d := math.Abs(ImprovedFixed(p[0], p[1], p[2]) - want); d > 0.01 {
			t.Errorf("ImprovedFixed(%v) off by %v from %v", p, d, want)
		}
	}
}

func TestFBM(t *testing.T) {
	constant := func(x, y, z float64) float64 { return 0.5 }
	if got := FBM(constant, 4, 2, 0.5)(1, 2, 3); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("FBM of constant = %v, want 0.5", got)
	}
	if got := FBM(constant, 0, 2, 0.5)(1, 2, 3); got != 0 {
		t.Errorf("FBM with no octaves = %v, want 0", got)
	}

	one := FBM(noise.Improved3, 1, 2, 0.5)
	if one(0.3, 0.4, 0.5) != noise.Improved3(0.3, 0.4, 0.5) {
		t.Error("single-octave FBM differs from the base field")
	}

	f := FBM(noise.Simplex3, 5, 2, 0.5)
	for i := 0; i < 1000; i++ {
		v := f(float64(i)*0.071, float64(i)*0.033, 0.5)
		if v < -1.05 || v > 1.05 {
			t.Fatalf("FBM(Simplex3) = %v out of range", v)
		}
	}
}

func TestTurbulence(t *testing.T) {
	f := Turbulence(noise.Improved3, 4)
	for i := 0; i < 1000; i++ {
		v := f(float64(i)*0.071, float64(i)*0.033, 1.7)
		if v < 0 || v > 1.05 {
			t.Fatalf("Turbulence = %v, want within [0, 1]", v)
		}
	}
}

func TestScale(t *testing.T) {
	f := Scale(noise.Improved3, 8, 8, 0.25)
	for i := 0; i < 50; i++ {
		x, y, z := float64(i)*0.013, float64(i)*0.029, float64(i)*0.4
		if got, want := f(x, y, z), noise.Improved3(x*8, y*8, z*0.25); got != want {
			t.Fatalf("Scale at (%v, %v, %v) = %v, want %v", x, y, z, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	e := Entry{Lo: -1, Hi: 1}
	tests := []struct{ in, want float64 }{{-1, 0}, {0, 0.5}, {1, 1}}
	for _, tt := range tests {
		if got := e.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
