package shader

import (
	"errors"
	"math"
	"testing"

	"shader-frame/internal/field"
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestRegistry(t *testing.T) {
	all := All()
	if want := 4 + len(field.Names()); len(all) != want {
		t.Fatalf("got %d shaders, want %d", len(all), want)
	}
	seen := make(map[string]bool)
	for i, e := range all {
		if seen[e.Name] {
			t.Errorf("duplicate shader %q", e.Name)
		}
		seen[e.Name] = true
		if Index(e.Name) != i {
			t.Errorf("Index(%q) = %d, want %d", e.Name, Index(e.Name), i)
		}
		got, err := Lookup(e.Name)
		if err != nil || got.Name != e.Name {
			t.Errorf("Lookup(%q) = %+v, %v", e.Name, got, err)
		}
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownShader) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownShader", err)
	}
	if Index("nope") != -1 {
		t.Error("Index(nope) != -1")
	}
}

func TestShadersFiniteAndDeterministic(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			for i := 0; i < 64; i++ {
				u, v, tm := float64(i%8)/8+0.03, float64(i/8)/8+0.03, float64(i)*0.7
				r, g, b := e.Fn(u, v, tm)
				if !finite(r, g, b) {
					t.Fatalf("%s(%v, %v, %v) = %v %v %v", e.Name, u, v, tm, r, g, b)
				}
				r2, g2, b2 := e.Fn(u, v, tm)
				if r != r2 || g != g2 || b != b2 {
					t.Fatalf("%s not deterministic at (%v, %v, %v)", e.Name, u, v, tm)
				}
			}
		})
	}
}

func TestPaletteShadersInRange(t *testing.T) {
	for _, e := range All() {
		if e.Name == "sunset" {
			continue
		}
		t.Run(e.Name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				r, g, b := e.Fn(float64(i%10)/10, float64(i/10)/10, float64(i))
				for _, c := range []float64{r, g, b} {
					if c < -1e-9 || c > 1+1e-9 {
						t.Fatalf("channel %v out of [0, 1]", c)
					}
				}
			}
		})
	}
}

func TestSunsetSky(t *testing.T) {
	// Clear of the sun, the sky adds the same cloud term to every channel.
	r, g, b := Sunset(0.05, 0.05, 3)
	if math.Abs((r-g)-0.15) > 1e-12 || math.Abs((g-b)-0.05) > 1e-12 {
		t.Errorf("sky = %v %v %v, want r-g = 0.15 and g-b = 0.05", r, g, b)
	}
}

func TestSunsetSun(t *testing.T) {
	r, g, b := Sunset(0.5, 0.2, 0)
	if r < 1.3 || g < 1.15 {
		t.Errorf("sun = %v %v %v, want r >= 1.3 and g >= 1.15", r, g, b)
	}
	if b > r {
		t.Errorf("sun should be yellow, got %v %v %v", r, g, b)
	}
}

func TestSunsetWater(t *testing.T) {
	// Below the waterline blue is a square, so never negative.
	for i := 0; i < 50; i++ {
		_, _, b := Sunset(float64(i)/50, 0.9, float64(i))
		if b < 0 {
			t.Fatalf("water blue = %v at u = %v", b, float64(i)/50)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {7, 1}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFieldShaderSamplesScaledField(t *testing.T) {
	f, err := field.Lookup("improved")
	if err != nil {
		t.Fatal(err)
	}
	sh := FieldShader(f, grayGradient)
	r, _, _ := sh(0.3, 0.6, 2)
	want, _, _ := Shade(grayGradient, f.Normalize(f.Fn(2.4, 4.8, 0.5)))
	if math.Abs(r-want) > 1e-12 {
		t.Errorf("red = %v, want %v", r, want)
	}
}
