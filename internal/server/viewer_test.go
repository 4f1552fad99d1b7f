package server

import (
	"strings"
	"testing"

	"shader-frame/internal/anim"
	"shader-frame/internal/shader"
)

func testShaders() []shader.Entry {
	flat := func(c float64) shader.Func {
		return func(u, v, t float64) (r, g, b float64) { return c, c, c }
	}
	return []shader.Entry{
		{Name: "black", Description: "all black", Fn: flat(0)},
		{Name: "white", Description: "all white", Fn: flat(1)},
		{Name: "time", Description: "brightens with time", Fn: func(u, v, t float64) (r, g, b float64) { return t, t, t }},
	}
}

func TestViewerCycling(t *testing.T) {
	v := newViewer(testShaders(), 0, 20, 8)
	v.apply(ActionPrev)
	if v.current != 2 {
		t.Errorf("prev from 0 = %d, want 2", v.current)
	}
	v.apply(ActionNext)
	v.apply(ActionNext)
	if v.current != 1 {
		t.Errorf("current = %d, want 1", v.current)
	}
}

func TestViewerStartOutOfRange(t *testing.T) {
	if v := newViewer(testShaders(), 9, 20, 8); v.current != 0 {
		t.Errorf("current = %d, want 0", v.current)
	}
}

func TestViewerClockControls(t *testing.T) {
	v := newViewer(testShaders(), 2, 20, 8)
	v.frame(anim.Frame{Tick: 1}, 20, 8)
	if v.clock.T != 1.0/anim.FrameRate {
		t.Errorf("T = %v after one frame", v.clock.T)
	}

	v.apply(ActionPause)
	v.frame(anim.Frame{Tick: 2}, 20, 8)
	if v.clock.T != 1.0/anim.FrameRate {
		t.Errorf("paused clock moved to %v", v.clock.T)
	}
	v.apply(ActionPause)

	v.apply(ActionFaster)
	if v.clock.Speed != 2 {
		t.Errorf("Speed = %v, want 2", v.clock.Speed)
	}
	v.apply(ActionSlower)
	v.apply(ActionSlower)
	if v.clock.Speed != 0.5 {
		t.Errorf("Speed = %v, want 0.5", v.clock.Speed)
	}

	v.apply(ActionRewind)
	if v.clock.T != 0 {
		t.Errorf("T = %v after rewind", v.clock.T)
	}
}

func TestViewerFrame(t *testing.T) {
	v := newViewer(testShaders(), 1, 20, 8)
	out := v.frame(anim.Frame{Tick: 1, Viewers: 2}, 20, 8)
	if !strings.Contains(out, "38;2;255;255;255;48;2;255;255;255m▀") {
		t.Error("white shader not drawn")
	}
	if !strings.Contains(visible(out), "all white") {
		t.Error("banner missing on first frame")
	}

	// Resize reallocates the picture.
	out = v.frame(anim.Frame{Tick: 2}, 30, 10)
	if v.img.W != 30 || v.img.H != (10-3)*2 {
		t.Errorf("picture = %dx%d after resize", v.img.W, v.img.H)
	}
	if out == "" {
		t.Error("resize produced no output")
	}
}

func TestViewerBannerExpires(t *testing.T) {
	v := newViewer(testShaders(), 0, 40, 8)
	for i := 0; i < anim.BannerDuration; i++ {
		v.frame(anim.Frame{Tick: uint64(i + 1)}, 40, 8)
	}
	if v.banner != 0 {
		t.Fatalf("banner = %d after %d frames", v.banner, anim.BannerDuration)
	}
	v.apply(ActionNext)
	if v.banner != anim.BannerDuration {
		t.Errorf("switching did not reset the banner")
	}
}

// visible drops escape sequences, leaving the drawn characters.
func visible(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc:
			if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
				inEsc = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
