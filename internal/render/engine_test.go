package render

import (
	"strings"
	"testing"
)

func solid(w, h int, p Pixel) *Image {
	img := NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = p
	}
	return img
}

func TestPictureSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{80, 24, 80, 42},
		{10, HUDRows, 10, 0},
		{10, 1, 10, 0},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		e := NewEngine(tt.w, tt.h)
		if w, h := e.PictureSize(); w != tt.wantW || h != tt.wantH {
			t.Errorf("PictureSize(%dx%d) = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestRenderFirstFrameIsFull(t *testing.T) {
	e := NewEngine(20, 8)
	pw, ph := e.PictureSize()
	out := e.Render(solid(pw, ph, P(10, 20, 30)), HUD{Shader: "sunset", Count: 1, Speed: 1})

	if !strings.HasPrefix(out, MoveTo(1, 1)) {
		t.Errorf("first frame does not start at the origin: %q", out[:min(len(out), 20)])
	}
	if got := strings.Count(out, string(HalfBlock)); got != 20*(8-HUDRows) {
		t.Errorf("got %d half blocks, want %d", got, 20*(8-HUDRows))
	}
	if !strings.Contains(out, "38;2;10;20;30;48;2;10;20;30m") {
		t.Error("picture colour missing from output")
	}
	if !strings.HasSuffix(out, Reset) {
		t.Error("output not terminated with reset")
	}
}

func TestRenderUnchangedFrameIsEmpty(t *testing.T) {
	e := NewEngine(20, 8)
	pw, ph := e.PictureSize()
	img := solid(pw, ph, P(1, 2, 3))
	hud := HUD{Shader: "clouds", Count: 3, Speed: 1}
	e.Render(img, hud)
	if out := e.Render(img, hud); out != "" {
		t.Errorf("unchanged frame emitted %q", out)
	}
}

func TestRenderEmitsOnlyChangedCells(t *testing.T) {
	e := NewEngine(20, 8)
	pw, ph := e.PictureSize()
	img := solid(pw, ph, P(0, 0, 0))
	hud := HUD{Shader: "cells", Count: 3, Speed: 1}
	e.Render(img, hud)

	img.Set(5, 3, P(255, 0, 0)) // lower half of row 1
	out := e.Render(img, hud)
	want := MoveTo(2, 6)
	if !strings.HasPrefix(out, want) {
		t.Fatalf("diff = %q, want prefix %q", out, want)
	}
	if strings.Count(out, string(HalfBlock)) != 1 {
		t.Errorf("diff redrew more than one cell: %q", out)
	}
	if !strings.Contains(out, "48;2;255;0;0m") {
		t.Errorf("changed pixel not in background colour: %q", out)
	}
}

func TestResizeForcesFullFrame(t *testing.T) {
	e := NewEngine(10, 6)
	pw, ph := e.PictureSize()
	img := solid(pw, ph, P(9, 9, 9))
	e.Render(img, HUD{})

	e.Resize(12, 6)
	pw, ph = e.PictureSize()
	out := e.Render(solid(pw, ph, P(9, 9, 9)), HUD{})
	if got := strings.Count(out, string(HalfBlock)); got != 12*(6-HUDRows) {
		t.Errorf("after resize got %d half blocks, want %d", got, 12*(6-HUDRows))
	}
}

func TestRenderSmallImagePadsBlack(t *testing.T) {
	e := NewEngine(4, HUDRows+1)
	out := e.Render(solid(1, 1, P(200, 200, 200)), HUD{})
	if !strings.Contains(out, "38;2;200;200;200;48;2;0;0;0m") {
		t.Error("first cell should be grey over black")
	}
	if !strings.Contains(out, "38;2;0;0;0;48;2;0;0;0m") {
		t.Error("cells outside the image should be black")
	}
}

func TestHUDContents(t *testing.T) {
	e := NewEngine(120, 10)
	pw, ph := e.PictureSize()
	out := e.Render(NewImage(pw, ph), HUD{
		Shader: "marble", Index: 1, Count: 4, T: 2.5, Speed: 0.5, Paused: true, Viewers: 3, Banner: "marble",
	})
	for _, want := range []string{"[2/4]", "PAUSED", "t=2.5s", "x0.5", "watching"} {
		if !strings.Contains(stripSGR(out), want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

// stripSGR removes escape sequences so the visible text can be searched.
func stripSGR(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && !(s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
