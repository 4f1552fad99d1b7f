package server

import (
	"shader-frame/internal/anim"
	"shader-frame/internal/render"
	"shader-frame/internal/shader"
)

// viewer is the per-session playback state: which shader is showing, the
// local clock and the terminal renderer.
type viewer struct {
	shaders []shader.Entry
	current int
	clock   *anim.Clock
	banner  int // ticks left to show the shader name
	engine  *render.Engine
	img     *render.Image
}

func newViewer(shaders []shader.Entry, start, termW, termH int) *viewer {
	if start < 0 || start >= len(shaders) {
		start = 0
	}
	return &viewer{
		shaders: shaders,
		current: start,
		clock:   anim.NewClock(),
		banner:  anim.BannerDuration,
		engine:  render.NewEngine(termW, termH),
	}
}

// apply handles one playback action.
func (v *viewer) apply(a Action) {
	switch a {
	case ActionNext:
		v.current = (v.current + 1) % len(v.shaders)
		v.banner = anim.BannerDuration
	case ActionPrev:
		v.current = (v.current + len(v.shaders) - 1) % len(v.shaders)
		v.banner = anim.BannerDuration
	case ActionPause:
		v.clock.TogglePause()
	case ActionFaster:
		v.clock.Faster()
	case ActionSlower:
		v.clock.Slower()
	case ActionRewind:
		v.clock.T = 0
	}
}

// frame advances the clock, shades the picture for a termW x termH
// terminal and returns the ANSI diff.
func (v *viewer) frame(f anim.Frame, termW, termH int) string {
	if w, h := v.engine.Size(); w != termW || h != termH {
		v.engine.Resize(termW, termH)
	}
	pw, ph := v.engine.PictureSize()
	if v.img == nil || v.img.W != pw || v.img.H != ph {
		v.img = render.NewImage(pw, ph)
	}

	v.clock.Advance()
	sh := v.shaders[v.current]
	render.Rasterize(v.img, sh.Fn, v.clock.T)

	hud := render.HUD{
		Shader:  sh.Name,
		Index:   v.current,
		Count:   len(v.shaders),
		T:       v.clock.T,
		Speed:   v.clock.Speed,
		Paused:  v.clock.Paused,
		Viewers: f.Viewers,
	}
	if v.banner > 0 {
		hud.Banner = sh.Description
		v.banner--
	}
	return v.engine.Render(v.img, hud)
}
