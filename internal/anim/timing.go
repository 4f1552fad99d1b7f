package anim

const FrameRate = 20 // frames per second

// SecsToTicks converts a duration in seconds to frame ticks.
func SecsToTicks(s float64) int {
	t := int(s * FrameRate)
	if t < 1 {
		t = 1
	}
	return t
}

// BannerDuration is how long a shader's description stays on screen after
// switching, in ticks.
var BannerDuration = SecsToTicks(2.0)

// Playback speed bounds for a viewer's local clock.
const (
	MinSpeed  = 0.125
	MaxSpeed  = 8.0
	SpeedStep = 2.0
)
