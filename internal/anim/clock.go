package anim

// Clock is a viewer's local animation time. It advances by one frame
// interval times Speed on every Advance unless paused.
type Clock struct {
	T      float64
	Speed  float64
	Paused bool
}

// NewClock returns a running clock at normal speed.
func NewClock() *Clock {
	return &Clock{Speed: 1}
}

// Advance moves the clock forward by one frame.
func (c *Clock) Advance() {
	if c.Paused {
		return
	}
	c.T += c.Speed / FrameRate
}

// TogglePause pauses a running clock or resumes a paused one.
func (c *Clock) TogglePause() {
	c.Paused = !c.Paused
}

// Faster doubles the speed up to MaxSpeed.
func (c *Clock) Faster() {
	c.Speed *= SpeedStep
	if c.Speed > MaxSpeed {
		c.Speed = MaxSpeed
	}
}

// Slower halves the speed down to MinSpeed.
func (c *Clock) Slower() {
	c.Speed /= SpeedStep
	if c.Speed < MinSpeed {
		c.Speed = MinSpeed
	}
}
