package sim

import "math"

// Clock converts variable frame times into a whole number of fixed simulation steps.
type Clock struct {
	step     float64
	maxFrame float64
	acc      float64
}

// NewClock returns a clock stepping at tickRate Hz. Frame times above maxFrame seconds are
// clamped so a stall cannot queue an unbounded number of steps.
func NewClock(tickRate, maxFrame float64) *Clock {
	return &Clock{step: 1 / tickRate, maxFrame: maxFrame}
}

// Step is the fixed step length in seconds.
func (c *Clock) Step() float64 {
	return c.step
}

// Advance adds frameDt seconds and returns how many fixed steps are now due.
func (c *Clock) Advance(frameDt float64) int {
	if frameDt <= 0 || math.IsNaN(frameDt) {
		return 0
	}
	if frameDt > c.maxFrame {
		frameDt = c.maxFrame
	}
	c.acc += frameDt
	n := int(c.acc / c.step)
	c.acc -= float64(n) * c.step
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
