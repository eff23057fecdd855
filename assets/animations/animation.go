// Package animations provides the frame clip player used by the render
// layer. A Clip steps through an inclusive frame range at a fixed tick
// cadence and loops back to the first frame.
package animations

type Clip struct {
	First         int
	Last          int
	TicksPerFrame float32

	counter float32
	frame   int
	// Looped becomes true the first time the clip wraps.
	Looped bool
}

func NewClip(first, last int, ticksPerFrame float32) *Clip {
	return &Clip{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		counter:       ticksPerFrame,
		frame:         first,
	}
}

// Advance moves the clip forward by one tick.
func (c *Clip) Advance() {
	c.counter -= 1.0
	if c.counter >= 0.0 {
		return
	}
	c.counter = c.TicksPerFrame
	c.frame++
	if c.frame > c.Last {
		c.frame = c.First
		c.Looped = true
	}
}

// Frame returns the current frame index within the spritesheet strip.
func (c *Clip) Frame() int {
	return c.frame
}

// Restart rewinds the clip to its first frame.
func (c *Clip) Restart() {
	c.frame = c.First
	c.counter = c.TicksPerFrame
	c.Looped = false
}
