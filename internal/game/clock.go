package game

import "time"

// Clock measures how long the hero has survived.
type Clock struct {
	elapsed time.Duration
	running bool
}

// Start resets and runs the clock.
func (c *Clock) Start() {
	c.elapsed = 0
	c.running = true
}

// Stop freezes the clock.
func (c *Clock) Stop() {
	c.running = false
}

// Advance adds dt if the clock is running.
func (c *Clock) Advance(dt time.Duration) {
	if c.running {
		c.elapsed += dt
	}
}

// Elapsed returns the accumulated time.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Running returns false once stopped.
func (c *Clock) Running() bool {
	return c.running
}
