package core

import "time"

// Clock measures wall-clock elapsed time for a single span of work, such as
// processing one level end-to-end.
type Clock struct {
	startTime float64
	elapsed   float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Update refreshes the elapsed time. Has no effect on a stopped clock.
func (c *Clock) Update() {
	if c.startTime != 0 {
		c.elapsed = float64(time.Now().UnixNano()) - c.startTime
	}
}

// Start (re)starts the clock, resetting elapsed time.
func (c *Clock) Start() {
	c.startTime = float64(time.Now().UnixNano())
	c.elapsed = 0
}

// Stop stops the clock without resetting the last elapsed value.
func (c *Clock) Stop() {
	c.Update()
	c.startTime = 0
}

// Elapsed returns the last computed elapsed duration in nanoseconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

func (c *Clock) ElapsedDuration() time.Duration {
	return time.Duration(c.elapsed)
}
