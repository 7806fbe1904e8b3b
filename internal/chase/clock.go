package chase

import "time"

// Clock converts absolute frame timestamps into elapsed seconds.
type Clock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick returns 0, and so does a timestamp that runs backwards.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous timestamp; the next tick returns 0.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
