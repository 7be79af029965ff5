package testutil

import (
	"sync"
	"time"
)

// Clock manually advanced time source
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at the given instant
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now current instant
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
