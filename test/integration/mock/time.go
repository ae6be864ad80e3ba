package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock implementing the application's Clock adapter.
// Scenarios pin "today" so streak and calendar assertions are stable.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

func NewClock() *Clock {
	return &Clock{
		current: time.Now(),
	}
}

func (c *Clock) SetCurrentTime(currentTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = currentTime
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
