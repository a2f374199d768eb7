package clock

import (
	"sync"
	"time"
)

// Clock is a monotonic elapsed-time source measured from scene start.
type Clock interface {
	// Elapsed returns the time since the clock started.
	//
	// Returns:
	//   - time.Duration: non-decreasing elapsed time
	Elapsed() time.Duration
}

type wallClock struct {
	start time.Time
}

var _ Clock = &wallClock{}

// New creates a Clock that starts now. The elapsed time is derived from the
// monotonic reading carried by time.Time, so wall-clock adjustments do not affect it.
//
// Returns:
//   - Clock: the started clock
func New() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Manual is a Clock that only moves when told to. Used for deterministic frame
// stepping in tests and replays.
type Manual struct {
	mu      sync.Mutex
	elapsed time.Duration
}

var _ Clock = &Manual{}

func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Advance moves the clock forward by d. Negative values are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.elapsed += d
	m.mu.Unlock()
}

// Set moves the clock to d if d is not earlier than the current reading.
func (m *Manual) Set(d time.Duration) {
	m.mu.Lock()
	if d > m.elapsed {
		m.elapsed = d
	}
	m.mu.Unlock()
}
