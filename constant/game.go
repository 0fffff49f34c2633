package constant

import "time"

// Simulation Timing
const (
	// DefaultTickInterval is the delay between generation updates
	DefaultTickInterval = 50 * time.Millisecond
)

// Seeding
const (
	// DefaultAliveProbability is the chance a cell starts alive under
	// random seeding, roughly one cell in five
	DefaultAliveProbability = 0.2
)

// Input & Event Plumbing
const (
	// EventBufferSize is the capacity of the input event channel between
	// the poller goroutine and the main loop
	EventBufferSize = 256
)
