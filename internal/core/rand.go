package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness source the simulation draws from.
// *rand.Rand satisfies it; tests may substitute scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Clock reports the current time. Delayed actions read it instead of
// sleeping so tests can advance time by hand.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
