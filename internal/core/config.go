package core

import "time"

// RuntimeConfig contains configuration passed to the simulation at startup.
// Width and Height are the initial surface size in pixels; adapters report
// the live size on every Update.
type RuntimeConfig struct {
	Width    float64 // Initial surface width in pixels
	Height   float64 // Initial surface height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
