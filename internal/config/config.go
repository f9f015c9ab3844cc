// Package config provides YAML-based tuning for the fishing simulation.
package config

import "time"

// FishingConfig contains every tunable constant of the simulation.
type FishingConfig struct {
	Physics  Physics  `yaml:"physics"`
	Cast     Cast     `yaml:"cast"`
	Hooked   Hooked   `yaml:"hooked"`
	Behavior Behavior `yaml:"behavior"`
	Timing   Timing   `yaml:"timing"`
}

// Physics holds the global physical constants.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Bobber acceleration per tick while airborne
	TensionLimit    float64 `yaml:"tension_limit"`    // Line breaks at this tension
	TensionRecovery float64 `yaml:"tension_recovery"` // Tension lost per tick while slack
	TensionIncrease float64 `yaml:"tension_increase"` // Tension gained per tick per unit of fish power
	SurfaceLine     float64 `yaml:"surface_line"`     // Bobber landing line, fraction of height
	Drag            float64 `yaml:"drag"`             // Fish velocity multiplier per tick
}

// Cast controls the throw and the waiting bobber.
type Cast struct {
	FlightTicks   int     `yaml:"flight_ticks"`   // Ticks from release to landing point
	RestOffset    float64 `yaml:"rest_offset"`    // Rod tip distance above the bottom edge
	ReelPull      float64 `yaml:"reel_pull"`      // Lerp factor toward the angler while reeling
	ReelLift      float64 `yaml:"reel_lift"`      // Upward nudge per tick while reeling
	SinkRate      float64 `yaml:"sink_rate"`      // Downward drift per tick while slack
	MaxDepth      float64 `yaml:"max_depth"`      // Deepest bobber position, fraction of height
	AbandonMargin float64 `yaml:"abandon_margin"` // Reeled within this of the bottom edge ends the cast
}

// Hooked controls the reel-in fight.
type Hooked struct {
	PinOffset   float64 `yaml:"pin_offset"`   // Fish hangs this far below the bobber
	ReelDown    float64 `yaml:"reel_down"`    // Lerp factor toward the bottom while reeling
	ReelCenter  float64 `yaml:"reel_center"`  // Lerp factor toward the center while reeling
	SlackRise   float64 `yaml:"slack_rise"`   // Upward pull per tick while slack
	SlackJitter float64 `yaml:"slack_jitter"` // Horizontal jitter amplitude while slack
	CatchMargin float64 `yaml:"catch_margin"` // Landing zone height above the bottom edge
	EscapeLine  float64 `yaml:"escape_line"`  // Fish escapes above this fraction of height
}

// Behavior controls fish decisions.
type Behavior struct {
	ChaseProbability float64 `yaml:"chase_probability"` // Per-tick chance an idle fish starts chasing
	ChaseRadius      float64 `yaml:"chase_radius"`
	ChaseSpeed       float64 `yaml:"chase_speed"`
	BiteRadius       float64 `yaml:"bite_radius"`
	MaxChasers       int     `yaml:"max_chasers"`
	WanderBlend      float64 `yaml:"wander_blend"`
	WrapMargin       float64 `yaml:"wrap_margin"`
	EscapeBurst      float64 `yaml:"escape_burst"` // Horizontal kick spread when a bite is missed
}

// Timing holds frame counts and wall-clock delays.
type Timing struct {
	BiteWindowTicks int           `yaml:"bite_window_ticks"`
	FlashTicks      int           `yaml:"flash_ticks"`
	AmbientEvery    int           `yaml:"ambient_every"`
	SparkleEvery    int           `yaml:"sparkle_every"`
	BrokenDelay     time.Duration `yaml:"broken_delay"`
	RespawnDelay    time.Duration `yaml:"respawn_delay"`
}
