package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// DefaultFishingConfig returns the default tuning.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		Physics: Physics{
			Gravity:         0.4,
			TensionLimit:    100,
			TensionRecovery: 0.8,
			TensionIncrease: 1.3,
			SurfaceLine:     0.35,
			Drag:            0.995,
		},
		Cast: Cast{
			FlightTicks:   45,
			RestOffset:    50,
			ReelPull:      0.05,
			ReelLift:      1,
			SinkRate:      0.5,
			MaxDepth:      0.8,
			AbandonMargin: 100,
		},
		Hooked: Hooked{
			PinOffset:   20,
			ReelDown:    0.03,
			ReelCenter:  0.02,
			SlackRise:   2,
			SlackJitter: 5,
			CatchMargin: 120,
			EscapeLine:  0.2,
		},
		Behavior: Behavior{
			ChaseProbability: 0.005,
			ChaseRadius:      400,
			ChaseSpeed:       1.8,
			BiteRadius:       25,
			MaxChasers:       2,
			WanderBlend:      0.05,
			WrapMargin:       100,
			EscapeBurst:      20,
		},
		Timing: Timing{
			BiteWindowTicks: 120,
			FlashTicks:      20,
			AmbientEvery:    10,
			SparkleEvery:    30,
			BrokenDelay:     2 * time.Second,
			RespawnDelay:    3 * time.Second,
		},
	}
}
