// Package fishing implements the deterministic fishing simulation: the
// cast/bite/reel state machine, fish behavior, particles and catch scoring.
// It depends only on core, catalog and config; presentation and persistence
// are reached through the interfaces in events.go.
package fishing

// Phase is the top-level session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseIdle
	PhaseCasting
	PhaseWaiting
	PhaseBiting
	PhaseHooked
	PhaseCaught
	PhaseBroken
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseIdle:
		return "idle"
	case PhaseCasting:
		return "casting"
	case PhaseWaiting:
		return "waiting"
	case PhaseBiting:
		return "biting"
	case PhaseHooked:
		return "hooked"
	case PhaseCaught:
		return "caught"
	case PhaseBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// FishState is a fish's behavioral mode.
type FishState int

const (
	FishIdle FishState = iota
	FishChasing
	FishHooked
)

func (s FishState) String() string {
	switch s {
	case FishIdle:
		return "idle"
	case FishChasing:
		return "chasing"
	case FishHooked:
		return "hooked"
	default:
		return "unknown"
	}
}

// ParticleKind selects particle motion and appearance.
type ParticleKind int

const (
	ParticleAmbientFall ParticleKind = iota
	ParticleRipple
	ParticleSplash
	ParticleSparkle
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleAmbientFall:
		return "ambient-fall"
	case ParticleRipple:
		return "ripple"
	case ParticleSplash:
		return "splash"
	case ParticleSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Bounds is the current surface size in pixels.
type Bounds struct {
	W, H float64
}
