package fishing

import (
	"math"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Per-tick decay and motion constants for particles.
const (
	particleDecay    = 0.01
	rippleExtraDecay = 0.015
	rippleGrowth     = 0.5
	splashGravity    = 0.2
	petalSway        = 0.5
)

// Particle is a short-lived visual effect. Life runs from 1 down to 0.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Kind    ParticleKind
	Life    float64
	Size    float64
	MaxSize float64
	Angle   float64
	Spin    float64
}

// NewParticle creates a particle of the given kind at pos. flow is the
// stage current, which ripples and splashes inherit.
func NewParticle(kind ParticleKind, pos core.Vec2, flow float64, rng core.Rand) Particle {
	p := Particle{
		Pos:  pos,
		Kind: kind,
		Life: 1,
		Vel:  core.V((rng.Float64()-0.5)*2, (rng.Float64()-0.5)*2),
	}

	switch kind {
	case ParticleAmbientFall:
		p.Size = rng.Float64()*5 + 3
		p.Vel = core.V(rng.Float64()+0.5, rng.Float64()+0.5)
		p.Angle = rng.Float64() * math.Pi
		p.Spin = (rng.Float64() - 0.5) * 0.1
	case ParticleRipple:
		p.MaxSize = 30 + rng.Float64()*20
		p.Vel.X += flow
	case ParticleSplash:
		p.Vel.Y = -rng.Float64()*3 - 2
		p.Vel.X += flow * 0.5
	case ParticleSparkle:
		p.Size = 1 + rng.Float64()*2
	}
	return p
}

// Update advances the particle one tick.
func (p *Particle) Update(frame uint64) {
	p.Life -= particleDecay
	p.Pos = p.Pos.Add(p.Vel)

	switch p.Kind {
	case ParticleAmbientFall:
		p.Angle += p.Spin
		p.Pos.X += math.Sin(float64(frame)*0.01) * petalSway
	case ParticleRipple:
		if p.Size < p.MaxSize {
			p.Size += rippleGrowth
		}
		p.Life -= rippleExtraDecay
	case ParticleSplash:
		p.Vel.Y += splashGravity
	}

	if p.Life < 0 {
		p.Life = 0
	}
}

// Alive reports whether the particle should still be drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// updateParticles advances every particle and drops the dead ones in place,
// reusing the backing array.
func updateParticles(ps []Particle, frame uint64) []Particle {
	live := ps[:0]
	for i := range ps {
		ps[i].Update(frame)
		if ps[i].Alive() {
			live = append(live, ps[i])
		}
	}
	return live
}
