package fishing

import (
	"testing"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

func TestRippleGrowsToMaxSize(t *testing.T) {
	p := NewParticle(ParticleRipple, core.V(0, 0), 0, core.NewRand(1))
	if p.MaxSize < 30 || p.MaxSize >= 50 {
		t.Fatalf("MaxSize = %v, expected in [30, 50)", p.MaxSize)
	}
	for i := 0; p.Alive(); i++ {
		p.Update(uint64(i))
		if p.Size > p.MaxSize+rippleGrowth {
			t.Fatalf("ripple grew to %v past max %v", p.Size, p.MaxSize)
		}
	}
	if p.Life != 0 {
		t.Errorf("Life = %v, expected clamped to 0", p.Life)
	}
}

func TestSplashFallsBack(t *testing.T) {
	p := NewParticle(ParticleSplash, core.V(0, 100), 0, core.NewRand(2))
	if p.Vel.Y >= -2 {
		t.Fatalf("splash should leap upward, vy = %v", p.Vel.Y)
	}
	for i := 0; i < 40; i++ {
		p.Update(uint64(i))
	}
	if p.Vel.Y <= 0 {
		t.Errorf("splash should be falling after 40 ticks, vy = %v", p.Vel.Y)
	}
}

func TestUpdateParticlesPrunes(t *testing.T) {
	rng := core.NewRand(3)
	ps := []Particle{
		NewParticle(ParticleSparkle, core.V(1, 1), 0, rng),
		NewParticle(ParticleRipple, core.V(2, 2), 0, rng),
		NewParticle(ParticleAmbientFall, core.V(3, 3), 0, rng),
	}
	ps[1].Life = 0.01

	ps = updateParticles(ps, 1)
	if len(ps) != 2 {
		t.Fatalf("len = %d, expected the dying ripple pruned", len(ps))
	}
	for _, p := range ps {
		if p.Kind == ParticleRipple {
			t.Error("ripple should have been pruned")
		}
	}
}

func TestSparkleSize(t *testing.T) {
	rng := core.NewRand(4)
	for i := 0; i < 100; i++ {
		p := NewParticle(ParticleSparkle, core.V(0, 0), 0, rng)
		if p.Size < 1 || p.Size >= 3 {
			t.Fatalf("sparkle size %v out of [1, 3)", p.Size)
		}
	}
}
