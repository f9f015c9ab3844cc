package fishing

import (
	"math"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Motion constants that are part of the fish's character rather than tuning.
const (
	spawnOffscreenX   = -50
	goldfishScale     = 1.5
	arriveRadius      = 15
	wiggleAmplitude   = 0.5
	idleSpeedFactor   = 0.8
	idleVerticalRatio = 0.3
	flowDriftIdle     = 0.8
	flowDriftChase    = 0.2
	flowDriftHooked   = 0.1
	verticalPush      = 0.05
	hookedMaxSpeed    = 5
	hookedDamping     = 0.9
	hookedSplashRate  = 0.1
	bottomMargin      = 50
	turnThreshold     = 0.1
)

// Fish is one swimming fish.
type Fish struct {
	Pos              core.Vec2
	Vel              core.Vec2
	Species          *catalog.Species
	Size             float64
	Scale            float64
	Angle            float64
	PersonalitySpeed float64
	WanderPhase      float64
	State            FishState
}

// SpawnFish creates a fish for the stage.
func SpawnFish(st *catalog.Stage, cat *catalog.Catalog, b Bounds, rng core.Rand) *Fish {
	f := &Fish{}
	f.Respawn(st, cat, b, rng)
	return f
}

// Respawn re-rolls species, size and position from the stage roster and
// returns the fish to idle.
func (f *Fish) Respawn(st *catalog.Stage, cat *catalog.Catalog, b Bounds, rng core.Rand) {
	roster := cat.Roster(st)
	if len(roster) > 0 {
		f.Species = roster[rng.Intn(len(roster))]
	} else {
		f.Species = cat.FallbackSpecies()
	}

	sp := f.Species
	f.Size = math.Floor(sp.MinSize + rng.Float64()*(sp.MaxSize-sp.MinSize))
	f.Scale = f.Size / 50 * 1.3
	if sp.Body == catalog.BodyGoldfish {
		f.Scale *= goldfishScale
	}

	if st.Flow > 0 && rng.Float64() < 0.5 {
		f.Pos.X = spawnOffscreenX
	} else {
		f.Pos.X = rng.Float64() * b.W
	}
	f.Pos.Y = rng.Float64()*(b.H*0.4) + b.H*0.4

	f.Vel.X = (rng.Float64()-0.5)*sp.Speed + st.Flow*0.5
	f.Vel.Y = (rng.Float64() - 0.5) * 0.2

	f.Angle = 0
	f.State = FishIdle
	f.PersonalitySpeed = 0.8 + rng.Float64()*0.4
	f.WanderPhase = rng.Float64() * math.Pi * 2
}

// FacingRight reports the sprite direction.
func (f *Fish) FacingRight() bool {
	return f.Vel.X >= 0
}

// Update advances the fish one tick. bobber is nil unless it is in the
// water; emit receives any splash the fish throws.
func (f *Fish) Update(st *catalog.Stage, b Bounds, frame uint64, bobber *Bobber, tune config.FishingConfig, rng core.Rand, emit func(Particle)) {
	if f.State == FishHooked {
		f.struggle(st, rng, emit)
		return
	}

	if f.State == FishChasing && bobber != nil {
		f.chase(st, frame, bobber.Pos, tune)
	} else {
		f.wander(st, b, tune, rng)
	}

	f.Pos = f.Pos.Add(f.Vel)
	f.Vel = f.Vel.Scale(tune.Physics.Drag)

	waterLine := b.H * st.WaterLine()
	if f.Pos.Y < waterLine {
		f.Pos.Y = waterLine
		f.Vel.Y = math.Abs(f.Vel.Y)
	}
	if f.Pos.Y > b.H-bottomMargin {
		f.Pos.Y = b.H - bottomMargin
		f.Vel.Y = -math.Abs(f.Vel.Y)
	}

	if f.Vel.Len() > turnThreshold {
		f.Angle = f.Vel.Angle()
	}
}

func (f *Fish) struggle(st *catalog.Stage, rng core.Rand, emit func(Particle)) {
	f.Vel.X += (rng.Float64() - 0.5) * 2
	f.Vel.Y += (rng.Float64() - 0.5) * 2
	f.Vel.X += st.Flow * flowDriftHooked

	if f.Vel.Len() > hookedMaxSpeed {
		f.Vel = f.Vel.Scale(hookedDamping)
	}

	f.Pos = f.Pos.Add(f.Vel)
	if rng.Float64() < hookedSplashRate {
		emit(NewParticle(ParticleSplash, f.Pos, st.Flow, rng))
	}
	f.Angle = f.Vel.Angle()
}

func (f *Fish) chase(st *catalog.Stage, frame uint64, target core.Vec2, tune config.FishingConfig) {
	d := target.Sub(f.Pos)
	dist := d.Len()
	if dist < arriveRadius {
		return
	}

	base := tune.Behavior.ChaseSpeed * f.PersonalitySpeed
	wiggle := math.Sin(float64(frame)*0.1+f.WanderPhase) * wiggleAmplitude
	ux, uy := d.X/dist, d.Y/dist

	moveX := ux*base + st.Flow*flowDriftChase
	moveY := uy * base
	f.Vel.X = moveX - wiggle*uy*0.2
	f.Vel.Y = moveY + wiggle*ux*0.2
}

func (f *Fish) wander(st *catalog.Stage, b Bounds, tune config.FishingConfig, rng core.Rand) {
	f.WanderPhase += (rng.Float64() - 0.5) * 0.1

	base := f.Species.Speed * f.PersonalitySpeed * idleSpeedFactor
	target := core.V(math.Cos(f.WanderPhase)*base, math.Sin(f.WanderPhase)*base*idleVerticalRatio)
	f.Vel = core.LerpVec(f.Vel, target, tune.Behavior.WanderBlend)

	f.Pos.X += st.Flow * flowDriftIdle

	margin := tune.Behavior.WrapMargin
	if f.Pos.X < -margin && f.Vel.X < 0 {
		f.Pos.X = b.W + margin
	} else if f.Pos.X > b.W+margin && f.Vel.X > 0 {
		f.Pos.X = -margin
	}

	if f.Pos.Y < b.H*st.WaterLine() {
		f.Vel.Y += verticalPush
	}
	if f.Pos.Y > b.H*0.9 {
		f.Vel.Y -= verticalPush
	}
}
