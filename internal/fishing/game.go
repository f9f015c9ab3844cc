package fishing

import (
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/session"
)

// Waiting and biting motion constants.
const (
	bobberWrap      = 50  // Drifting bobber wraps at this distance past an edge
	bobAmplitude    = 0.5 // Gentle bob while waiting
	bobFrequency    = 0.1 // Radians per frame
	biteAmplitude   = 4   // Violent bob while biting
	biteFrequency   = 1.5 // Radians per frame
	hookedFlowDrift = 0.2 // Fraction of the current carrying a hooked bobber
	sparkleBand     = 0.3 // Sparkles appear in [0.3h, 0.6h)
	petalSpawnY     = -10 // Falling petals start just above the top edge
)

// Game is the fishing simulation. It is single-threaded: every method must
// be called from the goroutine that drives Update.
type Game struct {
	cat  *catalog.Catalog
	tune config.FishingConfig
	log  *log.Logger

	rng    core.Rand
	clock  core.Clock
	timers *Scheduler

	persist Persistence
	signals Signals
	audio   Audio

	bounds Bounds
	stage  *catalog.Stage
	phase  Phase
	resume Phase // Phase restored by CloseMenu
	closed bool

	frame     uint64
	input     core.Pointer
	bobber    Bobber
	fish      []*Fish
	particles []Particle
	target    *Fish // Fish currently biting or hooked

	tension   float64
	biteTimer int
	flash     int
	hint      string

	score      float64
	caught     map[string]struct{}
	lastResult *Result

	restore *session.Snapshot
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for phase transitions and stage changes.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand replaces the seeded generator.
func WithRand(r core.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithClock replaces the wall clock used by delayed actions.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithPersistence sets the score sink. It may also implement CatchLogger
// and StageRecorder.
func WithPersistence(p Persistence) Option {
	return func(g *Game) { g.persist = p }
}

// WithSignals sets the UI notification sink.
func WithSignals(s Signals) Option {
	return func(g *Game) { g.signals = s }
}

// WithAudio sets the cue player.
func WithAudio(a Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithSnapshot restores score, history and stage from a saved session.
func WithSnapshot(s session.Snapshot) Option {
	return func(g *Game) { g.restore = &s }
}

// New creates a game on the restored (or default) stage. The game starts in
// the menu; call Start to begin fishing.
func New(cat *catalog.Catalog, tune config.FishingConfig, rc core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cat:     cat,
		tune:    tune,
		log:     log.New(io.Discard),
		persist: nopPersistence{},
		signals: nopSignals{},
		audio:   nopAudio{},
		bounds:  Bounds{W: rc.Width, H: rc.Height},
		caught:  make(map[string]struct{}),
		phase:   PhaseMenu,
		resume:  PhaseIdle,
		hint:    HintTapToCast,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = core.NewRand(rc.ResolveSeed())
	}
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}
	g.timers = NewScheduler(g.clock)

	g.stage = cat.DefaultStage()
	if g.restore != nil {
		s := g.restore.Normalize()
		g.score = s.Score
		for _, id := range s.CaughtHistory {
			g.caught[id] = struct{}{}
		}
		if st := cat.Stage(s.CurrentStageID); st != nil {
			g.stage = st
		} else {
			g.log.Warn("unknown stage in snapshot, using default", "stage", s.CurrentStageID)
		}
		g.restore = nil
	}
	g.populate()
	return g
}

// Start leaves the title menu.
func (g *Game) Start() {
	g.CloseMenu()
}

// OpenMenu pauses the simulation.
func (g *Game) OpenMenu() {
	if g.closed || g.phase == PhaseMenu {
		return
	}
	g.resume = g.phase
	g.setPhase(PhaseMenu)
}

// CloseMenu resumes the phase that was interrupted by OpenMenu.
func (g *Game) CloseMenu() {
	if g.closed || g.phase != PhaseMenu {
		return
	}
	g.setPhase(g.resume)
	g.resume = PhaseIdle
}

// SetInput merges a pointer update into the latched input.
func (g *Game) SetInput(p core.InputPatch) {
	if g.closed {
		return
	}
	g.input = p.Apply(g.input)
}

// ChangeStage switches location. Unknown ids are ignored and report false.
func (g *Game) ChangeStage(id string) bool {
	if g.closed {
		return false
	}
	st := g.cat.Stage(id)
	if st == nil {
		g.log.Warn("unknown stage", "stage", id)
		return false
	}

	g.timers.CancelAll()
	g.stage = st
	g.populate()
	g.particles = g.particles[:0]
	g.lastResult = nil
	g.reset()
	g.setPhase(PhaseIdle)
	g.resume = PhaseIdle
	if sr, ok := g.persist.(StageRecorder); ok {
		sr.SetStage(st.ID)
	}
	g.log.Info("stage changed", "stage", st.ID, "fish", len(g.fish))
	return true
}

// DismissResult closes the result overlay and returns to Idle.
func (g *Game) DismissResult() {
	if g.closed || g.phase != PhaseCaught {
		return
	}
	g.lastResult = nil
	g.reset()
	g.setPhase(PhaseIdle)
}

// Close stops the game. Pending timers never fire.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.timers.CancelAll()
	g.closed = true
	g.log.Debug("game closed", "score", g.score)
}

// Update advances the simulation one tick on a w x h surface.
func (g *Game) Update(w, h float64) {
	if g.closed || g.phase == PhaseMenu {
		return
	}
	g.bounds = Bounds{W: w, H: h}
	g.timers.Fire()

	switch g.phase {
	case PhaseIdle:
		g.updateIdle()
	case PhaseCasting:
		g.updateCasting()
	case PhaseWaiting:
		g.updateWaiting()
	case PhaseBiting:
		g.updateBiting()
	case PhaseHooked:
		g.updateHooked()
	}

	g.frame++
	g.particles = updateParticles(g.particles, g.frame)

	var bobber *Bobber
	if g.bobber.Submerged {
		bobber = &g.bobber
	}
	for _, f := range g.fish {
		f.Update(g.stage, g.bounds, g.frame, bobber, g.tune, g.rng, g.emit)
	}

	g.ambient()

	if g.flash > 0 {
		g.flash--
	}
	g.input.Click = false
}

func (g *Game) updateIdle() {
	if !g.input.Click {
		return
	}
	b := g.bounds
	origin := core.V(b.W/2, b.H-g.tune.Cast.RestOffset)
	target := castTarget(core.V(g.input.X, g.input.Y), b, g.tune.Physics.SurfaceLine)

	g.bobber = Bobber{
		Pos: origin,
		Vel: castVelocity(origin, target, g.tune.Cast.FlightTicks, g.tune.Physics.Gravity),
	}
	g.setPhase(PhaseCasting)
	g.audio.PlayCue(CueCast)
	g.setHint(HintWaitSplash)
}

func (g *Game) updateCasting() {
	g.bobber.step(g.tune.Physics.Gravity)
	if g.bobber.Vel.Y > 0 && g.bobber.Pos.Y > g.bounds.H*g.tune.Physics.SurfaceLine {
		g.bobber.Vel = core.Vec2{}
		g.bobber.Submerged = true
		g.emit(NewParticle(ParticleRipple, g.bobber.Pos, g.stage.Flow, g.rng))
		g.emit(NewParticle(ParticleSplash, g.bobber.Pos, g.stage.Flow, g.rng))
		g.setPhase(PhaseWaiting)
		g.setHint(HintHoldToReel)
	}
}

func (g *Game) updateWaiting() {
	b := g.bounds
	bob := &g.bobber

	bob.Pos.X += g.stage.Flow
	if bob.Pos.X > b.W+bobberWrap {
		bob.Pos.X = -bobberWrap
	} else if bob.Pos.X < -bobberWrap {
		bob.Pos.X = b.W + bobberWrap
	}
	bob.Pos.Y += math.Sin(float64(g.frame)*bobFrequency) * bobAmplitude

	if g.input.Down {
		bob.Pos = core.LerpVec(bob.Pos, core.V(b.W/2, b.H), g.tune.Cast.ReelPull)
		bob.Pos.Y -= g.tune.Cast.ReelLift
		if bob.Pos.Y > b.H-g.tune.Cast.AbandonMargin {
			g.reset()
			g.setPhase(PhaseIdle)
			g.input.Down = false
			return
		}
	} else {
		bob.Pos.Y = math.Min(bob.Pos.Y+g.tune.Cast.SinkRate, b.H*g.tune.Cast.MaxDepth)
	}

	beh := g.tune.Behavior
	chasers := 0
	for _, f := range g.fish {
		if f.State == FishChasing {
			chasers++
		}
	}

	for _, f := range g.fish {
		d := f.Pos.Dist(bob.Pos)
		if f.State == FishIdle && d < beh.ChaseRadius && chasers < beh.MaxChasers &&
			g.rng.Float64() < beh.ChaseProbability {
			f.State = FishChasing
			chasers++
		}
		if f.State == FishChasing && d < beh.BiteRadius {
			g.target = f
			g.biteTimer = g.tune.Timing.BiteWindowTicks
			g.setPhase(PhaseBiting)
			g.setHint(HintBiting)
			g.audio.PlayCue(CueAlert)
			return
		}
	}
}

func (g *Game) updateBiting() {
	g.biteTimer--
	g.bobber.Pos.Y += math.Sin(float64(g.frame)*biteFrequency) * biteAmplitude
	g.bobber.Pos.X += g.stage.Flow
	g.emit(NewParticle(ParticleRipple, g.bobber.Pos, g.stage.Flow, g.rng))

	if g.input.Click || g.input.Down {
		g.target.State = FishHooked
		g.flash = g.tune.Timing.FlashTicks
		g.setPhase(PhaseHooked)
		g.setHint(HintFight)
		g.audio.PlayCue(CueHit)
		return
	}

	if g.biteTimer <= 0 {
		g.target.State = FishIdle
		g.target.Vel.X = (g.rng.Float64() - 0.5) * g.tune.Behavior.EscapeBurst
		g.target = nil
		g.setPhase(PhaseWaiting)
		g.setHint(HintGotAway)
	}
}

func (g *Game) updateHooked() {
	b := g.bounds
	f := g.target
	bob := &g.bobber
	hk := g.tune.Hooked
	limit := g.tune.Physics.TensionLimit

	f.Pos = core.V(bob.Pos.X, bob.Pos.Y+hk.PinOffset)
	bob.Pos.X += g.stage.Flow * hookedFlowDrift

	if g.input.Down {
		g.tension += g.tune.Physics.TensionIncrease * f.Species.Power
		bob.Pos.Y += (b.H - bottomMargin - bob.Pos.Y) * hk.ReelDown
		bob.Pos.X += (b.W/2 - bob.Pos.X) * hk.ReelCenter
	} else {
		g.tension -= g.tune.Physics.TensionRecovery
		bob.Pos.Y -= hk.SlackRise
		bob.Pos.X += (g.rng.Float64() - 0.5) * hk.SlackJitter
	}
	g.tension = core.ClampF(g.tension, 0, limit)

	switch {
	case bob.Pos.Y > b.H-hk.CatchMargin:
		g.land(f)
	case g.tension >= limit:
		g.snap(f)
	case bob.Pos.Y < b.H*hk.EscapeLine:
		g.reset()
		g.setPhase(PhaseIdle)
		f.Respawn(g.stage, g.cat, g.bounds, g.rng)
	}
}

func (g *Game) ambient() {
	b := g.bounds
	t := g.tune.Timing
	if t.AmbientEvery > 0 && g.frame%uint64(t.AmbientEvery) == 0 {
		x := g.rng.Float64() * b.W
		if g.stage.AmbientEffect() == catalog.AmbientSparkle {
			y := g.rng.Float64()*b.H*sparkleBand + b.H*sparkleBand
			g.emit(NewParticle(ParticleSparkle, core.V(x, y), g.stage.Flow, g.rng))
		} else {
			g.emit(NewParticle(ParticleAmbientFall, core.V(x, petalSpawnY), g.stage.Flow, g.rng))
		}
	}
	if t.SparkleEvery > 0 && g.frame%uint64(t.SparkleEvery) == 0 {
		x := g.rng.Float64() * b.W
		y := g.rng.Float64()*b.H*sparkleBand + b.H*sparkleBand
		g.emit(NewParticle(ParticleSparkle, core.V(x, y), g.stage.Flow, g.rng))
	}
}

func (g *Game) emit(p Particle) {
	g.particles = append(g.particles, p)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.log.Debug("phase", "from", g.phase, "to", p, "frame", g.frame)
	g.phase = p
}

func (g *Game) setHint(text string) {
	if g.hint == text {
		return
	}
	g.hint = text
	g.signals.SetHint(text)
}

// populate replaces the pool with a fresh roster for the current stage.
func (g *Game) populate() {
	g.target = nil
	g.fish = make([]*Fish, 0, g.stage.FishCount)
	for i := 0; i < g.stage.FishCount; i++ {
		g.fish = append(g.fish, SpawnFish(g.stage, g.cat, g.bounds, g.rng))
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the accumulated score.
func (g *Game) Score() float64 { return g.score }

// Stage returns the current stage.
func (g *Game) Stage() *catalog.Stage { return g.stage }

// Tension returns the line tension in [0, TensionLimit].
func (g *Game) Tension() float64 { return g.tension }

// Hint returns the current player hint.
func (g *Game) Hint() string { return g.hint }

// Bobber returns a copy of the bobber.
func (g *Game) Bobber() Bobber { return g.bobber }

// Fish returns the live fish pool. Callers must not modify it.
func (g *Game) Fish() []*Fish { return g.fish }

// Particles returns the live particles. Callers must not modify them.
func (g *Game) Particles() []Particle { return g.particles }

// Closed reports whether Close has been called.
func (g *Game) Closed() bool { return g.closed }

// HasCaught reports whether the species has ever been landed.
func (g *Game) HasCaught(speciesID string) bool {
	_, ok := g.caught[speciesID]
	return ok
}

// Caught returns the caught species ids, sorted.
func (g *Game) Caught() []string {
	ids := make([]string, 0, len(g.caught))
	for id := range g.caught {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Session exports the persistable state.
func (g *Game) Session() session.Snapshot {
	return session.Snapshot{
		Version:        session.CurrentVersion,
		Score:          g.score,
		CaughtHistory:  g.Caught(),
		CurrentStageID: g.stage.ID,
	}
}
