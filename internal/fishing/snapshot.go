package fishing

import (
	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

// slackSag is how far the line sags below its midpoint while the bobber
// floats untended.
const slackSag = 100

// Frame is a read-only view of one tick, built for renderers.
type Frame struct {
	Width, Height float64
	Tick          uint64
	Phase         Phase
	Stage         *catalog.Stage

	Score        float64
	CaughtCount  int
	SpeciesTotal int

	Tension      float64
	TensionLimit float64
	Flash        float64 // 1 right after the hook, fading to 0

	Bobber   Bobber
	RodTip   core.Vec2
	ShowLine bool
	Reeling  bool

	Fish      []FishView
	Particles []ParticleView

	Hint   string
	Result *Result // Set while the catch overlay is open
}

// FishView is a fish as renderers see it.
type FishView struct {
	Pos         core.Vec2
	Angle       float64
	Size        float64
	Scale       float64
	Species     *catalog.Species
	State       FishState
	FacingRight bool
}

// ParticleView is a particle as renderers see it.
type ParticleView struct {
	Pos   core.Vec2
	Kind  ParticleKind
	Life  float64
	Size  float64
	Angle float64
}

// LineControl returns the control point of the quadratic curve drawn from
// the rod tip to the bobber.
func (f Frame) LineControl() core.Vec2 {
	cy := (f.Height + f.Bobber.Pos.Y) / 2
	if f.Phase == PhaseWaiting && !f.Reeling {
		cy += slackSag
	}
	return core.V((f.RodTip.X+f.Bobber.Pos.X)/2, cy)
}

// Frame builds the view of the current tick for a w x h surface.
func (g *Game) Frame(w, h float64) Frame {
	fr := Frame{
		Width:        w,
		Height:       h,
		Tick:         g.frame,
		Phase:        g.phase,
		Stage:        g.stage,
		Score:        g.score,
		CaughtCount:  len(g.caught),
		SpeciesTotal: len(g.cat.AllSpecies()),
		Tension:      g.tension,
		TensionLimit: g.tune.Physics.TensionLimit,
		Bobber:       g.bobber,
		RodTip:       core.V(w/2, h),
		Reeling:      g.input.Down,
		Hint:         g.hint,
		Fish:         make([]FishView, 0, len(g.fish)),
		Particles:    make([]ParticleView, 0, len(g.particles)),
	}
	if ft := g.tune.Timing.FlashTicks; ft > 0 && g.flash > 0 {
		fr.Flash = float64(g.flash) / float64(ft)
	}

	active := g.phase
	if active == PhaseMenu {
		active = g.resume
	}
	switch active {
	case PhaseCasting, PhaseWaiting, PhaseBiting, PhaseHooked, PhaseBroken:
		fr.ShowLine = true
	}

	if g.lastResult != nil {
		res := *g.lastResult
		fr.Result = &res
	}

	for _, f := range g.fish {
		fr.Fish = append(fr.Fish, FishView{
			Pos:         f.Pos,
			Angle:       f.Angle,
			Size:        f.Size,
			Scale:       f.Scale,
			Species:     f.Species,
			State:       f.State,
			FacingRight: f.FacingRight(),
		})
	}
	for _, p := range g.particles {
		fr.Particles = append(fr.Particles, ParticleView{
			Pos:   p.Pos,
			Kind:  p.Kind,
			Life:  p.Life,
			Size:  p.Size,
			Angle: p.Angle,
		})
	}
	return fr
}

// Draw hands the current frame to r.
func (g *Game) Draw(r Renderer, w, h float64) {
	r.Render(g.Frame(w, h))
}

// Stats is a compact summary of the simulation, used to compare runs.
type Stats struct {
	Tick      uint64
	Phase     Phase
	Score     float64
	Tension   float64
	Bobber    core.Vec2
	FishCount int
	Particles int
	Hooked    int
	Chasing   int
}

// Stats summarizes the current tick.
func (g *Game) Stats() Stats {
	s := Stats{
		Tick:      g.frame,
		Phase:     g.phase,
		Score:     g.score,
		Tension:   g.tension,
		Bobber:    g.bobber.Pos,
		FishCount: len(g.fish),
		Particles: len(g.particles),
	}
	for _, f := range g.fish {
		switch f.State {
		case FishHooked:
			s.Hooked++
		case FishChasing:
			s.Chasing++
		}
	}
	return s
}
