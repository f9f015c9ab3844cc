package fishing

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

const (
	testW = 800.0
	testH = 600.0
)

// recorder captures every outbound notification.
type recorder struct {
	scores  []float64
	caught  []string
	logged  []Result
	results []Result
	hints   []string
	cues    []Cue
	stages  []string
}

func (r *recorder) AddScore(amount float64) { r.scores = append(r.scores, amount) }
func (r *recorder) AddCaughtFish(id string) { r.caught = append(r.caught, id) }
func (r *recorder) LogCatch(res Result)     { r.logged = append(r.logged, res) }
func (r *recorder) OpenResult(res Result)   { r.results = append(r.results, res) }
func (r *recorder) SetHint(text string)     { r.hints = append(r.hints, text) }
func (r *recorder) PlayCue(c Cue)           { r.cues = append(r.cues, c) }
func (r *recorder) SetStage(id string)      { r.stages = append(r.stages, id) }

var (
	_ Persistence   = (*recorder)(nil)
	_ CatchLogger   = (*recorder)(nil)
	_ StageRecorder = (*recorder)(nil)
	_ Signals       = (*recorder)(nil)
	_ Audio         = (*recorder)(nil)
)

func newTestGame(t *testing.T, seed int64, opts ...Option) (*Game, *core.ManualClock) {
	t.Helper()
	return newTunedGame(t, seed, config.DefaultFishingConfig(), opts...)
}

func newTunedGame(t *testing.T, seed int64, tune config.FishingConfig, opts ...Option) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rc := core.RuntimeConfig{Width: testW, Height: testH, TickRate: 60, Seed: seed}
	opts = append([]Option{WithClock(clock)}, opts...)
	g := New(catalog.Default(), tune, rc, opts...)
	g.Start()
	if g.Phase() != PhaseIdle {
		t.Fatalf("Start() left phase %v, expected idle", g.Phase())
	}
	return g, clock
}

// hookFish puts g into Hooked with a single fish of the given species on
// the line and the bobber at (x, y).
func hookFish(t *testing.T, g *Game, speciesID string, size, x, y float64) *Fish {
	t.Helper()
	sp := g.cat.Species(speciesID)
	if sp == nil {
		t.Fatalf("species %q missing from catalog", speciesID)
	}
	f := &Fish{Species: sp, Size: size, Scale: size / 50 * 1.3, PersonalitySpeed: 1, State: FishHooked}
	g.fish = []*Fish{f}
	g.target = f
	g.bobber = Bobber{Pos: core.V(x, y), Submerged: true}
	g.phase = PhaseHooked
	return f
}
