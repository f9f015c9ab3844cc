package fishing

import "github.com/vovakirdan/tui-fishing/internal/catalog"

// Cue names a sound effect.
type Cue string

const (
	CueCast  Cue = "cast"
	CueHit   Cue = "hit"
	CueCatch Cue = "catch"
	CueAlert Cue = "alert"
)

// Result describes a landed fish.
type Result struct {
	Species *catalog.Species
	Size    float64
	Points  float64
	StageID string
}

// Persistence receives score and collection updates. Calls are
// fire-and-forget; implementations handle their own failures.
type Persistence interface {
	AddScore(amount float64)
	AddCaughtFish(speciesID string)
}

// CatchLogger is an optional Persistence extension that records every catch.
type CatchLogger interface {
	LogCatch(r Result)
}

// StageRecorder is an optional Persistence extension that remembers the
// current stage.
type StageRecorder interface {
	SetStage(stageID string)
}

// Signals receives UI notifications.
type Signals interface {
	OpenResult(r Result)
	SetHint(text string)
}

// Audio plays named cues. Missing devices are the implementation's problem.
type Audio interface {
	PlayCue(c Cue)
}

// Renderer consumes a read-only frame.
type Renderer interface {
	Render(f Frame)
}

type nopPersistence struct{}

func (nopPersistence) AddScore(float64)     {}
func (nopPersistence) AddCaughtFish(string) {}

type nopSignals struct{}

func (nopSignals) OpenResult(Result) {}
func (nopSignals) SetHint(string)    {}

type nopAudio struct{}

func (nopAudio) PlayCue(Cue) {}

// Hint texts shown to the player.
const (
	HintTapToCast  = "Tap to cast"
	HintWaitSplash = "Wait for the splash"
	HintHoldToReel = "Hold to reel in"
	HintBiting     = "Something's biting! Tap!"
	HintFight      = "Hold to reel / release to ease"
	HintGotAway    = "It got away..."
	HintSnapped    = "The line snapped..."
)
