package storage

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-fishing/internal/fishing"
)

// Recorder adapts a Store to the simulation's fire-and-forget persistence
// hooks. Failures are logged and never reach the game loop.
type Recorder struct {
	store *Store
	log   *log.Logger
	runID string
}

var (
	_ fishing.Persistence   = (*Recorder)(nil)
	_ fishing.CatchLogger   = (*Recorder)(nil)
	_ fishing.StageRecorder = (*Recorder)(nil)
)

// NewRecorder creates a recorder. Every catch it logs is tagged with a
// fresh run id so sessions can be told apart in the catch log.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	return &Recorder{
		store: store,
		log:   logger,
		runID: uuid.NewString(),
	}
}

// RunID returns the id stamped on this session's catches.
func (r *Recorder) RunID() string {
	return r.runID
}

// AddScore implements fishing.Persistence.
func (r *Recorder) AddScore(amount float64) {
	if err := r.store.AddScore(amount); err != nil {
		r.log.Error("save score", "err", err)
	}
}

// AddCaughtFish implements fishing.Persistence.
func (r *Recorder) AddCaughtFish(speciesID string) {
	if err := r.store.AddCaughtFish(speciesID); err != nil {
		r.log.Error("save species", "species", speciesID, "err", err)
	}
}

// LogCatch implements fishing.CatchLogger.
func (r *Recorder) LogCatch(res fishing.Result) {
	if _, err := r.store.RecordCatch(r.runID, res); err != nil {
		r.log.Error("record catch", "err", err)
	}
}

// SetStage remembers the stage the player moved to.
func (r *Recorder) SetStage(stageID string) {
	if err := r.store.SetStage(stageID); err != nil {
		r.log.Error("save stage", "stage", stageID, "err", err)
	}
}
