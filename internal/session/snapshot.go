// Package session defines the persisted player snapshot: accumulated score,
// the set of species ever caught and the last selected stage.
package session

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the snapshot format written by Marshal.
//
// Version 0 is the browser export: {"state": {"score", "caughtHistory",
// "currentStageId"}, "version": 0}. Version 1 is flat snake_case YAML.
const CurrentVersion = 1

// DefaultStageID is used when a snapshot names no stage.
const DefaultStageID = "river_mouth"

// Snapshot is the persisted player state.
type Snapshot struct {
	Version        int      `yaml:"version"`
	Score          float64  `yaml:"score"`
	CaughtHistory  []string `yaml:"caught_history"`
	CurrentStageID string   `yaml:"current_stage_id"`
}

// Default returns the snapshot of a new player.
func Default() Snapshot {
	return Snapshot{
		Version:        CurrentVersion,
		CaughtHistory:  []string{},
		CurrentStageID: DefaultStageID,
	}
}

// Has reports whether the species id is in the caught history.
func (s Snapshot) Has(speciesID string) bool {
	for _, id := range s.CaughtHistory {
		if id == speciesID {
			return true
		}
	}
	return false
}

// Normalize fills absent fields with defaults, deduplicates and sorts the
// history and clamps the score to a finite non-negative value.
func (s Snapshot) Normalize() Snapshot {
	s.Version = CurrentVersion
	if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) || s.Score < 0 {
		s.Score = 0
	}
	if s.CurrentStageID == "" {
		s.CurrentStageID = DefaultStageID
	}

	seen := make(map[string]bool, len(s.CaughtHistory))
	history := make([]string, 0, len(s.CaughtHistory))
	for _, id := range s.CaughtHistory {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		history = append(history, id)
	}
	sort.Strings(history)
	s.CaughtHistory = history
	return s
}

// Marshal encodes the snapshot in the current format.
func Marshal(s Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(s.Normalize())
	if err != nil {
		return nil, fmt.Errorf("session: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes any known snapshot version and migrates it to the
// current one. JSON input is accepted since it is valid YAML.
func Unmarshal(data []byte) (Snapshot, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("session: cannot decode snapshot: %w", err)
	}
	if raw == nil {
		return Default(), nil
	}
	return migrate(raw)
}
