// Package storage provides SQLite-based persistence for the angler profile:
// accumulated score, the species collection and a log of every catch.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/session"
)

// DefaultPath is where the CLI keeps its database unless --db says otherwise.
const DefaultPath = "~/.fishing/fishing.db"

// Store manages the SQLite database connection.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// CatchEntry is one landed fish.
type CatchEntry struct {
	ID        int64     `db:"id"`
	RunID     string    `db:"run_id"`
	SpeciesID string    `db:"species_id"`
	StageID   string    `db:"stage_id"`
	Size      float64   `db:"size"`
	Points    float64   `db:"points"`
	CreatedAt time.Time `db:"-"`
	Created   int64     `db:"created_at"` // Unix nanoseconds
}

// SpeciesStat aggregates the catch log for one species.
type SpeciesStat struct {
	SpeciesID   string  `db:"species_id"`
	Count       int     `db:"count"`
	BestSize    float64 `db:"best_size"`
	TotalPoints float64 `db:"total_points"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score REAL NOT NULL DEFAULT 0,
			current_stage TEXT NOT NULL DEFAULT ''
		);
		INSERT OR IGNORE INTO profile (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS caught_species (
			species_id TEXT PRIMARY KEY,
			first_caught_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS catches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			species_id TEXT NOT NULL,
			stage_id TEXT NOT NULL,
			size REAL NOT NULL,
			points REAL NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_catches_species ON catches(species_id);
		CREATE INDEX IF NOT EXISTS idx_catches_size ON catches(size DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddScore adds amount to the accumulated score.
func (s *Store) AddScore(amount float64) error {
	if _, err := s.db.Exec("UPDATE profile SET score = score + ? WHERE id = 1", amount); err != nil {
		return fmt.Errorf("storage: cannot add score: %w", err)
	}
	return nil
}

// Score returns the accumulated score.
func (s *Store) Score() (float64, error) {
	var score float64
	if err := s.db.Get(&score, "SELECT score FROM profile WHERE id = 1"); err != nil {
		return 0, fmt.Errorf("storage: cannot query score: %w", err)
	}
	return score, nil
}

// AddCaughtFish adds a species to the collection. Adding a species twice
// is a no-op.
func (s *Store) AddCaughtFish(speciesID string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO caught_species (species_id, first_caught_at) VALUES (?, ?)",
		speciesID, s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add caught species: %w", err)
	}
	return nil
}

// CaughtSpecies returns the collection sorted by id.
func (s *Store) CaughtSpecies() ([]string, error) {
	ids := []string{}
	if err := s.db.Select(&ids, "SELECT species_id FROM caught_species ORDER BY species_id"); err != nil {
		return nil, fmt.Errorf("storage: cannot query caught species: %w", err)
	}
	return ids, nil
}

// SetStage remembers the last selected stage.
func (s *Store) SetStage(stageID string) error {
	if _, err := s.db.Exec("UPDATE profile SET current_stage = ? WHERE id = 1", stageID); err != nil {
		return fmt.Errorf("storage: cannot save stage: %w", err)
	}
	return nil
}

// RecordCatch appends a catch to the log.
// Returns the ID of the inserted record.
func (s *Store) RecordCatch(runID string, res fishing.Result) (int64, error) {
	if res.Species == nil {
		return 0, errors.New("storage: catch has no species")
	}
	entry := CatchEntry{
		RunID:     runID,
		SpeciesID: res.Species.ID,
		StageID:   res.StageID,
		Size:      res.Size,
		Points:    res.Points,
		Created:   s.now().UnixNano(),
	}

	result, err := s.db.NamedExec(
		`INSERT INTO catches (run_id, species_id, stage_id, size, points, created_at)
		 VALUES (:run_id, :species_id, :stage_id, :size, :points, :created_at)`,
		entry,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record catch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopCatches returns the biggest fish ever landed, largest first.
func (s *Store) TopCatches(limit int) ([]CatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []CatchEntry
	err := s.db.Select(&entries,
		`SELECT id, run_id, species_id, stage_id, size, points, created_at
		 FROM catches
		 ORDER BY size DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query catches: %w", err)
	}
	for i := range entries {
		entries[i].CreatedAt = time.Unix(0, entries[i].Created)
	}
	return entries, nil
}

// SpeciesStats aggregates the catch log per species, ordered by id.
func (s *Store) SpeciesStats() ([]SpeciesStat, error) {
	var stats []SpeciesStat
	err := s.db.Select(&stats,
		`SELECT species_id, COUNT(*) AS count, MAX(size) AS best_size, SUM(points) AS total_points
		 FROM catches
		 GROUP BY species_id
		 ORDER BY species_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query species stats: %w", err)
	}
	return stats, nil
}

// Snapshot exports the profile as a session snapshot.
func (s *Store) Snapshot() (session.Snapshot, error) {
	var row struct {
		Score        float64 `db:"score"`
		CurrentStage string  `db:"current_stage"`
	}
	err := s.db.Get(&row, "SELECT score, current_stage FROM profile WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return session.Default(), nil
	}
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	caught, err := s.CaughtSpecies()
	if err != nil {
		return session.Snapshot{}, err
	}

	snap := session.Snapshot{
		Score:          row.Score,
		CaughtHistory:  caught,
		CurrentStageID: row.CurrentStage,
	}
	return snap.Normalize(), nil
}

// Restore replaces the profile with the snapshot. The catch log is kept.
func (s *Store) Restore(snap session.Snapshot) error {
	snap = snap.Normalize()

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("storage: cannot begin restore: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"UPDATE profile SET score = ?, current_stage = ? WHERE id = 1",
		snap.Score, snap.CurrentStageID,
	); err != nil {
		return fmt.Errorf("storage: cannot restore profile: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM caught_species"); err != nil {
		return fmt.Errorf("storage: cannot clear caught species: %w", err)
	}
	now := s.now().UnixNano()
	for _, id := range snap.CaughtHistory {
		if _, err := tx.Exec(
			"INSERT INTO caught_species (species_id, first_caught_at) VALUES (?, ?)",
			id, now,
		); err != nil {
			return fmt.Errorf("storage: cannot restore species %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit restore: %w", err)
	}
	return nil
}
