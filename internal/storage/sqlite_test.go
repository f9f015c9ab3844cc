package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsProfile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.AddScore(2.5); err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	score, err := store.Score()
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if score != 2.5 {
		t.Errorf("Score() = %v after reopen, expected 2.5", score)
	}
}

func TestStoreScoreAccumulates(t *testing.T) {
	store := openTestStore(t)

	for _, amount := range []float64{0.5, 1.25, 0.25} {
		if err := store.AddScore(amount); err != nil {
			t.Fatalf("AddScore(%v) failed: %v", amount, err)
		}
	}

	score, err := store.Score()
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if score != 2 {
		t.Errorf("Score() = %v, expected 2", score)
	}
}

func TestStoreAddCaughtFishIdempotent(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"koi", "funa", "koi", "koi"} {
		if err := store.AddCaughtFish(id); err != nil {
			t.Fatalf("AddCaughtFish(%q) failed: %v", id, err)
		}
	}

	ids, err := store.CaughtSpecies()
	if err != nil {
		t.Fatalf("CaughtSpecies() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "funa" || ids[1] != "koi" {
		t.Errorf("CaughtSpecies() = %v, expected [funa koi]", ids)
	}
}

func TestStoreCatchLog(t *testing.T) {
	store := openTestStore(t)
	cat := catalog.Default()

	catches := []struct {
		species string
		size    float64
	}{
		{"koi", 60},
		{"funa", 20},
		{"koi", 85},
		{"ryu", 120},
	}
	for _, c := range catches {
		sp := cat.Species(c.species)
		res := fishing.Result{Species: sp, Size: c.size, Points: c.size * sp.Speed / 100, StageID: "pond"}
		if _, err := store.RecordCatch("run-1", res); err != nil {
			t.Fatalf("RecordCatch() failed: %v", err)
		}
	}

	top, err := store.TopCatches(3)
	if err != nil {
		t.Fatalf("TopCatches() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopCatches(3) returned %d entries", len(top))
	}
	if top[0].SpeciesID != "ryu" || top[1].Size != 85 || top[2].Size != 60 {
		t.Errorf("TopCatches() order wrong: %+v", top)
	}
	if top[0].RunID != "run-1" || top[0].StageID != "pond" || top[0].CreatedAt.IsZero() {
		t.Errorf("TopCatches()[0] = %+v", top[0])
	}

	stats, err := store.SpeciesStats()
	if err != nil {
		t.Fatalf("SpeciesStats() failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("SpeciesStats() returned %d rows, expected 3", len(stats))
	}
	koi := stats[1]
	if koi.SpeciesID != "koi" || koi.Count != 2 || koi.BestSize != 85 {
		t.Errorf("koi stats = %+v", koi)
	}

	if _, err := store.RecordCatch("run-1", fishing.Result{}); err == nil {
		t.Error("RecordCatch() without a species should fail")
	}
}

func TestStoreSnapshotRestore(t *testing.T) {
	store := openTestStore(t)

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if snap.Score != 0 || len(snap.CaughtHistory) != 0 || snap.CurrentStageID != session.DefaultStageID {
		t.Errorf("fresh Snapshot() = %+v", snap)
	}

	in := session.Snapshot{Score: 7.5, CaughtHistory: []string{"ayu", "iwana"}, CurrentStageID: "stream"}
	if err := store.Restore(in); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if err := store.AddCaughtFish("ayu"); err != nil {
		t.Fatalf("AddCaughtFish() failed: %v", err)
	}

	out, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if out.Score != 7.5 || out.CurrentStageID != "stream" {
		t.Errorf("Snapshot() = %+v", out)
	}
	if len(out.CaughtHistory) != 2 || !out.Has("ayu") || !out.Has("iwana") {
		t.Errorf("CaughtHistory = %v", out.CaughtHistory)
	}

	if err := store.SetStage("pond"); err != nil {
		t.Fatalf("SetStage() failed: %v", err)
	}
	out, _ = store.Snapshot()
	if out.CurrentStageID != "pond" {
		t.Errorf("CurrentStageID = %q after SetStage", out.CurrentStageID)
	}
}

func TestRecorderPersistsAndLogsFailures(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	rec := NewRecorder(store, log.New(&buf))

	if rec.RunID() == "" {
		t.Fatal("RunID() is empty")
	}

	sp := catalog.Default().Species("suzuki")
	rec.AddScore(0.9)
	rec.AddCaughtFish(sp.ID)
	rec.LogCatch(fishing.Result{Species: sp, Size: 60, Points: 0.9, StageID: "river_mouth"})
	rec.SetStage("festival")

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if snap.Score != 0.9 || !snap.Has("suzuki") || snap.CurrentStageID != "festival" {
		t.Errorf("Snapshot() = %+v", snap)
	}
	top, _ := store.TopCatches(1)
	if len(top) != 1 || top[0].RunID != rec.RunID() {
		t.Errorf("TopCatches() = %+v", top)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	store.Close()
	rec.AddScore(1)
	if buf.Len() == 0 {
		t.Error("a failed write should be logged")
	}
}
