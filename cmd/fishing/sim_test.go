package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

func testSimOptions(seed int64) simOptions {
	return simOptions{
		Catalog: catalog.Default(),
		Tuning:  config.DefaultFishingConfig(),
		Seed:    seed,
		Ticks:   3000,
		Cols:    80,
		Rows:    24,
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	sa := simulate(&a, testSimOptions(11))
	sb := simulate(&b, testSimOptions(11))

	if sa != sb {
		t.Errorf("stats differ: %+v vs %+v", sa, sb)
	}
	if a.String() != b.String() {
		t.Error("printed output differs between identical runs")
	}
	if sa.Tick != 3000 {
		t.Errorf("tick = %d, expected 3000", sa.Tick)
	}
}

func TestSimulateStage(t *testing.T) {
	opts := testSimOptions(3)
	opts.Stage = "festival"
	opts.Ticks = 10

	var out bytes.Buffer
	stats := simulate(&out, opts)
	if stats.FishCount != 25 {
		t.Errorf("fish = %d, expected the festival population", stats.FishCount)
	}
	if !strings.Contains(out.String(), "stage festival") {
		t.Errorf("summary missing stage:\n%s", out.String())
	}
}

func TestAnglerCastsFromIdle(t *testing.T) {
	opts := testSimOptions(5)
	opts.Ticks = 1

	var out bytes.Buffer
	stats := simulate(&out, opts)
	if stats.Phase != fishing.PhaseCasting {
		t.Errorf("phase after one tick = %v, expected casting", stats.Phase)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src, err := storage.Open(filepath.Join(t.TempDir(), "src.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()
	if err := src.AddScore(4.5); err != nil {
		t.Fatalf("AddScore: %v", err)
	}
	if err := src.AddCaughtFish("koi"); err != nil {
		t.Fatalf("AddCaughtFish: %v", err)
	}
	if err := src.SetStage("pond"); err != nil {
		t.Fatalf("SetStage: %v", err)
	}

	var buf bytes.Buffer
	if err := exportSession(src, &buf); err != nil {
		t.Fatalf("exportSession: %v", err)
	}

	dst, err := storage.Open(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer dst.Close()

	snap, err := importSession(dst, buf.Bytes())
	if err != nil {
		t.Fatalf("importSession: %v", err)
	}
	if snap.Score != 4.5 || !snap.Has("koi") || snap.CurrentStageID != "pond" {
		t.Errorf("imported %+v", snap)
	}
	score, err := dst.Score()
	if err != nil || score != 4.5 {
		t.Errorf("stored score = %v (%v), expected 4.5", score, err)
	}
}

func TestImportBrowserExport(t *testing.T) {
	dst, err := storage.Open(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer dst.Close()

	data := []byte(`{"state":{"score":2.25,"caughtHistory":["funa"],"currentStageId":"stream"},"version":0}`)
	snap, err := importSession(dst, data)
	if err != nil {
		t.Fatalf("importSession: %v", err)
	}
	if snap.Score != 2.25 || !snap.Has("funa") || snap.CurrentStageID != "stream" {
		t.Errorf("imported %+v", snap)
	}
}

func TestResolveStageSuggests(t *testing.T) {
	cat := catalog.Default()
	if err := resolveStage(cat, "pond"); err != nil {
		t.Errorf("resolveStage(pond) = %v", err)
	}
	err := resolveStage(cat, "pnd")
	if err == nil || !strings.Contains(err.Error(), "pond") {
		t.Errorf("resolveStage(pnd) = %v, expected a pond suggestion", err)
	}
}
