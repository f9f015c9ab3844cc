package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	embedded, err := parse(defaultFishingYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if embedded != DefaultFishingConfig() {
		t.Errorf("embedded defaults drifted from DefaultFishingConfig():\n%+v\n%+v", embedded, DefaultFishingConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultFishingConfig()

	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("Gravity = %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.TensionLimit != 100 || cfg.Physics.TensionRecovery != 0.8 || cfg.Physics.TensionIncrease != 1.3 {
		t.Errorf("tension constants = %+v", cfg.Physics)
	}
	if cfg.Behavior.ChaseProbability != 0.005 || cfg.Timing.BiteWindowTicks != 120 {
		t.Errorf("bite constants = %v / %v", cfg.Behavior.ChaseProbability, cfg.Timing.BiteWindowTicks)
	}
	if cfg.Timing.BrokenDelay != 2*time.Second || cfg.Timing.RespawnDelay != 3*time.Second {
		t.Errorf("delays = %v / %v", cfg.Timing.BrokenDelay, cfg.Timing.RespawnDelay)
	}
}

func TestLoadFishingCustomPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fishing.yaml")
	data := "physics:\n  tension_limit: 150\ntiming:\n  broken_delay: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFishing(path)
	if err != nil {
		t.Fatalf("LoadFishing() failed: %v", err)
	}
	if cfg.Physics.TensionLimit != 150 {
		t.Errorf("TensionLimit = %v, expected 150", cfg.Physics.TensionLimit)
	}
	if cfg.Timing.BrokenDelay != 500*time.Millisecond {
		t.Errorf("BrokenDelay = %v", cfg.Timing.BrokenDelay)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("Gravity = %v, expected default", cfg.Physics.Gravity)
	}
}

func TestLoadFishingErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFishing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("behavior:\n  max_chasers: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFishing(bad); err == nil {
		t.Error("invalid values should fail validation")
	}
}

func TestLoadFishingFallsBackToEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFishing("")
	if err != nil {
		t.Fatalf("LoadFishing() failed: %v", err)
	}
	if cfg != DefaultFishingConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
