package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/session"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fishing",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.fishing/fishing.log for appending. Full-screen
// modes log there so output does not tear the display.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".fishing")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "fishing.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// fileLogger logs to the log file, or nowhere if it cannot be opened.
func fileLogger() (*log.Logger, io.Closer) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), nopCloser{io.Discard}
	}
	return newLogger(f), f
}

// loadAssets loads the catalog and the tuning.
func loadAssets() (*catalog.Catalog, config.FishingConfig, error) {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		return nil, config.FishingConfig{}, err
	}
	tune, err := config.LoadFishing(flagConfig)
	if err != nil {
		return nil, config.FishingConfig{}, err
	}
	if err := tune.Validate(); err != nil {
		return nil, config.FishingConfig{}, err
	}
	return cat, tune, nil
}

// terminalSize returns the terminal size, 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the save database. Failures are logged and the game
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open save database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// loadSnapshot reads the saved session, or nil without a store.
func loadSnapshot(store *storage.Store, logger *log.Logger) *session.Snapshot {
	if store == nil {
		return nil
	}
	snap, err := store.Snapshot()
	if err != nil {
		logger.Warn("could not read saved session", "err", err)
		return nil
	}
	return &snap
}

// resolveStage checks a stage id against the catalog, suggesting close
// matches for typos.
func resolveStage(cat *catalog.Catalog, id string) error {
	if cat.Stage(id) != nil {
		return nil
	}
	msg := fmt.Sprintf("unknown stage %q", id)
	if s := catalog.Suggest(id, cat.StageIDs()); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
	}
	return fmt.Errorf("%s; run 'fishing stages' to list them", msg)
}
