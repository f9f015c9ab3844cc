package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/audio"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/platform/tui"
	"github.com/vovakirdan/tui-fishing/internal/session"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var (
	flagStage  string
	flagPick   bool
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fish in the terminal",
	Long: `Start fishing in the terminal. The session resumes from the save
database: score, fish book and the last stage carry over.

Controls:
  Mouse        - Aim and click to cast, hold to reel
  Enter        - Cast / hook / dismiss the catch card
  Space        - Reel (hold or repeat)
  1-9, Tab     - Change stage
  B            - Fish book
  P/Esc        - Pause
  M            - Mute
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  fishing play
  fishing play --stage stream
  fishing play --pick
  fishing play --seed 7 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "", "Stage id to start on (default: last played)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the stage from a menu first")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume from 0 to 1")

	windowCmd.Flags().StringVar(&flagStage, "stage", "", "Stage id to start on (default: last played)")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logFile := fileLogger()
	defer logFile.Close()

	cat, tune, err := loadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open save database, progress will not be kept")
	} else {
		defer store.Close()
	}
	snap := startSnapshot(store, logger)

	width, height := terminalSize()
	if flagPick {
		id, pickErr := tui.RunStagePicker(cat, snap.CurrentStageID, width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if id == "" {
			return
		}
		flagStage = id
	}
	if flagStage != "" {
		if err := resolveStage(cat, flagStage); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		snap.CurrentStageID = flagStage
	}

	sound := newSound(logger, flagMute, flagVolume)
	defer sound.Cleanup()

	rc := core.RuntimeConfig{
		Width:    float64(width * tui.CellWidth),
		Height:   float64((height - 1) * tui.CellHeight),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var recorder *storage.Recorder
	if store != nil {
		recorder = storage.NewRecorder(store, logger)
		recorder.SetStage(snap.CurrentStageID)
	}

	final, runErr := tui.Run(tui.Options{
		Catalog:  cat,
		Tuning:   tune,
		Runtime:  rc,
		Store:    store,
		Recorder: recorder,
		Sound:    sound,
		Logger:   logger,
		Snapshot: snap,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("session ended", "score", final.Score, "caught", len(final.CaughtHistory), "stage", final.CurrentStageID)
	fmt.Printf("Score %.2f  |  Fish book %d/%d\n", final.Score, len(final.CaughtHistory), len(cat.AllSpecies()))
}

// startSnapshot returns the saved session, or a fresh one.
func startSnapshot(store *storage.Store, logger *log.Logger) *session.Snapshot {
	if snap := loadSnapshot(store, logger); snap != nil {
		return snap
	}
	snap := session.Default()
	return &snap
}

// newSound opens the speaker and applies the volume and mute flags. The
// speaker is opened even when muted so the in-game toggle can unmute.
// Without an audio device the manager stays silent.
func newSound(logger *log.Logger, muted bool, volume float64) *audio.SoundManager {
	sound := audio.NewSoundManager()
	sound.SetVolume(volume)
	sound.SetMuted(muted)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	return sound
}
