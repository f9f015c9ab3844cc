package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/platform/canvas"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Fish in a desktop window",
	Long: `Open a desktop window and fish with the mouse.

Controls:
  Mouse        - Aim and click to cast, hold to reel
  1-9          - Change stage
  P/Esc        - Pause
  Q            - Quit

Examples:
  fishing window
  fishing window --width 1280 --height 720 --stage festival`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 640, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cat, tune, err := loadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	snap := startSnapshot(store, logger)
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
		Width:    float64(flagWidth),
		Height:   float64(flagHeight),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := []fishing.Option{
		fishing.WithLogger(logger),
		fishing.WithRand(core.NewRand(rc.ResolveSeed())),
		fishing.WithAudio(sound),
		fishing.WithSnapshot(*snap),
	}
	if store != nil {
		recorder := storage.NewRecorder(store, logger)
		recorder.SetStage(snap.CurrentStageID)
		opts = append(opts, fishing.WithPersistence(recorder))
	}

	game := fishing.New(cat, tune, rc, opts...)
	if err := canvas.Run(game, cat, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session ended", "score", game.Score(), "caught", len(game.Caught()))
}
