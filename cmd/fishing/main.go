// fishing is a real-time fishing game for the terminal and the desktop.
//
// Usage:
//
//	fishing play              - Fish in the terminal
//	fishing window            - Fish in a desktop window
//	fishing stages [id]       - List stages or show one
//	fishing book              - Browse the fish book
//	fishing scores            - Show score, collection and best catches
//	fishing export [file]     - Write the session as YAML
//	fishing import <file>     - Restore a session from YAML
//	fishing sim               - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.fishing/fishing.db)
//	--config <path>     - Tuning YAML (default search: ~/.fishing/configs, ./configs)
//	--catalog <path>    - Species and stage YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagCatalog  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishing",
	Short: "Fishing - cast, wait for a bite, reel it in",
	Long: `Fishing is a small real-time fishing game. Cast the bobber, wait
for a fish to bite, hook it and reel it in without snapping the line.
Every species you land is recorded in the fish book.

Available commands:
  play     - Fish in the terminal
  window   - Fish in a desktop window
  stages   - Show the fishing spots
  book     - Browse the fish book
  scores   - Score, collection and best catches
  export   - Write the session as YAML
  import   - Restore a session from YAML
  sim      - Headless scripted session

Examples:
  fishing play
  fishing play --stage pond
  fishing window --seed 42
  fishing stages festival
  fishing export session.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fishing/fishing.db", "Path to the save database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to custom species and stage YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(simCmd)
}
