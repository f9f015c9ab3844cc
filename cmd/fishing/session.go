package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/session"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the saved session as YAML",
	Long: `Write the saved score, fish book and stage as a versioned YAML
document, to a file or to stdout.

Examples:
  fishing export
  fishing export backup.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a saved session from YAML",
	Long: `Replace the saved session with one read from a file. Older
documents, including JSON exports of the browser save, are migrated.

Examples:
  fishing import backup.yaml
  fishing import fishing-state.json`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runExport(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var out io.Writer = os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := exportSession(store, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := importSession(store, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Restored score %.2f, %d species, stage %s\n", snap.Score, len(snap.CaughtHistory), snap.CurrentStageID)
}

func exportSession(store *storage.Store, out io.Writer) error {
	snap, err := store.Snapshot()
	if err != nil {
		return err
	}
	data, err := session.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func importSession(store *storage.Store, data []byte) (session.Snapshot, error) {
	snap, err := session.Unmarshal(data)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := store.Restore(snap); err != nil {
		return session.Snapshot{}, err
	}
	return snap, nil
}
