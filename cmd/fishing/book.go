package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/platform/tui"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Browse the fish book",
	Long: `Open the fish book: every species, which ones you have landed,
and your best catches.`,
	Args: cobra.NoArgs,
	Run:  runBook,
}

func runBook(cmd *cobra.Command, args []string) {
	logger, logFile := fileLogger()
	defer logFile.Close()

	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if err := tui.RunBook(cat, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
