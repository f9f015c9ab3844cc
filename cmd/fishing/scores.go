package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var flagTop int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score, collection and best catches",
	Long: `Display the total score, fish book progress, the best catches
and per-species records.

Examples:
  fishing scores
  fishing scores --top 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of catches to list")
}

func runScores(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(flagCatalog)
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

	snap, err := store.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session: %v\n", err)
		os.Exit(1)
	}
	top, err := store.TopCatches(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving catches: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.SpeciesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Score:      %.2f\n", snap.Score)
	fmt.Printf("Fish book:  %d/%d\n", len(snap.CaughtHistory), len(cat.AllSpecies()))
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No catches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fishing play' to land your first fish!")
		return
	}

	fmt.Println("Best catches:")
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "Rank", "Fish", "Size", "Points", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "----", "----", "----", "------", "----")
	for i, c := range top {
		fmt.Printf("  %-4d  %-16s  %-7s  %-7.2f  %s\n",
			i+1, speciesName(cat, c.SpeciesID), fmt.Sprintf("%.0fcm", c.Size), c.Points, c.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Records:")
	for _, st := range stats {
		fmt.Printf("  %-16s  x%-3d  best %.0fcm  total %.2f\n", speciesName(cat, st.SpeciesID), st.Count, st.BestSize, st.TotalPoints)
	}
}

func speciesName(cat *catalog.Catalog, id string) string {
	if sp := cat.Species(id); sp != nil {
		return sp.NameEn
	}
	return id
}
