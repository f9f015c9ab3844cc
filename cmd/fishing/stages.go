package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
)

var stagesCmd = &cobra.Command{
	Use:   "stages [id]",
	Short: "List fishing stages",
	Long: `Shows every fishing stage, or the details of one.

Examples:
  fishing stages
  fishing stages pond`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStages,
}

func runStages(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		if err := resolveStage(cat, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printStage(cat, cat.Stage(args[0]))
		return
	}

	stages := cat.Stages()
	fmt.Println("Fishing stages:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, st := range stages {
		if len(st.ID) > maxIDLen {
			maxIDLen = len(st.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %-5s  %s\n", maxIDLen, "ID", "Name", "Flow", "Fish")
	fmt.Printf("  %-*s  %-16s  %-5s  %s\n", maxIDLen, "--", "----", "----", "----")
	for _, st := range stages {
		fmt.Printf("  %-*s  %-16s  %-5.1f  %d\n", maxIDLen, st.ID, st.NameEn, st.Flow, st.FishCount)
	}

	fmt.Println()
	fmt.Println("Run 'fishing play --stage <id>' to fish there.")
}

func printStage(cat *catalog.Catalog, st *catalog.Stage) {
	fmt.Printf("%s %s (%s)\n", st.NameEn, st.Name, st.ID)
	fmt.Println()
	fmt.Printf("  Flow:        %.1f\n", st.Flow)
	fmt.Printf("  Water line:  %.0f%%\n", st.WaterLine()*100)
	fmt.Printf("  Population:  %d\n", st.FishCount)
	fmt.Printf("  Ambient:     %s\n", st.AmbientEffect())
	fmt.Println()
	fmt.Println("  Species:")
	for _, sp := range cat.Roster(st) {
		fmt.Printf("    %-14s %-8s %-5s %3.0f-%-3.0f cm\n", sp.NameEn, sp.Name, strings.Repeat("*", sp.Rarity), sp.MinSize, sp.MaxSize)
	}
}
