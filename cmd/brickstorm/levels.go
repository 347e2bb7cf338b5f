package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/levelpack"
)

var flagShowPack string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available level packs",
	Long: `Shows all registered level packs. Use --show to print the layouts
of one pack.

Examples:
  brickstorm levels
  brickstorm levels --show classic`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagShowPack, "show", "", "Print the layouts of the named pack")
}

func runLevels(cmd *cobra.Command, args []string) {
	if flagShowPack != "" {
		pack, err := levelpack.Get(flagShowPack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s - %s\n", pack.ID, pack.Title)
		for i, level := range pack.Levels {
			fmt.Println()
			fmt.Printf("Level %d:\n", i+1)
			for _, row := range level {
				fmt.Printf("  %s\n", row)
			}
		}
		return
	}

	packs := levelpack.List()
	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	// Print packs
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'brickstorm play --pack <id>' to play a pack.")
}
