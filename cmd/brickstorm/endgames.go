package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/endgame"
)

var (
	flagEndgameShow   string
	flagEndgameDelete string
)

var endgamesCmd = &cobra.Command{
	Use:   "endgames",
	Short: "List and manage saved games",
	Long: `Shows the saved endgames, or inspects and deletes a single save.

Endgames are written by pressing S while the game is paused. They live in
~/.brickstorm/endgames as YAML files.

Examples:
  brickstorm endgames
  brickstorm endgames --show boss_fight
  brickstorm endgames --delete boss_fight`,
	Run: runEndgames,
}

func init() {
	endgamesCmd.Flags().StringVar(&flagEndgameShow, "show", "", "Print the details of one save")
	endgamesCmd.Flags().StringVar(&flagEndgameDelete, "delete", "", "Delete the named save")
}

func runEndgames(cmd *cobra.Command, args []string) {
	saves := endgame.NewManager(endgame.DefaultDir())

	if flagEndgameDelete != "" {
		if err := saves.Delete(flagEndgameDelete); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted endgame %q\n", flagEndgameDelete)
		return
	}

	if flagEndgameShow != "" {
		snap, err := saves.Load(flagEndgameShow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		standing := 0
		for _, b := range snap.Bricks {
			if !b.Destroyed {
				standing++
			}
		}

		fmt.Printf("Endgame: %s\n", snap.Name)
		fmt.Println()
		fmt.Printf("  %-8s %d\n", "Level:", snap.Level)
		fmt.Printf("  %-8s %d\n", "Score:", snap.Score)
		fmt.Printf("  %-8s %d\n", "Lives:", snap.Lives)
		fmt.Printf("  %-8s %d\n", "Bricks:", standing)
		if snap.ConfigName != "" {
			fmt.Printf("  %-8s %s (speed %d, start level %d)\n",
				"Config:", snap.ConfigName, snap.ConfigBallSpeed, snap.ConfigStartingLevel)
		}
		fmt.Println()
		fmt.Printf("Run 'brickstorm play --endgame %s' to resume.\n", snap.Name)
		return
	}

	list, err := saves.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Println("No saved endgames.")
		fmt.Println()
		fmt.Println("Pause a game and press S to save one.")
		return
	}

	fmt.Println("Saved endgames:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range list {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-10s  %-6s  %s\n", maxNameLen, "Name", "Level", "Score", "Lives", "Config")
	fmt.Printf("  %-*s  %-6s  %-10s  %-6s  %s\n", maxNameLen, "----", "-----", "-----", "-----", "------")

	// Print saves
	for _, s := range list {
		fmt.Printf("  %-*s  %-6d  %-10d  %-6d  %s\n", maxNameLen, s.Name, s.Level, s.Score, s.Lives, s.ConfigName)
	}

	fmt.Println()
	fmt.Println("Run 'brickstorm play --endgame <name>' to resume one.")
}
