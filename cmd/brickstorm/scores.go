package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickstorm/internal/platform/tui"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresPlain  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top scores, interactively by default or as plain text
with --plain.

Examples:
  brickstorm scores
  brickstorm scores --player vova
  brickstorm scores --plain --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show with --plain")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show scores for one player only")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, flagScoresPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	if flagScoresPlayer != "" {
		fmt.Printf("High Scores - %s\n", flagScoresPlayer)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickstorm play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Level, dateStr)
	}

	// Show personal best and aggregates
	if flagScoresPlayer != "" {
		fmt.Println()
		if high, highErr := store.HighScore(flagScoresPlayer); highErr == nil {
			fmt.Printf("Best: %d\n", high)
		}
		if stats, statsErr := store.PlayerStats(flagScoresPlayer); statsErr == nil && stats.GamesCount > 0 {
			fmt.Printf("Games: %d  Best level: %d  Average: %.0f\n",
				stats.GamesCount, stats.BestLevel, stats.AvgScore)
		}
	}
}
