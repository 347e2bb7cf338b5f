// brickstorm is a terminal brick-breaking game with config profiles,
// saved games, and an SSH server for remote play.
//
// Usage:
//
//	brickstorm play         - Play the game
//	brickstorm serve        - Start SSH server for remote play
//	brickstorm scores       - Show the high score table
//	brickstorm levels       - List available level packs
//	brickstorm endgames     - List and manage saved games
//	brickstorm config       - Manage named config profiles
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.brickstorm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickstorm",
	Short: "Brickstorm - break bricks in your terminal",
	Long: `Brickstorm is a terminal brick-breaking game: bounce the ball off
the paddle, clear the wall, catch the falling pickups.

Available commands:
  play      - Start a game directly
  serve     - Start SSH server for remote play
  scores    - View the high score table
  levels    - List available level packs
  endgames  - List and manage saved games
  config    - Manage named config profiles

Examples:
  brickstorm play
  brickstorm play --difficulty hard
  brickstorm play --endgame boss_fight
  brickstorm serve --ssh :2222
  brickstorm scores --player vova`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickstorm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(endgamesCmd)
	rootCmd.AddCommand(configCmd)
}
