package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/config"
)

var (
	flagConfigShow   string
	flagConfigSave   string
	flagConfigDelete string

	// Field overrides for --save
	flagConfigPlayer string
	flagConfigSpeed  int
	flagConfigSeed   int64
	flagConfigLevel  int
	flagConfigPack   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage named config profiles",
	Long: `Shows the stored config profiles, or creates, inspects, and deletes
a single profile. New profiles start from the builtin default; the value
flags override individual fields.

Profiles live in ~/.brickstorm/configs as YAML files. The builtin
"default" profile cannot be changed or deleted.

Examples:
  brickstorm config
  brickstorm config --show default
  brickstorm config --save evening --speed 7 --player vova
  brickstorm config --save gauntlet_run --pack gauntlet --level 2
  brickstorm config --delete evening`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigShow, "show", "", "Print the fields of one profile")
	configCmd.Flags().StringVar(&flagConfigSave, "save", "", "Create or overwrite the named profile")
	configCmd.Flags().StringVar(&flagConfigDelete, "delete", "", "Delete the named profile")
	configCmd.Flags().StringVar(&flagConfigPlayer, "player", "", "Player name for --save")
	configCmd.Flags().IntVar(&flagConfigSpeed, "speed", 0, "Ball speed scale 1-10 for --save")
	configCmd.Flags().Int64Var(&flagConfigSeed, "seed", 0, "RNG seed for --save, -1 for time-based")
	configCmd.Flags().IntVar(&flagConfigLevel, "level", 0, "Starting level for --save")
	configCmd.Flags().StringVar(&flagConfigPack, "pack", "", "Level pack ID for --save")
}

func runConfig(cmd *cobra.Command, args []string) {
	dir := config.DefaultDir()

	if flagConfigDelete != "" {
		if err := config.Delete(dir, flagConfigDelete); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted profile %q\n", flagConfigDelete)
		return
	}

	if flagConfigSave != "" {
		cfg := config.Default()
		cfg.Name = flagConfigSave
		if flagConfigPlayer != "" {
			cfg.PlayerName = flagConfigPlayer
		}
		if flagConfigSpeed != 0 {
			cfg.BallSpeed = flagConfigSpeed
		}
		if flagConfigSeed != 0 {
			cfg.RandomSeed = flagConfigSeed
		}
		if flagConfigLevel != 0 {
			cfg.StartingLevel = flagConfigLevel
		}
		if flagConfigPack != "" {
			cfg.LevelPack = flagConfigPack
		}

		if err := config.Save(dir, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved profile %q\n", cfg.Name)
		return
	}

	if flagConfigShow != "" {
		cfg, err := config.Load(dir, flagConfigShow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Profile: %s\n", cfg.Name)
		fmt.Println()
		fmt.Printf("  %-15s %s\n", "Player:", cfg.PlayerName)
		fmt.Printf("  %-15s %d\n", "Ball speed:", cfg.BallSpeed)
		fmt.Printf("  %-15s %d\n", "Random seed:", cfg.RandomSeed)
		fmt.Printf("  %-15s %d\n", "Starting level:", cfg.StartingLevel)
		fmt.Printf("  %-15s %s\n", "Level pack:", cfg.LevelPack)
		return
	}

	names, err := config.List(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available profiles:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'brickstorm play --profile <name>' to use one.")
}
