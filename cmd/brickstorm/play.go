package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/endgame"
	"github.com/vovakirdan/brickstorm/internal/game"
	"github.com/vovakirdan/brickstorm/internal/levelpack"
	"github.com/vovakirdan/brickstorm/internal/platform/tui"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

var (
	flagProfile    string
	flagConfig     string
	flagPlayer     string
	flagSpeed      int
	flagSeed       int64
	flagLevel      int
	flagPack       string
	flagDifficulty string
	flagEndgame    string
	flagSaveAs     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game using the default profile, a named profile, or an
explicit config file. Individual flags override the loaded profile.

Controls:
  A/D, Left/Right - Move paddle
  Space           - Launch ball / next level
  P/Esc           - Pause
  S               - Save endgame (while paused)
  R               - Restart (after the run ends)
  Q/Ctrl+C        - Quit

Difficulty presets:
  easy   - Slow ball (speed 3)
  normal - Default ball (speed 5)
  hard   - Fast ball (speed 8)

Examples:
  brickstorm play
  brickstorm play --difficulty hard
  brickstorm play --profile evening --player vova
  brickstorm play --config ./my-rules.yaml
  brickstorm play --pack gauntlet --level 2
  brickstorm play --endgame boss_fight`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Named config profile to load")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML (overrides --profile)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the score table")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Ball speed scale 1-10 (0 = from profile)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed, -1 for time-based (0 = from profile)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from profile)")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Level pack ID (empty = from profile)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagEndgame, "endgame", "", "Resume a saved endgame by name")
	playCmd.Flags().StringVar(&flagSaveAs, "save-as", "", "Name for in-game saves (default: quicksave)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load the base profile
	var cfg config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadPath(flagConfig)
	} else {
		cfg, err = config.Load(config.DefaultDir(), flagProfile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Difficulty preset first, individual overrides on top
	if flagDifficulty != "" {
		preset := config.Preset(flagDifficulty)
		if !config.IsValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagPlayer != "" {
		cfg.PlayerName = flagPlayer
	}
	if flagSpeed != 0 {
		cfg.BallSpeed = flagSpeed
	}
	if flagSeed != 0 {
		cfg.RandomSeed = flagSeed
	}
	if flagLevel != 0 {
		cfg.StartingLevel = flagLevel
	}
	if flagPack != "" {
		cfg.LevelPack = flagPack
	}
	cfg.Clamp()

	if !levelpack.Exists(cfg.LevelPack) {
		fmt.Fprintf(os.Stderr, "Error: unknown level pack %q\n", cfg.LevelPack)
		fmt.Fprintln(os.Stderr, "Run 'brickstorm levels' to see available packs.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	saves := endgame.NewManager(endgame.DefaultDir())

	// Resuming replays the save's config echo over the profile so the game
	// continues under the rules it was saved with
	saveName := flagSaveAs
	var resume *game.EndgameSnapshot
	if flagEndgame != "" {
		snap, loadErr := saves.Load(flagEndgame)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			fmt.Fprintln(os.Stderr, "Run 'brickstorm endgames' to see saved games.")
			os.Exit(1)
		}
		cfg.BallSpeed = snap.ConfigBallSpeed
		cfg.RandomSeed = snap.ConfigRandomSeed
		cfg.StartingLevel = snap.ConfigStartingLevel
		cfg.Clamp()
		if saveName == "" {
			saveName = flagEndgame // re-saving overwrites the resumed save
		}
		resume = &snap
	}

	eng, err := tui.BuildEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building game: %v\n", err)
		os.Exit(1)
	}
	if resume != nil {
		eng.LoadSnapshot(*resume)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Config:   cfg,
		Store:    store,
		Saves:    saves,
		SaveName: saveName,
		FPS:      flagFPS,
		ScreenW:  width,
		ScreenH:  height,
	}

	// Run the game
	runErr := tui.Run(eng, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
