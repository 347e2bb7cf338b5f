package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagSSHDBPath    string
	flagIdleTimeout  int
	flagServeProfile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickstorm SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each connection gets its own game built from the server profile, with the
SSH username as the player name. Scores are stored per-server (all users
share the same leaderboard). Endgame saving is disabled for remote games.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickstorm/ssh_host_key

Examples:
  brickstorm serve                           # Listen on :23234 with auto-generated key
  brickstorm serve --ssh :2222               # Listen on port 2222
  brickstorm serve --host-key ./my_host_key  # Use specific host key
  brickstorm serve --profile tournament      # Serve a named profile

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.brickstorm/scores.db", "Path to scores database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeProfile, "profile", "", "Named config profile served to all connections")
}

func runServe(_ *cobra.Command, _ []string) {
	profile, err := config.Load(config.DefaultDir(), flagServeProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagSSHDBPath
	cfg.Profile = profile
	cfg.FPS = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting brickstorm SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
