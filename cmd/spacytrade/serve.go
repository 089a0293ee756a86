package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacy-trade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagConnRate    float64
	flagConnBurst   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Spacy Trade SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu and
independent runs. Scores are stored per-server (all users share the same
leaderboard). The server logs to stderr.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacytrade/host_key

Examples:
  spacytrade serve                           # Listen on :23234 with auto-generated key
  spacytrade serve --ssh :2222               # Listen on port 2222
  spacytrade serve --host-key ./my_host_key  # Use specific host key
  spacytrade serve --conn-rate 0             # Disable connection limiting

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagConnRate, "conn-rate", defaults.ConnRate, "New sessions per second allowed per address (0 = unlimited)")
	serveCmd.Flags().IntVar(&flagConnBurst, "conn-burst", defaults.ConnBurst, "Burst of sessions allowed per address")
}

func runServe(_ *cobra.Command, _ []string) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacytrade-ssh",
		Level:           level,
	})

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		ConnRate:    flagConnRate,
		ConnBurst:   flagConnBurst,
		JournalDir:  flagJournal,
		HoldWindow:  time.Duration(flagHoldMS) * time.Millisecond,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Spacy Trade SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
