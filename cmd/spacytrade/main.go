// spacytrade is a terminal trading game: fly a ship through drifting ore,
// haul it to your base and sell before upkeep bankrupts you.
//
// Usage:
//
//	spacytrade list                - List game variants
//	spacytrade play [variant]      - Play a variant (default: spacytrade)
//	spacytrade menu                - Pick variants interactively
//	spacytrade serve               - Start SSH server for remote play
//	spacytrade scores [variant]    - Show best revenue and recent runs
//	spacytrade config print        - Print the effective configuration
//	spacytrade config validate     - Validate a configuration file
//	spacytrade journal <file>      - Print a recorded event journal
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.spacytrade/scores.db)
//	--config <path>      - Load a YAML or TOML config file
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
//	--journal <dir>      - Record every run's events to zstd journals in dir
//	--hold-ms <ms>       - How long a movement key counts as held
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacy-trade/internal/core"
	"github.com/vovakirdan/spacy-trade/internal/games/spacytrade"
	"github.com/vovakirdan/spacy-trade/internal/platform/tui"
	"github.com/vovakirdan/spacy-trade/internal/storage"
)

const defaultVariant = "spacytrade"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagJournal    string
	flagHoldMS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacytrade",
	Short: "Spacy Trade - haul ore and play the market in your terminal",
	Long: `Spacy Trade is a terminal trading game. Fly your ship through drifting
ore, dodge the rocks, unload at your base and sell before the upkeep
drains your balance below zero.

Available commands:
  list     - Show game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View best revenue and recent runs
  config   - Print or validate configuration
  journal  - Print a recorded event journal

Examples:
  spacytrade play
  spacytrade play spacytrade_classic --difficulty easy
  spacytrade menu --journal ~/.spacytrade/journal
  spacytrade serve --ssh :2222
  spacytrade scores`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.spacytrade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagJournal, "journal", "", "Directory for run event journals (empty = off)")
	pf.IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "Movement key hold window in milliseconds")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(journalCmd)
}

// applyGameFlags loads and validates the --config file with the
// --difficulty preset before any game is created.
func applyGameFlags() error {
	return spacytrade.Configure(flagConfig, flagDifficulty)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger opens the log file under ~/.spacytrade; the alt screen owns
// the terminal during play. The returned func closes the file.
func openLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}

	path, err := storage.ExpandHome("~/.spacytrade/spacytrade.log")
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// platformOptions collects the flags shared by local play and SSH sessions.
func platformOptions(store *storage.Store, logger *log.Logger) tui.Options {
	return tui.Options{
		Store:      store,
		Logger:     logger,
		JournalDir: flagJournal,
		HoldWindow: time.Duration(flagHoldMS) * time.Millisecond,
	}
}

// openSession opens the logger and the store for an interactive command.
// Failures only produce warnings: the game runs without them.
func openSession() (tui.Options, func()) {
	logger, closeLog, err := openLogger("spacytrade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closeLog = nil, func() {}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return platformOptions(store, logger), cleanup
}
