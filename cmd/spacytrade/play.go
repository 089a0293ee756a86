package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacy-trade/internal/platform/tui"
	"github.com/vovakirdan/spacy-trade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant (default: spacytrade).

Controls:
  WASD/Arrows  - Thrust
  1-4          - Sell one gold, iron, copper, coal
  Shift+1-4    - Buy one gold, iron, copper, coal
  Tab          - Select next barter offer
  Enter / X    - Accept / reject the selected offer
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More starting cash, cheaper upkeep, bigger hold
  normal - Config values as loaded
  hard   - Less cash, costlier and more frequent upkeep, smaller hold

Examples:
  spacytrade play
  spacytrade play spacytrade_classic
  spacytrade play --difficulty hard --seed 42
  spacytrade play --config ./my-trade.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacytrade list' to see available variants.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts, cleanup := openSession()
	runErr := tui.Run(game, opts, runtimeConfig())

	// Close store before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
