package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacy-trade/internal/registry"
	"github.com/vovakirdan/spacy-trade/internal/storage"
)

var flagRecentRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best revenue and recent runs",
	Long: `Display the top 10 runs by revenue for a variant (default: spacytrade),
followed by run statistics and the most recent runs.

Examples:
  spacytrade scores
  spacytrade scores spacytrade_classic --runs 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 5, "Number of recent runs to list")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacytrade list' to see available variants.")
		os.Exit(1)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Revenue - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spacytrade play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Revenue", "Date")
	fmt.Printf("  %-4s  %-12s  %s\n", "----", "-------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %s\n", i+1, "$"+humanize.Comma(int64(entry.Score)), dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Bankrupt: %d  Total revenue: $%s  Longest: %s\n",
			stats.RunsCount, stats.Bankruptcies, humanize.Comma(stats.TotalRevenue), stats.LongestRun)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last played %s\n", humanize.Time(stats.LastPlayed))
		}
	}

	if flagRecentRuns <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRecentRuns)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-9s  %-8s  %-8s  %-10s  %-10s  %s\n", "End", "Ticks", "Time", "Cash", "Revenue", "Journal")
	for _, r := range runs {
		journal := r.Journal
		if journal == "" {
			journal = "-"
		}
		fmt.Printf("  %-9s  %-8d  %-8s  %-10s  %-10s  %s\n",
			r.Reason, r.Ticks, r.Duration(), "$"+humanize.Comma(r.FinalCash), "$"+humanize.Comma(r.Revenue), journal)
	}
}
