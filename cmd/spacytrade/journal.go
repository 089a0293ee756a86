package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacy-trade/internal/core"
	"github.com/vovakirdan/spacy-trade/internal/journal"
)

var flagJournalKind string

var journalCmd = &cobra.Command{
	Use:   "journal <file>",
	Short: "Print a recorded event journal",
	Long: `Decode a run journal written with --journal and print its events.

Examples:
  spacytrade journal ~/.spacytrade/journal/spacytrade-<run>.jsonl.zst
  spacytrade journal run.jsonl.zst --kind sell`,
	Args: cobra.ExactArgs(1),
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().StringVar(&flagJournalKind, "kind", "", "Only print events of this kind")
}

func runJournal(cmd *cobra.Command, args []string) {
	h, events, err := journal.Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s  variant %s  seed %d  started %s\n",
		h.RunID, h.Variant, h.Seed, h.Started.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out)

	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.Kind]++
		if flagJournalKind != "" && ev.Kind != flagJournalKind {
			continue
		}
		fmt.Fprintln(out, formatEvent(ev))
	}

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Fprintln(out)
	for _, k := range kinds {
		fmt.Fprintf(out, "%-14s %d\n", k, counts[k])
	}
}

// formatEvent renders an event as "tick kind key=value ..." with sorted keys.
func formatEvent(ev core.Event) string {
	keys := make([]string, 0, len(ev.Fields))
	for k := range ev.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%8d  %-14s", ev.Tick, ev.Kind)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, ev.Fields[k])
	}
	return strings.TrimRight(b.String(), " ")
}
