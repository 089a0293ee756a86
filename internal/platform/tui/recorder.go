package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacy-trade/internal/core"
	"github.com/vovakirdan/spacy-trade/internal/journal"
	"github.com/vovakirdan/spacy-trade/internal/registry"
	"github.com/vovakirdan/spacy-trade/internal/storage"
)

// Options are the platform settings shared by local play and SSH sessions.
type Options struct {
	Store      *storage.Store // nil disables scores and run history
	Logger     *log.Logger    // nil discards
	JournalDir string         // empty disables the event journal
	HoldWindow time.Duration  // movement key hold; 0 uses DefaultHoldWindow
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}

var discardLogger = log.New(io.Discard)

// runRecorder follows one run of a game: it logs and journals the events
// of each step and writes the score and run row once the run ends.
type runRecorder struct {
	opts     Options
	log      *log.Logger
	gameID   string
	runID    string
	seed     int64
	tickRate int
	journal  *journal.Writer
	done     bool
}

// startRun begins recording a run of game seeded with seed and stepped
// tickRate times per second.
func startRun(opts Options, game registry.Game, seed int64, tickRate int) *runRecorder {
	r := &runRecorder{
		opts:     opts,
		gameID:   game.ID(),
		runID:    storage.NewRunID(),
		seed:     seed,
		tickRate: tickRate,
	}
	r.log = opts.logger().With("run", r.runID[:8], "game", r.gameID)
	r.log.Info("run started", "seed", seed, "tick_rate", tickRate)

	if opts.JournalDir != "" {
		dir, err := storage.ExpandHome(opts.JournalDir)
		if err == nil {
			r.journal, err = journal.Create(dir, journal.Header{
				RunID:   r.runID,
				Variant: r.gameID,
				Seed:    seed,
				Started: time.Now().UTC(),
			})
		}
		if err != nil {
			r.log.Warn("journal disabled", "error", err)
		}
	}
	return r
}

// record logs and journals the events of one step.
func (r *runRecorder) record(events []core.Event) {
	if r == nil || len(events) == 0 {
		return
	}
	for _, ev := range events {
		kv := make([]any, 0, 2+2*len(ev.Fields))
		kv = append(kv, "tick", ev.Tick)
		for k, v := range ev.Fields {
			kv = append(kv, k, v)
		}
		r.log.Debug(ev.Kind, kv...)
	}
	if r.journal != nil {
		if err := r.journal.Write(events...); err != nil {
			r.log.Warn("journal write failed", "error", err)
			r.closeJournal()
		}
	}
}

// finish stores the score and run summary once. reason overrides the
// game's own reason when the run is abandoned.
func (r *runRecorder) finish(game registry.Game, reason string) {
	if r == nil || r.done {
		return
	}
	r.done = true

	state := game.State()
	var sum core.RunSummary
	if s, ok := game.(core.Summarizer); ok {
		sum = s.Summary()
	}
	if !state.GameOver && reason != "" {
		sum.Reason = reason
	}

	journalPath := ""
	if r.journal != nil {
		journalPath = r.journal.Path()
	}
	r.closeJournal()

	r.log.Info("run ended",
		"reason", sum.Reason,
		"ticks", sum.Ticks,
		"cash", sum.FinalCash,
		"revenue", sum.Revenue,
	)
	if sum.Ticks == 0 {
		return
	}

	store := r.opts.Store
	if store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := store.SaveScore(r.gameID, state.Score); err != nil {
			r.log.Warn("could not save score", "error", err)
		}
	}
	_, err := store.SaveRun(storage.RunRecord{
		RunID:     r.runID,
		Variant:   r.gameID,
		Seed:      r.seed,
		Ticks:     sum.Ticks,
		TickRate:  r.tickRate,
		FinalCash: sum.FinalCash,
		Revenue:   sum.Revenue,
		Harvested: sum.Harvested,
		Decayed:   sum.Decayed,
		Reason:    sum.Reason,
		Journal:   journalPath,
	})
	if err != nil {
		r.log.Warn("could not save run", "error", err)
	}
}

func (r *runRecorder) closeJournal() {
	if r.journal == nil {
		return
	}
	if err := r.journal.Close(); err != nil {
		r.log.Warn("journal close failed", "error", err)
	}
	r.journal = nil
}
