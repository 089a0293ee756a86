package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/spacy-trade/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds", 42 * time.Second, "0:42"},
		{"minutes", 3*time.Minute + 5*time.Second, "3:05"},
		{"truncates", 59*time.Second + 900*time.Millisecond, "0:59"},
		{"hour", 61 * time.Minute, "61:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestScoreboardRunTimeUsesRunTickRate(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		want     string
	}{
		{"default rate", 30, "2:00"},
		{"fast rate", 60, "1:00"},
		{"slow rate", 15, "4:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.SaveRun(storage.RunRecord{
				Variant:  "fake",
				Ticks:    3600,
				TickRate: tt.tickRate,
				Reason:   "quit",
			}); err != nil {
				t.Fatalf("SaveRun: %v", err)
			}
			runs, err := store.RecentRuns("fake", 1)
			if err != nil || len(runs) != 1 {
				t.Fatalf("RecentRuns = %v, %v", runs, err)
			}
			if got := formatDuration(runs[0].Duration()); got != tt.want {
				t.Errorf("run time = %q, want %q", got, tt.want)
			}
		})
	}
}
