package spacytrade

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trade.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func resetConfigured(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		loadedMu.Lock()
		loaded = nil
		loadedMu.Unlock()
	})
}

func TestConfigureUsedByReset(t *testing.T) {
	resetConfigured(t)
	path := writeConfig(t, "economy:\n  starting_cash: 9000\n")

	if err := Configure(path, ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	g := New(VariantStandard)
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 1})
	if g.Session().Cash() != 9000 {
		t.Errorf("cash = %d, expected 9000 from the config file", g.Session().Cash())
	}
}

func TestConfigureRejectsInvalid(t *testing.T) {
	resetConfigured(t)
	good := writeConfig(t, "economy:\n  starting_cash: 9000\n")
	if err := Configure(good, ""); err != nil {
		t.Fatalf("Configure(good): %v", err)
	}

	tests := []struct {
		name       string
		path       string
		difficulty string
		wantErr    string
	}{
		{
			name:    "schema violation",
			path:    writeConfig(t, "economy:\n  starting_cash: 1234\nphysics:\n  base_speed: -5\n"),
			wantErr: "base_speed",
		},
		{
			name:    "missing file",
			path:    filepath.Join(t.TempDir(), "absent.yaml"),
			wantErr: "absent.yaml",
		},
		{
			name:       "unknown difficulty",
			path:       good,
			difficulty: "brutal",
			wantErr:    "brutal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configure(tt.path, tt.difficulty)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Configure() error = %v, expected it to mention %q", err, tt.wantErr)
			}

			// A failed Configure keeps the last good config.
			g := New(VariantStandard)
			g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 1})
			if g.Session().Cash() != 9000 {
				t.Errorf("cash = %d, expected the previous 9000", g.Session().Cash())
			}
		})
	}
}

func TestConfigureAppliesDifficulty(t *testing.T) {
	resetConfigured(t)
	if err := Configure(writeConfig(t, "economy:\n  starting_cash: 700\n"), "easy"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if cfg := currentConfig(); cfg.Economy.StartingCash != 1000 {
		t.Errorf("starting cash = %d, expected the easy preset's 1000", cfg.Economy.StartingCash)
	}
}
