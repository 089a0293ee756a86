package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/spacy-trade/internal/core"
	"github.com/vovakirdan/spacy-trade/internal/games/spacytrade"
	"github.com/vovakirdan/spacy-trade/internal/registry"
)

func setGameFlags(t *testing.T, path, difficulty string) {
	t.Helper()
	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = path, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
		//nolint:errcheck // Restores the default search order
		spacytrade.Configure("", "")
	})
}

func TestApplyGameFlagsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "economy:\n  starting_cash: 9000\nphysics:\n  base_speed: -5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		difficulty string
		want       string
	}{
		{"schema violation", path, "", "base_speed"},
		{"missing file", filepath.Join(t.TempDir(), "nope.toml"), "", "nope.toml"},
		{"unknown difficulty", "", "insane", "insane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setGameFlags(t, tt.path, tt.difficulty)
			err := applyGameFlags()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestApplyGameFlagsValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trade.toml")
	if err := os.WriteFile(path, []byte("[economy]\nstarting_cash = 2500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setGameFlags(t, path, "normal")

	if err := applyGameFlags(); err != nil {
		t.Fatalf("applyGameFlags: %v", err)
	}

	game, err := registry.Create(defaultVariant)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	game.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 1})
	st, ok := game.(*spacytrade.Game)
	if !ok {
		t.Fatalf("game is %T", game)
	}
	if cash := st.Session().Cash(); cash != 2500 {
		t.Errorf("cash = %d, expected 2500 from the config file", cash)
	}
}
