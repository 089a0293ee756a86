package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TradeConfig
	if err := yaml.Unmarshal(defaultTradeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	want := DefaultTradeConfig()

	if cfg.Physics != want.Physics {
		t.Errorf("physics: got %+v, want %+v", cfg.Physics, want.Physics)
	}
	if cfg.Resources != want.Resources {
		t.Errorf("resources: got %+v, want %+v", cfg.Resources, want.Resources)
	}
	if cfg.Market != want.Market || cfg.Upkeep != want.Upkeep || cfg.Offers != want.Offers {
		t.Error("market/upkeep/offers differ from hardcoded defaults")
	}
	if len(cfg.Hazards.Shapes) != len(want.Hazards.Shapes) {
		t.Errorf("hazard shapes: got %d, want %d", len(cfg.Hazards.Shapes), len(want.Hazards.Shapes))
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := Validate(DefaultTradeConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TradeConfig)
		want   string
	}{
		{"zero ship capacity", func(c *TradeConfig) { c.Ship.Capacity = 0 }, "invalid config"},
		{"zero crash divisor", func(c *TradeConfig) { c.Resources.Gold.CrashDivisor = 0 }, "invalid config"},
		{"gain chance above one", func(c *TradeConfig) { c.Market.GainChance = 1.5 }, "invalid config"},
		{"negative upkeep interval", func(c *TradeConfig) { c.Upkeep.Interval = -1 }, "invalid config"},
		{"gain divisor range empty", func(c *TradeConfig) { c.Market.GainDivisorMax = c.Market.GainDivisorMin }, "gain_divisor_max"},
		{"offer qty inverted", func(c *TradeConfig) { c.Offers.MinQty, c.Offers.MaxQty = 4, 2 }, "max_qty"},
		{"hazards without shapes", func(c *TradeConfig) { c.Hazards.Shapes = nil }, "without shapes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTradeConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadTradeFileYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "economy:\n  starting_cash: 9000\nupkeep:\n  interval: 10\n  cost: 250\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTrade(path)
	if err != nil {
		t.Fatalf("LoadTrade: %v", err)
	}
	if cfg.Economy.StartingCash != 9000 {
		t.Errorf("starting cash = %d, want 9000", cfg.Economy.StartingCash)
	}
	if cfg.Upkeep.Cost != 250 || cfg.Upkeep.Interval != 10 {
		t.Errorf("upkeep = %+v", cfg.Upkeep)
	}
	// Untouched sections keep their defaults
	if cfg.Ship.Capacity != 10 || cfg.Resources.Gold.StartPrice != 4200 {
		t.Errorf("defaults lost: ship=%+v gold=%+v", cfg.Ship, cfg.Resources.Gold)
	}
}

func TestLoadTradeFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[ship]
width = 14.0
height = 13.0
capacity = 20

[resources.coal]
cap = 5
width = 6.0
height = 6.0
velocity_divisor = 10000.0
start_price = 900
crash_divisor = 10
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTradeFile(path)
	if err != nil {
		t.Fatalf("LoadTradeFile: %v", err)
	}
	if cfg.Ship.Capacity != 20 {
		t.Errorf("ship capacity = %d, want 20", cfg.Ship.Capacity)
	}
	if cfg.Resources.Coal.Cap != 5 || cfg.Resources.Coal.StartPrice != 900 {
		t.Errorf("coal = %+v", cfg.Resources.Coal)
	}
	if cfg.Base.Capacity != 100 {
		t.Errorf("base capacity = %d, want default 100", cfg.Base.Capacity)
	}
}

func TestLoadTradeFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("base:\n  capacity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTradeFile(path); err == nil {
		t.Fatal("expected error for zero base capacity")
	}
}

func TestLoadTradeMissingCustomPath(t *testing.T) {
	_, err := LoadTrade(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit path")
	}
	if !strings.HasPrefix(err.Error(), "config: read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			want := DefaultTradeConfig()
			want.Economy.StartingCash = 777

			data, err := Encode(want, format)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			var got TradeConfig
			if err := Decode(data, format, &got); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Economy != want.Economy || got.Market != want.Market {
				t.Errorf("round trip mismatch: %+v vs %+v", got.Economy, want.Economy)
			}
			if err := Validate(got); err != nil {
				t.Errorf("round-tripped config invalid: %v", err)
			}
		})
	}
}

func TestApplyTradePreset(t *testing.T) {
	easy := DefaultTradeConfig()
	ApplyTradePreset(&easy, DifficultyEasy)
	hard := DefaultTradeConfig()
	ApplyTradePreset(&hard, DifficultyHard)
	normal := DefaultTradeConfig()
	ApplyTradePreset(&normal, DifficultyNormal)

	if easy.Economy.StartingCash <= normal.Economy.StartingCash {
		t.Error("easy should start with more cash than normal")
	}
	if hard.Upkeep.Cost <= normal.Upkeep.Cost {
		t.Error("hard should charge more upkeep than normal")
	}
	if normal.Economy.StartingCash != 500 {
		t.Errorf("normal preset should keep defaults, got cash %d", normal.Economy.StartingCash)
	}
	for _, c := range []TradeConfig{easy, normal, hard} {
		if err := Validate(c); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficulty("insane") != "" {
		t.Error("unknown preset should yield empty")
	}
}
