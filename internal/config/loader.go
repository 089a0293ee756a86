package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const tradeFile = "spacytrade"

// LoadTrade loads the simulation configuration.
// Search order: customPath -> ~/.spacytrade/configs/spacytrade.{yaml,toml} ->
// ./configs/spacytrade.{yaml,toml} -> embedded default.
// Only an explicit customPath can produce an error; broken files found while
// searching are skipped.
func LoadTrade(customPath string) (TradeConfig, error) {
	if customPath != "" {
		return LoadTradeFile(customPath)
	}

	for _, dir := range searchDirs() {
		for _, ext := range []string{".yaml", ".yml", ".toml"} {
			if cfg, err := LoadTradeFile(filepath.Join(dir, tradeFile+ext)); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultTradeConfig()
	if err := yaml.Unmarshal(defaultTradeYAML, &cfg); err != nil {
		return DefaultTradeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTradeFile reads, decodes and validates a single config file.
// Fields absent from the file keep their default values.
func LoadTradeFile(path string) (TradeConfig, error) {
	cfg := DefaultTradeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data in the given format into cfg.
func Decode(data []byte, format Format, cfg *TradeConfig) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Encode writes cfg in the given format.
func Encode(cfg TradeConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func tradeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("spacytrade.schema.json", tradeSchemaJSON)
	})
	return schema, schemaErr
}

// Validate checks cfg against the embedded JSON Schema plus the cross-field
// rules a schema cannot express.
func Validate(cfg TradeConfig) error {
	s, err := tradeSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode for validation: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode for validation: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Market.GainDivisorMax <= cfg.Market.GainDivisorMin {
		return fmt.Errorf("invalid config: market.gain_divisor_max (%d) must exceed gain_divisor_min (%d)",
			cfg.Market.GainDivisorMax, cfg.Market.GainDivisorMin)
	}
	if cfg.Offers.MaxQty < cfg.Offers.MinQty {
		return fmt.Errorf("invalid config: offers.max_qty (%d) below min_qty (%d)",
			cfg.Offers.MaxQty, cfg.Offers.MinQty)
	}
	if cfg.Offers.MaxFactor < cfg.Offers.MinFactor {
		return fmt.Errorf("invalid config: offers.max_factor (%g) below min_factor (%g)",
			cfg.Offers.MaxFactor, cfg.Offers.MinFactor)
	}
	if cfg.Hazards.Enabled && len(cfg.Hazards.Shapes) == 0 {
		return fmt.Errorf("invalid config: hazards enabled without shapes")
	}
	return nil
}

// searchDirs returns the user and local config directories in lookup order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".spacytrade", "configs"))
	}
	return append(dirs, "configs")
}
