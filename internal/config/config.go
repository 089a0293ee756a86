// Package config provides YAML/TOML-based simulation configuration loading,
// schema validation and difficulty presets.
package config

// TradeConfig contains all tunables of the trading simulation.
// Distances are arena units, durations are seconds, money is whole dollars.
type TradeConfig struct {
	Arena     ArenaConfig     `yaml:"arena" toml:"arena" json:"arena"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics" json:"physics"`
	Ship      ShipConfig      `yaml:"ship" toml:"ship" json:"ship"`
	Base      BaseConfig      `yaml:"base" toml:"base" json:"base"`
	Resources ResourcesConfig `yaml:"resources" toml:"resources" json:"resources"`
	Hazards   HazardConfig    `yaml:"hazards" toml:"hazards" json:"hazards"`
	Economy   EconomyConfig   `yaml:"economy" toml:"economy" json:"economy"`
	Market    MarketConfig    `yaml:"market" toml:"market" json:"market"`
	Upkeep    UpkeepConfig    `yaml:"upkeep" toml:"upkeep" json:"upkeep"`
	Offers    OffersConfig    `yaml:"offers" toml:"offers" json:"offers"`
}

// ArenaConfig maps terminal cells to arena units.
// Width/Height of zero derive the arena from the viewport.
type ArenaConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col" toml:"units_per_col" json:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row" toml:"units_per_row" json:"units_per_row"`
	Width       float64 `yaml:"width" toml:"width" json:"width"`
	Height      float64 `yaml:"height" toml:"height" json:"height"`
}

// PhysicsConfig defines motion and collision parameters.
type PhysicsConfig struct {
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed" json:"base_speed"`
	DiagonalFactor float64 `yaml:"diagonal_factor" toml:"diagonal_factor" json:"diagonal_factor"`
	DespawnMargin  float64 `yaml:"despawn_margin" toml:"despawn_margin" json:"despawn_margin"`
	ContactScale   float64 `yaml:"contact_scale" toml:"contact_scale" json:"contact_scale"`
	DecayScale     float64 `yaml:"decay_scale" toml:"decay_scale" json:"decay_scale"`
	HazardBounce   float64 `yaml:"hazard_bounce" toml:"hazard_bounce" json:"hazard_bounce"`
	BaseBounce     float64 `yaml:"base_bounce" toml:"base_bounce" json:"base_bounce"`
}

// ShipConfig defines the player craft.
type ShipConfig struct {
	Width    float64 `yaml:"width" toml:"width" json:"width"`
	Height   float64 `yaml:"height" toml:"height" json:"height"`
	SpawnX   float64 `yaml:"spawn_x" toml:"spawn_x" json:"spawn_x"` // offset from the base
	SpawnY   float64 `yaml:"spawn_y" toml:"spawn_y" json:"spawn_y"`
	Capacity int     `yaml:"capacity" toml:"capacity" json:"capacity"`
}

// BaseConfig defines the depot.
type BaseConfig struct {
	Width    float64 `yaml:"width" toml:"width" json:"width"`
	Height   float64 `yaml:"height" toml:"height" json:"height"`
	Capacity int     `yaml:"capacity" toml:"capacity" json:"capacity"`
}

// ResourceConfig describes one harvestable kind.
type ResourceConfig struct {
	Cap             int     `yaml:"cap" toml:"cap" json:"cap"`
	Width           float64 `yaml:"width" toml:"width" json:"width"`
	Height          float64 `yaml:"height" toml:"height" json:"height"`
	VelocityDivisor float64 `yaml:"velocity_divisor" toml:"velocity_divisor" json:"velocity_divisor"`
	StartPrice      uint32  `yaml:"start_price" toml:"start_price" json:"start_price"`
	CrashDivisor    uint32  `yaml:"crash_divisor" toml:"crash_divisor" json:"crash_divisor"`
}

// ResourcesConfig lists the four harvestable kinds.
type ResourcesConfig struct {
	Gold   ResourceConfig `yaml:"gold" toml:"gold" json:"gold"`
	Iron   ResourceConfig `yaml:"iron" toml:"iron" json:"iron"`
	Copper ResourceConfig `yaml:"copper" toml:"copper" json:"copper"`
	Coal   ResourceConfig `yaml:"coal" toml:"coal" json:"coal"`
}

// HazardConfig describes drifting rocks.
type HazardConfig struct {
	Enabled         bool          `yaml:"enabled" toml:"enabled" json:"enabled"`
	Cap             int           `yaml:"cap" toml:"cap" json:"cap"`
	VelocityDivisor float64       `yaml:"velocity_divisor" toml:"velocity_divisor" json:"velocity_divisor"`
	Shapes          []ShapeConfig `yaml:"shapes" toml:"shapes" json:"shapes"`
}

// ShapeConfig is the bounding size of one rock sub-shape.
type ShapeConfig struct {
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
}

// EconomyConfig defines the opening balance.
type EconomyConfig struct {
	StartingCash int64 `yaml:"starting_cash" toml:"starting_cash" json:"starting_cash"`
}

// MarketConfig defines the price random walk.
type MarketConfig struct {
	Interval       float64 `yaml:"interval" toml:"interval" json:"interval"`
	GainChance     float64 `yaml:"gain_chance" toml:"gain_chance" json:"gain_chance"`
	GainDivisorMin int     `yaml:"gain_divisor_min" toml:"gain_divisor_min" json:"gain_divisor_min"`
	GainDivisorMax int     `yaml:"gain_divisor_max" toml:"gain_divisor_max" json:"gain_divisor_max"` // exclusive
	PriceFloor     uint32  `yaml:"price_floor" toml:"price_floor" json:"price_floor"`
}

// UpkeepConfig defines the maintenance charge.
type UpkeepConfig struct {
	Interval float64 `yaml:"interval" toml:"interval" json:"interval"`
	Cost     int64   `yaml:"cost" toml:"cost" json:"cost"`
}

// OffersConfig defines the barter offer generator.
type OffersConfig struct {
	Enabled   bool    `yaml:"enabled" toml:"enabled" json:"enabled"`
	Interval  float64 `yaml:"interval" toml:"interval" json:"interval"`
	MaxActive int     `yaml:"max_active" toml:"max_active" json:"max_active"`
	TTL       float64 `yaml:"ttl" toml:"ttl" json:"ttl"`
	MinQty    int     `yaml:"min_qty" toml:"min_qty" json:"min_qty"`
	MaxQty    int     `yaml:"max_qty" toml:"max_qty" json:"max_qty"`
	MinFactor float64 `yaml:"min_factor" toml:"min_factor" json:"min_factor"`
	MaxFactor float64 `yaml:"max_factor" toml:"max_factor" json:"max_factor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyTradePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyTradePreset(cfg *TradeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartingCash = 1000
		cfg.Upkeep.Cost = 50
		cfg.Ship.Capacity = 15
	case DifficultyHard:
		cfg.Economy.StartingCash = 250
		cfg.Upkeep.Cost = 150
		cfg.Upkeep.Interval = 20
		cfg.Ship.Capacity = 8
	}
}
