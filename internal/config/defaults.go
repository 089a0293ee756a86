package config

import (
	_ "embed"
)

//go:embed defaults/spacytrade.yaml
var defaultTradeYAML []byte

//go:embed defaults/spacytrade.schema.json
var tradeSchemaJSON string

// DefaultTradeConfig returns the built-in configuration.
// It matches defaults/spacytrade.yaml and is used when the embedded file fails to parse.
func DefaultTradeConfig() TradeConfig {
	ore := func(cap int, price, crash uint32) ResourceConfig {
		return ResourceConfig{
			Cap:             cap,
			Width:           6,
			Height:          6,
			VelocityDivisor: 10000,
			StartPrice:      price,
			CrashDivisor:    crash,
		}
	}

	return TradeConfig{
		Arena: ArenaConfig{
			UnitsPerCol: 10,
			UnitsPerRow: 20,
		},
		Physics: PhysicsConfig{
			BaseSpeed:      100,
			DiagonalFactor: 0.75,
			DespawnMargin:  30,
			ContactScale:   2,
			DecayScale:     4,
			HazardBounce:   8,
			BaseBounce:     2,
		},
		Ship: ShipConfig{
			Width:    14,
			Height:   13,
			SpawnX:   0,
			SpawnY:   -40,
			Capacity: 10,
		},
		Base: BaseConfig{
			Width:    30,
			Height:   20,
			Capacity: 100,
		},
		Resources: ResourcesConfig{
			Gold:   ore(1, 4200, 20),
			Iron:   ore(3, 500, 10),
			Copper: ore(3, 500, 10),
			Coal:   ore(3, 1200, 10),
		},
		Hazards: HazardConfig{
			Enabled:         true,
			Cap:             70,
			VelocityDivisor: 5000,
			Shapes: []ShapeConfig{
				{Width: 10, Height: 10},
				{Width: 16, Height: 8},
				{Width: 11, Height: 9},
				{Width: 6, Height: 5},
			},
		},
		Economy: EconomyConfig{
			StartingCash: 500,
		},
		Market: MarketConfig{
			Interval:       30,
			GainChance:     0.9,
			GainDivisorMin: 30,
			GainDivisorMax: 100,
			PriceFloor:     1,
		},
		Upkeep: UpkeepConfig{
			Interval: 30,
			Cost:     100,
		},
		Offers: OffersConfig{
			Enabled:   true,
			Interval:  15,
			MaxActive: 5,
			TTL:       60,
			MinQty:    1,
			MaxQty:    5,
			MinFactor: 0.85,
			MaxFactor: 1.25,
		},
	}
}
