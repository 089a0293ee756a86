package spacytrade

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/spacy-trade/internal/config"
)

// Market holds the unit price of every resource and evolves it with an
// asymmetric random walk: frequent small gains, rare larger crashes.
type Market struct {
	prices [NumResources]uint32
	crash  [NumResources]uint32
	cfg    config.MarketConfig
	rng    *rand.Rand
}

// NewMarket creates a market at the configured starting prices.
func NewMarket(rng *rand.Rand, specs []KindSpec, cfg config.MarketConfig) *Market {
	m := &Market{cfg: cfg, rng: rng}
	for _, spec := range specs {
		if !spec.Kind.IsResource() {
			continue
		}
		m.prices[spec.Kind] = max(spec.StartPrice, cfg.PriceFloor)
		m.crash[spec.Kind] = max(spec.CrashDivisor, 1)
	}
	return m
}

// Price returns the current unit price of k.
func (m *Market) Price(k Kind) uint32 {
	if !k.IsResource() {
		return 0
	}
	return m.prices[k]
}

// Prices returns a copy of the price table.
func (m *Market) Prices() [NumResources]uint32 {
	return m.prices
}

// Advance applies one timer fire to every price, in resource order.
// Each price gains price/f with probability GainChance, f uniform in
// [GainDivisorMin, GainDivisorMax); otherwise it drops by price/CrashDivisor.
// Prices never fall below PriceFloor and saturate at math.MaxUint32.
func (m *Market) Advance() {
	span := m.cfg.GainDivisorMax - m.cfg.GainDivisorMin
	for _, k := range Resources {
		p := m.prices[k]
		if m.rng.Float64() < m.cfg.GainChance {
			f := m.cfg.GainDivisorMin
			if span > 0 {
				f += m.rng.Intn(span)
			}
			p = uint32(min(uint64(p)+uint64(p)/uint64(f), math.MaxUint32))
		} else {
			p -= p / m.crash[k]
		}
		m.prices[k] = max(p, m.cfg.PriceFloor)
	}
}
