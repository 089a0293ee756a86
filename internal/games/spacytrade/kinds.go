package spacytrade

import (
	"github.com/vovakirdan/spacy-trade/internal/config"
	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Kind tags what a drifting entity is.
type Kind uint8

const (
	KindGold Kind = iota
	KindIron
	KindCopper
	KindCoal
	KindRock
)

// NumResources is the number of tradeable kinds (gold through coal).
const NumResources = 4

// Resources lists the tradeable kinds in harvest priority order.
var Resources = [NumResources]Kind{KindGold, KindIron, KindCopper, KindCoal}

var kindNames = [...]string{"gold", "iron", "copper", "coal", "rock"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsResource reports whether k can be harvested and traded.
func (k Kind) IsResource() bool {
	return k < NumResources
}

// ParseKind maps a name back to its kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// KindSpec is the per-kind record driving spawning, motion and harvesting.
type KindSpec struct {
	Kind            Kind
	Cap             int
	Shapes          []core.Vec2 // one entry per sub-shape spawned together
	VelocityDivisor float64
	StartPrice      uint32
	CrashDivisor    uint32
}

// buildSpecs derives the kind table from config. Rocks are included only
// when hazards are enabled.
func buildSpecs(cfg config.TradeConfig) []KindSpec {
	res := [NumResources]config.ResourceConfig{
		cfg.Resources.Gold,
		cfg.Resources.Iron,
		cfg.Resources.Copper,
		cfg.Resources.Coal,
	}

	specs := make([]KindSpec, 0, NumResources+1)
	for i, rc := range res {
		specs = append(specs, KindSpec{
			Kind:            Kind(i),
			Cap:             rc.Cap,
			Shapes:          []core.Vec2{{X: rc.Width, Y: rc.Height}},
			VelocityDivisor: rc.VelocityDivisor,
			StartPrice:      rc.StartPrice,
			CrashDivisor:    rc.CrashDivisor,
		})
	}

	if cfg.Hazards.Enabled {
		shapes := make([]core.Vec2, 0, len(cfg.Hazards.Shapes))
		for _, sh := range cfg.Hazards.Shapes {
			shapes = append(shapes, core.Vec2{X: sh.Width, Y: sh.Height})
		}
		specs = append(specs, KindSpec{
			Kind:            KindRock,
			Cap:             cfg.Hazards.Cap,
			Shapes:          shapes,
			VelocityDivisor: cfg.Hazards.VelocityDivisor,
		})
	}
	return specs
}
