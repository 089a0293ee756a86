package spacytrade

import (
	"math/rand"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Spawner tops up drifter populations to their caps.
type Spawner struct {
	rng   *rand.Rand
	specs []KindSpec
}

// NewSpawner creates a spawner over the given kind table.
func NewSpawner(rng *rand.Rand, specs []KindSpec) *Spawner {
	return &Spawner{rng: rng, specs: specs}
}

// TopUp spawns, for each kind whose live count is below its cap, one batch:
// a single entity, or one of every sub-shape for multi-shape kinds.
// Positions are uniform over the whole arena and velocity is position over
// the kind's divisor, so everything drifts away from the origin.
// Returns the entities created, in spawn order.
func (sp *Spawner) TopUp(s *Store, arena Arena) []EntityID {
	var spawned []EntityID
	for i := range sp.specs {
		spec := &sp.specs[i]
		if s.CountKind(spec.Kind) >= spec.Cap {
			continue
		}
		for shape, size := range spec.Shapes {
			pos := core.V(
				sp.rng.Float64()*arena.W-arena.HalfW(),
				sp.rng.Float64()*arena.H-arena.HalfH(),
			)
			id := s.Insert(Entity{
				Role:        RoleDrifter,
				Kind:        spec.Kind,
				Shape:       shape,
				Pos:         pos,
				Vel:         pos.Scale(1 / spec.VelocityDivisor),
				Size:        size,
				AutoDespawn: true,
			})
			spawned = append(spawned, id)
		}
	}
	return spawned
}
