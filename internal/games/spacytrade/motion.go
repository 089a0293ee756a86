package spacytrade

import (
	"github.com/vovakirdan/spacy-trade/internal/config"
	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Arena is the playable region, centered on the origin.
type Arena struct {
	W, H float64
}

// HalfW returns half the arena width.
func (a Arena) HalfW() float64 { return a.W / 2 }

// HalfH returns half the arena height.
func (a Arena) HalfH() float64 { return a.H / 2 }

// Displacement returns how far an entity with velocity vel travels in dt.
// Moving on both axes at once is slowed by the diagonal factor.
func Displacement(vel core.Vec2, dt float64, phys config.PhysicsConfig) core.Vec2 {
	k := dt * phys.BaseSpeed
	if vel.X != 0 && vel.Y != 0 {
		k *= phys.DiagonalFactor
	}
	return vel.Scale(k)
}

// Integrate moves every entity by its velocity, then removes auto-despawning
// entities that left the arena by more than the despawn margin. It returns
// the number of entities removed.
func Integrate(s *Store, dt float64, arena Arena, phys config.PhysicsConfig) int {
	limitX := arena.HalfW() + phys.DespawnMargin
	limitY := arena.HalfH() + phys.DespawnMargin

	removed := 0
	s.Each(func(id EntityID, e *Entity) bool {
		if !e.Vel.IsZero() {
			e.Pos = e.Pos.Add(Displacement(e.Vel, dt, phys))
		}
		if e.AutoDespawn && (core.AbsF(e.Pos.X) > limitX || core.AbsF(e.Pos.Y) > limitY) {
			s.Remove(id)
			removed++
		}
		return true
	})
	return removed
}
