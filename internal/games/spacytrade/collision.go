package spacytrade

import "github.com/vovakirdan/spacy-trade/internal/core"

// Overlaps reports whether the bounding boxes of a and b intersect when both
// are scaled by scale. Each box is centered on the entity with half-extent
// size*scale/2. The test is symmetric and has no side effects.
func Overlaps(a, b *Entity, scale float64) bool {
	return a.box(scale).Overlaps(b.box(scale))
}

func (e *Entity) box(scale float64) core.Box {
	return core.BoxAt(e.Pos, e.Size, scale)
}
