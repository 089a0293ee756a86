package spacytrade

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"lukechampine.com/blake3"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

// EntityView is the display-facing copy of one entity.
type EntityView struct {
	Role   Role
	Kind   Kind
	Shape  int
	Pos    core.Vec2
	Size   core.Vec2
	Facing Facing
}

// Snapshot is a read-only copy of everything the display layer needs.
// It shares no memory with the session.
type Snapshot struct {
	Tick    int64
	Elapsed float64

	Mobile    [NumResources]int
	MobileCap int
	Base      [NumResources]int
	BaseCap   int

	Cash     int64
	Prices   [NumResources]uint32
	Offers   []Offer
	GameOver bool
	Stats    Stats

	NextMarketIn float64
	NextUpkeepIn float64

	Arena    Arena
	Entities []EntityView // store order
}

// MobileTotal returns the units carried by the ship.
func (s Snapshot) MobileTotal() int { return sum(s.Mobile) }

// BaseTotal returns the units in the base store.
func (s Snapshot) BaseTotal() int { return sum(s.Base) }

// PriceTitles returns the fixed one-unit trade rows, one per resource.
func (s Snapshot) PriceTitles() [NumResources]string {
	var out [NumResources]string
	for _, k := range Resources {
		out[k] = tradeTitle(1, k, int64(s.Prices[k]))
	}
	return out
}

func sum(a [NumResources]int) int {
	t := 0
	for _, v := range a {
		t += v
	}
	return t
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.tick,
		Elapsed:      s.elapsed,
		Mobile:       s.mobile.Counts,
		MobileCap:    s.mobile.Capacity,
		Base:         s.depot.Counts,
		BaseCap:      s.depot.Capacity,
		Cash:         s.cash,
		Prices:       s.market.Prices(),
		GameOver:     s.over,
		Stats:        s.stats,
		NextMarketIn: s.marketClock.Remaining(),
		NextUpkeepIn: s.upkeepClock.Remaining(),
		Arena:        s.arena,
		Entities:     make([]EntityView, 0, s.store.Len()),
	}
	if s.offers != nil {
		snap.Offers = s.offers.Offers()
	}
	s.store.Each(func(_ EntityID, e *Entity) bool {
		snap.Entities = append(snap.Entities, EntityView{
			Role:   e.Role,
			Kind:   e.Kind,
			Shape:  e.Shape,
			Pos:    e.Pos,
			Size:   e.Size,
			Facing: e.Facing,
		})
		return true
	})
	return snap
}

// Digest returns a BLAKE3 hash of the snapshot's simulation-relevant fields.
// Two runs with the same seed, config and inputs produce equal digests.
func (s Snapshot) Digest() string {
	buf := make([]byte, 0, 256+len(s.Entities)*48)
	u64 := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f64 := func(v float64) { u64(math.Float64bits(v)) }

	u64(uint64(s.Tick))
	u64(uint64(s.Cash))
	for i := 0; i < NumResources; i++ {
		u64(uint64(s.Mobile[i]))
		u64(uint64(s.Base[i]))
		u64(uint64(s.Prices[i]))
	}
	if s.GameOver {
		u64(1)
	} else {
		u64(0)
	}
	for _, o := range s.Offers {
		u64(o.ID)
		u64(uint64(o.Kind))
		u64(uint64(o.GiveQty))
		u64(uint64(o.GetCash))
		f64(o.ExpiresIn)
	}
	for _, e := range s.Entities {
		u64(uint64(e.Role)<<16 | uint64(e.Kind)<<8 | uint64(e.Facing))
		f64(e.Pos.X)
		f64(e.Pos.Y)
	}

	digest := blake3.Sum256(buf)
	return hex.EncodeToString(digest[:])
}
