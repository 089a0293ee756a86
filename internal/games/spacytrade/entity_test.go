package spacytrade

import (
	"testing"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

func TestStoreInsertRemove(t *testing.T) {
	s := NewStore()
	a := s.Insert(Entity{Role: RoleDrifter, Kind: KindGold})
	b := s.Insert(Entity{Role: RoleDrifter, Kind: KindIron})

	if !s.Alive(a) || !s.Alive(b) {
		t.Fatal("fresh entities should be alive")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	if !s.Remove(a) {
		t.Fatal("first removal should succeed")
	}
	if s.Alive(a) {
		t.Error("removed entity should not be alive")
	}
	if _, ok := s.Get(a); ok {
		t.Error("Get on removed entity should fail")
	}
	if s.Remove(a) {
		t.Error("double removal should be a no-op")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after removal, expected 1", s.Len())
	}
}

func TestStoreStaleIDAfterReuse(t *testing.T) {
	s := NewStore()
	a := s.Insert(Entity{Kind: KindGold})
	s.Remove(a)
	b := s.Insert(Entity{Kind: KindCoal})

	if a.index() != b.index() {
		t.Fatalf("expected slot reuse, got %d and %d", a.index(), b.index())
	}
	if a == b {
		t.Fatal("reused slot must get a new generation")
	}
	if s.Alive(a) {
		t.Error("stale ID should not resolve after slot reuse")
	}
	if s.Remove(a) {
		t.Error("removing a stale ID should not touch the new occupant")
	}
	e, ok := s.Get(b)
	if !ok || e.Kind != KindCoal {
		t.Errorf("new occupant lost: ok=%v entity=%+v", ok, e)
	}
}

func TestStoreZeroIDNeverAlive(t *testing.T) {
	s := NewStore()
	s.Insert(Entity{})
	if s.Alive(0) {
		t.Error("zero ID should never be alive")
	}
	if s.Alive(newEntityID(50, 1)) {
		t.Error("out-of-range ID should not be alive")
	}
}

func TestStoreGetMutatesInPlace(t *testing.T) {
	s := NewStore()
	id := s.Insert(Entity{Pos: core.V(1, 2)})
	e, _ := s.Get(id)
	e.Pos = core.V(5, 6)

	e2, _ := s.Get(id)
	if e2.Pos != core.V(5, 6) {
		t.Errorf("Pos = %+v, expected {5 6}", e2.Pos)
	}
}

func TestStoreEachOrderAndRemoval(t *testing.T) {
	s := NewStore()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, s.Insert(Entity{Shape: i}))
	}

	var seen []int
	s.Each(func(id EntityID, e *Entity) bool {
		seen = append(seen, e.Shape)
		if e.Shape%2 == 0 {
			s.Remove(id)
		}
		return true
	})
	if len(seen) != 5 {
		t.Fatalf("visited %d entities, expected 5", len(seen))
	}
	for i, v := range seen {
		if v != i {
			t.Errorf("visit %d saw shape %d, expected slot order", i, v)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after removing evens, expected 2", s.Len())
	}
	if !s.Alive(ids[1]) || !s.Alive(ids[3]) {
		t.Error("odd entities should survive")
	}
}

func TestStoreEachStops(t *testing.T) {
	s := NewStore()
	for i := 0; i < 4; i++ {
		s.Insert(Entity{})
	}
	calls := 0
	s.Each(func(EntityID, *Entity) bool {
		calls++
		return calls < 2
	})
	if calls != 2 {
		t.Errorf("Each made %d calls, expected 2", calls)
	}
}

func TestStoreCountKind(t *testing.T) {
	s := NewStore()
	s.Insert(Entity{Role: RoleBase})
	s.Insert(Entity{Role: RolePlayer})
	s.Insert(Entity{Role: RoleDrifter, Kind: KindIron})
	s.Insert(Entity{Role: RoleDrifter, Kind: KindIron})
	rock := s.Insert(Entity{Role: RoleDrifter, Kind: KindRock})

	if got := s.CountKind(KindIron); got != 2 {
		t.Errorf("CountKind(iron) = %d, expected 2", got)
	}
	// Base and player carry the zero Kind (gold) but are not drifters
	if got := s.CountKind(KindGold); got != 0 {
		t.Errorf("CountKind(gold) = %d, expected 0", got)
	}
	s.Remove(rock)
	if got := s.CountKind(KindRock); got != 0 {
		t.Errorf("CountKind(rock) = %d after removal, expected 0", got)
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range []Kind{KindGold, KindIron, KindCopper, KindCoal, KindRock} {
		back, ok := ParseKind(k.String())
		if !ok || back != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), back, ok)
		}
	}
	if KindRock.IsResource() {
		t.Error("rocks are not tradeable")
	}
	if _, ok := ParseKind("diamond"); ok {
		t.Error("unknown kind should not parse")
	}
}
