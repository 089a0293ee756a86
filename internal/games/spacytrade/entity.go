package spacytrade

import "github.com/vovakirdan/spacy-trade/internal/core"

// Role separates the two singletons from the drifting population.
type Role uint8

const (
	RolePlayer Role = iota
	RoleBase
	RoleDrifter // resources and rocks
)

// Facing is the direction the ship's nose points.
type Facing uint8

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Entity is one row of the spatial store.
type Entity struct {
	Role        Role
	Kind        Kind // meaningful for RoleDrifter only
	Shape       int  // sub-shape index for rocks
	Pos         core.Vec2
	Vel         core.Vec2
	Size        core.Vec2 // unscaled bounding size
	AutoDespawn bool
	Facing      Facing
}

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation bumps on removal so stale
// IDs stop resolving. The zero ID never refers to a live entity.
type EntityID uint64

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) index() uint32      { return uint32(id) }
func (id EntityID) generation() uint32 { return uint32(id >> 32) }

type slot struct {
	gen    uint32
	alive  bool
	entity Entity
}

// Store owns every entity's geometry. Slots are reused through a free list,
// so iteration order depends only on the sequence of inserts and removals.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots: make([]slot, 0, 128),
		free:  make([]uint32, 0, 32),
	}
}

// Insert adds an entity and returns its fresh ID.
func (s *Store) Insert(e Entity) EntityID {
	s.live++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.alive = true
		sl.entity = e
		return newEntityID(idx, sl.gen)
	}
	idx := uint32(len(s.slots))
	s.slots = append(s.slots, slot{gen: 1, alive: true, entity: e})
	return newEntityID(idx, 1)
}

// Remove frees the entity. Removing a stale or unknown ID is a no-op
// and reports false.
func (s *Store) Remove(id EntityID) bool {
	if !s.Alive(id) {
		return false
	}
	sl := &s.slots[id.index()]
	sl.alive = false
	sl.gen++
	sl.entity = Entity{}
	s.free = append(s.free, id.index())
	s.live--
	return true
}

// Alive reports whether id still refers to a live entity.
func (s *Store) Alive(id EntityID) bool {
	idx := id.index()
	if int(idx) >= len(s.slots) {
		return false
	}
	sl := s.slots[idx]
	return sl.alive && sl.gen == id.generation()
}

// Get returns a pointer to the live entity for in-place updates.
// The pointer is invalidated by the next Insert.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	if !s.Alive(id) {
		return nil, false
	}
	return &s.slots[id.index()].entity, true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.live
}

// Each calls fn for every live entity in slot order until fn returns false.
// fn may remove entities (including the current one); entities inserted
// during the walk are not visited.
func (s *Store) Each(fn func(id EntityID, e *Entity) bool) {
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.alive {
			continue
		}
		if !fn(newEntityID(uint32(i), sl.gen), &sl.entity) {
			return
		}
	}
}

// CountKind returns the number of live drifters of kind k.
func (s *Store) CountKind(k Kind) int {
	n := 0
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive && sl.entity.Role == RoleDrifter && sl.entity.Kind == k {
			n++
		}
	}
	return n
}
