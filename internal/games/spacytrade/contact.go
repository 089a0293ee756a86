package spacytrade

import "github.com/vovakirdan/spacy-trade/internal/core"

// playerFrame resolves the ship's contacts for one tick. Checks run in a
// fixed priority order and the first one that applies ends the frame:
//
//	arena edge -> base -> rocks -> gold -> iron -> copper -> coal
//
// Only a frame with no contact adopts the intent as the new velocity.
func (s *Session) playerFrame(intent core.Vec2) {
	player, ok := s.store.Get(s.player)
	if !ok {
		return
	}
	if f, turned := facingFor(intent); turned {
		player.Facing = f
	}

	if s.edgeBlocked(player, intent) {
		return
	}
	if s.baseContact(player) {
		return
	}
	if s.hazardContact(player) {
		return
	}
	if s.harvestContact(player) {
		return
	}
	player.Vel = intent
}

// facingFor maps an intent to a facing. Vertical input wins.
func facingFor(intent core.Vec2) (Facing, bool) {
	switch {
	case intent.Y > 0:
		return FacingUp, true
	case intent.Y < 0:
		return FacingDown, true
	case intent.X < 0:
		return FacingLeft, true
	case intent.X > 0:
		return FacingRight, true
	}
	return 0, false
}

// edgeBlocked stops the ship on the axis where it is at the arena edge and
// still pushing outward.
func (s *Session) edgeBlocked(p *Entity, intent core.Vec2) bool {
	inset := s.cfg.Ship.Height / 2
	hw, hh := s.arena.HalfW()-inset, s.arena.HalfH()-inset

	switch {
	case p.Pos.X < -hw && intent.X < 0, p.Pos.X > hw && intent.X > 0:
		p.Vel.X = 0
		return true
	case p.Pos.Y < -hh && intent.Y < 0, p.Pos.Y > hh && intent.Y > 0:
		p.Vel.Y = 0
		return true
	}
	return false
}

// baseContact unloads the ship when it touches the base and pushes it back
// out. The unload is all-or-nothing.
func (s *Session) baseContact(p *Entity) bool {
	base, ok := s.store.Get(s.base)
	if !ok || !Overlaps(p, base, s.cfg.Physics.ContactScale) {
		return false
	}

	if s.mobile.Total() > 0 {
		carried := s.mobile.Counts
		if moved := unloadInto(&s.mobile, &s.depot); moved > 0 {
			s.stats.Unloaded += moved
			s.emit(EventUnload, map[string]any{
				"units":  moved,
				"gold":   carried[KindGold],
				"iron":   carried[KindIron],
				"copper": carried[KindCopper],
				"coal":   carried[KindCoal],
				"stored": s.depot.Total(),
			})
		}
	}
	p.Vel = p.Vel.Scale(-s.cfg.Physics.BaseBounce)
	return true
}

// hazardContact bounces the ship off the first rock it touches.
// A stationary ship is kicked diagonally down-left.
func (s *Session) hazardContact(p *Entity) bool {
	bounce := s.cfg.Physics.HazardBounce
	hit := false
	s.store.Each(func(_ EntityID, e *Entity) bool {
		if e.Role != RoleDrifter || e.Kind != KindRock {
			return true
		}
		if !Overlaps(p, e, s.cfg.Physics.ContactScale) {
			return true
		}
		if p.Vel.IsZero() {
			p.Vel = core.V(-bounce, -bounce)
		} else {
			p.Vel = p.Vel.Scale(-bounce)
		}
		hit = true
		return false
	})
	if hit {
		s.stats.HazardHits++
		s.emit(EventHazardHit, nil)
	}
	return hit
}

// harvestContact picks up the first touched resource, scanning kinds in
// priority order. Touching a resource with a full hold still ends the frame
// but leaves the resource in place.
func (s *Session) harvestContact(p *Entity) bool {
	for _, k := range Resources {
		target, found := s.firstTouching(p, k)
		if !found {
			continue
		}
		if canHarvest(&s.mobile) && s.store.Remove(target) {
			s.mobile.Add(k)
			s.stats.Harvested++
			s.emit(EventHarvest, map[string]any{"kind": k.String(), "hold": s.mobile.Total()})
		}
		return true
	}
	return false
}

func (s *Session) firstTouching(p *Entity, k Kind) (EntityID, bool) {
	var target EntityID
	found := false
	s.store.Each(func(id EntityID, e *Entity) bool {
		if e.Role == RoleDrifter && e.Kind == k && Overlaps(p, e, s.cfg.Physics.ContactScale) {
			target, found = id, true
			return false
		}
		return true
	})
	return target, found
}
