package spacytrade

// decay removes every drifter that has floated into the base, using the
// wider decay scale. Nothing is credited. Each removal goes through the
// store's existence check, so an entity harvested earlier in the same tick
// is never processed twice.
func (s *Session) decay() {
	base, ok := s.store.Get(s.base)
	if !ok {
		return
	}
	scale := s.cfg.Physics.DecayScale

	s.store.Each(func(id EntityID, e *Entity) bool {
		if e.Role != RoleDrifter || !Overlaps(base, e, scale) {
			return true
		}
		kind := e.Kind
		if s.store.Remove(id) {
			s.stats.Decayed++
			s.emit(EventDecay, map[string]any{"kind": kind.String()})
		}
		return true
	})
}
