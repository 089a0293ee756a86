package spacytrade

// Sell converts one unit of k from the base store into cash at the current
// price. It is a no-op when the base holds none or the run is over.
func (s *Session) Sell(k Kind) bool {
	if s.over || !s.depot.Take(k, 1) {
		return false
	}
	price := int64(s.market.Price(k))
	s.cash += price
	s.stats.Revenue += price
	s.emit(EventSell, map[string]any{"kind": k.String(), "price": price, "cash": s.cash})
	return true
}

// Buy purchases one unit of k into the base store at the current price.
// It is a no-op without enough cash or base room.
func (s *Session) Buy(k Kind) bool {
	if s.over || !k.IsResource() {
		return false
	}
	price := int64(s.market.Price(k))
	if s.cash < price || !s.depot.HasRoom(1) {
		return false
	}
	s.cash -= price
	s.depot.Add(k)
	s.stats.Spent += price
	s.emit(EventBuy, map[string]any{"kind": k.String(), "price": price, "cash": s.cash})
	return true
}

// AcceptOffer fills the barter offer at index i from the base store.
// It is a no-op if the index is unknown or stock is short.
func (s *Session) AcceptOffer(i int) bool {
	if s.over || s.offers == nil {
		return false
	}
	o, ok := s.offers.At(i)
	if !ok || s.depot.Count(o.Kind) < o.GiveQty {
		return false
	}
	s.depot.Take(o.Kind, o.GiveQty)
	s.offers.Remove(i)
	s.cash += o.GetCash
	s.stats.Revenue += o.GetCash
	s.emit(EventOfferAccepted, offerFields(o))
	return true
}

// RejectOffer withdraws the barter offer at index i.
func (s *Session) RejectOffer(i int) bool {
	if s.over || s.offers == nil {
		return false
	}
	o, ok := s.offers.Remove(i)
	if !ok {
		return false
	}
	s.emit(EventOfferRejected, offerFields(o))
	return true
}
