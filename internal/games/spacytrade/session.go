package spacytrade

import (
	"math/rand"

	"github.com/vovakirdan/spacy-trade/internal/config"
	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Event kinds reported through DrainEvents.
const (
	EventHarvest       = "harvest"
	EventUnload        = "unload"
	EventHazardHit     = "hazard_hit"
	EventDecay         = "decay"
	EventMarketTick    = "market_tick"
	EventUpkeep        = "upkeep"
	EventSell          = "sell"
	EventBuy           = "buy"
	EventOfferPosted   = "offer_posted"
	EventOfferExpired  = "offer_expired"
	EventOfferAccepted = "offer_accepted"
	EventOfferRejected = "offer_rejected"
	EventGameOver      = "game_over"
)

// Stats are lifetime counters for one session.
type Stats struct {
	Harvested  int   // units picked up
	Unloaded   int   // units moved from ship to base
	Decayed    int   // drifters lost to the base
	Despawned  int   // drifters that left the arena
	HazardHits int   // rock bounces
	Revenue    int64 // cash received from sales and accepted offers
	Spent      int64 // cash paid for purchases
	UpkeepPaid int64
}

// Session is the complete mutable state of one run: the entity store, both
// holds, the balance, prices, offers and timers. Every rule mutates it
// through Tick or one of the trade methods; nothing else is shared.
type Session struct {
	cfg     config.TradeConfig
	arena   Arena
	specs   []KindSpec
	store   *Store
	spawner *Spawner
	market  *Market
	offers  *OfferBoard // nil when barter offers are disabled

	marketClock Timer
	upkeepClock Timer

	player EntityID
	base   EntityID
	mobile Hold
	depot  Hold
	cash   int64

	tick    int64
	elapsed float64
	over    bool
	stats   Stats
	events  []core.Event
}

// NewSession builds a fresh run. The base sits at the origin and the ship
// at the configured offset from it. All randomness derives from seed.
func NewSession(cfg config.TradeConfig, arena Arena, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	specs := buildSpecs(cfg)

	s := &Session{
		cfg:         cfg,
		arena:       arena,
		specs:       specs,
		store:       NewStore(),
		spawner:     NewSpawner(rng, specs),
		market:      NewMarket(rng, specs, cfg.Market),
		marketClock: NewTimer(cfg.Market.Interval),
		upkeepClock: NewTimer(cfg.Upkeep.Interval),
		mobile:      NewHold(cfg.Ship.Capacity),
		depot:       NewHold(cfg.Base.Capacity),
		cash:        cfg.Economy.StartingCash,
	}
	if cfg.Offers.Enabled && cfg.Offers.MaxActive > 0 {
		s.offers = NewOfferBoard(rng, cfg.Offers)
	}

	basePos := core.V(0, 0)
	s.base = s.store.Insert(Entity{
		Role: RoleBase,
		Pos:  basePos,
		Size: core.V(cfg.Base.Width, cfg.Base.Height),
	})
	s.player = s.store.Insert(Entity{
		Role:   RolePlayer,
		Pos:    basePos.Add(core.V(cfg.Ship.SpawnX, cfg.Ship.SpawnY)),
		Size:   core.V(cfg.Ship.Width, cfg.Ship.Height),
		Facing: FacingUp,
	})
	return s
}

// Tick advances the run by dt seconds with the given movement intent
// (components in {-1, 0, 1}). Order within a tick: motion, player contacts,
// decay, spawning, then the market, offer and upkeep clocks.
// A finished run ignores further ticks.
func (s *Session) Tick(dt float64, intent core.Vec2) {
	if s.over {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.tick++
	s.elapsed += dt

	s.stats.Despawned += Integrate(s.store, dt, s.arena, s.cfg.Physics)
	s.playerFrame(intent)
	s.decay()
	s.spawner.TopUp(s.store, s.arena)

	for n := s.marketClock.Advance(dt); n > 0; n-- {
		s.market.Advance()
		prices := s.market.Prices()
		s.emit(EventMarketTick, map[string]any{
			"gold":   prices[KindGold],
			"iron":   prices[KindIron],
			"copper": prices[KindCopper],
			"coal":   prices[KindCoal],
		})
	}

	if s.offers != nil {
		posted, expired := s.offers.Advance(dt, s.market.Prices())
		for _, o := range expired {
			s.emit(EventOfferExpired, offerFields(o))
		}
		for _, o := range posted {
			s.emit(EventOfferPosted, offerFields(o))
		}
	}

	for n := s.upkeepClock.Advance(dt); n > 0; n-- {
		s.cash -= s.cfg.Upkeep.Cost
		s.stats.UpkeepPaid += s.cfg.Upkeep.Cost
		s.emit(EventUpkeep, map[string]any{"cost": s.cfg.Upkeep.Cost, "cash": s.cash})
	}

	s.checkGameOver()
}

func (s *Session) checkGameOver() {
	if s.over || s.cash >= 0 {
		return
	}
	s.over = true
	s.emit(EventGameOver, map[string]any{"cash": s.cash, "revenue": s.stats.Revenue})
}

// GameOver reports whether the balance went negative.
func (s *Session) GameOver() bool { return s.over }

// Cash returns the current balance.
func (s *Session) Cash() int64 { return s.cash }

// Stats returns the lifetime counters.
func (s *Session) Stats() Stats { return s.stats }

// TickCount returns the number of ticks simulated.
func (s *Session) TickCount() int64 { return s.tick }

// Arena returns the session's arena.
func (s *Session) Arena() Arena { return s.arena }

// DrainEvents returns the events recorded since the last call.
func (s *Session) DrainEvents() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(kind string, fields map[string]any) {
	s.events = append(s.events, core.Event{Tick: s.tick, Kind: kind, Fields: fields})
}

func offerFields(o Offer) map[string]any {
	return map[string]any{
		"id":   o.ID,
		"kind": o.Kind.String(),
		"qty":  o.GiveQty,
		"cash": o.GetCash,
	}
}
