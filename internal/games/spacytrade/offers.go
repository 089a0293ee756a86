package spacytrade

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/spacy-trade/internal/config"
)

// Offer is a standing proposal to buy GiveQty units of Kind from the base
// store for GetCash dollars.
type Offer struct {
	ID        uint64
	Kind      Kind
	GiveQty   int
	GetCash   int64
	ExpiresIn float64 // seconds left before the offer is withdrawn
}

// Title renders the offer the way the trade panel shows it.
func (o Offer) Title() string {
	return tradeTitle(o.GiveQty, o.Kind, o.GetCash)
}

func tradeTitle(qty int, k Kind, cash int64) string {
	return fmt.Sprintf("trade %d %s for $%s", qty, k, humanize.Comma(cash))
}

// OfferBoard is a bounded queue of barter offers. New offers are appended
// on a timer while below MaxActive; offers leave by acceptance, rejection
// or expiry.
type OfferBoard struct {
	cfg    config.OffersConfig
	rng    *rand.Rand
	clock  Timer
	offers []Offer
	nextID uint64
}

// NewOfferBoard creates an empty board.
func NewOfferBoard(rng *rand.Rand, cfg config.OffersConfig) *OfferBoard {
	return &OfferBoard{
		cfg:    cfg,
		rng:    rng,
		clock:  NewTimer(cfg.Interval),
		offers: make([]Offer, 0, cfg.MaxActive),
	}
}

// Offers returns a copy of the active offers, oldest first.
func (b *OfferBoard) Offers() []Offer {
	out := make([]Offer, len(b.offers))
	copy(out, b.offers)
	return out
}

// Len returns the number of active offers.
func (b *OfferBoard) Len() int {
	return len(b.offers)
}

// At returns the offer at index i.
func (b *OfferBoard) At(i int) (Offer, bool) {
	if i < 0 || i >= len(b.offers) {
		return Offer{}, false
	}
	return b.offers[i], true
}

// Remove drops the offer at index i.
func (b *OfferBoard) Remove(i int) (Offer, bool) {
	o, ok := b.At(i)
	if !ok {
		return Offer{}, false
	}
	b.offers = append(b.offers[:i], b.offers[i+1:]...)
	return o, true
}

// Advance ages every offer by dt, withdraws the expired ones, then lets the
// generator post new offers priced off the current table.
func (b *OfferBoard) Advance(dt float64, prices [NumResources]uint32) (posted, expired []Offer) {
	kept := b.offers[:0]
	for _, o := range b.offers {
		o.ExpiresIn -= dt
		if o.ExpiresIn <= 0 {
			expired = append(expired, o)
			continue
		}
		kept = append(kept, o)
	}
	b.offers = kept

	for n := b.clock.Advance(dt); n > 0; n-- {
		if len(b.offers) >= b.cfg.MaxActive {
			continue
		}
		o := b.generate(prices)
		b.offers = append(b.offers, o)
		posted = append(posted, o)
	}
	return posted, expired
}

// generate draws a kind, a quantity and a premium or discount on the
// current market value.
func (b *OfferBoard) generate(prices [NumResources]uint32) Offer {
	k := Resources[b.rng.Intn(NumResources)]
	qty := b.cfg.MinQty
	if span := b.cfg.MaxQty - b.cfg.MinQty; span > 0 {
		qty += b.rng.Intn(span + 1)
	}
	factor := b.cfg.MinFactor + b.rng.Float64()*(b.cfg.MaxFactor-b.cfg.MinFactor)
	cash := int64(math.Round(float64(qty) * float64(prices[k]) * factor))

	b.nextID++
	return Offer{
		ID:        b.nextID,
		Kind:      k,
		GiveQty:   qty,
		GetCash:   max(cash, 1),
		ExpiresIn: b.cfg.TTL,
	}
}
