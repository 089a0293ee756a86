// Package spacytrade implements the Spacy Trade simulation: a ship harvests
// drifting ore, hauls it to a base and sells it on a drifting market while
// upkeep drains the balance.
package spacytrade

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/spacy-trade/internal/config"
	"github.com/vovakirdan/spacy-trade/internal/core"
	"github.com/vovakirdan/spacy-trade/internal/registry"
)

// Screen layout in cells.
const (
	hudRows     = 2  // status line + rule
	footerRows  = 1  // key hints
	panelWidth  = 36 // trade panel on the right
	minArenaCol = 20 // below this the panel is hidden
)

// Variant selects which rule set a registered game runs.
type Variant struct {
	ID      string
	Title   string
	Blurb   string
	Hazards bool
	Offers  bool
}

var (
	// Latest rule set: rocks and barter offers.
	VariantStandard = Variant{
		ID:      "spacytrade",
		Title:   "Spacy Trade",
		Blurb:   "Ore, rocks and barter offers",
		Hazards: true,
		Offers:  true,
	}
	// Early rule set: ore only, fixed price rows.
	VariantClassic = Variant{
		ID:    "spacytrade_classic",
		Title: "Spacy Trade Classic",
		Blurb: "Ore only, fixed price list",
	}
)

// loaded is the config every Reset starts from. Configure replaces it;
// until then the default search order is used.
var (
	loadedMu sync.RWMutex
	loaded   *config.TradeConfig
)

// Configure loads the config at path (or the default search order when
// path is empty), validates it and applies the difficulty preset. Every
// later Reset uses the result. On error the previous config is kept.
func Configure(path, difficulty string) error {
	preset := config.ParseDifficulty(difficulty)
	if difficulty != "" && preset == "" {
		return fmt.Errorf("spacytrade: unknown difficulty %q", difficulty)
	}

	cfg, err := config.LoadTrade(path)
	if err != nil {
		return fmt.Errorf("spacytrade: %w", err)
	}
	if preset != "" {
		config.ApplyTradePreset(&cfg, preset)
	}

	loadedMu.Lock()
	loaded = &cfg
	loadedMu.Unlock()
	return nil
}

func currentConfig() config.TradeConfig {
	loadedMu.RLock()
	cfg := loaded
	loadedMu.RUnlock()
	if cfg != nil {
		c := *cfg
		c.Hazards.Shapes = slices.Clone(c.Hazards.Shapes)
		return c
	}
	// The search order skips broken files, so this cannot fail.
	def, _ := config.LoadTrade("")
	return def
}

// Game adapts a Session to the registry.Game interface: fixed-step ticks,
// discrete trade actions and rendering onto a core.Screen.
type Game struct {
	variant  Variant
	runtime  core.RuntimeConfig
	cfg      config.TradeConfig
	session  *Session
	paused   bool
	selected int // highlighted offer
	dt       float64
}

// New creates a game running the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a new session from the configured rules, sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWith(runtime, currentConfig())
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.TradeConfig) {
	if !g.variant.Hazards {
		cfg.Hazards.Enabled = false
	}
	if !g.variant.Offers {
		cfg.Offers.Enabled = false
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	g.runtime = runtime
	g.cfg = cfg
	g.dt = 1 / float64(runtime.TickRate)
	g.paused = false
	g.selected = 0
	g.session = NewSession(cfg, arenaFor(runtime, cfg.Arena), runtime.Seed)
}

// arenaFor derives the arena from the cells left for it on screen unless
// the config pins explicit dimensions.
func arenaFor(rt core.RuntimeConfig, ac config.ArenaConfig) Arena {
	cols, rows := arenaCells(rt.ScreenW, rt.ScreenH)
	a := Arena{
		W: float64(cols) * ac.UnitsPerCol,
		H: float64(rows) * ac.UnitsPerRow,
	}
	if ac.Width > 0 {
		a.W = ac.Width
	}
	if ac.Height > 0 {
		a.H = ac.Height
	}
	return a
}

// arenaCells returns the viewport size left after the HUD and panel.
func arenaCells(screenW, screenH int) (cols, rows int) {
	cols = screenW
	if screenW-panelWidth >= minArenaCol {
		cols = screenW - panelWidth
	}
	rows = core.Max(screenH-hudRows-footerRows, 1)
	return core.Max(cols, 1), rows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	if g.session.GameOver() {
		return core.StepResult{State: g.State(), Events: g.session.DrainEvents()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyTrades(in)
	g.session.Tick(g.dt, in.MoveIntent())
	g.clampSelection()

	return core.StepResult{State: g.State(), Events: g.session.DrainEvents()}
}

func (g *Game) applyTrades(in core.InputFrame) {
	for i, a := range core.SellActions {
		if in.Has(a) {
			g.session.Sell(Resources[i])
		}
	}
	for i, a := range core.BuyActions {
		if in.Has(a) {
			g.session.Buy(Resources[i])
		}
	}

	if g.session.offers == nil {
		return
	}
	if in.Has(core.ActionNextOffer) && g.session.offers.Len() > 0 {
		g.selected = (g.selected + 1) % g.session.offers.Len()
	}
	if in.Has(core.ActionAcceptOffer) {
		g.session.AcceptOffer(g.selected)
	}
	if in.Has(core.ActionRejectOffer) {
		g.session.RejectOffer(g.selected)
	}
}

func (g *Game) clampSelection() {
	n := 0
	if g.session.offers != nil {
		n = g.session.offers.Len()
	}
	if g.selected >= n {
		g.selected = core.Max(n-1, 0)
	}
}

// Session exposes the running session, mainly for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state. Score is lifetime trade revenue.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Stats().Revenue),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Summary reports the run for history storage.
func (g *Game) Summary() core.RunSummary {
	if g.session == nil {
		return core.RunSummary{}
	}
	st := g.session.Stats()
	reason := "quit"
	if g.session.GameOver() {
		reason = "bankrupt"
	}
	return core.RunSummary{
		Ticks:     g.session.TickCount(),
		FinalCash: g.session.Cash(),
		Revenue:   st.Revenue,
		Harvested: st.Harvested,
		Decayed:   st.Decayed,
		Reason:    reason,
	}
}

// Register both rule sets with the registry
func init() {
	for _, v := range []Variant{VariantStandard, VariantClassic} {
		registry.Register(registry.GameInfo{ID: v.ID, Title: v.Title, Blurb: v.Blurb}, func() registry.Game {
			return New(v)
		})
	}
}
