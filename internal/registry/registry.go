// Package registry keeps the playable game variants. Each variant registers
// a factory from an init function; the CLI, menus and SSH sessions look
// variants up by ID instead of importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Game is a fixed-step simulation driven by the platform. Implementations
// hold pure logic: no terminal, clock or storage access.
type Game interface {
	// ID is the stable variant name used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run from the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions held during that tick and
	// returns the resulting state plus anything worth logging.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Blurb string // one line for menus and listings
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics on an empty or duplicate ID, which
// can only come from a programming error in an init function.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the info of a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a registered variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
