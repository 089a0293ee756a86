package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last key event. Terminals report presses and repeats but no releases.
const DefaultHoldWindow = 150 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Sell    [4]key.Binding
	Buy     [4]key.Binding
	Next    key.Binding
	Accept  key.Binding
	Reject  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	sellKeys := [4]string{"1", "2", "3", "4"}
	buyKeys := [4]string{"!", "@", "#", "$"}
	kinds := [4]string{"gold", "iron", "copper", "coal"}

	km := GameKeyMap{
		Up:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/up", "thrust up")),
		Down:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/down", "thrust down")),
		Left:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/left", "thrust left")),
		Right:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/right", "thrust right")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next offer")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept offer")),
		Reject:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject offer")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for i := range kinds {
		km.Sell[i] = key.NewBinding(key.WithKeys(sellKeys[i]), key.WithHelp(sellKeys[i], "sell "+kinds[i]))
		km.Buy[i] = key.NewBinding(key.WithKeys(buyKeys[i]), key.WithHelp(buyKeys[i], "buy "+kinds[i]))
	}
	return km
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Next):
		return core.ActionNextOffer, false
	case key.Matches(msg, k.Accept):
		return core.ActionAcceptOffer, false
	case key.Matches(msg, k.Reject):
		return core.ActionRejectOffer, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	for i := range k.Sell {
		if key.Matches(msg, k.Sell[i]) {
			return core.SellActions[i], false
		}
		if key.Matches(msg, k.Buy[i]) {
			return core.BuyActions[i], false
		}
	}
	return core.ActionNone, false
}

// isMove reports whether a is one of the four thrust directions.
func isMove(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// HeldKeys tracks movement keys as held for a short window after each
// key event, and queues one-shot actions until the next frame.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	pending []core.Action
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records an action at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isMove(a) {
		h.pressed[a] = now
		return
	}
	h.pending = append(h.pending, a)
}

// Frame builds the input for the tick at time now: every movement key
// pressed within the window plus the queued one-shot actions, which are
// then cleared.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) <= h.window {
			in.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	for _, a := range h.pending {
		in.Set(a)
	}
	h.pending = h.pending[:0]
	return in
}

// Release drops every held key and queued action.
func (h *HeldKeys) Release() {
	clear(h.pressed)
	h.pending = h.pending[:0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
