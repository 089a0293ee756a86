package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust up
	ActionDown           // S, Down arrow - thrust down
	ActionLeft           // A, Left arrow - thrust left
	ActionRight          // D, Right arrow - thrust right
	ActionSell1          // 1..4 - sell one unit of gold, iron, copper, coal
	ActionSell2
	ActionSell3
	ActionSell4
	ActionBuy1 // shift+1..4 - buy one unit of gold, iron, copper, coal
	ActionBuy2
	ActionBuy3
	ActionBuy4
	ActionNextOffer   // Tab - cycle the selected trade offer
	ActionAcceptOffer // Enter - accept the selected offer
	ActionRejectOffer // X - reject the selected offer
	ActionConfirm     // Enter in menus
	ActionBack        // B, Escape - go back to menu
	ActionRestart     // R key - restart after game over
	ActionQuit        // Q, Ctrl+C - exit game/session
	ActionPause       // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionSell1:       "Sell1",
	ActionSell2:       "Sell2",
	ActionSell3:       "Sell3",
	ActionSell4:       "Sell4",
	ActionBuy1:        "Buy1",
	ActionBuy2:        "Buy2",
	ActionBuy3:        "Buy3",
	ActionBuy4:        "Buy4",
	ActionNextOffer:   "NextOffer",
	ActionAcceptOffer: "AcceptOffer",
	ActionRejectOffer: "RejectOffer",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SellActions lists the sell actions in resource-slot order.
var SellActions = [4]Action{ActionSell1, ActionSell2, ActionSell3, ActionSell4}

// BuyActions lists the buy actions in resource-slot order.
var BuyActions = [4]Action{ActionBuy1, ActionBuy2, ActionBuy3, ActionBuy4}

// InputFrame represents the input state for a single simulation tick.
// Movement actions describe keys currently held; the rest are one-shot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MoveIntent collapses the held movement actions into a vector with
// components in {-1, 0, 1}. Left wins over Right and Up wins over Down.
func (f InputFrame) MoveIntent() Vec2 {
	var v Vec2
	switch {
	case f.Has(ActionLeft):
		v.X = -1
	case f.Has(ActionRight):
		v.X = 1
	}
	switch {
	case f.Has(ActionUp):
		v.Y = 1
	case f.Has(ActionDown):
		v.Y = -1
	}
	return v
}
