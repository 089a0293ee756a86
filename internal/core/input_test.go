package core

import "testing"

func TestMoveIntent(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"idle", nil, V(0, 0)},
		{"up", []Action{ActionUp}, V(0, 1)},
		{"down-left", []Action{ActionDown, ActionLeft}, V(-1, -1)},
		{"left beats right", []Action{ActionLeft, ActionRight}, V(-1, 0)},
		{"up beats down", []Action{ActionDown, ActionUp}, V(0, 1)},
		{"trade keys ignored", []Action{ActionSell1, ActionBuy4}, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.MoveIntent(); got != tc.expected {
				t.Errorf("MoveIntent() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	var f InputFrame
	f.Set(ActionSell2)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionSell2) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionSell2) {
		t.Error("Clone should be independent of the source frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionAcceptOffer.String() != "AcceptOffer" {
		t.Errorf("got %q", ActionAcceptOffer.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("got %q", Action(999).String())
	}
}
