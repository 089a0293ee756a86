package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   core.Event
		want string
	}{
		{
			name: "no fields",
			ev:   core.Event{Tick: 12, Kind: "sell"},
			want: "      12  sell",
		},
		{
			name: "sorted fields",
			ev: core.Event{Tick: 12, Kind: "sell", Fields: map[string]any{
				"price": 4200,
				"kind":  "gold",
			}},
			want: "      12  sell" + strings.Repeat(" ", 11) + "kind=gold price=4200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEvent(tt.ev); got != tt.want {
				t.Errorf("formatEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}
