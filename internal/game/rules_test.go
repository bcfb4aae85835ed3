package game

import (
	"errors"
	"testing"
)

func TestRulesValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Rules)
		wantErr bool
	}{
		{"defaults are valid", func(r *Rules) {}, false},
		{"zero decks", func(r *Rules) { r.Decks = 0 }, true},
		{"negative decks", func(r *Rules) { r.Decks = -1 }, true},
		{"max below min", func(r *Rules) { r.MaxBet = 5 }, true},
		{"zero min bet", func(r *Rules) { r.MinBet = 0 }, true},
		{"zero payout", func(r *Rules) { r.BlackjackPayout = 0 }, true},
		{"penetration above one", func(r *Rules) { r.Penetration = 1.5 }, true},
		{"zero penetration", func(r *Rules) { r.Penetration = 0 }, true},
		{"negative max splits", func(r *Rules) { r.MaxSplits = -1 }, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rules := DefaultRules()
			tt.mutate(&rules)
			err := rules.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidRules) {
				t.Errorf("expected ErrInvalidRules, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReshufflePoint(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.Decks = 1
	rules.Penetration = 0.75
	if got := rules.ReshufflePoint(); got != 13 {
		t.Errorf("ReshufflePoint() = %d, want 13", got)
	}
	if got := rules.TotalCards(); got != 52 {
		t.Errorf("TotalCards() = %d, want 52", got)
	}
}
