package betsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatIgnoresSignal(t *testing.T) {
	t.Parallel()
	s := Flat(25)
	for _, signal := range []int{-5, 0, 1, 3, 10} {
		assert.Equal(t, 25.0, s.Bet(signal))
	}
}

func TestSpreadLookup(t *testing.T) {
	t.Parallel()
	s := NewSpread(map[int]float64{
		0: 10,
		1: 20,
		2: 40,
	}, 10, 100)

	tests := []struct {
		name   string
		signal int
		bet    float64
	}{
		{"explicit zero", 0, 10},
		{"explicit rung", 1, 20},
		{"top explicit rung", 2, 40},
		{"above table defaults to max", 3, 100},
		{"far above table defaults to max", 9, 100},
		{"negative defaults to min", -2, 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.bet, s.Bet(tt.signal))
		})
	}
}

func TestSparseMinMaxSpread(t *testing.T) {
	t.Parallel()
	// Only the end points are named; everything positive jumps to max
	s := NewSpread(map[int]float64{0: 10, 3: 300}, 10, 300)
	assert.Equal(t, 10.0, s.Bet(-1))
	assert.Equal(t, 10.0, s.Bet(0))
	assert.Equal(t, 300.0, s.Bet(1))
	assert.Equal(t, 300.0, s.Bet(3))
}
