package exit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleUp(t *testing.T) {
	t.Parallel()
	d := NewDoubleUp(1000)
	assert.False(t, d.ShouldExit(1000))
	assert.False(t, d.ShouldExit(1999))
	assert.True(t, d.ShouldExit(2000))
	assert.True(t, d.ShouldExit(3000))
	// Doubling has no loss floor
	assert.False(t, d.ShouldExit(1))
}

func TestPeakTrailingStop(t *testing.T) {
	t.Parallel()
	// Lock steps of 300, drawdown allowance of 400
	p := NewPeak(1000, 0.30, 0.40)

	assert.False(t, p.ShouldExit(1000))
	assert.False(t, p.ShouldExit(601))
	assert.True(t, NewPeak(1000, 0.30, 0.40).ShouldExit(600))

	// Reaching the 1300 target re-anchors: new target 1600, new stop 900
	assert.False(t, p.ShouldExit(1300))
	assert.False(t, p.ShouldExit(901))
	assert.True(t, p.ShouldExit(900))
}

func TestPeakKeepsRaisingTheStop(t *testing.T) {
	t.Parallel()
	p := NewPeak(1000, 0.30, 0.40)
	assert.False(t, p.ShouldExit(1300)) // stop now 900
	assert.False(t, p.ShouldExit(1600)) // stop now 1200
	assert.False(t, p.ShouldExit(1900)) // stop now 1500
	// A fall back to the original bankroll now triggers the stop
	assert.True(t, p.ShouldExit(1000))
}

func TestProfitLock(t *testing.T) {
	t.Parallel()
	// Profit target 1300, leave target 1600, initial stop 600
	p := NewProfitLock(1000, 0.30, 0.40)

	assert.False(t, p.ShouldExit(1000))
	assert.False(t, p.ShouldExit(700))
	assert.True(t, NewProfitLock(1000, 0.30, 0.40).ShouldExit(600))

	// Hitting the profit target locks in half the profit: stop becomes 1200
	assert.False(t, p.ShouldExit(1400))
	assert.False(t, p.ShouldExit(1201))
	assert.True(t, p.ShouldExit(1200))
}

func TestProfitLockLeaveTarget(t *testing.T) {
	t.Parallel()
	p := NewProfitLock(1000, 0.30, 0.40)
	assert.False(t, p.ShouldExit(1600))
	assert.True(t, p.ShouldExit(1601))
}

func TestWinLossStop(t *testing.T) {
	t.Parallel()
	// Target 1300, loss stop at 400
	w := NewWinLossStop(1000, 0.30, 0.40)
	assert.False(t, w.ShouldExit(1000))
	assert.False(t, w.ShouldExit(401))
	assert.False(t, w.ShouldExit(1299))
	assert.True(t, w.ShouldExit(1300))
	assert.True(t, w.ShouldExit(400))
}
