package simulator

import (
	"time"

	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/statistics"
)

// SessionResult holds the outcome of a single simulated session
type SessionResult struct {
	Strategy         string
	Seed             int64
	RoundsPlayed     int
	StartingBankroll float64
	FinalBankroll    float64
	TotalWagered     float64
	Profit           float64
	ROIPercent       float64
	MaxBankroll      float64
	MinBankroll      float64
	Busted           bool
	WinRate          float64
	PushRate         float64
	LossRate         float64
	SurrenderRate    float64
	MaxDrawdown      float64
	HandsWon         int
	HandsLost        int
	HandsPushed      int
	HandsSurrendered int
}

// newSessionResult derives the per-session metrics from an engine summary
func newSessionResult(strategy string, seed int64, s game.Summary) SessionResult {
	r := SessionResult{
		Strategy:         strategy,
		Seed:             seed,
		RoundsPlayed:     s.RoundsPlayed,
		StartingBankroll: s.StartingBankroll,
		FinalBankroll:    s.FinalBankroll,
		TotalWagered:     s.TotalWagered,
		Profit:           s.Profit,
		MaxBankroll:      s.PeakBankroll,
		MinBankroll:      s.TroughBankroll,
		Busted:           s.FinalBankroll <= 0,
		WinRate:          s.WinRate,
		MaxDrawdown:      s.MaxDrawdown,
		HandsWon:         s.HandsWon,
		HandsLost:        s.HandsLost,
		HandsPushed:      s.HandsPushed,
		HandsSurrendered: s.HandsSurrendered,
	}

	if s.StartingBankroll > 0 {
		r.ROIPercent = s.Profit / s.StartingBankroll * 100
	}
	if s.HandsPlayed > 0 {
		r.PushRate = float64(s.HandsPushed) / float64(s.HandsPlayed) * 100
		r.LossRate = float64(s.HandsLost) / float64(s.HandsPlayed) * 100
		r.SurrenderRate = float64(s.HandsSurrendered) / float64(s.HandsPlayed) * 100
	}
	return r
}

// AggregateResult summarises every session of one strategy
type AggregateResult struct {
	Strategy       string
	Sessions       int
	FailedSessions int

	AvgRoundsPerSession float64
	TotalRounds         int

	AvgROI    float64
	StdROI    float64
	MinROI    float64
	MaxROI    float64
	MedianROI float64

	// ROIStdError and the confidence bounds describe how settled AvgROI is
	ROIStdError float64
	ROICILow    float64
	ROICIHigh   float64

	// HouseEdge is -profit/wagered as a percentage; positive numbers mean
	// the house kept money. EVPerRound is the expected profit per round in
	// bankroll units.
	HouseEdge  float64
	EVPerRound float64

	RiskOfRuin       float64
	SuccessRate      float64
	AvgFinalBankroll float64
	AvgWinRate       float64
	AvgPushRate      float64
	AvgLossRate      float64
	AvgSurrenderRate float64
	AvgMaxDrawdown   float64

	Elapsed time.Duration
}

// aggregate folds the per-session results of one strategy into summary
// statistics. Failed sessions count toward FailedSessions only; their
// missing results do not skew the averages.
func aggregate(strategy string, results []SessionResult, failed int) AggregateResult {
	agg := AggregateResult{
		Strategy:       strategy,
		Sessions:       len(results),
		FailedSessions: failed,
	}
	if len(results) == 0 {
		return agg
	}

	var (
		rois       statistics.Sample
		rounds     statistics.Sample
		finals     statistics.Sample
		winRates   statistics.Sample
		pushRates  statistics.Sample
		lossRates  statistics.Sample
		surrRates  statistics.Sample
		drawdowns  statistics.Sample
		busts      int
		profitable int

		totalWagered float64
		totalProfit  float64
	)

	for _, r := range results {
		rois.Add(r.ROIPercent)
		rounds.Add(float64(r.RoundsPlayed))
		finals.Add(r.FinalBankroll)
		winRates.Add(r.WinRate)
		pushRates.Add(r.PushRate)
		lossRates.Add(r.LossRate)
		surrRates.Add(r.SurrenderRate)
		drawdowns.Add(r.MaxDrawdown)
		if r.Busted {
			busts++
		}
		if r.Profit > 0 {
			profitable++
		}
		totalWagered += r.TotalWagered
		totalProfit += r.Profit
	}

	agg.AvgRoundsPerSession = rounds.Mean()
	agg.TotalRounds = int(rounds.Sum())
	agg.AvgROI = rois.Mean()
	agg.StdROI = rois.StdDev()
	agg.MinROI = rois.Min()
	agg.MaxROI = rois.Max()
	agg.MedianROI = rois.Median()
	agg.ROIStdError = rois.StdError()
	agg.ROICILow, agg.ROICIHigh = rois.ConfidenceInterval95()

	if totalWagered > 0 {
		agg.HouseEdge = -totalProfit / totalWagered * 100
	}
	if agg.TotalRounds > 0 {
		agg.EVPerRound = totalProfit / float64(agg.TotalRounds)
	}

	n := float64(len(results))
	agg.RiskOfRuin = float64(busts) / n * 100
	agg.SuccessRate = float64(profitable) / n * 100
	agg.AvgFinalBankroll = finals.Mean()
	agg.AvgWinRate = winRates.Mean()
	agg.AvgPushRate = pushRates.Mean()
	agg.AvgLossRate = lossRates.Mean()
	agg.AvgSurrenderRate = surrRates.Mean()
	agg.AvgMaxDrawdown = drawdowns.Mean()

	return agg
}
