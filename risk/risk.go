package risk

import (
	"github.com/evdnx/gosig/config"
	"github.com/evdnx/gosig/types"
)

// TakeProfit returns the price level at which the host should close a
// position for profit: above the entry for longs, below it for shorts.
func TakeProfit(entry float64, dir types.Direction, pct float64) float64 {
	if dir == types.Short {
		return entry * (1 - pct)
	}
	return entry * (1 + pct)
}

// StopLoss returns the price level at which the host should cut a losing
// position: below the entry for longs, above it for shorts.
func StopLoss(entry float64, dir types.Direction, pct float64) float64 {
	if dir == types.Short {
		return entry * (1 + pct)
	}
	return entry * (1 - pct)
}

// ExitBands bundles both levels for a single entry using the configured
// percentages. Pure arithmetic; enforcement belongs to the host.
type ExitBands struct {
	TakeProfit float64
	StopLoss   float64
}

func BandsFor(entry float64, dir types.Direction, cfg config.StrategyConfig) ExitBands {
	return ExitBands{
		TakeProfit: TakeProfit(entry, dir, cfg.TakeProfitPct),
		StopLoss:   StopLoss(entry, dir, cfg.StopLossPct),
	}
}

// MaxDrawdownRule tells the host to pause new trades when realized drawdown
// over a trailing window exceeds a threshold. Declarative only: the pause
// logic lives in the execution engine, this module merely supplies the
// constants.
type MaxDrawdownRule struct {
	LookbackCandles int     // trailing candles considered
	TradeLimit      int     // trades considered within the window
	StopCandles     int     // pause duration once triggered
	MaxDrawdown     float64 // e.g. 0.40 = 40 %
}

// StoplossGuardRule tells the host to pause after a run of stopped-out
// trades within a trailing window.
type StoplossGuardRule struct {
	LookbackCandles int
	TradeLimit      int // consecutive stoplosses that trigger the pause
	StopCandles     int
	OnlyPerPair     bool
}

// Protections is the full set of pause rules handed to the host.
type Protections struct {
	MaxDrawdown   MaxDrawdownRule
	StoplossGuard StoplossGuardRule
}

// DefaultProtections returns the tuned pause rules: a 40 % drawdown cap over
// roughly eight days of hourly candles, and a guard that pauses after four
// stoplosses inside two days.
func DefaultProtections() Protections {
	return Protections{
		MaxDrawdown: MaxDrawdownRule{
			LookbackCandles: 200,
			TradeLimit:      20,
			StopCandles:     48,
			MaxDrawdown:     0.40,
		},
		StoplossGuard: StoplossGuardRule{
			LookbackCandles: 48,
			TradeLimit:      4,
			StopCandles:     24,
			OnlyPerPair:     false,
		},
	}
}
