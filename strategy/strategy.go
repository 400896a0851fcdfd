// Package strategy contains the signal generator: a pure transformation
// from a candle series to per-index indicator values and boolean entry
// flags. Nothing here places orders or manages positions; the host consumes
// the flags together with the static exit bands from the risk package.
package strategy

import "github.com/evdnx/gosig/types"

// Strategy is the contract a signal generator fulfils towards the host.
//
// Evaluate is a pure function of the series: re-invoking it with a longer
// series reproduces the prior outputs exactly on shared indices, because
// every column only looks backward.
type Strategy interface {
	// Timeframe returns the candle interval the strategy is tuned for.
	Timeframe() string

	// WarmupPeriod returns the number of leading candles whose rows are
	// unreliable and must be excluded from trading decisions.
	WarmupPeriod() int

	// Evaluate recomputes every indicator and signal column for the series.
	Evaluate(series types.Series) *Evaluation
}
