package strategy

import (
	"github.com/evdnx/gosig/config"
	"github.com/evdnx/gosig/indicator"
	"github.com/evdnx/gosig/types"
)

// rangeWidthFloor replaces a zero-width Wyckoff range so the position ratio
// never divides by zero.
const rangeWidthFloor = 1e-10

// WyckoffBreakout is the breakout strategy with Wyckoff-boosted shorts.
//
// Longs fire in a bull regime on a 28-period breakout backed by a volume
// surge and positive momentum. Shorts mirror that in a bear regime, with an
// extra ATR spike filter, and a looser "boosted" gate when a distribution
// pattern (ATR compression while price holds the upper half of its range)
// was detected within the preceding two days.
type WyckoffBreakout struct {
	cfg config.StrategyConfig
}

// NewWyckoffBreakout validates the config and builds the generator.
func NewWyckoffBreakout(cfg config.StrategyConfig) (*WyckoffBreakout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &WyckoffBreakout{cfg: cfg}, nil
}

// Config returns the parameter set the generator was built with.
func (w *WyckoffBreakout) Config() config.StrategyConfig { return w.cfg }

// Timeframe returns the candle interval the parameters are tuned for.
func (w *WyckoffBreakout) Timeframe() string { return w.cfg.Timeframe }

// WarmupPeriod returns the number of leading rows callers must discard.
func (w *WyckoffBreakout) WarmupPeriod() int { return w.cfg.StartupCandles }

// Evaluate recomputes every column for the series. Stateless: the same
// series always yields the same Evaluation, and a longer series reproduces
// the shorter one's rows on shared indices.
func (w *WyckoffBreakout) Evaluate(series types.Series) *Evaluation {
	n := len(series)
	highs := series.Highs()
	lows := series.Lows()
	closes := series.Closes()
	volumes := series.Volumes()
	cfg := w.cfg

	e := &Evaluation{
		EMAFast:  indicator.EMA(closes, cfg.EMAFastPeriod),
		EMASlow:  indicator.EMA(closes, cfg.EMASlowPeriod),
		SMATrend: indicator.SMA(closes, cfg.SMATrendPeriod),

		BreakoutHigh: indicator.Shift(indicator.RollingMax(highs, cfg.BreakoutPeriod), 1),
		BreakoutLow:  indicator.Shift(indicator.RollingMin(lows, cfg.BreakoutPeriod), 1),

		VolumeSMA: indicator.SMA(volumes, cfg.VolumeSMAPeriod),

		ATR: indicator.ATR(highs, lows, closes, cfg.ATRPeriod),
	}
	e.ATRAvg = indicator.RollingMean(e.ATR, cfg.ATRAvgPeriod)

	// Regime classification. NaN comparisons are false, so rows without a
	// defined average land in Neutral.
	e.Regime = make([]types.Regime, n)
	for i := 0; i < n; i++ {
		switch {
		case e.EMAFast[i] > e.EMASlow[i]:
			e.Regime[i] = types.Bull
		case e.EMAFast[i] < e.EMASlow[i] && closes[i] < e.SMATrend[i]:
			e.Regime[i] = types.Bear
		default:
			e.Regime[i] = types.Neutral
		}
	}

	// Wyckoff distribution: ATR compressed while the close sits in the
	// upper half of the trailing range.
	rangeHigh := indicator.RollingMax(highs, cfg.WyckoffPeriod)
	rangeLow := indicator.RollingMin(lows, cfg.WyckoffPeriod)
	e.RangePosition = make([]float64, n)
	e.Distribution = make([]bool, n)
	for i := 0; i < n; i++ {
		width := rangeHigh[i] - rangeLow[i]
		if width == 0 {
			width = rangeWidthFloor
		}
		e.RangePosition[i] = (closes[i] - rangeLow[i]) / width
		e.Distribution[i] = e.ATR[i] < e.ATRAvg[i] && e.RangePosition[i] > 0.5
	}
	// Was there distribution within the preceding window? The rolling
	// window deliberately overlaps the detection window; shifted by one so
	// a row never counts its own distribution flag.
	e.PostDistribution = indicator.ShiftBool(
		indicator.RollingAny(e.Distribution, cfg.WyckoffPeriod), 1)

	// ATR spike filter for shorts. An undefined operand makes the inner
	// comparison false, so the filter passes during warm-up.
	atrRecentMin := indicator.RollingMin(e.ATR, cfg.ATRSpikeLookback)
	e.NoATRSpike = make([]bool, n)
	for i := 0; i < n; i++ {
		e.NoATRSpike[i] = !(e.ATR[i] > atrRecentMin[i]*cfg.ATRSpikeThreshold)
	}

	momClose := indicator.Shift(closes, cfg.MomentumLookback)

	e.EnterLong = make([]bool, n)
	e.EnterShort = make([]bool, n)
	for i := cfg.StartupCandles; i < n; i++ {
		close := closes[i]
		volume := volumes[i]
		volatilityOK := e.ATR[i] < e.ATRAvg[i]*cfg.ATRMultMax

		e.EnterLong[i] = e.Regime[i] == types.Bull &&
			close > e.BreakoutHigh[i] &&
			close > e.EMASlow[i] &&
			volume > e.VolumeSMA[i]*cfg.VolumeMult &&
			close > momClose[i]*(1+cfg.MomentumPct) &&
			volatilityOK

		if e.Regime[i] != types.Bear {
			continue
		}
		shortBase := close < e.BreakoutLow[i] &&
			close < e.EMASlow[i] &&
			volatilityOK &&
			e.NoATRSpike[i]
		standard := volume > e.VolumeSMA[i]*cfg.VolumeMultShort &&
			close < momClose[i]*(1-cfg.MomentumPctShort)
		boosted := e.PostDistribution[i] &&
			volume > e.VolumeSMA[i]*cfg.VolumeMultShortBoosted &&
			close < momClose[i]*(1-cfg.MomentumPctShortBoosted)
		e.EnterShort[i] = shortBase && (standard || boosted)
	}

	return e
}
