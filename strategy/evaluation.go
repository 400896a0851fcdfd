package strategy

import "github.com/evdnx/gosig/types"

// Evaluation holds every derived column for one series, index-aligned with
// the input candles. Float columns use NaN for indices whose trailing
// window is incomplete; boolean columns are false there. Such rows are
// non-tradable, never an error.
type Evaluation struct {
	EMAFast  []float64
	EMASlow  []float64
	SMATrend []float64

	Regime []types.Regime

	// Breakout levels, shifted by one: the level at i never includes
	// candle i's own high/low.
	BreakoutHigh []float64
	BreakoutLow  []float64

	VolumeSMA []float64

	ATR    []float64
	ATRAvg []float64

	// Wyckoff distribution detection.
	RangePosition    []float64
	Distribution     []bool
	PostDistribution []bool

	NoATRSpike []bool

	EnterLong  []bool
	EnterShort []bool
}

// Row is a scalar view of one index of an Evaluation.
type Row struct {
	EMAFast, EMASlow, SMATrend float64
	Regime                     types.Regime
	BreakoutHigh, BreakoutLow  float64
	VolumeSMA                  float64
	ATR, ATRAvg                float64
	RangePosition              float64
	Distribution               bool
	PostDistribution           bool
	NoATRSpike                 bool
	EnterLong, EnterShort      bool
}

// Len returns the number of evaluated rows.
func (e *Evaluation) Len() int { return len(e.EnterLong) }

// Row returns the scalar view at index i.
func (e *Evaluation) Row(i int) Row {
	return Row{
		EMAFast:          e.EMAFast[i],
		EMASlow:          e.EMASlow[i],
		SMATrend:         e.SMATrend[i],
		Regime:           e.Regime[i],
		BreakoutHigh:     e.BreakoutHigh[i],
		BreakoutLow:      e.BreakoutLow[i],
		VolumeSMA:        e.VolumeSMA[i],
		ATR:              e.ATR[i],
		ATRAvg:           e.ATRAvg[i],
		RangePosition:    e.RangePosition[i],
		Distribution:     e.Distribution[i],
		PostDistribution: e.PostDistribution[i],
		NoATRSpike:       e.NoATRSpike[i],
		EnterLong:        e.EnterLong[i],
		EnterShort:       e.EnterShort[i],
	}
}

// SignalAt returns the entry flags at index i.
func (e *Evaluation) SignalAt(i int) (enterLong, enterShort bool) {
	return e.EnterLong[i], e.EnterShort[i]
}
