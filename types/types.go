package types

import "time"

// Direction of a proposed entry.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// Regime is the coarse trend classification derived from moving-average
// ordering. Bull: EMA-fast above EMA-slow. Bear: EMA-fast below EMA-slow
// with the close under the long SMA. Everything else is Neutral.
type Regime string

const (
	Bull    Regime = "BULL"
	Bear    Regime = "BEAR"
	Neutral Regime = "NEUTRAL"
)

// Candle is a single fixed-interval OHLCV bar. Candles are produced
// externally, ordered by time and never mutated once appended.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered sequence of candles for one instrument.
type Series []Candle

// Highs returns the high column as a fresh slice.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.High
	}
	return out
}

// Lows returns the low column as a fresh slice.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Low
	}
	return out
}

// Closes returns the close column as a fresh slice.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}

// Volumes returns the volume column as a fresh slice.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Volume
	}
	return out
}

// Last returns the most recent candle; ok is false on an empty series.
func (s Series) Last() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	return s[len(s)-1], true
}

// Signal is the record handed to the host when an entry flag fires.
type Signal struct {
	Symbol    string
	Time      time.Time
	Direction Direction
	Price     float64 // close of the candle that fired the flag
	// meta
	Reason string
}
