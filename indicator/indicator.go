// Package indicator implements the rolling-window aggregations the signal
// generator needs as explicit passes over plain float64 slices. Keeping the
// math free of any vectorized-array library makes each pass testable in
// isolation; the package tests cross-check the results against go-talib.
//
// Every function returns a slice of the same length as its input. Indices
// with insufficient trailing history hold math.NaN() (or false for boolean
// columns); callers treat those rows as non-tradable rather than as errors.
package indicator

import "math"

// SMA returns the simple moving average over the trailing period.
func SMA(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA returns the exponential moving average over the trailing period,
// seeded with the SMA of the first period values (TA-Lib convention) so the
// output is fully determined by the input and reproducible across calls.
func EMA(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	prev := sum / float64(period)
	out[period-1] = prev
	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		prev += k * (values[i] - prev)
		out[i] = prev
	}
	return out
}

// RollingMax returns the maximum over the trailing period. A window that is
// incomplete or contains an undefined value yields NaN.
func RollingMax(values []float64, period int) []float64 {
	return rollingAgg(values, period, func(window []float64) float64 {
		max := window[0]
		for _, v := range window[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

// RollingMin returns the minimum over the trailing period. A window that is
// incomplete or contains an undefined value yields NaN.
func RollingMin(values []float64, period int) []float64 {
	return rollingAgg(values, period, func(window []float64) float64 {
		min := window[0]
		for _, v := range window[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}

// RollingMean returns the arithmetic mean over the trailing period. Unlike
// SMA it propagates NaN from its input, which matters when averaging a
// column (such as ATR) that starts with undefined values.
func RollingMean(values []float64, period int) []float64 {
	return rollingAgg(values, period, func(window []float64) float64 {
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		return sum / float64(len(window))
	})
}

// Shift moves every value n positions forward, padding the front with NaN.
// Shift(x, 1)[i] == x[i-1]: the standard way to exclude the current candle
// from a level computed over trailing data.
func Shift(values []float64, n int) []float64 {
	out := nanSlice(len(values))
	for i := n; i < len(values); i++ {
		out[i] = values[i-n]
	}
	return out
}

// TrueRange returns max(high-low, |high-prevClose|, |low-prevClose|) per
// index. Index 0 has no previous close and is NaN.
func TrueRange(high, low, close []float64) []float64 {
	out := nanSlice(len(high))
	for i := 1; i < len(high); i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - close[i-1])
		lc := math.Abs(low[i] - close[i-1])
		tr := hl
		if hc > tr {
			tr = hc
		}
		if lc > tr {
			tr = lc
		}
		out[i] = tr
	}
	return out
}

// ATR returns the Wilder-smoothed average true range: the value at index
// period is the mean of the first period true ranges, after which
// atr[i] = (atr[i-1]*(period-1) + tr[i]) / period. Indices below period are
// NaN, matching TA-Lib.
func ATR(high, low, close []float64, period int) []float64 {
	out := nanSlice(len(high))
	if period <= 0 || len(high) <= period {
		return out
	}
	tr := TrueRange(high, low, close)
	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += tr[i]
	}
	prev := sum / float64(period)
	out[period] = prev
	for i := period + 1; i < len(high); i++ {
		prev = (prev*float64(period-1) + tr[i]) / float64(period)
		out[i] = prev
	}
	return out
}

// RollingAny reports, per index, whether any flag in the trailing period is
// set. Indices without a full window are false.
func RollingAny(flags []bool, period int) []bool {
	out := make([]bool, len(flags))
	if period <= 0 {
		return out
	}
	count := 0
	for i, f := range flags {
		if f {
			count++
		}
		if i >= period && flags[i-period] {
			count--
		}
		if i >= period-1 {
			out[i] = count > 0
		}
	}
	return out
}

// ShiftBool moves every flag n positions forward, padding the front with
// false.
func ShiftBool(flags []bool, n int) []bool {
	out := make([]bool, len(flags))
	for i := n; i < len(flags); i++ {
		out[i] = flags[i-n]
	}
	return out
}

// rollingAgg applies fn to every complete trailing window. Windows touching
// a NaN input produce NaN so undefined history never leaks into a defined
// aggregate.
func rollingAgg(values []float64, period int, fn func([]float64) float64) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		if hasNaN(window) {
			continue
		}
		out[i] = fn(window)
	}
	return out
}

func hasNaN(window []float64) bool {
	for _, v := range window {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
