package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/evdnx/gosig/config"
	"github.com/evdnx/gosig/types"
)

var seriesStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// bar builds one hourly candle with a symmetric high/low spread around the
// close.
func bar(i int, close, spread, volume float64) types.Candle {
	return types.Candle{
		Time:   seriesStart.Add(time.Duration(i) * time.Hour),
		Open:   close,
		High:   close + spread,
		Low:    close - spread,
		Close:  close,
		Volume: volume,
	}
}

// risingSeries drifts upward by 0.05 per bar: a steady bull regime with a
// constant true range of 2*spread.
func risingSeries(n int) types.Series {
	s := make(types.Series, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, bar(i, 100+0.05*float64(i), 2, 1000))
	}
	return s
}

// fallingSeries drifts downward by 0.05 per bar: a steady bear regime
// (EMA-fast under EMA-slow, close under the 200-SMA).
func fallingSeries(n int) types.Series {
	s := make(types.Series, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, bar(i, 250-0.05*float64(i), 2, 1000))
	}
	return s
}

// withLongTrigger appends a breakout candle to a rising series: a 6 % jump
// over the close five bars back, on ten times the baseline volume.
func withLongTrigger(s types.Series) types.Series {
	i := len(s)
	close := s[i-5].Close * 1.06
	return append(s, bar(i, close, 2, 10000))
}

// withShortTrigger appends a breakdown candle to a falling series: a 4 %
// drop against the close five bars back, on ten times the baseline volume.
func withShortTrigger(s types.Series) types.Series {
	i := len(s)
	close := s[i-5].Close * 0.96
	return append(s, bar(i, close, 2, 10000))
}

func buildGenerator(t *testing.T) *WyckoffBreakout {
	t.Helper()
	w, err := NewWyckoffBreakout(config.Default())
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return w
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
