package indicator

import (
	"math"
	"math/rand"
	"testing"

	talib "github.com/markcheno/go-talib"
)

// syntheticSeries builds a deterministic pseudo-random walk with enough bars
// to get every oracle comparison well past its warm-up.
func syntheticSeries(n int) (high, low, close []float64) {
	rng := rand.New(rand.NewSource(42))
	price := 100.0
	for i := 0; i < n; i++ {
		price *= 1 + (rng.Float64()-0.5)*0.04
		h := price * (1 + rng.Float64()*0.01)
		l := price * (1 - rng.Float64()*0.01)
		high = append(high, h)
		low = append(low, l)
		close = append(close, l+(h-l)*rng.Float64())
	}
	return
}

// compareTail checks got against want on indices >= from, with tolerance.
// go-talib zero-fills its warm-up region while this package uses NaN, so the
// comparison starts after both are defined.
func compareTail(t *testing.T, name string, got, want []float64, from int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch %d vs %d", name, len(got), len(want))
	}
	for i := from; i < len(got); i++ {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("%s: mismatch at %d: got %v want %v", name, i, got[i], want[i])
		}
	}
}

func TestSMAMatchesTalib(t *testing.T) {
	_, _, close := syntheticSeries(300)
	compareTail(t, "sma", SMA(close, 20), talib.Sma(close, 20), 19)
}

func TestEMAMatchesTalib(t *testing.T) {
	_, _, close := syntheticSeries(300)
	compareTail(t, "ema", EMA(close, 40), talib.Ema(close, 40), 39)
}

func TestRollingExtremaMatchTalib(t *testing.T) {
	high, low, _ := syntheticSeries(300)
	compareTail(t, "max", RollingMax(high, 28), talib.Max(high, 28), 27)
	compareTail(t, "min", RollingMin(low, 28), talib.Min(low, 28), 27)
}

func TestATRMatchesTalib(t *testing.T) {
	high, low, close := syntheticSeries(300)
	compareTail(t, "atr", ATR(high, low, close, 14), talib.Atr(high, low, close, 14), 14)
}

func TestATRHandComputedWilder(t *testing.T) {
	// Three-bar series with period 2, small enough to verify by hand.
	high := []float64{10, 12, 11, 13}
	low := []float64{9, 10, 10, 11}
	close := []float64{9.5, 11, 10.5, 12}

	// tr[1] = max(2, |12-9.5|, |10-9.5|) = 2.5
	// tr[2] = max(1, |11-11|, |10-11|) = 1
	// tr[3] = max(2, |13-10.5|, |11-10.5|) = 2.5
	// atr[2] = (2.5+1)/2 = 1.75
	// atr[3] = (1.75*1 + 2.5)/2 = 2.125
	got := ATR(high, low, close, 2)
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("expected NaN warm-up, got %v", got[:2])
	}
	if math.Abs(got[2]-1.75) > 1e-12 {
		t.Fatalf("expected atr[2]=1.75, got %v", got[2])
	}
	if math.Abs(got[3]-2.125) > 1e-12 {
		t.Fatalf("expected atr[3]=2.125, got %v", got[3])
	}
}

func TestWarmupIsNaN(t *testing.T) {
	_, _, close := syntheticSeries(100)
	for name, col := range map[string][]float64{
		"sma":  SMA(close, 20),
		"ema":  EMA(close, 20),
		"max":  RollingMax(close, 20),
		"min":  RollingMin(close, 20),
		"mean": RollingMean(close, 20),
	} {
		for i := 0; i < 19; i++ {
			if !math.IsNaN(col[i]) {
				t.Fatalf("%s: expected NaN at warm-up index %d, got %v", name, i, col[i])
			}
		}
		if math.IsNaN(col[19]) {
			t.Fatalf("%s: expected defined value at index 19", name)
		}
	}
}

func TestRollingMeanPropagatesNaN(t *testing.T) {
	// A NaN prefix (like ATR's warm-up) must keep the mean undefined until
	// the window holds only defined values.
	values := nanSlice(60)
	for i := 14; i < 60; i++ {
		values[i] = float64(i)
	}
	mean := RollingMean(values, 10)
	if !math.IsNaN(mean[22]) { // window [13..22] still touches the NaN at 13
		t.Fatalf("expected NaN at 22, got %v", mean[22])
	}
	if math.IsNaN(mean[23]) { // window [14..23] is fully defined
		t.Fatalf("expected defined mean at 23")
	}
}

func TestShift(t *testing.T) {
	shifted := Shift([]float64{1, 2, 3, 4}, 1)
	if !math.IsNaN(shifted[0]) {
		t.Fatalf("expected NaN at 0, got %v", shifted[0])
	}
	for i := 1; i < 4; i++ {
		if shifted[i] != float64(i) {
			t.Fatalf("expected %d at index %d, got %v", i, i, shifted[i])
		}
	}
}

func TestRollingAnyStickyWindow(t *testing.T) {
	flags := make([]bool, 20)
	flags[8] = true
	any := RollingAny(flags, 4)
	// Set exactly while index 8 is inside the trailing 4-window: [8, 11].
	for i := 0; i < 20; i++ {
		want := i >= 8 && i <= 11
		if any[i] != want {
			t.Fatalf("index %d: got %v want %v", i, any[i], want)
		}
	}
}

func TestRollingAnyIncompleteWindowIsFalse(t *testing.T) {
	flags := []bool{true, false, false}
	any := RollingAny(flags, 3)
	if any[0] || any[1] {
		t.Fatal("expected false before the window is full")
	}
	if !any[2] {
		t.Fatal("expected true once the full window includes the set flag")
	}
}
