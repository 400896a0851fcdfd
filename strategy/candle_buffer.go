package strategy

import "github.com/evdnx/gosig/types"

// candleBuffer keeps the candles a Scanner has accepted so far. Unbounded
// by default so recomputed prefixes reproduce batch results exactly; a
// positive max trades that for bounded memory by dropping the oldest
// candles once the cap is exceeded.
type candleBuffer struct {
	max int
	buf types.Series
}

func newCandleBuffer(max int) *candleBuffer {
	return &candleBuffer{max: max}
}

func (b *candleBuffer) Add(c types.Candle) {
	b.buf = append(b.buf, c)
	if b.max > 0 && len(b.buf) > b.max {
		b.buf = b.buf[len(b.buf)-b.max:]
	}
}

func (b *candleBuffer) Len() int {
	return len(b.buf)
}

// Series exposes the buffered candles for evaluation. The caller must not
// mutate the returned slice.
func (b *candleBuffer) Series() types.Series {
	return b.buf
}
