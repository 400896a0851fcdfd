package strategy

import (
	"errors"
	"time"

	"github.com/evdnx/gosig/logger"
	"github.com/evdnx/gosig/metrics"
	"github.com/evdnx/gosig/sink"
	"github.com/evdnx/gosig/types"
)

// Scanner adapts the batch signal generator to a per-candle push model:
// each accepted candle is appended to an internal buffer, the whole buffer
// is re-evaluated, and any flag on the latest row is turned into a
// types.Signal for the configured sink.
//
// Candles at or before the last seen timestamp are ignored, so feeding the
// same bar twice cannot emit a duplicate signal. Single-caller semantics:
// the Scanner is not safe for concurrent use.
type Scanner struct {
	symbol   string
	strat    Strategy
	sink     sink.Sink
	log      logger.Logger
	buf      *candleBuffer
	lastTime time.Time
}

// NewScanner wires a strategy to a sink for one symbol. maxBuffer caps the
// candle buffer; 0 keeps it unbounded, which guarantees the streamed
// output matches a batch evaluation of the same candles.
func NewScanner(symbol string, strat Strategy, snk sink.Sink, log logger.Logger, maxBuffer int) (*Scanner, error) {
	if symbol == "" {
		return nil, errors.New("scanner: symbol cannot be empty")
	}
	if strat == nil {
		return nil, errors.New("scanner: strategy cannot be nil")
	}
	if snk == nil {
		return nil, errors.New("scanner: sink cannot be nil")
	}
	if log == nil {
		log = logger.NewNop()
	}
	if maxBuffer > 0 && maxBuffer < strat.WarmupPeriod() {
		return nil, errors.New("scanner: maxBuffer below the strategy warm-up period")
	}
	return &Scanner{
		symbol: symbol,
		strat:  strat,
		sink:   snk,
		log:    log,
		buf:    newCandleBuffer(maxBuffer),
	}, nil
}

// ProcessCandle accepts one closed candle and emits at most one signal per
// direction for it.
func (s *Scanner) ProcessCandle(c types.Candle) {
	if !c.Time.After(s.lastTime) {
		metrics.CandlesDropped.WithLabelValues(s.symbol).Inc()
		return
	}
	s.lastTime = c.Time

	s.buf.Add(c)
	metrics.CandlesEvaluated.WithLabelValues(s.symbol).Inc()
	metrics.BufferSize.WithLabelValues(s.symbol).Set(float64(s.buf.Len()))

	eval := s.strat.Evaluate(s.buf.Series())
	i := eval.Len() - 1
	if i < s.strat.WarmupPeriod() {
		return
	}

	enterLong, enterShort := eval.SignalAt(i)
	if enterLong {
		s.emit(c, types.Long, "breakout_long")
	}
	if enterShort {
		reason := "breakout_short"
		if eval.PostDistribution[i] {
			reason = "breakout_short_wyckoff"
		}
		s.emit(c, types.Short, reason)
	}
}

// BufferLen reports how many candles the scanner currently holds.
func (s *Scanner) BufferLen() int { return s.buf.Len() }

func (s *Scanner) emit(c types.Candle, dir types.Direction, reason string) {
	sig := types.Signal{
		Symbol:    s.symbol,
		Time:      c.Time,
		Direction: dir,
		Price:     c.Close,
		Reason:    reason,
	}
	if err := s.sink.Publish(sig); err != nil {
		s.log.Error("signal_publish_failed",
			logger.String("symbol", sig.Symbol),
			logger.String("direction", string(sig.Direction)),
			logger.Err(err),
		)
		return
	}
	s.log.Info("signal_emitted",
		logger.String("symbol", sig.Symbol),
		logger.String("direction", string(sig.Direction)),
		logger.Float64("price", sig.Price),
		logger.String("reason", sig.Reason),
		logger.Time("candle_time", sig.Time),
	)
	metrics.SignalsEmitted.WithLabelValues(sig.Symbol, string(sig.Direction)).Inc()
}
