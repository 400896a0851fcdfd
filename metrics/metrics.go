package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CandlesEvaluated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gosig_candles_evaluated_total",
			Help: "Total number of candles evaluated (by symbol).",
		},
		[]string{"symbol"},
	)

	SignalsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gosig_signals_emitted_total",
			Help: "Total number of entry signals emitted (by symbol and direction).",
		},
		[]string{"symbol", "direction"},
	)

	CandlesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gosig_candles_dropped_total",
			Help: "Candles ignored because their timestamp was not newer than the last seen one.",
		},
		[]string{"symbol"},
	)

	BufferSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gosig_buffer_candles",
			Help: "Current number of candles held by the scanner buffer.",
		},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(CandlesEvaluated, SignalsEmitted, CandlesDropped, BufferSize)
}
