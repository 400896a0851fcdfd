package sink

import (
	"sync"

	"github.com/evdnx/gosig/types"
)

// Sink is the outward boundary of the module: the host implements it to
// receive entry signals as they fire. Everything past this point (sizing,
// orders, exits, pauses) is the host's responsibility.
type Sink interface {
	Publish(s types.Signal) error
}

// BufferSink is a simple in-memory sink: it keeps every published signal
// for later inspection. Useful for backtest drivers that collect signals
// first and replay them against the execution engine afterwards.
type BufferSink struct {
	mu      sync.RWMutex
	signals []types.Signal
}

func NewBufferSink() *BufferSink { return &BufferSink{} }

// Publish appends the signal to the buffer. Never fails.
func (b *BufferSink) Publish(s types.Signal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signals = append(b.signals, s)
	return nil
}

// Signals returns a copy of everything published so far.
func (b *BufferSink) Signals() []types.Signal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]types.Signal, len(b.signals))
	copy(out, b.signals)
	return out
}

// Len reports the number of buffered signals.
func (b *BufferSink) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.signals)
}
