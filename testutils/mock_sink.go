package testutils

import (
	"errors"
	"sync"

	"github.com/evdnx/gosig/types"
)

// MockSink implements the Sink interface in-memory and can be told to fail,
// which the real BufferSink never does.
type MockSink struct {
	mu      sync.RWMutex
	signals []types.Signal
	failing bool
}

// NewMockSink creates a fresh sink that accepts everything.
func NewMockSink() *MockSink { return &MockSink{} }

// Publish records the signal, or fails if SetFailing(true) was called.
func (m *MockSink) Publish(s types.Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("mock sink: publish rejected")
	}
	m.signals = append(m.signals, s)
	return nil
}

// SetFailing toggles failure mode for subsequent Publish calls.
func (m *MockSink) SetFailing(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = v
}

// Signals returns a copy of all published signals (useful for assertions).
func (m *MockSink) Signals() []types.Signal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Signal, len(m.signals))
	copy(out, m.signals)
	return out
}
