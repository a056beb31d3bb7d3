package playback

import "time"

// MockTicker is a test double for Ticker, advanced by hand with Tick.
type MockTicker struct {
	ch      chan time.Time
	stopped bool
}

// NewMockTicker creates a manual ticker for testing.
func NewMockTicker() *MockTicker {
	return &MockTicker{ch: make(chan time.Time)}
}

func (m *MockTicker) C() <-chan time.Time { return m.ch }

func (m *MockTicker) Stop() { m.stopped = true }

// Tick delivers one tick and blocks until the controller has consumed it.
func (m *MockTicker) Tick() {
	m.ch <- time.Now()
}

// Stopped reports whether Stop was called.
func (m *MockTicker) Stopped() bool { return m.stopped }
