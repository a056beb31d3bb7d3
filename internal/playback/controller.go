// Package playback schedules frame advance over a sequence on a periodic
// clock and publishes frame and state changes to subscribers.
package playback

import (
	"sync"
	"time"

	"github.com/llehouerou/ledforge/internal/frame"
)

// DefaultFrameRate is used until SetFrameRate is called.
const DefaultFrameRate = 10

// Controller advances a current-frame index over a frame sequence under a
// loop mode. At most one ticker is ever active per controller: Play while
// playing is a no-op.
type Controller struct {
	mu sync.Mutex

	seq       *frame.Sequence
	index     int
	direction int
	loop      LoopMode
	fps       int
	playing   bool

	ticker Ticker
	stopCh chan struct{}

	newTicker TickerFactory

	subs   []*Subscription
	subsMu sync.RWMutex
}

// New creates a stopped controller with no sequence.
func New() *Controller {
	return &Controller{
		direction: 1,
		fps:       DefaultFrameRate,
		newTicker: newRealTicker,
	}
}

// NewWithTicker creates a controller driven by a custom ticker factory.
// Used by tests to tick by hand.
func NewWithTicker(factory TickerFactory) *Controller {
	c := New()
	c.newTicker = factory
	return c
}

// SetFrames replaces the sequence, resets the index to 0 and forces the
// controller to stopped. The previous sequence is not retained.
func (c *Controller) SetFrames(seq *frame.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.seq = seq
	c.index = 0
}

// SetFrameRate updates the tick period. If playing, the controller is
// restarted so the new rate takes effect immediately; the resulting jump
// in elapsed-time accounting is accepted behavior.
func (c *Controller) SetFrameRate(fps int) {
	if fps <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fps = fps
	if c.playing {
		c.stopLocked()
		c.playLocked()
	}
}

// SetLoopMode sets the loop discipline and resets direction to forward.
func (c *Controller) SetLoopMode(mode LoopMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loop = mode
	c.direction = 1
}

// Play starts the periodic tick. No-op while already playing or without
// frames.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playLocked()
}

func (c *Controller) playLocked() {
	if c.playing || c.seq.Len() == 0 {
		return
	}
	c.playing = true
	c.ticker = c.newTicker(time.Second / time.Duration(c.fps))
	c.stopCh = make(chan struct{})
	go c.run(c.ticker, c.stopCh)
	c.broadcastState(StateChange{Previous: StateStopped, Current: StatePlaying})
}

// Stop cancels the periodic tick. No-op while already stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	if !c.playing {
		return
	}
	c.playing = false
	c.ticker.Stop()
	c.ticker = nil
	close(c.stopCh)
	c.broadcastState(StateChange{Previous: StatePlaying, Current: StateStopped})
}

func (c *Controller) run(t Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-t.C():
			c.tick()
		case <-stop:
			return
		}
	}
}

// tick is the clock-driven advance. A tick can race the stop signal, so
// the play state is re-checked under the lock before advancing.
func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.advanceLocked()
}

// Advance moves the index one tick under the current loop mode and emits a
// frame change. Under LoopOnce the advance that reaches the last frame
// also stops the controller, so a run over N frames takes N-1 ticks.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

func (c *Controller) advanceLocked() {
	count := c.seq.Len()
	if count == 0 {
		return
	}

	switch c.loop {
	case LoopForward:
		c.index = (c.index + 1) % count
	case LoopOnce:
		if c.index < count-1 {
			c.index++
		}
		if c.index == count-1 {
			c.broadcastFrame(FrameChange{Index: c.index})
			c.stopLocked()
			return
		}
	case LoopBounce:
		// Direction flips on the tick that would leave the range, so the
		// boundary frame is held for two ticks: 0,1,2,2,1,0,0,...
		c.index += c.direction
		if c.index > count-1 {
			c.index = count - 1
			c.direction = -1
		} else if c.index < 0 {
			c.index = 0
			c.direction = 1
		}
	}
	c.broadcastFrame(FrameChange{Index: c.index})
}

// GoToFrame jumps to frame i without touching the play state. Out-of-range
// indexes are ignored, which keeps scrubbing callers trivial.
func (c *Controller) GoToFrame(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.goToFrameLocked(i)
}

func (c *Controller) goToFrameLocked(i int) {
	if i < 0 || i >= c.seq.Len() {
		return
	}
	c.index = i
	c.broadcastFrame(FrameChange{Index: c.index})
}

// NextFrame steps one frame forward, wrapping at the end.
func (c *Controller) NextFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if count := c.seq.Len(); count > 0 {
		c.goToFrameLocked((c.index + 1) % count)
	}
}

// PreviousFrame steps one frame back, wrapping at the start.
func (c *Controller) PreviousFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if count := c.seq.Len(); count > 0 {
		c.goToFrameLocked((c.index - 1 + count) % count)
	}
}

// CurrentIndex returns the current frame index.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// IsPlaying reports whether the ticker is running.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// State returns the current playback state.
func (c *Controller) State() State {
	if c.IsPlaying() {
		return StatePlaying
	}
	return StateStopped
}

// LoopMode returns the current loop discipline.
func (c *Controller) LoopMode() LoopMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loop
}

// FrameRate returns the configured frame rate.
func (c *Controller) FrameRate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Unsubscribe removes and closes a subscription.
func (c *Controller) Unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			sub.close()
			return
		}
	}
}

// Close stops playback and closes all subscriptions.
func (c *Controller) Close() {
	c.Stop()
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

func (c *Controller) broadcastFrame(e FrameChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendFrame(e)
	}
}

func (c *Controller) broadcastState(e StateChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendState(e)
	}
}
