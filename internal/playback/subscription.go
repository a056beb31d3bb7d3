package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber. Frame changes and
// play-state changes are deliberately separate streams: a scrubbing UI
// follows one, a transport UI the other.
type Subscription struct {
	FrameChanged <-chan FrameChange
	StateChanged <-chan StateChange
	Done         <-chan struct{}

	// Internal write channels
	frameCh chan FrameChange
	stateCh chan StateChange
	doneCh  chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		frameCh: make(chan FrameChange, eventBufferSize),
		stateCh: make(chan StateChange, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.FrameChanged = s.frameCh
	s.StateChanged = s.stateCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendFrame sends a frame change event (non-blocking).
func (s *Subscription) sendFrame(e FrameChange) {
	select {
	case s.frameCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}
