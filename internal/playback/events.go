package playback

// FrameChange is emitted when the current frame index changes.
//
// Emitted by:
//   - Advance: every tick that lands on a frame, including a bounce tick
//     that clamps onto the same boundary frame
//   - GoToFrame/NextFrame/PreviousFrame: manual scrubbing
//
// NOT emitted by:
//   - SetFrames: replacing the sequence resets the index silently; the
//     caller already knows the new sequence
type FrameChange struct {
	Index int
}

// StateChange is emitted when playback starts or stops.
type StateChange struct {
	Previous State
	Current  State
}
