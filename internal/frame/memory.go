package frame

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// advisoryLimit is where the runtime starts to struggle holding the whole
// animation in its process image.
const advisoryLimit = 10 * 1024 * 1024

// MemoryReport sizes a sequence as the runtime will store it: one 32-bit
// word per pixel per frame.
type MemoryReport struct {
	BytesPerFrame int
	TotalBytes    int
	FrameCount    int
	OverLimit     bool
}

// Memory computes the memory report for the given shape.
func Memory(width, height, frames int) MemoryReport {
	per := width * height * 4
	total := per * frames
	return MemoryReport{
		BytesPerFrame: per,
		TotalBytes:    total,
		FrameCount:    frames,
		OverLimit:     total > advisoryLimit,
	}
}

// Memory computes the memory report for a sequence.
func (s *Sequence) Memory() MemoryReport {
	return Memory(s.width, s.height, len(s.frames))
}

// String renders the report for headers and CLI summaries. The over-limit
// note is advisory only; emission never blocks on it.
func (r MemoryReport) String() string {
	s := fmt.Sprintf("%s (%d frames x %s)",
		humanize.IBytes(uint64(r.TotalBytes)), r.FrameCount,
		humanize.IBytes(uint64(r.BytesPerFrame)))
	if r.OverLimit {
		s += " - exceeds 10 MiB, consider fewer frames or a smaller matrix"
	}
	return s
}
