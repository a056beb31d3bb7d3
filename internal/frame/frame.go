// Package frame holds the raster data model: grids of samples, labeled
// frames and fixed-dimension sequences.
package frame

import (
	"errors"
	"fmt"

	"github.com/llehouerou/ledforge/internal/pixel"
)

// ErrDimensionMismatch is returned when a frame does not match the
// dimensions established by the first frame of a batch.
var ErrDimensionMismatch = errors.New("frame dimensions mismatch")

// ErrEmptySequence is returned when a sequence is built from no frames.
var ErrEmptySequence = errors.New("sequence has no frames")

// Grid is a row-major raster of samples.
type Grid struct {
	Width  int
	Height int
	Pix    []pixel.Sample
}

// NewGrid allocates a grid of the given size. All samples start as opaque
// black, the background fill every artifact assumes.
func NewGrid(width, height int) Grid {
	pix := make([]pixel.Sample, width*height)
	for i := range pix {
		pix[i] = pixel.Sample{A: 255}
	}
	return Grid{Width: width, Height: height, Pix: pix}
}

// At returns the sample at (x, y). Callers stay in bounds.
func (g Grid) At(x, y int) pixel.Sample {
	return g.Pix[y*g.Width+x]
}

// Set writes the sample at (x, y).
func (g Grid) Set(x, y int, s pixel.Sample) {
	g.Pix[y*g.Width+x] = s
}

// Validate checks the pixel-count invariant.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid %dx%d: dimensions must be positive", g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("grid %dx%d: %d samples, want %d",
			g.Width, g.Height, len(g.Pix), g.Width*g.Height)
	}
	return nil
}

// Frame is one still raster in a sequence, with the label of the file it
// came from.
type Frame struct {
	Grid
	Source string
	Index  int
}

// Sequence is an ordered list of frames sharing one resolution. Frames are
// never patched in place: re-resampling replaces the whole sequence.
type Sequence struct {
	frames []Frame
	width  int
	height int
}

// NewSequence builds a sequence from a batch of frames. Every frame must
// match the dimensions of the first one; a mismatch aborts the whole batch
// and no partial sequence is kept.
func NewSequence(frames ...Frame) (*Sequence, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	w, h := frames[0].Width, frames[0].Height
	for i := range frames {
		if err := frames[i].Validate(); err != nil {
			return nil, fmt.Errorf("frame %d (%s): %w", i, frames[i].Source, err)
		}
		if frames[i].Width != w || frames[i].Height != h {
			return nil, fmt.Errorf("frame %d (%s): %dx%d does not match %dx%d: %w",
				i, frames[i].Source, frames[i].Width, frames[i].Height, w, h,
				ErrDimensionMismatch)
		}
		frames[i].Index = i
	}
	return &Sequence{frames: frames, width: w, height: h}, nil
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Width returns the shared frame width.
func (s *Sequence) Width() int { return s.width }

// Height returns the shared frame height.
func (s *Sequence) Height() int { return s.height }

// Frame returns the frame at index i.
func (s *Sequence) Frame(i int) Frame { return s.frames[i] }

// Frames returns the frames in order. The slice is shared, not copied;
// frames are immutable once the sequence is built.
func (s *Sequence) Frames() []Frame { return s.frames }
