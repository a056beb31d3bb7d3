package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/llehouerou/ledforge/internal/pixel"
)

func testFrame(w, h int, source string) Frame {
	return Frame{Grid: NewGrid(w, h), Source: source}
}

func TestNewGrid_BackgroundFill(t *testing.T) {
	g := NewGrid(3, 2)
	if len(g.Pix) != 6 {
		t.Fatalf("len(Pix) = %d, want 6", len(g.Pix))
	}
	for i, s := range g.Pix {
		if s != (pixel.Sample{A: 255}) {
			t.Fatalf("pixel %d = %v, want opaque black", i, s)
		}
	}
}

func TestGrid_AtSet(t *testing.T) {
	g := NewGrid(4, 3)
	want := pixel.Sample{R: 1, G: 2, B: 3, A: 4}
	g.Set(2, 1, want)
	if got := g.At(2, 1); got != want {
		t.Fatalf("At(2,1) = %v, want %v", got, want)
	}
	if got := g.Pix[1*4+2]; got != want {
		t.Fatalf("row-major position wrong: %v", got)
	}
}

func TestGrid_Validate(t *testing.T) {
	tests := []struct {
		name string
		g    Grid
		ok   bool
	}{
		{"valid", NewGrid(2, 2), true},
		{"zero width", Grid{Width: 0, Height: 2}, false},
		{"short pix", Grid{Width: 2, Height: 2, Pix: make([]pixel.Sample, 3)}, false},
	}
	for _, tt := range tests {
		err := tt.g.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestNewSequence(t *testing.T) {
	seq, err := NewSequence(testFrame(2, 2, "a.png"), testFrame(2, 2, "b.png"))
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	if seq.Len() != 2 || seq.Width() != 2 || seq.Height() != 2 {
		t.Fatalf("sequence shape: len=%d %dx%d", seq.Len(), seq.Width(), seq.Height())
	}
	for i := 0; i < seq.Len(); i++ {
		if seq.Frame(i).Index != i {
			t.Errorf("frame %d has index %d", i, seq.Frame(i).Index)
		}
	}
}

func TestNewSequence_Empty(t *testing.T) {
	if _, err := NewSequence(); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
}

func TestNewSequence_DimensionMismatchAbortsBatch(t *testing.T) {
	seq, err := NewSequence(testFrame(2, 2, "a.png"), testFrame(3, 2, "b.png"))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if seq != nil {
		t.Fatal("partial sequence kept after mismatch")
	}
	if !strings.Contains(err.Error(), "b.png") {
		t.Errorf("error does not name offending frame: %v", err)
	}
}

func TestMemory(t *testing.T) {
	seq, err := NewSequence(testFrame(16, 16, "a"), testFrame(16, 16, "b"))
	if err != nil {
		t.Fatal(err)
	}
	r := seq.Memory()
	if r.BytesPerFrame != 16*16*4 {
		t.Errorf("BytesPerFrame = %d, want %d", r.BytesPerFrame, 16*16*4)
	}
	if r.TotalBytes != 16*16*4*2 {
		t.Errorf("TotalBytes = %d, want %d", r.TotalBytes, 16*16*4*2)
	}
	if r.OverLimit {
		t.Error("small sequence flagged over limit")
	}
}

func TestMemory_AdvisoryLimit(t *testing.T) {
	// 1024x1024x4 = 4 MiB per frame; three frames cross 10 MiB.
	frames := []Frame{testFrame(1024, 1024, "a"), testFrame(1024, 1024, "b"), testFrame(1024, 1024, "c")}
	seq, err := NewSequence(frames...)
	if err != nil {
		t.Fatal(err)
	}
	r := seq.Memory()
	if !r.OverLimit {
		t.Fatalf("12 MiB not flagged: %+v", r)
	}
	if !strings.Contains(r.String(), "10 MiB") {
		t.Errorf("advisory text missing: %q", r.String())
	}
}
