package resample

import (
	"testing"

	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/pixel"
)

var background = pixel.Sample{A: 255}

// gradient builds a grid where every sample encodes its own coordinates,
// so copies and nearest-neighbor picks are easy to assert.
func gradient(w, h int) frame.Grid {
	g := frame.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, pixel.Sample{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	return g
}

func TestParseMode_RoundTrip(t *testing.T) {
	for _, m := range []Mode{CropTop, CropBottom, CropCenter, Stretch, Fit} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("tile"); err == nil {
		t.Error("ParseMode(tile): expected error")
	}
}

func TestCrop_LosslessCopy(t *testing.T) {
	src := gradient(8, 6)
	for _, mode := range []Mode{CropTop, CropBottom, CropCenter} {
		dst := Resample(src, 4, 3, mode, 0, 0)

		var wantX, wantY int
		switch mode {
		case CropTop:
			wantX, wantY = 0, 0
		case CropBottom:
			wantX, wantY = 0, 3
		case CropCenter:
			wantX, wantY = 2, 1
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				want := src.At(wantX+x, wantY+y)
				if got := dst.At(x, y); got != want {
					t.Fatalf("%v (%d,%d) = %v, want %v", mode, x, y, got, want)
				}
			}
		}
	}
}

func TestCrop_OffsetShiftsWindow(t *testing.T) {
	src := gradient(8, 8)
	dst := Resample(src, 4, 4, CropTop, 2, 3)
	if got, want := dst.At(0, 0), src.At(2, 3); got != want {
		t.Fatalf("offset window origin = %v, want %v", got, want)
	}
}

func TestCrop_OffsetClampedInBounds(t *testing.T) {
	src := gradient(8, 8)
	tests := []struct {
		offX, offY   int
		wantX, wantY int
	}{
		{100, 100, 4, 4}, // pushed past the edge, clamped to max origin
		{-5, -5, 0, 0},   // negative clamps to zero
	}
	for _, tt := range tests {
		dst := Resample(src, 4, 4, CropTop, tt.offX, tt.offY)
		want := src.At(tt.wantX, tt.wantY)
		if got := dst.At(0, 0); got != want {
			t.Errorf("offset (%d,%d): origin = %v, want %v", tt.offX, tt.offY, got, want)
		}
	}
}

func TestCrop_SourceSmallerThanTarget(t *testing.T) {
	src := gradient(2, 2)
	dst := Resample(src, 4, 4, CropTop, 0, 0)
	if got := dst.At(1, 1); got != src.At(1, 1) {
		t.Fatalf("copied region (1,1) = %v, want %v", got, src.At(1, 1))
	}
	// Everything beyond the source stays background.
	if got := dst.At(3, 3); got != background {
		t.Fatalf("uncovered region (3,3) = %v, want background", got)
	}
}

func TestStretch_NearestNeighbor(t *testing.T) {
	src := gradient(2, 2)
	dst := Resample(src, 4, 4, Stretch, 0, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := src.At(x*2/4, y*2/4)
			if got := dst.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestStretch_Downscale(t *testing.T) {
	src := gradient(4, 4)
	dst := Resample(src, 2, 2, Stretch, 0, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := src.At(x*4/2, y*4/2)
			if got := dst.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFit_CentersAndPreservesAspect(t *testing.T) {
	// 2x1 source into an 8x8 target: scale 4, a 8x4 rect at (0, 2).
	src := gradient(2, 1)
	dst := Resample(src, 8, 8, Fit, 0, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inRect := y >= 2 && y < 6
			got := dst.At(x, y)
			if !inRect {
				if got != background {
					t.Fatalf("(%d,%d) outside fit rect = %v, want background", x, y, got)
				}
				continue
			}
			want := src.At(x*2/8, 0)
			if got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFit_NeverSmallerThanOnePixel(t *testing.T) {
	// Extreme aspect ratio must still draw something.
	src := gradient(100, 1)
	dst := Resample(src, 4, 4, Fit, 0, 0)
	found := false
	for _, s := range dst.Pix {
		if s != background {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("fit produced an empty target")
	}
}
