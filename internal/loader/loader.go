// Package loader decodes input images into sample grids for the
// converter. It is the boundary collaborator: everything past it works on
// already-decoded grids and never sniffs formats.
package loader

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/pixel"
)

// Load decodes one file into frames. A GIF contributes all its frames,
// coalesced onto the running canvas; anything else contributes one.
func Load(path string) ([]frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	source := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return gifFrames(g, source), nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return []frame.Frame{{Grid: gridFrom(img), Source: source}}, nil
}

// LoadAll decodes a batch of files into one flat frame list, in argument
// order.
func LoadAll(paths []string) ([]frame.Frame, error) {
	var out []frame.Frame
	for _, p := range paths {
		frames, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, frames...)
	}
	return out, nil
}

func gifFrames(g *gif.GIF, source string) []frame.Frame {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	out := make([]frame.Frame, 0, len(g.Image))
	for _, paletted := range g.Image {
		// Partial frames paint over the previous canvas.
		draw.Draw(canvas, paletted.Bounds(), paletted, paletted.Bounds().Min, draw.Over)
		out = append(out, frame.Frame{Grid: gridFrom(canvas), Source: source})
	}
	return out
}

func gridFrom(img image.Image) frame.Grid {
	b := img.Bounds()
	g := frame.NewGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, gr, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Set(x, y, pixel.Sample{
				R: uint8(r >> 8),
				G: uint8(gr >> 8),
				B: uint8(bl >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return g
}
