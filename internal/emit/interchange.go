package emit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/pixel"
)

// Interchange document schema. The field order below is the wire order.

type interchangeDoc struct {
	Metadata interchangeMetadata `json:"metadata"`
	Frames   []interchangeFrame  `json:"frames"`
	Usage    interchangeUsage    `json:"usage"`
}

type interchangeMetadata struct {
	Name           string  `json:"name"`
	FrameCount     int     `json:"frameCount"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	FPS            int     `json:"fps"`
	Duration       float64 `json:"duration"`
	Brightness     int     `json:"brightness"`
	PixelsPerFrame int     `json:"pixelsPerFrame"`
	Generated      string  `json:"generated"`
}

type interchangeFrame struct {
	Index    int                `json:"index"`
	Filename string             `json:"filename"`
	Pixels   []interchangePixel `json:"pixels"`
}

type interchangePixel struct {
	DWord string         `json:"dword"`
	RGB   interchangeRGB `json:"rgb"`
}

type interchangeRGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type interchangeUsage struct {
	DWordLayout string `json:"dwordLayout"`
	PixelOrder  string `json:"pixelOrder"`
	Note        string `json:"note"`
}

// staticUsage is appended verbatim to every interchange document; it
// documents the format and is not derived from the data.
var staticUsage = interchangeUsage{
	DWordLayout: "bits 0-7 red, 8-15 green, 16-23 blue, 24-31 zero",
	PixelOrder:  "row-major, top-left first",
	Note:        "rgb holds post-brightness channel values; the dword masks each channel to 8 bits",
}

// Interchange renders a sequence as the JSON interchange document,
// 2-space indented. The generated timestamp is a parameter so emission
// stays a pure function of its inputs.
func Interchange(seq *frame.Sequence, spec Spec, generated time.Time) (string, error) {
	doc := interchangeDoc{
		Metadata: interchangeMetadata{
			Name:           spec.Name,
			FrameCount:     seq.Len(),
			Width:          seq.Width(),
			Height:         seq.Height(),
			FPS:            spec.FPS,
			Duration:       float64(seq.Len()) / float64(spec.FPS),
			Brightness:     spec.Brightness,
			PixelsPerFrame: seq.Width() * seq.Height(),
			Generated:      generated.UTC().Format(time.RFC3339),
		},
		Frames: make([]interchangeFrame, seq.Len()),
		Usage:  staticUsage,
	}

	for i := 0; i < seq.Len(); i++ {
		f := seq.Frame(i)
		pixels := make([]interchangePixel, len(f.Pix))
		for j, s := range f.Pix {
			scaled := pixel.Scale(s, spec.Brightness)
			pixels[j] = interchangePixel{
				DWord: "0x" + pixel.FormatWord(pixel.PackScaled(scaled)),
				RGB:   interchangeRGB{R: scaled.R, G: scaled.G, B: scaled.B},
			}
		}
		doc.Frames[i] = interchangeFrame{
			Index:    i,
			Filename: f.Source,
			Pixels:   pixels,
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal interchange document: %w", err)
	}
	return string(out) + "\n", nil
}
