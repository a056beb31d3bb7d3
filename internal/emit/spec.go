// Package emit renders frame sequences into the textual artifacts consumed
// by the matrix runtime: Structured Text source, a TwinCAT-style GVL
// container, and a JSON interchange document.
//
// Output is byte-exact by contract. The ST dialect downstream refuses to
// compile sloppy array literals, so line wrapping, prefixes and hex casing
// are all fixed here and covered by tests.
package emit

import (
	"strings"

	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/pixel"
)

// Spec carries the resolved parameters of one emission call. It is built
// per call and not persisted.
type Spec struct {
	Name       string
	Brightness int
	FPS        int
	Width      int
	Height     int
}

// ident turns the user-facing name into a valid ST identifier chunk.
func (s Spec) ident() string {
	var b strings.Builder
	for _, r := range s.Name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}

// words encodes one frame into packed words, brightness applied first,
// packing second. This is the only path from samples to words.
func words(f frame.Frame, brightness int) []uint32 {
	out := make([]uint32, len(f.Pix))
	for i, s := range f.Pix {
		out[i] = pixel.Encode(s, brightness)
	}
	return out
}

// writeWords writes words as 16# tokens, comma-separated, breaking the
// line after every perLine-th token.
func writeWords(b *strings.Builder, ws []uint32, perLine int, indent string) {
	for i, w := range ws {
		if i%perLine == 0 {
			b.WriteString(indent)
		}
		b.WriteString("16#")
		b.WriteString(pixel.FormatWord(w))
		last := i == len(ws)-1
		if !last {
			b.WriteString(",")
		}
		if last || (i+1)%perLine == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
}
