// Package pixel defines the color sample type and the packed-word codec
// used by every emitted artifact.
//
// The packed layout is the format contract with the matrix runtime: red in
// bits 0-7, green in bits 8-15, blue in bits 16-23, the top byte always
// zero. Alpha never reaches the wire.
package pixel

import "fmt"

// Sample is one decoded color sample. Channels are raw 8-bit values as
// handed over by the image loader; A is carried along but never packed.
type Sample struct {
	R, G, B, A uint8
}

// Scaled is a sample after brightness scaling. Channels are kept wide on
// purpose: a brightness above 100% can push a channel past 255 and the
// runtime format hides that only behind the packing mask. Truncating any
// earlier would change the emitted words.
type Scaled struct {
	R, G, B int
	A       uint8
}

// Pack packs a sample into the runtime word layout.
func Pack(s Sample) uint32 {
	return uint32(s.R) | uint32(s.G)<<8 | uint32(s.B)<<16
}

// PackScaled packs a brightness-scaled sample. Each channel is masked to
// its byte at this point and nowhere else, so overflowed channels wrap
// exactly like the original tool's output.
func PackScaled(s Scaled) uint32 {
	return uint32(s.R&0xFF) | uint32(s.G&0xFF)<<8 | uint32(s.B&0xFF)<<16
}

// Scale applies a brightness percentage to a sample. Each color channel is
// multiplied by percent/100 and rounded half-up. Results below zero clamp
// to zero; results above 255 are kept as-is (see Scaled). Alpha passes
// through untouched.
func Scale(s Sample, percent int) Scaled {
	return Scaled{
		R: scaleChannel(s.R, percent),
		G: scaleChannel(s.G, percent),
		B: scaleChannel(s.B, percent),
		A: s.A,
	}
}

func scaleChannel(v uint8, percent int) int {
	// Integer round-half-up of v*percent/100; both factors are
	// non-negative here.
	scaled := (int(v)*percent + 50) / 100
	if scaled < 0 {
		return 0
	}
	return scaled
}

// Encode is the one composition every artifact goes through: scale first,
// pack second. At 100% it reduces to Pack(s) bit for bit.
func Encode(s Sample, percent int) uint32 {
	if percent == 100 {
		return Pack(s)
	}
	return PackScaled(Scale(s, percent))
}

// FormatWord renders a packed word as 8 uppercase hex digits, the token
// body shared by the 16# and 0x notations.
func FormatWord(w uint32) string {
	return fmt.Sprintf("%08X", w)
}

// ParseWord parses the 8-hex-digit body produced by FormatWord, after any
// 16# or 0x prefix has been stripped.
func ParseWord(s string) (uint32, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("packed word %q: want 8 hex digits", s)
	}
	var w uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		default:
			return 0, fmt.Errorf("packed word %q: bad digit %q", s, c)
		}
		w = w<<4 | d
	}
	return w, nil
}
