package emit

import (
	"fmt"
	"strings"

	"github.com/llehouerou/ledforge/internal/frame"
)

// StructuredText renders a sequence as ST variable declarations: one DWORD
// array per frame, a pointer array indexing them, and a usage comment.
// Array literals break after every width-th token so each emitted line is
// one matrix row.
func StructuredText(seq *frame.Sequence, spec Spec) string {
	name := spec.ident()
	count := seq.Len()
	pixels := seq.Width() * seq.Height()

	var b strings.Builder
	writeHeader(&b, seq, spec)

	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, "\naFrame_%s_%03d : ARRAY[0..%d] OF DWORD := [\n",
			name, i, pixels-1)
		writeWords(&b, words(seq.Frame(i), spec.Brightness), seq.Width(), "\t")
		b.WriteString("];\n")
	}

	fmt.Fprintf(&b, "\napFrames_%s : ARRAY[0..%d] OF POINTER TO DWORD := [\n",
		name, count-1)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, "\tADR(aFrame_%s_%03d)", name, i)
		if i < count-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("];\n")

	b.WriteString("\n(*\n  Usage:\n")
	fmt.Fprintf(&b, "    nFrame := (nFrame + 1) MOD %d;\n", count)
	fmt.Fprintf(&b, "    MEMCPY(ADR(aMatrix), apFrames_%s[nFrame], %d * SIZEOF(DWORD));\n",
		name, pixels)
	b.WriteString("*)\n")
	return b.String()
}

// StructuredTextImage is the single-image shape: the same array rules
// without the multi-frame wrapper.
func StructuredTextImage(f frame.Frame, spec Spec) string {
	name := spec.ident()
	pixels := f.Width * f.Height

	var b strings.Builder
	writeImageHeader(&b, f, spec)

	fmt.Fprintf(&b, "\naImage_%s : ARRAY[0..%d] OF DWORD := [\n", name, pixels-1)
	writeWords(&b, words(f, spec.Brightness), f.Width, "\t")
	b.WriteString("];\n")

	b.WriteString("\n(*\n  Usage:\n")
	fmt.Fprintf(&b, "    MEMCPY(ADR(aMatrix), ADR(aImage_%s), %d * SIZEOF(DWORD));\n",
		name, pixels)
	b.WriteString("*)\n")
	return b.String()
}

// writeHeader writes the metadata comment block shared by the ST and
// container artifacts.
func writeHeader(b *strings.Builder, seq *frame.Sequence, spec Spec) {
	b.WriteString("(*\n")
	fmt.Fprintf(b, "  Animation  : %s\n", spec.Name)
	fmt.Fprintf(b, "  Frames     : %d\n", seq.Len())
	fmt.Fprintf(b, "  Resolution : %dx%d (%d px/frame)\n",
		seq.Width(), seq.Height(), seq.Width()*seq.Height())
	fmt.Fprintf(b, "  Frame rate : %d fps\n", spec.FPS)
	fmt.Fprintf(b, "  Duration   : %.3f s\n",
		float64(seq.Len())/float64(spec.FPS))
	fmt.Fprintf(b, "  Brightness : %d%%\n", spec.Brightness)
	fmt.Fprintf(b, "  Memory     : %s\n", seq.Memory())
	b.WriteString("*)\n")
}

// writeImageHeader is the single-image variant: no frame count, rate or
// duration lines.
func writeImageHeader(b *strings.Builder, f frame.Frame, spec Spec) {
	b.WriteString("(*\n")
	fmt.Fprintf(b, "  Image      : %s\n", spec.Name)
	fmt.Fprintf(b, "  Resolution : %dx%d (%d px/frame)\n",
		f.Width, f.Height, f.Width*f.Height)
	fmt.Fprintf(b, "  Brightness : %d%%\n", spec.Brightness)
	fmt.Fprintf(b, "  Memory     : %s\n", frame.Memory(f.Width, f.Height, 1))
	b.WriteString("*)\n")
}
