package emit

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/llehouerou/ledforge/internal/frame"
)

// containerWrap is the token wrap inside the GVL declaration. The project
// importer prefers narrow literals over row-per-line layout.
const containerWrap = 4

// Container renders a sequence as a project-importable GVL file: an XML
// scaffold around one CDATA declaration block, with a random v4 object id.
func Container(seq *frame.Sequence, spec Spec) string {
	return containerWithID(seq, spec, uuid.NewString())
}

func containerWithID(seq *frame.Sequence, spec Spec, id string) string {
	name := spec.ident()
	pixels := seq.Width() * seq.Height()

	var decl strings.Builder
	writeHeader(&decl, seq, spec)
	decl.WriteString("VAR_GLOBAL\n")
	for i := 0; i < seq.Len(); i++ {
		fmt.Fprintf(&decl, "\taFrame_%s_%03d : ARRAY[0..%d] OF DWORD := [\n",
			name, i, pixels-1)
		writeWords(&decl, words(seq.Frame(i), spec.Brightness), containerWrap, "\t\t")
		decl.WriteString("\t];\n")
	}
	decl.WriteString("END_VAR\n")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString("<TcPlcObject Version=\"1.1.0.1\" ProductVersion=\"3.1.4024.12\">\n")
	fmt.Fprintf(&b, "  <GVL Name=\"GVL_%s\" Id=\"{%s}\">\n", name, id)
	fmt.Fprintf(&b, "    <Declaration><![CDATA[%s]]></Declaration>\n", decl.String())
	b.WriteString("  </GVL>\n")
	b.WriteString("</TcPlcObject>\n")
	return b.String()
}
