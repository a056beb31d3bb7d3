package emit

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainer_Golden(t *testing.T) {
	seq := wordSequence(t, 4, 2, []uint32{1, 2, 3, 4, 5, 6, 7, 8})
	spec := Spec{Name: "grid", Brightness: 100, FPS: 5}

	want := `<?xml version="1.0" encoding="utf-8"?>
<TcPlcObject Version="1.1.0.1" ProductVersion="3.1.4024.12">
  <GVL Name="GVL_grid" Id="{00000000-0000-4000-8000-000000000000}">
    <Declaration><![CDATA[(*
  Animation  : grid
  Frames     : 1
  Resolution : 4x2 (8 px/frame)
  Frame rate : 5 fps
  Duration   : 0.200 s
  Brightness : 100%
  Memory     : 32 B (1 frames x 32 B)
*)
VAR_GLOBAL
	aFrame_grid_000 : ARRAY[0..7] OF DWORD := [
		16#00000001, 16#00000002, 16#00000003, 16#00000004,
		16#00000005, 16#00000006, 16#00000007, 16#00000008
	];
END_VAR
]]></Declaration>
  </GVL>
</TcPlcObject>
`
	got := containerWithID(seq, spec, "00000000-0000-4000-8000-000000000000")
	require.Equal(t, want, got)
}

func TestContainer_WrapsEveryFourTokens(t *testing.T) {
	// Width 5: the container ignores row width and wraps every 4 tokens.
	seq := wordSequence(t, 5, 1, []uint32{1, 2, 3, 4, 5})
	out := Container(seq, Spec{Name: "w", Brightness: 100, FPS: 1})

	require.Contains(t, out,
		"\t\t16#00000001, 16#00000002, 16#00000003, 16#00000004,\n\t\t16#00000005\n")
}

// v4 UUID with fixed version nibble and variant in [89ab].
var idRe = regexp.MustCompile(
	`Id="\{[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\}"`)

func TestContainer_GeneratedIdentifierShape(t *testing.T) {
	seq := wordSequence(t, 1, 1, []uint32{0})
	for i := 0; i < 16; i++ {
		out := Container(seq, Spec{Name: "id", Brightness: 100, FPS: 1})
		require.Regexp(t, idRe, out)
	}
}

func TestContainer_IdentifiersDiffer(t *testing.T) {
	seq := wordSequence(t, 1, 1, []uint32{0})
	spec := Spec{Name: "id", Brightness: 100, FPS: 1}
	a := Container(seq, spec)
	b := Container(seq, spec)
	require.NotEqual(t, a, b)
}
