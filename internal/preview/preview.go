// Package preview renders a frame as colored half-blocks for the
// terminal, showing the matrix exactly as the runtime will light it:
// brightness applied and channels masked to their byte.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/pixel"
)

// Render draws the grid two pixel rows per text line, using the upper
// half block with the top pixel as foreground and the bottom pixel as
// background.
func Render(g frame.Grid, brightness int) string {
	var b strings.Builder
	for y := 0; y < g.Height; y += 2 {
		for x := 0; x < g.Width; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(g.At(x, y), brightness)))
			if y+1 < g.Height {
				style = style.Background(lipgloss.Color(hexColor(g.At(x, y+1), brightness)))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// hexColor renders a sample as the #RRGGBB the matrix will show.
func hexColor(s pixel.Sample, brightness int) string {
	w := pixel.Encode(s, brightness)
	return fmt.Sprintf("#%02X%02X%02X", uint8(w), uint8(w>>8), uint8(w>>16))
}
