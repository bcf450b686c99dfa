// Package preview renders colors as terminal swatches.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzimandl/cnc-tskit/colors"
)

const blockWidth = 6

// Line renders a single color as a colored block followed by its hex and
// rgba forms. In terminals without color support the block degrades to
// plain spaces; the textual forms always carry the information.
func Line(c colors.RGBA) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", blockWidth))

	return fmt.Sprintf("%s  %s  %s", block, c.Hex(), c.String())
}

// Render renders a palette, one swatch line per color.
func Render(palette []colors.RGBA) string {
	lines := make([]string, 0, len(palette))
	for _, c := range palette {
		lines = append(lines, Line(c))
	}
	return strings.Join(lines, "\n")
}
