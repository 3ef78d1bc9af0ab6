// Package theme renders banners and colored lines for terminal output.
package theme

import (
	"io"
	"strconv"
	"strings"

	"github.com/amirkhaki/gruvcrisp/pkg/records"
	"github.com/charmbracelet/lipgloss"
)

// Theme paints text with the eight basic ANSI colors. A disabled Theme
// returns text unchanged.
type Theme struct {
	enabled bool
	styles  [records.ColorCount]lipgloss.Style
}

// New returns a Theme rendering for w. Color output still depends on w being
// a terminal that supports it.
func New(w io.Writer, enabled bool) *Theme {
	t := &Theme{enabled: enabled}
	r := lipgloss.NewRenderer(w)
	for c := records.ColorBlack; c < records.ColorCount; c++ {
		t.styles[c] = r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	}
	return t
}

// Paint renders s in color c.
func (t *Theme) Paint(c records.ColorIndex, s string) string {
	if t == nil || !t.enabled || c >= records.ColorCount {
		return s
	}
	return t.styles[c].Render(s)
}

// Banner frames text in a box of asterisks, with a blank line before and
// after.
func Banner(text string) string {
	border := strings.Repeat("*", len(text)+4)
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(border)
	sb.WriteString("\n* ")
	sb.WriteString(text)
	sb.WriteString(" *\n")
	sb.WriteString(border)
	sb.WriteString("\n\n")
	return sb.String()
}
