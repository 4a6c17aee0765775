package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws l as a single terminal row. Every span inherits base, so the
// fixed foreground and background colors survive emphasis changes.
func Render(l Line, base lipgloss.Style) string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(spanStyle(base, s.Style).Render(s.Text))
	}
	return b.String()
}

func spanStyle(base lipgloss.Style, s Style) lipgloss.Style {
	switch s {
	case Bold:
		return base.Bold(true)
	case Underline:
		return base.Underline(true)
	case Italic:
		return base.Italic(true)
	default:
		return base
	}
}
