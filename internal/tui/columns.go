package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one line of a two-column listing.
type Row struct {
	Key   string
	Value string
}

// AlignColumns renders rows with keys padded to the widest key so values
// line up. Width is measured with lipgloss.Width, so pre-styled values are fine.
// indent is prepended to every line; gap is the spacing between columns.
func AlignColumns(rows []Row, indent string, gap int, keyStyle lipgloss.Style) string {
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Key))
	}

	var sb strings.Builder
	for _, row := range rows {
		key := row.Key
		if !IsPlainMode() {
			key = keyStyle.Render(row.Key)
		}
		sb.WriteString(indent)
		sb.WriteString(key)
		sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(row.Key)+gap))
		sb.WriteString(row.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}
