package tui

// Icons. Color carries the signal; the glyph reinforces it.
const (
	IconCheck   = "✔" // ✔ success
	IconCross   = "✖" // ✖ error
	IconWarning = "⚠" // ⚠ warning
	IconInfo    = "ℹ" // ℹ info, matches the info icon kind
	IconDot     = "●" // ● dismissible alert
	IconCircle  = "○" // ○ non-dismissible alert
	IconSquare  = "▪" // ▪ kind tag
	IconLink    = "↗" // ↗ docs link
	IconBlock   = "█" // █ color swatch
)
