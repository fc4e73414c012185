package tui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// plainMode disables all styling: no colors, no icons, no hyperlinks.
// Output is clean text suitable for CI, pipes, or --no-color.
var (
	plainMode bool
	plainOnce sync.Once
	plainMu   sync.RWMutex
)

// initPlainMode auto-detects plain mode from the environment on first call.
// Precedence: NO_COLOR > TTY detection > color profile detection.
func initPlainMode() {
	plainOnce.Do(func() {
		// https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			plainMode = true
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
			plainMode = true
			return
		}
		if termenv.NewOutput(os.Stdout).EnvColorProfile() == termenv.Ascii {
			plainMode = true
		}
	})
}

// SetPlainMode explicitly enables or disables plain mode.
// Call this early (e.g. when parsing --no-color) before any output.
func SetPlainMode(plain bool) {
	plainMu.Lock()
	defer plainMu.Unlock()
	plainMode = plain
	plainOnce.Do(func() {})
}

// IsPlainMode returns true if styling is disabled.
func IsPlainMode() bool {
	initPlainMode()
	plainMu.RLock()
	defer plainMu.RUnlock()
	return plainMode
}

// Palette: cool blues for precise results, amber for search-based ones.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F5FAD", Dark: "#5AA9F5"} // Indigo Blue
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#3B6E8F", Dark: "#8BC4E8"} // Sky
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D4F", Dark: "#6CC4A1"} // Mint
	ColorError   = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#E5534B"} // Red
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F2C14E"} // Amber
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#3B6E8F", Dark: "#8FB3D9"} // Pale Blue
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#8B949E"} // Gray
)

// Reusable styles.
var (
	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSuccess  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError    = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning  = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo     = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted    = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold     = lipgloss.NewStyle().Bold(true)
	StyleAccent   = lipgloss.NewStyle().Foreground(ColorAccent)

	stylePrefix = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// Indicator kind styles
	StyleBadgeKind  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleAlertKind  = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleLegacyKind = lipgloss.NewStyle().Foreground(ColorWarning)
)

// Prefix returns the branded [codeintel] prefix string.
func Prefix() string {
	if IsPlainMode() {
		return "[codeintel]"
	}
	return stylePrefix.Render("[codeintel]")
}

// KindStyle returns the style for an indicator kind.
func KindStyle(kind string) lipgloss.Style {
	switch kind {
	case "badge":
		return StyleBadgeKind
	case "alert":
		return StyleAlertKind
	case "legacy":
		return StyleLegacyKind
	default:
		return StyleMuted
	}
}

// KindBadge returns a styled kind tag like "▪ ALERT".
func KindBadge(kind string) string {
	label := kindLabel(kind)
	if IsPlainMode() {
		return "[" + label + "]"
	}
	return KindStyle(kind).Render(IconSquare + " " + label)
}

func kindLabel(kind string) string {
	switch kind {
	case "badge":
		return "BADGE"
	case "alert":
		return "ALERT"
	case "legacy":
		return "LEGACY"
	default:
		return kind
	}
}

// hyperlinkTerminals are terminals known to render OSC 8 links.
var hyperlinkTerminals = map[string]bool{
	"vscode":    true,
	"iTerm.app": true,
	"WezTerm":   true,
	"ghostty":   true,
}

// supportsHyperlinks reports whether the terminal described by getenv
// renders OSC 8 hyperlinks.
func supportsHyperlinks(getenv func(string) string) bool {
	if hyperlinkTerminals[getenv("TERM_PROGRAM")] {
		return true
	}
	for _, key := range []string{"WT_SESSION", "KITTY_WINDOW_ID", "VTE_VERSION", "WEZTERM_EXECUTABLE"} {
		if getenv(key) != "" {
			return true
		}
	}
	return false
}

// Separator returns a section separator bar.
func Separator(title string) string {
	if IsPlainMode() {
		if title == "" {
			return "---"
		}
		return "--- " + title + " ---"
	}
	trail := GradientText("━━━━━━━━━━━━━━━━━━━━━━━━", "#5AA9F5", "#2B3440")
	if title == "" {
		return StyleMuted.Render("▸▸") + trail
	}
	return StyleAccent.Render("▸▸ ") + StyleBold.Render(title) + StyleAccent.Render(" ▸▸") + trail
}

// Hyperlink wraps text in an OSC 8 clickable link if the terminal supports it.
// Falls back to plain text when unsupported or in plain mode.
func Hyperlink(url, text string) string {
	if url == "" || IsPlainMode() || !supportsHyperlinks(os.Getenv) {
		return text
	}
	return termenv.Hyperlink(url, text)
}

var (
	styleFaint  = lipgloss.NewStyle().Faint(true)
	styleItalic = lipgloss.NewStyle().Italic(true)
)

// Faint returns dimmed text outside plain mode.
func Faint(text string) string {
	if IsPlainMode() {
		return text
	}
	return styleFaint.Render(text)
}

// Italic returns italic text outside plain mode.
func Italic(text string) string {
	if IsPlainMode() {
		return text
	}
	return styleItalic.Render(text)
}
