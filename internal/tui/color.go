package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HexToRGB parses a "#RGB" or "#RRGGBB" hex string into its components.
// Anything else yields 0,0,0 and false.
func HexToRGB(hex string) (uint8, uint8, uint8, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

// InterpolateColor linearly interpolates between two hex colors.
// t ranges from 0.0 (from) to 1.0 (to).
func InterpolateColor(from, to string, t float64) string {
	r1, g1, b1, _ := HexToRGB(from)
	r2, g2, b2, _ := HexToRGB(to)
	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// GenerateGradient creates n hex colors interpolated between two endpoints.
func GenerateGradient(from, to string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n == 1 {
		return []string{from}
	}
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		colors[i] = InterpolateColor(from, to, t)
	}
	return colors
}

// GradientText renders text with a color gradient. Plain mode returns text as is.
func GradientText(text, from, to string) string {
	if IsPlainMode() {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	colors := GenerateGradient(from, to, len(runes))
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(string(r)))
	}
	return b.String()
}

// Swatch previews an icon color: a colored block followed by the hex value.
// Unparseable colors and plain mode show only the value.
func Swatch(hex string) string {
	r, g, b, ok := HexToRGB(hex)
	if !ok || IsPlainMode() {
		return hex
	}
	c := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
	return lipgloss.NewStyle().Foreground(c).Render(IconBlock+IconBlock) + " " + hex
}
