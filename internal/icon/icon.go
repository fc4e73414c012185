// Package icon builds the inline info icon shown on legacy precision badges.
//
// The icon is an SVG template with a single fill color. It is flattened to one
// line and embedded as a base64 data URI so hosts can render it without a fetch.
package icon

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DataURIPrefix is the media type and encoding token hosts decode the icon with.
const DataURIPrefix = "data:image/svg+xml;base64,"

// ErrNotDataURI is returned by Decode when the input lacks DataURIPrefix.
var ErrNotDataURI = errors.New("not an svg base64 data uri")

// Color is a value for the SVG fill attribute. It is substituted verbatim.
type Color string

// URI is a self-contained data URI holding an encoded SVG image.
type URI string

func (u URI) String() string { return string(u) }

// infoTemplate is the Material "information-outline" glyph. Indentation is
// for reading only; Normalize removes it before encoding.
const infoTemplate = `<svg xmlns='http://www.w3.org/2000/svg' style="width:24px;height:24px" viewBox="0 0 24 24" fill="%s">
    <path d="
        M11,
        9H13V7H11M12,
        20C7.59,
        20 4,
        16.41 4,
        12C4,
        7.59 7.59,
        4 12,
        4C16.41,
        4 20,
        7.59 20,
        12C20,
        16.41 16.41,
        20 12,
        20M12,
        2A10,
        10 0 0,
        0 2,
        12A10,
        10 0 0,
        0 12,
        22A10,
        10 0 0,
        0 22,
        12A10,
        10 0 0,
        0 12,
        2M11,
        17H13V11H11V17Z"
    />
</svg>`

// InfoMarkup returns the indented, multi-line info icon markup filled with color.
func InfoMarkup(color Color) string {
	return fmt.Sprintf(infoTemplate, string(color))
}

// Normalize flattens markup to a single line: leading whitespace is stripped
// from every line and the lines are joined with one space.
func Normalize(markup string) string {
	lines := strings.Split(markup, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, " ")
}

// EncodeMarkup normalizes markup and wraps it in a base64 SVG data URI.
func EncodeMarkup(markup string) URI {
	return URI(DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(Normalize(markup))))
}

// Encode returns the info icon in the given color as a data URI.
// It never fails and is safe for concurrent use.
func Encode(color Color) URI {
	return EncodeMarkup(InfoMarkup(color))
}

// Decode returns the markup carried by an SVG data URI produced by Encode.
func Decode(uri URI) (string, error) {
	payload, ok := strings.CutPrefix(string(uri), DataURIPrefix)
	if !ok {
		return "", ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode icon payload: %w", err)
	}
	return string(raw), nil
}

// IsHex reports whether c is a #RGB, #RRGGBB or #RRGGBBAA hex color.
// Encode does not call it; it is for callers handling untrusted input.
func (c Color) IsHex() bool {
	s, ok := strings.CutPrefix(string(c), "#")
	if !ok {
		return false
	}
	switch len(s) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
