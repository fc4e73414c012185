// Package indicators holds the precision indicators attached to code
// intelligence results: aggregable badges, hover alerts, and the legacy
// badge indicators still sent to hosts older than 3.26.
//
// Every record is built once by NewCatalog and never mutated. JSON field
// names match what the host extension API expects.
package indicators

import (
	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// Default documentation links.
const (
	DefaultPreciseURL = "https://docs.sourcegraph.com/code_intelligence/explanations/precise_code_intelligence"
	DefaultBasicURL   = "https://docs.sourcegraph.com/code_intelligence/explanations/basic_code_intelligence"
)

// Default legacy icon colors: white on dark themes, black on light themes.
const (
	DefaultDarkColor  icon.Color = "#ffffff"
	DefaultLightColor icon.Color = "#000000"
)

// Links are the documentation URLs indicators point at.
type Links struct {
	// Precise explains precise (semantic) code intelligence.
	Precise string
	// Basic explains search-based code intelligence.
	Basic string
}

// DefaultLinks returns the public documentation links.
func DefaultLinks() Links {
	return Links{Precise: DefaultPreciseURL, Basic: DefaultBasicURL}
}

// Palette is the pair of fill colors used for legacy badge icons.
type Palette struct {
	Dark  icon.Color
	Light icon.Color
}

// DefaultPalette returns white for dark themes and black for light themes.
func DefaultPalette() Palette {
	return Palette{Dark: DefaultDarkColor, Light: DefaultLightColor}
}

// Badge is an aggregable badge. Hosts aggregate these per file to show
// overall result precision.
type Badge struct {
	Text         string `json:"text"`
	LinkURL      string `json:"linkURL"`
	HoverMessage string `json:"hoverMessage"`
}

// MarkupContent is formatted text shown in a hover.
type MarkupContent struct {
	Kind  types.MarkupKind `json:"kind"`
	Value string           `json:"value"`
}

// LegacyBadge is the badge payload older hosts read from a hover alert.
type LegacyBadge struct {
	Kind         types.IconKind `json:"kind"`
	LinkURL      string         `json:"linkURL"`
	HoverMessage string         `json:"hoverMessage,omitempty"`
}

// HoverAlert is shown in the hover overlay for the first result only.
type HoverAlert struct {
	Type     types.AlertType `json:"type,omitempty"`
	IconKind types.IconKind  `json:"iconKind"`
	Summary  MarkupContent   `json:"summary"`
	Badge    LegacyBadge     `json:"badge"`
}

// Dismissible reports whether the host can remember a dismissal of a.
func (a HoverAlert) Dismissible() bool {
	return a.Type != ""
}

// ThemedIcon overrides the icon for a specific editor theme.
type ThemedIcon struct {
	Icon icon.URI `json:"icon"`
}

// BadgeIndicator is the badge format deprecated in 3.26.
type BadgeIndicator struct {
	Kind         types.IconKind `json:"kind"`
	Icon         icon.URI       `json:"icon"`
	Light        ThemedIcon     `json:"light"`
	HoverMessage string         `json:"hoverMessage"`
	LinkURL      string         `json:"linkURL"`
}
