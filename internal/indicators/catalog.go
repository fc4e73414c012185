package indicators

import (
	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// Badge names.
const (
	BadgeSemantic                 = "semantic"
	BadgeSearchBased              = "search-based"
	BadgePartialHoverNoDefinition = "partial-hover-no-definition"
	BadgePartialDefinitionNoHover = "partial-definition-no-hover"
)

// Alert names.
const (
	AlertLSIF                          = "lsif"
	AlertLSIFPartialHoverOnly          = "lsif-partial-hover-only"
	AlertLSIFPartialDefinitionOnly     = "lsif-partial-definition-only"
	AlertLSP                           = "lsp"
	AlertSearchLSIFSupportRobust       = "search-lsif-support-robust"
	AlertSearchLSIFSupportExperimental = "search-lsif-support-experimental"
	AlertSearchLSIFSupportNone         = "search-lsif-support-none"
)

// LegacyImprecise is the legacy badge placed on all search-based results.
const LegacyImprecise = "imprecise"

const (
	hoverSemantic           = "This data comes from a pre-computed semantic index of this project's source."
	hoverSearchBased        = "This data is generated by a heuristic text-based search."
	hoverPartialNoIndexRepo = "It looks like this symbol is defined in another repository that does not have a pre-computed semantic index."
	hoverPartialClickToFix  = hoverPartialNoIndexRepo + " Click to learn how to make these results precise by enabling semantic indexing for that project."
)

// Entry is one named record in a catalog.
type Entry struct {
	Name  string              `json:"name"`
	Kind  types.IndicatorKind `json:"kind"`
	Value any                 `json:"value"`
}

// Catalog is the full set of indicators for one set of links and colors.
// It is immutable after NewCatalog returns and safe for concurrent reads.
type Catalog struct {
	links   Links
	palette Palette

	entries []Entry
	badges  map[string]Badge
	alerts  map[string]HoverAlert
	legacy  map[string]BadgeIndicator
}

// NewCatalog builds every badge, alert and legacy indicator.
func NewCatalog(links Links, palette Palette) *Catalog {
	c := &Catalog{
		links:   links,
		palette: palette,
		badges:  make(map[string]Badge),
		alerts:  make(map[string]HoverAlert),
		legacy:  make(map[string]BadgeIndicator),
	}

	c.addBadge(BadgeSemantic, Badge{
		Text:         "semantic",
		LinkURL:      links.Precise,
		HoverMessage: hoverSemantic,
	})
	c.addBadge(BadgeSearchBased, Badge{
		Text:         "search-based",
		LinkURL:      links.Precise,
		HoverMessage: hoverSearchBased,
	})
	c.addBadge(BadgePartialHoverNoDefinition, Badge{
		Text:         "partial semantic",
		LinkURL:      links.Precise,
		HoverMessage: hoverPartialNoIndexRepo + " Go to definition may be imprecise.",
	})
	c.addBadge(BadgePartialDefinitionNoHover, Badge{
		Text:         "partial semantic",
		LinkURL:      links.Precise,
		HoverMessage: hoverPartialNoIndexRepo + " This hover text may be imprecise.",
	})

	c.addAlert(AlertLSIF, AlertSpec{
		Type:         types.AlertLSIFAvailableNoCaveat,
		Message:      "Semantic result.",
		HoverMessage: hoverSemantic + " Click to learn how to add this capability to all of your projects!",
	})
	c.addAlert(AlertLSIFPartialHoverOnly, AlertSpec{
		Type:         types.AlertLSIFAvailableNoCaveat,
		Message:      "Partial semantic result.",
		HoverMessage: hoverPartialClickToFix,
	})
	c.addAlert(AlertLSIFPartialDefinitionOnly, AlertSpec{
		Type:         types.AlertLSIFAvailableNoCaveat,
		Message:      "Partial semantic result.",
		HoverMessage: hoverPartialClickToFix,
	})
	// Untyped alerts are non-dismissable.
	c.addAlert(AlertLSP, AlertSpec{
		Message:      "Language server result.",
		HoverMessage: "This data comes from a language server running in the cloud. Click to learn how to improve the reliability of this result by enabling semantic indexing.",
	})
	c.addAlert(AlertSearchLSIFSupportRobust, AlertSpec{
		Message:      "Search-based result.",
		HoverMessage: hoverSearchBased + " Click to learn how to make these results precise by enabling semantic indexing for this project.",
	})
	c.addAlert(AlertSearchLSIFSupportExperimental, AlertSpec{
		Type:         types.AlertSearchResultExperimentalLSIFSupport,
		Message:      "Search-based result.",
		HoverMessage: hoverSearchBased + " Existing semantic indexers for this language aren't totally robust yet, but you can click here to learn how to give them a try.",
	})
	c.addAlert(AlertSearchLSIFSupportNone, AlertSpec{
		Type:    types.AlertSearchResultNoLSIFSupport,
		Message: "Search-based result.",
	})

	c.addLegacy(LegacyImprecise, BadgeIndicator{
		Kind:         types.IconKindInfo,
		Icon:         icon.Encode(palette.Dark),
		Light:        ThemedIcon{Icon: icon.Encode(palette.Light)},
		HoverMessage: "Search-based results - click to see how these results are calculated and how to get precise intelligence with LSIF.",
		LinkURL:      links.Basic,
	})

	return c
}

// DefaultCatalog returns the catalog for the public docs links and default colors.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultLinks(), DefaultPalette())
}

func (c *Catalog) addBadge(name string, b Badge) {
	c.badges[name] = b
	c.entries = append(c.entries, Entry{Name: name, Kind: types.KindBadge, Value: b})
}

func (c *Catalog) addAlert(name string, spec AlertSpec) {
	a := NewAlert(spec, c.links)
	c.alerts[name] = a
	c.entries = append(c.entries, Entry{Name: name, Kind: types.KindAlert, Value: a})
}

func (c *Catalog) addLegacy(name string, b BadgeIndicator) {
	c.legacy[name] = b
	c.entries = append(c.entries, Entry{Name: name, Kind: types.KindLegacy, Value: b})
}

// Links returns the documentation links the catalog was built with.
func (c *Catalog) Links() Links { return c.links }

// Palette returns the legacy icon colors the catalog was built with.
func (c *Catalog) Palette() Palette { return c.palette }

// Badge looks up an aggregable badge by name.
func (c *Catalog) Badge(name string) (Badge, bool) {
	b, ok := c.badges[name]
	return b, ok
}

// Alert looks up a hover alert by name.
func (c *Catalog) Alert(name string) (HoverAlert, bool) {
	a, ok := c.alerts[name]
	return a, ok
}

// Legacy looks up a legacy badge indicator by name.
func (c *Catalog) Legacy(name string) (BadgeIndicator, bool) {
	b, ok := c.legacy[name]
	return b, ok
}

// Lookup finds a record by name across all kinds.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns every record in declaration order: badges, alerts, legacy.
// The returned slice is a copy.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// EntriesOfKind returns the records of a single kind in declaration order.
func (c *Catalog) EntriesOfKind(kind types.IndicatorKind) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
