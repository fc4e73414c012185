package indicators

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/types"
)

func TestDefaultCatalog_Badges(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name     string
		text     string
		hoverHas string
	}{
		{BadgeSemantic, "semantic", "pre-computed semantic index of this project's source."},
		{BadgeSearchBased, "search-based", "heuristic text-based search."},
		{BadgePartialHoverNoDefinition, "partial semantic", "Go to definition may be imprecise."},
		{BadgePartialDefinitionNoHover, "partial semantic", "This hover text may be imprecise."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := c.Badge(tt.name)
			if !ok {
				t.Fatalf("badge %q not found", tt.name)
			}
			if b.Text != tt.text {
				t.Errorf("Text = %q, want %q", b.Text, tt.text)
			}
			if b.LinkURL != DefaultPreciseURL {
				t.Errorf("LinkURL = %q, want %q", b.LinkURL, DefaultPreciseURL)
			}
			if !strings.HasSuffix(b.HoverMessage, tt.hoverHas) {
				t.Errorf("HoverMessage = %q, want suffix %q", b.HoverMessage, tt.hoverHas)
			}
		})
	}
}

func TestDefaultCatalog_Alerts(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name        string
		typ         types.AlertType
		message     string
		hasHover    bool
		dismissible bool
	}{
		{AlertLSIF, types.AlertLSIFAvailableNoCaveat, "Semantic result.", true, true},
		{AlertLSIFPartialHoverOnly, types.AlertLSIFAvailableNoCaveat, "Partial semantic result.", true, true},
		{AlertLSIFPartialDefinitionOnly, types.AlertLSIFAvailableNoCaveat, "Partial semantic result.", true, true},
		{AlertLSP, "", "Language server result.", true, false},
		{AlertSearchLSIFSupportRobust, "", "Search-based result.", true, false},
		{AlertSearchLSIFSupportExperimental, types.AlertSearchResultExperimentalLSIFSupport, "Search-based result.", true, true},
		{AlertSearchLSIFSupportNone, types.AlertSearchResultNoLSIFSupport, "Search-based result.", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := c.Alert(tt.name)
			if !ok {
				t.Fatalf("alert %q not found", tt.name)
			}
			if a.Type != tt.typ {
				t.Errorf("Type = %q, want %q", a.Type, tt.typ)
			}
			if a.Dismissible() != tt.dismissible {
				t.Errorf("Dismissible() = %v, want %v", a.Dismissible(), tt.dismissible)
			}
			if a.IconKind != types.IconKindInfo {
				t.Errorf("IconKind = %q, want info", a.IconKind)
			}
			want := tt.message + "<br /> [Learn more about precise code intelligence](" + DefaultPreciseURL + ")"
			if a.Summary.Value != want {
				t.Errorf("Summary = %q, want %q", a.Summary.Value, want)
			}
			if a.Summary.Kind != types.MarkupKindMarkdown {
				t.Errorf("Summary.Kind = %q, want markdown", a.Summary.Kind)
			}
			if (a.Badge.HoverMessage != "") != tt.hasHover {
				t.Errorf("Badge.HoverMessage = %q, hasHover want %v", a.Badge.HoverMessage, tt.hasHover)
			}
			if a.Badge.LinkURL != DefaultPreciseURL || a.Badge.Kind != types.IconKindInfo {
				t.Errorf("legacy badge = %+v", a.Badge)
			}
		})
	}
}

func TestDefaultCatalog_LegacyImprecise(t *testing.T) {
	c := DefaultCatalog()
	b, ok := c.Legacy(LegacyImprecise)
	if !ok {
		t.Fatal("legacy imprecise badge not found")
	}
	if b.Icon != icon.Encode("#ffffff") {
		t.Errorf("Icon should be the white info icon, got %q", b.Icon)
	}
	if b.Light.Icon != icon.Encode("#000000") {
		t.Errorf("Light.Icon should be the black info icon, got %q", b.Light.Icon)
	}
	if b.LinkURL != DefaultBasicURL {
		t.Errorf("LinkURL = %q, want %q", b.LinkURL, DefaultBasicURL)
	}
	if b.Kind != types.IconKindInfo {
		t.Errorf("Kind = %q, want info", b.Kind)
	}
}

func TestNewCatalog_CustomLinksAndPalette(t *testing.T) {
	links := Links{Precise: "https://docs.example.com/precise", Basic: "https://docs.example.com/basic"}
	palette := Palette{Dark: "#eeeeee", Light: "#111111"}
	c := NewCatalog(links, palette)

	for _, e := range c.EntriesOfKind(types.KindBadge) {
		if b := e.Value.(Badge); b.LinkURL != links.Precise {
			t.Errorf("badge %s LinkURL = %q", e.Name, b.LinkURL)
		}
	}
	a, _ := c.Alert(AlertLSP)
	if !strings.Contains(a.Summary.Value, "(https://docs.example.com/precise)") {
		t.Errorf("alert summary should link to custom docs: %q", a.Summary.Value)
	}
	b, _ := c.Legacy(LegacyImprecise)
	if b.LinkURL != links.Basic {
		t.Errorf("legacy LinkURL = %q", b.LinkURL)
	}
	markup, err := icon.Decode(b.Light.Icon)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(markup, `fill="#111111"`) {
		t.Errorf("light icon should use palette light color: %q", markup)
	}
	if c.Links() != links || c.Palette() != palette {
		t.Error("catalog should report the links and palette it was built with")
	}
}

func TestCatalog_Entries(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries()
	if len(entries) != 12 {
		t.Fatalf("Entries() has %d records, want 12", len(entries))
	}

	// Declaration order: badges, then alerts, then legacy.
	wantKinds := map[int]types.IndicatorKind{0: types.KindBadge, 3: types.KindBadge, 4: types.KindAlert, 10: types.KindAlert, 11: types.KindLegacy}
	for i, k := range wantKinds {
		if entries[i].Kind != k {
			t.Errorf("entries[%d].Kind = %q, want %q", i, entries[i].Kind, k)
		}
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.Name] {
			t.Errorf("duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
		if !e.Kind.Valid() {
			t.Errorf("entry %q has invalid kind %q", e.Name, e.Kind)
		}
	}

	entries[0].Name = "mutated"
	if c.Entries()[0].Name != BadgeSemantic {
		t.Error("Entries() must return a copy")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()
	e, ok := c.Lookup(AlertLSP)
	if !ok || e.Kind != types.KindAlert {
		t.Errorf("Lookup(lsp) = %+v, %v", e, ok)
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Error("Lookup of unknown name should fail")
	}
	if _, ok := c.Badge(AlertLSP); ok {
		t.Error("Badge() should not find alerts")
	}
	if n := len(c.EntriesOfKind(types.KindAlert)); n != 7 {
		t.Errorf("EntriesOfKind(alert) = %d, want 7", n)
	}
}

func TestHoverAlert_JSON(t *testing.T) {
	c := DefaultCatalog()

	a, _ := c.Alert(AlertSearchLSIFSupportNone)
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["type"] != "SearchResultNoLSIFSupport" || got["iconKind"] != "info" {
		t.Errorf("unexpected alert json: %s", data)
	}
	badge := got["badge"].(map[string]any)
	if _, ok := badge["hoverMessage"]; ok {
		t.Errorf("empty hoverMessage should be omitted: %s", data)
	}
	if badge["linkURL"] != DefaultPreciseURL {
		t.Errorf("badge.linkURL = %v", badge["linkURL"])
	}

	lsp, _ := c.Alert(AlertLSP)
	data, _ = json.Marshal(lsp)
	if strings.Contains(string(data), `"type"`) {
		t.Errorf("untyped alert should omit type: %s", data)
	}
}

func TestBadgeIndicator_JSON(t *testing.T) {
	b, _ := DefaultCatalog().Legacy(LegacyImprecise)
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{`"kind":"info"`, `"icon":"data:image/svg+xml;base64,`, `"light":{"icon":"data:image/svg+xml;base64,`, `"hoverMessage":`, `"linkURL":`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("legacy badge json missing %s: %s", key, data)
		}
	}
}
