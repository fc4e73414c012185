package indicatorlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/tui"
	"github.com/AgentShepherd/codeintel/internal/types"
)

func plain(t *testing.T) {
	t.Helper()
	tui.SetPlainMode(true)
	t.Cleanup(func() { tui.SetPlainMode(false) })
}

func TestRenderPlain_GroupsByKind(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	if err := RenderPlain(&buf, indicators.DefaultCatalog().Entries()); err != nil {
		t.Fatalf("RenderPlain: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Code Intelligence Indicators (12 total)\n") {
		t.Errorf("missing header: %q", out[:60])
	}
	badges := strings.Index(out, "--- Aggregable Badges ---")
	alerts := strings.Index(out, "--- Hover Alerts ---")
	legacy := strings.Index(out, "--- Legacy Badge Indicators ---")
	if badges < 0 || alerts < badges || legacy < alerts {
		t.Errorf("groups out of order: badges=%d alerts=%d legacy=%d", badges, alerts, legacy)
	}
	for _, want := range []string{
		"[BADGE] semantic",
		"[ALERT] lsp",
		"Language server result.  (non-dismissible)",
		"Semantic result.  (LSIFAvailableNoCaveat)",
		"[LEGACY] imprecise",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderPlain_SkipsEmptyGroups(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	entries := indicators.DefaultCatalog().EntriesOfKind(types.KindLegacy)
	if err := RenderPlain(&buf, entries); err != nil {
		t.Fatalf("RenderPlain: %v", err)
	}
	if strings.Contains(buf.String(), "Hover Alerts") {
		t.Errorf("empty groups should be omitted: %q", buf.String())
	}
}

func TestDetails(t *testing.T) {
	plain(t)
	c := indicators.DefaultCatalog()

	e, _ := c.Lookup(indicators.AlertSearchLSIFSupportNone)
	rows := Details(e)
	got := map[string]string{}
	for _, r := range rows {
		got[r.Key] = r.Value
	}
	if got["type"] != "SearchResultNoLSIFSupport" {
		t.Errorf("type = %q", got["type"])
	}
	if got["badge.hoverMessage"] != "(none)" {
		t.Errorf("badge.hoverMessage = %q", got["badge.hoverMessage"])
	}

	e, _ = c.Lookup(indicators.LegacyImprecise)
	for _, r := range Details(e) {
		if r.Key == "icon" && (!strings.HasPrefix(r.Value, "data:image/svg+xml;base64,") || !strings.HasSuffix(r.Value, "...")) {
			t.Errorf("icon should be a truncated data uri: %q", r.Value)
		}
	}
}

func TestRenderDetails(t *testing.T) {
	plain(t)
	e, _ := indicators.DefaultCatalog().Lookup(indicators.BadgeSearchBased)
	var buf bytes.Buffer
	RenderDetails(&buf, e)
	out := buf.String()
	if !strings.HasPrefix(out, "[BADGE] search-based\n") {
		t.Errorf("header = %q", out)
	}
	if !strings.Contains(out, "  text          search-based\n") {
		t.Errorf("rows should be aligned: %q", out)
	}
}

func TestBuildListItems(t *testing.T) {
	items := buildListItems(indicators.DefaultCatalog().Entries())
	// 12 entries + 3 group headers
	if len(items) != 15 {
		t.Fatalf("len(items) = %d, want 15", len(items))
	}
	if _, ok := items[0].(headerItem); !ok {
		t.Error("first item should be a group header")
	}
	if ei, ok := items[1].(entryItem); !ok || ei.entry.Name != indicators.BadgeSemantic {
		t.Errorf("items[1] = %#v", items[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("abcdefghijkl", 8); got != "abcde..." {
		t.Errorf("truncate long = %q", got)
	}
}
