// Package indicatorlist shows the indicator catalog in a terminal: a
// filterable interactive list, or plain grouped text when styling is off.
package indicatorlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/tui"
	"github.com/AgentShepherd/codeintel/internal/types"
)

var groupTitles = map[types.IndicatorKind]string{
	types.KindBadge:  "Aggregable Badges",
	types.KindAlert:  "Hover Alerts",
	types.KindLegacy: "Legacy Badge Indicators",
}

// Summary returns a one-line description of an entry.
func Summary(e indicators.Entry) string {
	switch v := e.Value.(type) {
	case indicators.Badge:
		return fmt.Sprintf("%q  %s", v.Text, v.HoverMessage)
	case indicators.HoverAlert:
		msg, _, _ := strings.Cut(v.Summary.Value, "<br />")
		if v.Dismissible() {
			return fmt.Sprintf("%s  (%s)", msg, v.Type)
		}
		return msg + "  (non-dismissible)"
	case indicators.BadgeIndicator:
		return v.HoverMessage
	}
	return ""
}

// Details returns the fields of an entry as aligned rows.
func Details(e indicators.Entry) []tui.Row {
	switch v := e.Value.(type) {
	case indicators.Badge:
		return []tui.Row{
			{Key: "text", Value: v.Text},
			{Key: "hoverMessage", Value: v.HoverMessage},
			{Key: "linkURL", Value: link(v.LinkURL)},
		}
	case indicators.HoverAlert:
		typ := string(v.Type)
		if typ == "" {
			typ = tui.Italic("(none, non-dismissible)")
		}
		hover := v.Badge.HoverMessage
		if hover == "" {
			hover = tui.Faint("(none)")
		}
		return []tui.Row{
			{Key: "type", Value: typ},
			{Key: "iconKind", Value: string(v.IconKind)},
			{Key: "summary", Value: v.Summary.Value},
			{Key: "badge.hoverMessage", Value: hover},
			{Key: "badge.linkURL", Value: link(v.Badge.LinkURL)},
		}
	case indicators.BadgeIndicator:
		return []tui.Row{
			{Key: "kind", Value: string(v.Kind)},
			{Key: "hoverMessage", Value: v.HoverMessage},
			{Key: "linkURL", Value: link(v.LinkURL)},
			{Key: "icon", Value: truncate(string(v.Icon), 60)},
			{Key: "light.icon", Value: truncate(string(v.Light.Icon), 60)},
		}
	}
	return nil
}

// RenderPlain writes entries as plain text grouped by kind.
func RenderPlain(w io.Writer, entries []indicators.Entry) error {
	fmt.Fprintf(w, "Code Intelligence Indicators (%d total)\n", len(entries))

	for _, kind := range types.AllIndicatorKinds() {
		var group []indicators.Entry
		for _, e := range entries {
			if e.Kind == kind {
				group = append(group, e)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", groupTitles[kind])
		for _, e := range group {
			PrintEntry(w, e, "  ")
		}
	}
	fmt.Fprintln(w)
	return nil
}

// PrintEntry writes a single entry in plain text format.
func PrintEntry(w io.Writer, e indicators.Entry, prefix string) {
	fmt.Fprintf(w, "%s%s %s\n", prefix, tui.KindBadge(string(e.Kind)), e.Name)
	if s := Summary(e); s != "" {
		fmt.Fprintf(w, "%s  %s\n", prefix, s)
	}
}

// RenderDetails writes every field of an entry, one per line.
func RenderDetails(w io.Writer, e indicators.Entry) {
	fmt.Fprintf(w, "%s %s\n", tui.KindBadge(string(e.Kind)), tui.StyleBold.Render(e.Name))
	fmt.Fprint(w, tui.AlignColumns(Details(e), "  ", 2, tui.StyleMuted))
}

// link renders a URL, clickable where the terminal allows it.
func link(url string) string {
	if tui.IsPlainMode() {
		return url
	}
	return tui.Hyperlink(url, url) + " " + tui.StyleMuted.Render(tui.IconLink)
}

// marker distinguishes dismissible alerts from non-dismissible ones.
func marker(e indicators.Entry) string {
	a, ok := e.Value.(indicators.HoverAlert)
	if !ok {
		return ""
	}
	if a.Dismissible() {
		return tui.IconDot + " "
	}
	return tui.IconCircle + " "
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
