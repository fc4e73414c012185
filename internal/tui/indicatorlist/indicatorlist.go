//go:build !notui

package indicatorlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/tui"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// entryItem implements list.Item for a single catalog entry.
type entryItem struct {
	entry indicators.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Name }

// Title returns plain text; styling happens in the delegate so filter
// highlighting does not mangle ANSI escapes.
func (i entryItem) Title() string { return i.entry.Name }

func (i entryItem) Description() string { return Summary(i.entry) }

// headerItem is a non-selectable group divider.
type headerItem struct {
	title string
}

func (h headerItem) FilterValue() string { return "" }
func (h headerItem) Title() string       { return tui.Separator(h.title) }
func (h headerItem) Description() string { return "" }

type entryDelegate struct {
	styles list.DefaultItemStyles
}

func newEntryDelegate() entryDelegate {
	styles := list.NewDefaultItemStyles()
	styles.SelectedTitle = styles.SelectedTitle.
		Foreground(tui.ColorAccent).
		BorderLeftForeground(tui.ColorAccent)
	styles.SelectedDesc = styles.SelectedDesc.
		Foreground(tui.ColorMuted).
		BorderLeftForeground(tui.ColorAccent)
	return entryDelegate{styles: styles}
}

func (d entryDelegate) Height() int                         { return 2 }
func (d entryDelegate) Spacing() int                        { return 1 }
func (d entryDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ei, ok := item.(entryItem)
	if !ok {
		if h, ok := item.(headerItem); ok {
			fmt.Fprint(w, tui.Separator(h.title))
		}
		return
	}

	desc := ei.Description()
	if width := m.Width() - 4; width > 10 && lipgloss.Width(desc) > width {
		desc = truncate(desc, width)
	}

	var title string
	if index == m.Index() {
		title = d.styles.SelectedTitle.Render("> " + marker(ei.entry) + ei.entry.Name)
		desc = d.styles.SelectedDesc.Render("  " + desc)
	} else {
		title = "  " + tui.KindBadge(string(ei.entry.Kind)) + " " + tui.StyleBold.Render(marker(ei.entry)+ei.entry.Name)
		desc = "  " + tui.StyleMuted.Render(desc)
	}
	fmt.Fprintf(w, "%s\n%s", title, desc)
}

// model is the bubbletea model for the interactive browser. Enter opens
// the details of the selected entry; esc returns to the list.
type model struct {
	list    list.Model
	detail  viewport.Model
	showing bool
	width   int
	height  int
}

// Render displays entries in an interactive, filterable list.
// Falls back to static display in plain mode.
func Render(entries []indicators.Entry) error {
	if tui.IsPlainMode() {
		return RenderPlain(os.Stdout, entries)
	}

	l := list.New(buildListItems(entries), newEntryDelegate(), 80, 24)
	l.Title = fmt.Sprintf("Code Intelligence Indicators (%d total)", len(entries))
	l.Styles.Title = tui.StyleTitle
	l.Styles.FilterPrompt = lipgloss.NewStyle().Foreground(tui.ColorAccent)
	l.Styles.FilterCursor = lipgloss.NewStyle().Foreground(tui.ColorSuccess)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	m := model{list: l, detail: viewport.New(80, 20)}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.detail.Width = msg.Width
		m.detail.Height = msg.Height - 2

	case tea.KeyMsg:
		if m.showing {
			switch msg.String() {
			case "esc", "backspace", "q":
				m.showing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if ei, ok := m.list.SelectedItem().(entryItem); ok {
				var sb strings.Builder
				RenderDetails(&sb, ei.entry)
				m.detail.SetContent(sb.String())
				m.detail.GotoTop()
				m.showing = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.showing {
		footer := tui.StyleMuted.Render("esc back  ↑/↓ scroll")
		return m.detail.View() + "\n" + footer
	}
	return m.list.View()
}

// buildListItems converts entries into list items grouped by kind.
func buildListItems(entries []indicators.Entry) []list.Item {
	var items []list.Item
	for _, kind := range types.AllIndicatorKinds() {
		first := true
		for _, e := range entries {
			if e.Kind != kind {
				continue
			}
			if first {
				items = append(items, headerItem{title: groupTitles[kind]})
				first = false
			}
			items = append(items, entryItem{entry: e})
		}
	}
	return items
}
