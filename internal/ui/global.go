package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/session"
)

var globalTabLabels = map[string]string{
	"trending": "Trending",
	"editors":  "Editor's Picks",
}

func globalTabLabel(k string) string {
	if l, ok := globalTabLabels[k]; ok {
		return l
	}
	return k
}

func (a App) globalItems() []content.Headline {
	tab, _ := a.ctrl.State().ActiveFilter(session.SectionGlobal)
	return a.snapshot.Headlines[tab]
}

func (a App) headlineLine(h content.Headline, selected bool, width int) string {
	mark := "  "
	if a.ctrl.State().IsBookmarked(h.ID) {
		mark = a.styles.Bookmark.Render("★ ")
	}
	badge := ""
	if h.Trending {
		badge = a.styles.Trending.Render("TRENDING") + " "
	}
	meta := fmt.Sprintf("%s • %s • %s", h.Source, h.Region, content.Ago(h.Age))
	room := max(width-runewidth.StringWidth(meta)-lipgloss.Width(badge)-6, 10)
	title := runewidth.Truncate(h.Title, room, "…")

	style := a.styles.Item
	if selected {
		style = a.styles.SelectedItem
	}
	return mark + badge + style.Render(title) + "  " + a.styles.Meta.Render(meta)
}

func (a App) renderGlobal(width int) string {
	title := a.sectionTitle("Global News", paneGlobal)
	tabs := a.tabBar(session.SectionGlobal, globalTabLabel)

	var body string
	items := a.globalItems()
	switch {
	case !a.loaded:
		body = a.styles.Meta.Render("  " + a.spinner.View() + " loading")
	case len(items) == 0:
		body = a.styles.Meta.Render("  No headlines.")
	default:
		lines := make([]string, len(items))
		for i, h := range items {
			lines[i] = a.headlineLine(h, a.focus == paneGlobal && i == a.cursors[paneGlobal], width)
		}
		body = strings.Join(lines, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, body)
}
