package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/session"
)

// tabBar renders a section's keys with the active one highlighted.
func (a App) tabBar(name string, label func(string) string) string {
	f, ok := a.ctrl.State().Section(name)
	if !ok {
		return ""
	}
	var tabs []string
	for _, k := range f.Keys() {
		if k == f.Active() {
			tabs = append(tabs, a.styles.ActiveTab.Render(label(k)))
		} else {
			tabs = append(tabs, a.styles.Tab.Render(label(k)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// categoryName maps a category id to its catalog display name.
func (a App) categoryName(id string) string {
	if cat, ok := a.ctrl.State().Catalog().Lookup(id); ok {
		return cat.Name
	}
	return id
}

func (a App) feedItems() []content.Article {
	tab, _ := a.ctrl.State().ActiveFilter(session.SectionFeed)
	return a.snapshot.ByKind(tab, content.KindFeed)
}

// articleLine renders one list row: bookmark marker, title and meta.
func (a App) articleLine(art content.Article, selected bool, width int) string {
	mark := "  "
	if a.ctrl.State().IsBookmarked(art.ID) {
		mark = a.styles.Bookmark.Render("★ ")
	}
	meta := fmt.Sprintf("%s • %s", art.Source, content.Ago(art.Age))
	room := max(width-runewidth.StringWidth(meta)-6, 10)
	title := runewidth.Truncate(art.Title, room, "…")

	style := a.styles.Item
	if selected {
		style = a.styles.SelectedItem
	}
	return mark + style.Render(title) + "  " + a.styles.Meta.Render(meta)
}

func (a App) renderArticleList(items []content.Article, cursor int, focused bool, width int, empty string) string {
	if !a.loaded {
		return a.styles.Meta.Render("  " + a.spinner.View() + " loading")
	}
	if len(items) == 0 {
		return a.styles.Meta.Render("  " + empty)
	}
	lines := make([]string, len(items))
	for i, art := range items {
		lines[i] = a.articleLine(art, focused && i == cursor, width)
	}
	return strings.Join(lines, "\n")
}

func (a App) renderFeed(width int) string {
	title := a.sectionTitle("Your News Feed", paneFeed)
	tabs := a.tabBar(session.SectionFeed, a.categoryName)
	list := a.renderArticleList(a.feedItems(), a.cursors[paneFeed], a.focus == paneFeed, width, "No stories in this category yet.")
	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, list)
}
