package ui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/filter"
	"github.com/abelbrown/newsai/internal/session"
)

const sidebarWidth = 24

var sidebarLabels = map[string]string{
	"dashboard":  "Dashboard",
	"trending":   "Trending",
	"favorites":  "Favorites",
	"bookmarks":  "Bookmarks",
	"categories": "Categories",
}

func sidebarLabel(k string) string {
	if l, ok := sidebarLabels[k]; ok {
		return l
	}
	return k
}

// mode is the active sidebar entry; it picks what the body shows.
func (a App) mode() string {
	m, err := a.ctrl.State().ActiveFilter(session.SectionSidebar)
	if err != nil {
		return "dashboard"
	}
	return m
}

func (a App) renderSidebar(height int) string {
	f, _ := a.ctrl.State().Section(session.SectionSidebar)

	lines := []string{a.sectionTitle("NewsAI", paneSidebar), ""}
	for _, k := range f.Keys() {
		style := a.styles.SidebarItem
		if k == f.Active() {
			style = a.styles.SidebarActive
		}
		lines = append(lines, style.Width(sidebarWidth-2).Render(sidebarLabel(k)))
	}

	lines = append(lines, "", a.styles.Meta.Render("Your Categories"))
	for _, cat := range a.ctrl.State().Selection().Categories() {
		dot := lipgloss.NewStyle().Foreground(accentColor(cat.Accent)).Render("●")
		lines = append(lines, " "+dot+" "+cat.Name)
	}

	return a.styles.Sidebar.Height(max(height, 1)).Render(strings.Join(lines, "\n"))
}

// listItems is the article list shown by the non-dashboard sidebar entries.
func (a App) listItems() []content.Article {
	st := a.ctrl.State()
	switch a.mode() {
	case "trending":
		var out []content.Article
		for _, tab := range session.GlobalTabs {
			for _, h := range filter.Trending(a.snapshot.Headlines[tab]) {
				out = append(out, h.AsArticle())
			}
		}
		return filter.Dedup(out)

	case "favorites":
		var out []content.Article
		for _, id := range st.SelectedCategories() {
			out = append(out, a.snapshot.Articles[id]...)
		}
		return out

	case "bookmarks":
		var all []content.Article
		for _, id := range st.Catalog().IDs() {
			all = append(all, a.snapshot.Articles[id]...)
		}
		for _, tab := range session.GlobalTabs {
			for _, h := range a.snapshot.Headlines[tab] {
				all = append(all, h.AsArticle())
			}
		}
		saved := filter.Bookmarked(all, st.IsBookmarked)
		slices.SortStableFunc(saved, func(x, y content.Article) int {
			return strings.Compare(string(x.ID), string(y.ID))
		})
		return saved
	}
	return nil
}

var listTitles = map[string]string{
	"trending":  "Trending Now",
	"favorites": "From Your Favorites",
	"bookmarks": "Saved Articles",
}

var listEmpty = map[string]string{
	"trending":  "Nothing is trending right now.",
	"favorites": "Pick a few categories to fill this view.",
	"bookmarks": "No saved articles yet. Press b on a story to save it.",
}

func (a App) renderList(width int) string {
	title := a.sectionTitle(listTitles[a.mode()], paneList)
	list := a.renderArticleList(a.listItems(), a.cursors[paneList], a.focus == paneList, width, listEmpty[a.mode()])
	return lipgloss.JoinVertical(lipgloss.Left, title, list)
}

func (a App) renderCategoriesHint() string {
	title := a.sectionTitle("Categories", paneSidebar)
	sel := a.ctrl.State().Selection()
	var lines []string
	for i, cat := range sel.Categories() {
		dot := lipgloss.NewStyle().Foreground(accentColor(cat.Accent)).Render("●")
		lines = append(lines, "  "+strconv.Itoa(i+1)+". "+dot+" "+cat.Name)
	}
	if len(lines) == 0 {
		lines = append(lines, a.styles.Meta.Render("  none selected"))
	}
	lines = append(lines, "", a.styles.Meta.Render("  Press enter or m to manage your categories."))
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}
