package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/newsai/internal/content"
)

const cardGap = 1

// cardItems flattens the card articles of every selected category, in
// selection order, so one cursor walks all cards.
func (a App) cardItems() []content.Article {
	var out []content.Article
	for _, id := range a.ctrl.State().SelectedCategories() {
		out = append(out, a.snapshot.ByKind(id, content.KindCard)...)
	}
	return out
}

func (a App) renderCards(width int) string {
	title := a.sectionTitle("Your Categories", paneCards)
	cats := a.ctrl.State().Selection().Categories()
	if len(cats) == 0 {
		hint := a.styles.Meta.Render("  No categories selected. Press m to choose some.")
		return lipgloss.JoinVertical(lipgloss.Left, title, hint)
	}

	cardWidth := max((width-cardGap*(len(cats)-1))/len(cats), 12)
	inner := max(cardWidth-4, 6)

	selected := ""
	if items := a.cardItems(); a.focus == paneCards && a.cursors[paneCards] < len(items) {
		selected = string(items[a.cursors[paneCards]].ID)
	}

	cards := make([]string, 0, len(cats)*2)
	for i, cat := range cats {
		accent := accentColor(cat.Accent)
		head := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(runewidth.Truncate(cat.Name, inner, "…"))

		lines := []string{head}
		arts := a.snapshot.ByKind(cat.ID, content.KindCard)
		if len(arts) == 0 {
			lines = append(lines, a.styles.Meta.Render("nothing yet"))
		}
		for _, art := range arts {
			t := runewidth.Truncate(art.Title, inner-2, "…")
			prefix := "• "
			if a.ctrl.State().IsBookmarked(art.ID) {
				prefix = "★ "
			}
			line := prefix + t
			if string(art.ID) == selected {
				line = a.styles.SelectedItem.UnsetPaddingLeft().Render(line)
			}
			lines = append(lines, line)
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(cardWidth - 2).
			Render(strings.Join(lines, "\n"))
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, box)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}
