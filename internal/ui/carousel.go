package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/newsai/internal/catalog"
	"github.com/abelbrown/newsai/internal/scroll"
	"github.com/abelbrown/newsai/internal/session"
)

const (
	chipGap = 1
	// "‹ " on the left and " ›" on the right.
	carouselChrome = 4
)

// chip is one category in the carousel, positioned in strip cells.
type chip struct {
	cat   catalog.Category
	label string
	start int
	width int
}

func (c chip) end() int { return c.start + c.width }

func layoutChips(cats []catalog.Category) ([]chip, int) {
	chips := make([]chip, 0, len(cats))
	pos := 0
	for i, cat := range cats {
		if i > 0 {
			pos += chipGap
		}
		label := " " + cat.Name + " "
		w := runewidth.StringWidth(label)
		chips = append(chips, chip{cat: cat, label: label, start: pos, width: w})
		pos += w
	}
	return chips, pos
}

func carouselViewport(width int) int {
	return max(width-carouselChrome, 0)
}

// measureCarousel records the strip geometry for the current body width.
func (a App) measureCarousel() {
	if a.ctrl == nil {
		return
	}
	_, total := layoutChips(a.ctrl.State().Catalog().All())
	_ = a.ctrl.Dispatch(session.MeasureStrip{
		Strip:    session.StripCarousel,
		Viewport: carouselViewport(a.bodyWidth()),
		Content:  total,
	})
}

// revealActive scrolls the strip until the active chip is fully visible.
func (a App) revealActive() {
	st := a.ctrl.State()
	active, err := st.ActiveFilter(session.SectionCarousel)
	if err != nil {
		return
	}
	chips, _ := layoutChips(st.Catalog().All())
	viewport := carouselViewport(a.bodyWidth())

	for _, c := range chips {
		if c.cat.ID != active {
			continue
		}
		for range len(chips) * 4 {
			offset := a.ctrl.State().StripOffset(session.StripCarousel)
			var dir scroll.Direction
			switch {
			case c.start < offset:
				dir = scroll.Left
			case c.end() > offset+viewport:
				dir = scroll.Right
			default:
				return
			}
			if a.ctrl.Dispatch(session.ScrollBy{Strip: session.StripCarousel, Direction: dir}) != nil {
				return
			}
			if a.ctrl.State().StripOffset(session.StripCarousel) == offset {
				return
			}
		}
		return
	}
}

// clipCells returns the cells [from, from+n) of s.
func clipCells(s string, from, n int) string {
	if from > 0 {
		s = runewidth.TruncateLeft(s, from, "")
	}
	return runewidth.Truncate(s, n, "")
}

func (a App) renderCarousel(width int) string {
	st := a.ctrl.State()
	active, _ := st.ActiveFilter(session.SectionCarousel)
	aff, _ := st.ScrollAffordance(session.StripCarousel)
	offset := st.StripOffset(session.StripCarousel)
	viewport := carouselViewport(width)

	chips, _ := layoutChips(st.Catalog().All())
	sel := st.Selection()

	var b strings.Builder
	used := 0
	for i, c := range chips {
		if i > 0 {
			gapStart := c.start - chipGap
			if gapStart >= offset && gapStart < offset+viewport {
				b.WriteString(" ")
				used++
			}
		}
		lo := max(c.start, offset)
		hi := min(c.end(), offset+viewport)
		if lo >= hi {
			continue
		}
		label := c.label
		if sel.Contains(c.cat.ID) {
			label = strings.Replace(label, " ", "●", 1)
		}
		part := clipCells(label, lo-c.start, hi-lo)
		b.WriteString(a.styles.chip(c.cat.Accent, c.cat.ID == active).Render(part))
		used += hi - lo
	}
	if used < viewport {
		b.WriteString(strings.Repeat(" ", viewport-used))
	}

	left, right := a.styles.ArrowOff.Render("‹ "), a.styles.ArrowOff.Render(" ›")
	if aff.CanScrollLeft {
		left = a.styles.Arrow.Render("‹ ")
	}
	if aff.CanScrollRight {
		right = a.styles.Arrow.Render(" ›")
	}

	title := a.sectionTitle("Categories", paneCarousel)
	return lipgloss.JoinVertical(lipgloss.Left, title, left+b.String()+right)
}
