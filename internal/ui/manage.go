package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/newsai/internal/catalog"
	"github.com/abelbrown/newsai/internal/selection"
	"github.com/abelbrown/newsai/internal/session"
)

// manager is the category manager overlay.
type manager struct {
	cursor  int
	adding  bool
	input   textinput.Model
	suggest *catalog.Category
}

func newManager() *manager {
	ti := textinput.New()
	ti.Placeholder = "category name"
	ti.CharLimit = 32
	ti.Prompt = "add › "
	return &manager{input: ti}
}

// resolve maps typed text onto a catalog id. exact is false when the match
// came from a fuzzy suggestion and needs confirming.
func resolve(cat *catalog.Catalog, query string) (c catalog.Category, exact, ok bool) {
	q := strings.TrimSpace(query)
	for _, cand := range cat.All() {
		if strings.EqualFold(cand.ID, q) || strings.EqualFold(cand.Name, q) {
			return cand, true, true
		}
	}
	c, ok = cat.Suggest(q)
	return c, false, ok
}

func (a App) openManager() App {
	a.manager = newManager()
	return a
}

func (a App) handleManagerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := *a.manager
	a.manager = &m

	if m.adding {
		return a.handleManagerInput(msg)
	}

	ids := a.ctrl.State().SelectedCategories()
	switch {
	case key.Matches(msg, keys.Close), msg.String() == "q", key.Matches(msg, keys.Manage):
		a.manager = nil
		return a, nil
	case key.Matches(msg, keys.MoveUp):
		if m.cursor < len(ids) {
			a.err = a.ctrl.Dispatch(session.MoveCategory{ID: ids[m.cursor], Delta: -1})
			if a.err == nil {
				m.cursor = max(m.cursor-1, 0)
			}
		}
	case key.Matches(msg, keys.MoveDown):
		if m.cursor < len(ids) {
			a.err = a.ctrl.Dispatch(session.MoveCategory{ID: ids[m.cursor], Delta: 1})
			if a.err == nil {
				m.cursor = min(m.cursor+1, len(ids)-1)
			}
		}
	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, max(len(ids)-1, 0))
	case key.Matches(msg, keys.Remove):
		if m.cursor < len(ids) {
			a.err = a.ctrl.Dispatch(session.RemoveCategory{ID: ids[m.cursor]})
			m.cursor = min(m.cursor, max(len(ids)-2, 0))
		}
	case key.Matches(msg, keys.Add):
		if a.ctrl.State().Selection().Full() {
			a.err = selection.ErrCapacityExceeded
			return a, nil
		}
		m.adding = true
		m.suggest = nil
		m.input.SetValue("")
		return a, m.input.Focus()
	}
	return a, nil
}

func (a App) handleManagerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.manager
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.suggest = nil
		m.input.Blur()
		return a, nil

	case tea.KeyEnter:
		if m.suggest != nil {
			id := m.suggest.ID
			m.suggest = nil
			return a.finishAdd(id), nil
		}
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return a, nil
		}
		c, exact, ok := resolve(a.ctrl.State().Catalog(), query)
		switch {
		case ok && exact:
			return a.finishAdd(c.ID), nil
		case ok:
			m.suggest = &c
			return a, nil
		}
		// Let the selection report the error for unknown names.
		return a.finishAdd(query), nil
	}

	m.suggest = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return a, cmd
}

func (a App) finishAdd(id string) App {
	m := a.manager
	a.err = a.ctrl.Dispatch(session.AddCategory{ID: id})
	if a.err == nil {
		m.adding = false
		m.input.Blur()
		m.cursor = len(a.ctrl.State().SelectedCategories()) - 1
	}
	return a
}

func (a App) renderManager() string {
	m := a.manager
	st := a.ctrl.State()
	sel := st.Selection()

	lines := []string{
		a.styles.ModalTitle.Render("Manage Categories"),
		a.styles.Meta.Render(fmt.Sprintf("%d of %d selected", sel.Len(), selection.MaxSelected)),
		"",
	}
	for i, cat := range sel.Categories() {
		dot := lipgloss.NewStyle().Foreground(accentColor(cat.Accent)).Render("●")
		row := fmt.Sprintf("%d. %s %s", i+1, dot, cat.Name)
		if i == m.cursor && !m.adding {
			row = a.styles.SelectedItem.Render(row)
		} else {
			row = a.styles.Item.Render(row)
		}
		lines = append(lines, row)
	}
	if sel.Len() == 0 {
		lines = append(lines, a.styles.Meta.Render("  none selected"))
	}
	lines = append(lines, "")

	switch {
	case m.adding:
		lines = append(lines, m.input.View())
		if m.suggest != nil {
			lines = append(lines, a.styles.Flash.Render(fmt.Sprintf("did you mean %s? enter to add, keep typing to change", m.suggest.Name)))
		}
	case sel.Full():
		lines = append(lines, a.styles.ArrowOff.Render(fmt.Sprintf("+ Add Category (maximum %d reached)", selection.MaxSelected)))
	default:
		var avail []string
		for _, c := range sel.Available() {
			avail = append(avail, c.Name)
		}
		lines = append(lines, a.styles.Arrow.Render("+ Add Category"), a.styles.Meta.Render("available: "+strings.Join(avail, ", ")))
	}

	w, _ := a.modalSize()
	return a.styles.Modal.Width(w + 4).Render(strings.Join(lines, "\n"))
}
