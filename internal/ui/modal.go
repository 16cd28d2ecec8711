package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/inspect"
	"github.com/abelbrown/newsai/internal/session"
)

// modalChrome is the border (2) plus horizontal padding (4) of the Modal style.
const modalChrome = 6

func (a App) modalSize() (int, int) {
	w := min(a.width-4, 90)
	h := a.height - 8
	return max(w-modalChrome, 20), max(h, 5)
}

// syncModal rebuilds the modal viewport when the open article or mode changed.
func (a App) syncModal() App {
	in, ok := a.ctrl.State().Inspection()
	if !ok {
		a.inspecting = inspect.Inspection{}
		return a
	}
	if in == a.inspecting && a.modal.Width > 0 {
		return a
	}
	w, h := a.modalSize()
	if in.Article != a.inspecting.Article || a.modal.Width == 0 {
		a.modal = viewport.New(w, h)
	}
	a.inspecting = in
	a.modal.SetContent(a.modalBody(in, w))
	a.modal.GotoTop()
	return a
}

func (a App) modalBody(in inspect.Inspection, width int) string {
	art, ok := a.snapshot.Find(in.Article)
	if !ok {
		return a.styles.Error.Render("This article is no longer available.")
	}

	wrap := lipgloss.NewStyle().Width(width)
	var body string
	switch in.Mode {
	case inspect.ModePoints:
		if len(art.Points) == 0 {
			body = a.styles.Meta.Render("No key points for this story.")
			break
		}
		lines := make([]string, len(art.Points))
		for i, p := range art.Points {
			lines[i] = wrap.Render(fmt.Sprintf("%d. %s", i+1, p))
		}
		body = strings.Join(lines, "\n\n")
	default:
		summary := art.Summary
		if summary == "" {
			summary = "No summary available."
		}
		body = wrap.Render(summary)
	}
	return body
}

func (a App) modalHeader(art content.Article, in inspect.Inspection, width int) string {
	title := a.styles.ModalTitle.Width(width).Render(art.Title)
	meta := a.styles.Meta.Render(fmt.Sprintf("%s • %s • %s", a.categoryName(art.Category), art.Source, content.Ago(art.Age)))

	summary, points := a.styles.ModalTab.Render("Summary"), a.styles.ModalTab.Render("Key Points")
	if in.Mode == inspect.ModePoints {
		points = a.styles.ModalActiveTab.Render("Key Points")
	} else {
		summary = a.styles.ModalActiveTab.Render("Summary")
	}

	saved := a.styles.Meta.Render("☆ Save")
	if a.ctrl.State().IsBookmarked(art.ID) {
		saved = a.styles.Bookmark.Render("★ Saved")
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, summary, points, "  ", saved)
	return lipgloss.JoinVertical(lipgloss.Left, title, meta, "", tabs, "")
}

func (a App) renderModal() string {
	in, ok := a.ctrl.State().Inspection()
	if !ok {
		return ""
	}
	w, _ := a.modalSize()
	art, found := a.snapshot.Find(in.Article)
	if !found {
		art = content.Article{ID: in.Article, Title: string(in.Article)}
	}
	inner := lipgloss.JoinVertical(lipgloss.Left, a.modalHeader(art, in, w), a.modal.View())
	return a.styles.Modal.Width(w + 4).Render(inner)
}

func (a App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in, _ := a.ctrl.State().Inspection()
	switch {
	case key.Matches(msg, keys.Close), msg.String() == "q":
		a.err = a.ctrl.Dispatch(session.CloseArticle{})
		return a.syncModal(), nil
	case key.Matches(msg, keys.ToggleMode):
		a.err = a.ctrl.Dispatch(session.ToggleInspectionMode{})
		return a.syncModal(), nil
	case key.Matches(msg, keys.Points):
		a.err = a.ctrl.Dispatch(session.SwitchInspectionMode{Mode: inspect.ModePoints})
		return a.syncModal(), nil
	case msg.String() == "s":
		a.err = a.ctrl.Dispatch(session.SwitchInspectionMode{Mode: inspect.ModeSummary})
		return a.syncModal(), nil
	case key.Matches(msg, keys.Bookmark):
		a.err = a.ctrl.Dispatch(session.ToggleBookmark{Article: in.Article})
		return a, nil
	}

	var cmd tea.Cmd
	a.modal, cmd = a.modal.Update(msg)
	return a, cmd
}
