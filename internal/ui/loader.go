package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/newsai/internal/content"
)

// ServiceLoaders adapts svc to the App's load and refresh hooks. Refresh
// waits on the service's rate limiter; load does not.
func ServiceLoaders(ctx context.Context, svc *content.Service) (load, refresh LoadFunc) {
	load = func(categories, tabs []string) tea.Cmd {
		return func() tea.Msg {
			snap, err := svc.Load(ctx, categories, tabs)
			return ContentLoaded{Snapshot: snap, Err: err}
		}
	}
	refresh = func(categories, tabs []string) tea.Cmd {
		return func() tea.Msg {
			snap, err := svc.Refresh(ctx, categories, tabs)
			return ContentLoaded{Snapshot: snap, Err: err}
		}
	}
	return load, refresh
}
