// Package ui is the Bubble Tea dashboard. Every user intent is a session
// command sent through the controller; rendering re-reads controller state.
package ui

import (
	"time"

	"github.com/abelbrown/newsai/internal/content"
)

// ContentLoaded carries a fresh snapshot, or the error that prevented one.
type ContentLoaded struct {
	Snapshot content.Snapshot
	Err      error
}

// ClockTick refreshes the hero clock.
type ClockTick struct {
	Now time.Time
}

// RefreshTick triggers a background content refresh.
type RefreshTick struct{}
