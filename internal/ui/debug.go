package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/newsai/internal/eventlog"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
// Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders the event journal stats and recent events.
// Pure function with no side effects. Returns empty string if ring is nil.
func debugOverlay(s styles, ring *eventlog.Ring, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Counts()
	recent := ring.Last(20)

	var lines []string
	lines = append(lines, s.DebugHeader.Render("Session Stats"))
	lines = append(lines, fmt.Sprintf("  Intents:    %d applied, %d rejected",
		stats[eventlog.KindIntent], stats[eventlog.KindRejected]))
	lines = append(lines, fmt.Sprintf("  Loads:      %d started, %d complete, %d errors",
		stats[eventlog.KindLoadStart], stats[eventlog.KindLoadComplete], stats[eventlog.KindLoadError]))
	lines = append(lines, fmt.Sprintf("  Store:      %d seeds, %d errors",
		stats[eventlog.KindSeed], stats[eventlog.KindStoreError]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, s.DebugHeader.Render("Recent Events"))
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		line := fmt.Sprintf("  %6s  %-18s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.Command != "" {
			line += "  " + e.Command
		}
		if e.Count > 0 {
			line += fmt.Sprintf("  n=%d", e.Count)
		}
		if e.Err != "" {
			line += "  ERR:" + truncateRunes(e.Err, 30)
		} else if e.Msg != "" && e.Command == "" {
			line += "  " + truncateRunes(e.Msg, 40)
		}
		lines = append(lines, line)
	}

	maxHeight := max(height-debugPanelChrome, 1)
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := min(76, width-4)
	if panelWidth < 20 {
		panelWidth = 20
	}

	return s.DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration as a compact human string.
// Handles negative durations from clock skew by clamping to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func debugStatusBar(s styles, width int) string {
	return s.StatusBar.Width(width).Render("  [DEBUG]  " + s.Flash.Render("D") + s.StatusText.Render(":close"))
}
