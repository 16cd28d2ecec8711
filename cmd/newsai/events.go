package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// eventRecord mirrors eventlog.Event for decoding. Decoding from JSONL
// keeps this command usable on journals written by older versions.
type eventRecord struct {
	Time      time.Time      `json:"t"`
	Level     string         `json:"level"`
	Kind      string         `json:"kind"`
	Comp      string         `json:"comp"`
	SessionID string         `json:"session_id"`
	Command   string         `json:"cmd"`
	DurMs     float64        `json:"dur_ms"`
	Count     int            `json:"count"`
	Source    string         `json:"source"`
	Err       string         `json:"err"`
	Msg       string         `json:"msg"`
	Extra     map[string]any `json:"extra"`
}

// levelRank returns a numeric rank for filtering (higher = more severe).
func levelRank(level string) int {
	switch level {
	case "info":
		return 1
	case "warn":
		return 2
	case "error":
		return 3
	default:
		return 0
	}
}

type eventFilter struct {
	kind    string
	level   string
	comp    string
	command string
	session string
}

func (f eventFilter) match(ev eventRecord) bool {
	if f.kind != "" && !strings.HasPrefix(ev.Kind, f.kind) {
		return false
	}
	if f.level != "" && levelRank(ev.Level) < levelRank(f.level) {
		return false
	}
	if f.comp != "" && ev.Comp != f.comp {
		return false
	}
	if f.command != "" && ev.Command != f.command {
		return false
	}
	if f.session != "" && !strings.HasPrefix(ev.SessionID, f.session) {
		return false
	}
	return true
}

func formatEvent(ev eventRecord) string {
	ts := ev.Time.Format("15:04:05.000")
	lvl := strings.ToUpper(ev.Level)
	if lvl == "" {
		lvl = "?"
	}

	parts := []string{fmt.Sprintf("%s %-5s [%-7s] %-22s", ts, lvl, ev.Comp, ev.Kind)}
	if ev.Command != "" {
		parts = append(parts, ev.Command)
	}
	if ev.Msg != "" {
		parts = append(parts, "- "+ev.Msg)
	}
	if ev.DurMs > 0 {
		parts = append(parts, fmt.Sprintf("(%.*fms)", durPrecision(ev.DurMs), ev.DurMs))
	}
	if ev.Count > 0 {
		parts = append(parts, fmt.Sprintf("n=%d", ev.Count))
	}
	if ev.Source != "" {
		parts = append(parts, "src="+ev.Source)
	}
	if ev.Err != "" {
		parts = append(parts, "err="+ev.Err)
	}
	return strings.Join(parts, " ")
}

type parsedLine struct {
	ev  eventRecord
	raw []byte
}

// readTailLines returns the last n lines of r matching the filter.
// Undecodable lines are skipped.
func readTailLines(r io.Reader, n int, match func(eventRecord) bool) ([]parsedLine, error) {
	scanner := bufio.NewScanner(r)
	// Allow large lines (some events may have big Extra maps)
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)

	var ring []parsedLine
	if n > 0 {
		ring = make([]parsedLine, 0, min(n, 1024))
	}

	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ev eventRecord
		if json.Unmarshal(raw, &ev) != nil {
			continue
		}
		if !match(ev) || n <= 0 {
			continue
		}
		line := parsedLine{ev: ev, raw: append([]byte(nil), raw...)}
		if len(ring) < n {
			ring = append(ring, line)
		} else {
			copy(ring, ring[1:])
			ring[n-1] = line
		}
	}
	return ring, scanner.Err()
}

func durPrecision(ms float64) int {
	if ms >= 100 {
		return 0
	}
	if ms >= 1 {
		return 1
	}
	return 2
}

var (
	flagTail    int
	flagFollow  bool
	flagRawJSON bool
	flagEvents  eventFilter
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the event journal",
	RunE:  runEvents,
}

func init() {
	f := eventsCmd.Flags()
	f.IntVar(&flagTail, "tail", 50, "number of recent lines to show")
	f.BoolVarP(&flagFollow, "follow", "f", false, "keep printing new events")
	f.BoolVar(&flagRawJSON, "json", false, "output raw JSON lines")
	f.StringVar(&flagEvents.kind, "kind", "", "filter by event kind prefix (e.g. 'session')")
	f.StringVar(&flagEvents.level, "level", "", "minimum level: debug, info, warn, error")
	f.StringVar(&flagEvents.comp, "comp", "", "filter by component name")
	f.StringVar(&flagEvents.command, "cmd", "", "filter by session command (e.g. AddCategory)")
	f.StringVar(&flagEvents.session, "session", "", "filter by session id prefix")
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.EventLogPath()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("event journal not found at %s; run newsai first", path)
		}
		return err
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	emit := func(l parsedLine) {
		if flagRawJSON {
			fmt.Fprintln(out, string(l.raw))
			return
		}
		fmt.Fprintln(out, formatEvent(l.ev))
	}

	lines, err := readTailLines(f, flagTail, flagEvents.match)
	if err != nil {
		return err
	}
	for _, l := range lines {
		emit(l)
	}
	if !flagFollow {
		return nil
	}

	// The scanner stopped at EOF; poll for appended lines.
	reader := bufio.NewReader(f)
	var pending []byte
	for {
		if err := cmd.Context().Err(); err != nil {
			return nil
		}
		chunk, err := reader.ReadBytes('\n')
		pending = append(pending, chunk...)
		if err != nil {
			if err == io.EOF {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return err
		}
		raw := []byte(strings.TrimRight(string(pending), "\r\n"))
		pending = nil
		if len(raw) == 0 {
			continue
		}
		var ev eventRecord
		if json.Unmarshal(raw, &ev) != nil {
			continue
		}
		if flagEvents.match(ev) {
			emit(parsedLine{ev: ev, raw: raw})
		}
	}
}
