// Package eventlog records session intents and content activity as JSONL.
//
// The Log writes asynchronously through a buffered channel drained by one
// goroutine. An optional Ring keeps the latest events in memory for the
// debug overlay.
package eventlog

import (
	"encoding/json"
	"time"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Kind is dot-delimited: "<area>.<action>".
type Kind string

const (
	// Session intents
	KindIntent   Kind = "session.intent"
	KindRejected Kind = "session.rejected"

	// Content
	KindLoadStart    Kind = "content.load_start"
	KindLoadComplete Kind = "content.load_complete"
	KindLoadError    Kind = "content.load_error"
	KindSeed         Kind = "content.seed"

	KindStoreError Kind = "store.error"

	KindKeyPress Kind = "ui.key"
	KindResize   Kind = "ui.resize"

	KindStartup  Kind = "sys.startup"
	KindShutdown Kind = "sys.shutdown"
	KindError    Kind = "sys.error"
)

// Event is one JSONL record. Only Kind and Time are always present.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      Kind           `json:"kind"`
	Comp      string         `json:"comp,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Command   string         `json:"cmd,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"`
	Count     int            `json:"count,omitempty"`
	Source    string         `json:"source,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON reports Dur as fractional milliseconds.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	p := plain(e)
	if e.Dur > 0 {
		p.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(p)
}
