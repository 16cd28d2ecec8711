package eventlog

// The drain goroutine is the only reader of l.ch and the only writer to l.w.
// l.mu guards the ring pointer alone; drain releases it before Push.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const queueSize = 4096

type entry struct {
	data []byte
	ev   Event
}

// Log serializes events as JSONL. Emit never blocks; overflow is counted.
type Log struct {
	mu        sync.Mutex
	ring      *Ring
	sessionID string
	ch        chan entry
	w         io.Writer
	file      io.Closer
	dropped   atomic.Uint64
	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

// New starts a Log writing to w. Close flushes and stops it.
func New(w io.Writer) *Log {
	l := &Log{
		sessionID: uuid.NewString(),
		ch:        make(chan entry, queueSize),
		w:         w,
		done:      make(chan struct{}),
	}
	go l.drain()
	return l
}

// Discard returns a Log whose output goes nowhere. Events still reach an
// attached Ring.
func Discard() *Log {
	return New(io.Discard)
}

func (l *Log) drain() {
	defer close(l.done)
	for e := range l.ch {
		if _, err := l.w.Write(e.data); err != nil {
			l.dropped.Add(1)
		}

		l.mu.Lock()
		ring := l.ring
		l.mu.Unlock()

		if ring != nil {
			ring.Push(e.ev)
		}
	}
}

// Emit stamps e with the time and session id and queues it. Calls racing
// with Close are dropped rather than panicking.
func (l *Log) Emit(e Event) {
	if l == nil {
		return
	}
	defer func() {
		if recover() != nil {
			l.dropped.Add(1)
		}
	}()

	if l.closed.Load() {
		l.dropped.Add(1)
		return
	}

	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	e.SessionID = l.sessionID

	data, err := json.Marshal(e)
	if err != nil {
		l.dropped.Add(1)
		return
	}
	data = append(data, '\n')

	select {
	case l.ch <- entry{data: data, ev: e}:
	default:
		l.dropped.Add(1)
	}
}

func (l *Log) Info(kind Kind, comp, msg string) {
	l.Emit(Event{Level: LevelInfo, Kind: kind, Comp: comp, Msg: msg})
}

func (l *Log) Warn(kind Kind, comp, msg string) {
	l.Emit(Event{Level: LevelWarn, Kind: kind, Comp: comp, Msg: msg})
}

// Error records err; a nil err is recorded with an empty message.
func (l *Log) Error(kind Kind, comp string, err error) {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	l.Emit(Event{Level: LevelError, Kind: kind, Comp: comp, Err: msg})
}

// Attach sends every subsequent event to ring as well.
func (l *Log) Attach(ring *Ring) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring = ring
}

func (l *Log) SessionID() string { return l.sessionID }
func (l *Log) Dropped() uint64   { return l.dropped.Load() }

// Close drains pending events and stops the writer. Idempotent.
func (l *Log) Close() {
	if l == nil {
		return
	}
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.ch)
		<-l.done
		if l.file != nil {
			_ = l.file.Close()
		}

		if d := l.dropped.Load(); d > 0 {
			fmt.Fprintf(os.Stderr, "newsai: %d events dropped in session %s\n", d, l.sessionID)
		}
	})
}

// Open appends to the JSONL file at path, creating it and its directory.
// Close also closes the file.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("eventlog dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eventlog open: %w", err)
	}
	l := New(f)
	l.file = f
	return l, nil
}
