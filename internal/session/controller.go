package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/abelbrown/newsai/internal/eventlog"
	"github.com/abelbrown/newsai/internal/logging"
)

// Controller owns the current State and applies intents in arrival order.
// It is not safe for concurrent use; the UI update loop is its only caller.
type Controller struct {
	state  State
	log    *log.Logger
	events *eventlog.Log
	last   error
}

// NewController wraps initial. events may be nil.
func NewController(initial State, events *eventlog.Log) *Controller {
	return &Controller{
		state:  initial,
		log:    logging.WithPrefix("session"),
		events: events,
	}
}

// Dispatch reduces cmd into the current state. A rejected intent leaves
// the state untouched and is returned to the caller.
func (c *Controller) Dispatch(cmd Command) error {
	start := time.Now()
	next, err := Reduce(c.state, cmd)
	c.last = err

	ev := eventlog.Event{
		Comp:    "session",
		Command: cmd.Name(),
		Msg:     fmt.Sprintf("%+v", cmd),
		Dur:     time.Since(start),
	}
	if err != nil {
		c.log.Warn("intent rejected", "cmd", cmd.Name(), "err", err)
		ev.Kind, ev.Level, ev.Err = eventlog.KindRejected, eventlog.LevelWarn, err.Error()
		c.events.Emit(ev)
		return err
	}

	c.state = next
	c.log.Debug("intent applied", "cmd", cmd.Name(), "selected", next.SelectedCategories())
	ev.Kind, ev.Level = eventlog.KindIntent, eventlog.LevelInfo
	c.events.Emit(ev)
	return nil
}

// DispatchAll applies cmds in order and returns the first error, continuing
// past rejected ones.
func (c *Controller) DispatchAll(cmds ...Command) error {
	var first error
	for _, cmd := range cmds {
		if err := c.Dispatch(cmd); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *Controller) State() State { return c.state }

// LastError is the error from the most recent Dispatch, or nil.
func (c *Controller) LastError() error { return c.last }
