// Package logging owns the process-wide file logger. The dashboard holds
// the terminal, so nothing is ever written to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

var (
	// Logger is nil until Init or SetOutput; the helpers below are no-ops until then.
	Logger *log.Logger

	mu      sync.Mutex
	logFile *os.File
)

// DefaultDir is $XDG_STATE_HOME/newsai/logs.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "newsai", "logs")
}

// FileName returns the dated log file name for t.
func FileName(t time.Time) string {
	return fmt.Sprintf("newsai-%s.log", t.Format("2006-01-02"))
}

// Init opens today's log file in dir (DefaultDir when empty) at the given
// level ("debug", "info", "warn", "error").
func Init(dir, level string) error {
	if dir == "" {
		dir = DefaultDir()
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName(time.Now())), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	logFile = f
	mu.Unlock()
	setLogger(f, lvl)
	return nil
}

// SetOutput points the logger at w without touching the filesystem.
func SetOutput(w io.Writer, level log.Level) {
	setLogger(w, level)
}

func setLogger(w io.Writer, level log.Level) {
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
}

// Close closes the file opened by Init and detaches the logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	Logger = nil
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// WithPrefix returns a child logger, or a discarding one before Init.
func WithPrefix(prefix string) *log.Logger {
	if Logger != nil {
		return Logger.WithPrefix(prefix)
	}
	return log.New(io.Discard)
}
