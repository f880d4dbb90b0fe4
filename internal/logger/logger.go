// Package logger is the leveled logging used by stagehand components.
//
// Everything goes through the standard log writer so the TUI can point it
// at a file (tea.LogToFile) or discard it while it owns the screen.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Environment variables read on every call, so tests can flip them.
const (
	DebugEnv = "STAGEHAND_DEBUG"     // any value turns debug on
	LevelEnv = "STAGEHAND_LOG_LEVEL" // debug, info, warn or error
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel reads a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger is what components log through. Printf-style.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// verbose is set by --verbose.
var verbose atomic.Bool

// SetVerbose forces the threshold down to debug.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Threshold returns the lowest level currently written.
// --verbose and STAGEHAND_DEBUG win over STAGEHAND_LOG_LEVEL; the default is info.
func Threshold() Level {
	if verbose.Load() || os.Getenv(DebugEnv) != "" {
		return LevelDebug
	}
	if lvl, err := ParseLevel(os.Getenv(LevelEnv)); err == nil {
		return lvl
	}
	return LevelInfo
}

type stdLogger struct {
	prefix string
}

// NewEnvLogger returns a logger writing to the standard log output, filtered
// by Threshold. The prefix names the component, e.g. "[sequence]".
func NewEnvLogger(prefix string) Logger {
	return &stdLogger{prefix: prefix}
}

func (l *stdLogger) logf(level Level, format string, args ...interface{}) {
	if level < Threshold() {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if level >= LevelWarn {
		msg = strings.ToUpper(level.String()) + ": " + msg
	}
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	log.Print(msg)
}

func (l *stdLogger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }
func (l *stdLogger) Info(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *stdLogger) Warn(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *stdLogger) Error(format string, args ...interface{}) { l.logf(LevelError, format, args...) }

type noopLogger struct{}

// Noop discards everything.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Entry is one captured message.
type Entry struct {
	Level   Level
	Message string
}

// BufferLogger records every message regardless of threshold. Safe to use
// from timer goroutines.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (b *BufferLogger) record(level Level, format string, args ...interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (b *BufferLogger) Debug(format string, args ...interface{}) {
	b.record(LevelDebug, format, args...)
}
func (b *BufferLogger) Info(format string, args ...interface{}) { b.record(LevelInfo, format, args...) }
func (b *BufferLogger) Warn(format string, args ...interface{}) { b.record(LevelWarn, format, args...) }
func (b *BufferLogger) Error(format string, args ...interface{}) {
	b.record(LevelError, format, args...)
}

// Entries returns a copy of what was recorded.
func (b *BufferLogger) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Messages returns the recorded messages at or above min.
func (b *BufferLogger) Messages(min Level) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []string
	for _, e := range b.entries {
		if e.Level >= min {
			out = append(out, e.Message)
		}
	}
	return out
}

// HasLevel reports whether anything was recorded at exactly level.
func (b *BufferLogger) HasLevel(level Level) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// Reset drops everything recorded so far.
func (b *BufferLogger) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}
