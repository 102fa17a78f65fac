package logger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/handler"
)

// Logger is the sync-mode logger. Every call holds its mutex for the
// whole emit, so concurrent lines never interleave and file writes block
// the caller.
type Logger struct {
	mu     sync.Mutex
	inst   atomic.Pointer[instance] // swapped under mu, read freely by accessors
	closed bool
	pipeline
}

// New opens rec's destination file, if any, and returns a sync logger.
// An unopenable file is reported as a *core.IOError and no logger is
// returned.
func New(rec config.Record, opts ...Option) (*Logger, error) {
	return newLogger(rec, newSettings(opts))
}

func newLogger(rec config.Record, s *settings) (*Logger, error) {
	inst, err := openSyncInstance(rec, s)
	if err != nil {
		return nil, err
	}
	l := &Logger{pipeline: newPipeline(s)}
	l.inst.Store(inst)
	return l, nil
}

// Log writes msg at level. It returns the console and file write
// failures, joined, and core.ErrClosed after Close.
func (l *Logger) Log(level core.Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return core.ErrClosed
	}
	return l.emit(context.Background(), l.inst.Load(), level, msg)
}

// logAndReport is the body of the convenience methods: failures go to
// the diagnostics logger instead of the caller.
func (l *Logger) logAndReport(level core.Level, msg string) {
	if err := l.Log(level, msg); err != nil {
		l.s.diag.Warn("log write failed",
			zap.String("mode", ModeSync.String()),
			zap.Stringer("level", level),
			zap.Error(err),
		)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logAndReport(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.logAndReport(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.logAndReport(core.ErrorLevel, msg)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logAndReport(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logAndReport(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logAndReport(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Reload replaces the logger's configuration. The new file is opened
// first; if that fails the logger keeps its current configuration. On
// success the previous file is closed and receives no further lines.
// Reload also reopens a closed logger.
func (l *Logger) Reload(rec config.Record) error {
	next, err := openSyncInstance(rec, l.s)
	if err != nil {
		return err
	}

	l.mu.Lock()
	prev := l.inst.Swap(next)
	l.closed = false
	l.mu.Unlock()

	return prev.close()
}

// Close closes the destination file. Later calls return core.ErrClosed.
// Closing a closed logger is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.inst.Load().close()
}

// Level returns the minimum level currently emitted.
func (l *Logger) Level() core.Level {
	return l.inst.Load().rec.MinLevel
}

// Path returns the destination file path, or "" for console only.
func (l *Logger) Path() string {
	return l.inst.Load().rec.FilePath
}

// Config returns the record the logger currently runs with.
func (l *Logger) Config() config.Record {
	return l.inst.Load().rec
}

// Mode returns ModeSync.
func (l *Logger) Mode() Mode {
	return ModeSync
}

// Stats returns a snapshot of the logger's counters.
func (l *Logger) Stats() handler.Snapshot {
	return l.stats.GetSnapshot()
}
