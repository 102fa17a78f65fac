package logger

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/handler"
)

// AsyncLogger is the non-blocking logger. Callers wait for its guard
// through a context and never perform file I/O themselves: lines are
// handed to the goroutine owning the file and the caller is parked until
// the write completes.
//
// The guard grants waiters in arrival order, so lines appear in the
// order their calls acquired it.
type AsyncLogger struct {
	guard  *semaphore.Weighted
	inst   atomic.Pointer[instance] // swapped under guard, read freely by accessors
	closed bool
	pipeline
}

// NewAsync opens rec's destination file, if any, and returns a
// non-blocking logger. ctx bounds the open.
func NewAsync(ctx context.Context, rec config.Record, opts ...Option) (*AsyncLogger, error) {
	return newAsyncLogger(ctx, rec, newSettings(opts))
}

func newAsyncLogger(ctx context.Context, rec config.Record, s *settings) (*AsyncLogger, error) {
	inst, err := openAsyncInstance(ctx, rec, s)
	if err != nil {
		return nil, err
	}
	l := &AsyncLogger{
		guard:    semaphore.NewWeighted(1),
		pipeline: newPipeline(s),
	}
	l.inst.Store(inst)
	return l, nil
}

// acquire waits for the guard. It is the only point at which ctx can
// abandon a call.
func (l *AsyncLogger) acquire(ctx context.Context) error {
	if err := l.guard.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", core.ErrLock, err)
	}
	return nil
}

func (l *AsyncLogger) release() {
	l.guard.Release(1)
}

// Log writes msg at level. If ctx ends before the guard is acquired the
// call returns an error matching core.ErrLock and nothing is written.
// Once the guard is held the line is written in full regardless of ctx.
func (l *AsyncLogger) Log(ctx context.Context, level core.Level, msg string) error {
	if err := l.acquire(ctx); err != nil {
		return err
	}
	defer l.release()

	if l.closed {
		return core.ErrClosed
	}
	return l.emit(context.WithoutCancel(ctx), l.inst.Load(), level, msg)
}

// Info logs an info message
func (l *AsyncLogger) Info(ctx context.Context, msg string) error {
	return l.Log(ctx, core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *AsyncLogger) Warn(ctx context.Context, msg string) error {
	return l.Log(ctx, core.WarnLevel, msg)
}

// Error logs an error message
func (l *AsyncLogger) Error(ctx context.Context, msg string) error {
	return l.Log(ctx, core.ErrorLevel, msg)
}

// Infof logs an info message with formatting
func (l *AsyncLogger) Infof(ctx context.Context, format string, args ...interface{}) error {
	return l.Log(ctx, core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *AsyncLogger) Warnf(ctx context.Context, format string, args ...interface{}) error {
	return l.Log(ctx, core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *AsyncLogger) Errorf(ctx context.Context, format string, args ...interface{}) error {
	return l.Log(ctx, core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Reload replaces the logger's configuration, waiting on ctx for both
// the new file and the guard. On any failure the logger keeps its
// current configuration. Reload also reopens a closed logger.
func (l *AsyncLogger) Reload(ctx context.Context, rec config.Record) error {
	next, err := openAsyncInstance(ctx, rec, l.s)
	if err != nil {
		return err
	}

	if err := l.acquire(ctx); err != nil {
		_ = next.close()
		return err
	}
	prev := l.inst.Swap(next)
	l.closed = false
	l.release()

	return prev.close()
}

// Close waits for in-flight calls, then closes the destination file.
// Later calls return core.ErrClosed.
func (l *AsyncLogger) Close(ctx context.Context) error {
	if err := l.acquire(ctx); err != nil {
		return err
	}
	defer l.release()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.inst.Load().close()
}

// Level returns the minimum level currently emitted.
func (l *AsyncLogger) Level() core.Level {
	return l.inst.Load().rec.MinLevel
}

// Path returns the destination file path, or "" for console only.
func (l *AsyncLogger) Path() string {
	return l.inst.Load().rec.FilePath
}

// Config returns the record the logger currently runs with.
func (l *AsyncLogger) Config() config.Record {
	return l.inst.Load().rec
}

// Mode returns ModeNonBlocking.
func (l *AsyncLogger) Mode() Mode {
	return ModeNonBlocking
}

// Stats returns a snapshot of the logger's counters.
func (l *AsyncLogger) Stats() handler.Snapshot {
	return l.stats.GetSnapshot()
}
