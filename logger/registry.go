package logger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/pinelog/config"
)

// Registry holds one sync and one non-blocking logger. Each slot is a
// stable pointer created on first use with config.Default(); the Init
// methods replace what the slot's logger runs with, never the pointer,
// so handles obtained earlier observe the new configuration and the old
// file stops receiving lines.
//
// All loggers of a registry share one console handler.
type Registry struct {
	s *settings

	syncOnce  sync.Once
	syncSlot  atomic.Pointer[Logger]
	asyncOnce sync.Once
	asyncSlot atomic.Pointer[AsyncLogger]
}

// NewRegistry creates a registry whose loggers are built with opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{s: newSettings(opts)}
}

// Sync returns the sync slot.
func (r *Registry) Sync() *Logger {
	r.syncOnce.Do(func() {
		// The default record names no file, so this cannot fail.
		l, _ := newLogger(config.Default(), r.s)
		r.syncSlot.Store(l)
	})
	return r.syncSlot.Load()
}

// NonBlocking returns the non-blocking slot.
func (r *Registry) NonBlocking() *AsyncLogger {
	r.asyncOnce.Do(func() {
		l, _ := newAsyncLogger(context.Background(), config.Default(), r.s)
		r.asyncSlot.Store(l)
	})
	return r.asyncSlot.Load()
}

// InitSync replaces the sync slot's configuration. On failure the slot
// keeps its previous configuration and the error is also reported once on
// the diagnostics logger.
func (r *Registry) InitSync(rec config.Record) error {
	if err := r.Sync().Reload(rec); err != nil {
		r.reportInit(ModeSync, rec.FilePath, err)
		return err
	}
	return nil
}

// InitSyncFromFile loads the settings file at path and initializes the
// sync slot from it.
func (r *Registry) InitSyncFromFile(path string) error {
	rec, err := config.Load(path)
	if err != nil {
		r.reportInit(ModeSync, path, err)
		return err
	}
	return r.InitSync(rec)
}

// InitNonBlocking replaces the non-blocking slot's configuration, waiting
// on ctx for the file open and the slot's guard.
func (r *Registry) InitNonBlocking(ctx context.Context, rec config.Record) error {
	if err := r.NonBlocking().Reload(ctx, rec); err != nil {
		r.reportInit(ModeNonBlocking, rec.FilePath, err)
		return err
	}
	return nil
}

// InitNonBlockingFromFile loads the settings file at path and initializes
// the non-blocking slot from it.
func (r *Registry) InitNonBlockingFromFile(ctx context.Context, path string) error {
	rec, err := config.Load(path)
	if err != nil {
		r.reportInit(ModeNonBlocking, path, err)
		return err
	}
	return r.InitNonBlocking(ctx, rec)
}

// WatchSync reloads the sync slot from the settings file at path each
// time it changes, until ctx is done. Invalid files are reported on the
// diagnostics logger and leave the slot as it was.
func (r *Registry) WatchSync(ctx context.Context, path string) error {
	return config.Watch(ctx, path, func(rec config.Record, err error) {
		if err != nil {
			r.reportInit(ModeSync, path, err)
			return
		}
		_ = r.InitSync(rec)
	})
}

// Close closes the files of both slots. Slots that were never used are
// left alone. A later Init reopens a slot.
func (r *Registry) Close(ctx context.Context) error {
	var errs []error
	if l := r.syncSlot.Load(); l != nil {
		errs = append(errs, l.Close())
	}
	if l := r.asyncSlot.Load(); l != nil {
		errs = append(errs, l.Close(ctx))
	}
	return errors.Join(errs...)
}

// Diagnostics returns the logger the registry reports failures to.
func (r *Registry) Diagnostics() *zap.Logger {
	return r.s.diag
}

func (r *Registry) reportInit(mode Mode, path string, err error) {
	r.s.diag.Error("logger init failed",
		zap.String("mode", mode.String()),
		zap.String("path", path),
		zap.Error(err),
	)
}
