package logger

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/pinelog/config"
)

var (
	defaultRegistry     atomic.Pointer[Registry]
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry behind the package-level
// functions, creating it with stdout and stderr on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry.CompareAndSwap(nil, NewRegistry())
	})
	return defaultRegistry.Load()
}

// SetDefaultRegistry replaces the registry behind the package-level
// functions. The previous registry is not closed. A nil r installs a
// fresh registry writing to stdout.
func SetDefaultRegistry(r *Registry) {
	if r == nil {
		r = NewRegistry()
	}
	defaultRegistryOnce.Do(func() {})
	defaultRegistry.Store(r)
}

// Default returns the default sync logger
func Default() *Logger {
	return DefaultRegistry().Sync()
}

// DefaultAsync returns the default non-blocking logger
func DefaultAsync() *AsyncLogger {
	return DefaultRegistry().NonBlocking()
}

// Init configures the default sync logger
func Init(rec config.Record) error {
	return DefaultRegistry().InitSync(rec)
}

// InitFromFile configures the default sync logger from a settings file
func InitFromFile(path string) error {
	return DefaultRegistry().InitSyncFromFile(path)
}

// InitAsync configures the default non-blocking logger
func InitAsync(ctx context.Context, rec config.Record) error {
	return DefaultRegistry().InitNonBlocking(ctx, rec)
}

// InitAsyncFromFile configures the default non-blocking logger from a
// settings file
func InitAsyncFromFile(ctx context.Context, path string) error {
	return DefaultRegistry().InitNonBlockingFromFile(ctx, path)
}

// Shutdown closes the files of the default loggers
func Shutdown(ctx context.Context) error {
	return DefaultRegistry().Close(ctx)
}

// Package-level convenience functions using the default sync logger

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Package-level convenience functions using the default non-blocking logger

// AsyncInfo logs an info message using the default non-blocking logger
func AsyncInfo(ctx context.Context, msg string) error {
	return DefaultAsync().Info(ctx, msg)
}

// AsyncWarn logs a warning message using the default non-blocking logger
func AsyncWarn(ctx context.Context, msg string) error {
	return DefaultAsync().Warn(ctx, msg)
}

// AsyncError logs an error message using the default non-blocking logger
func AsyncError(ctx context.Context, msg string) error {
	return DefaultAsync().Error(ctx, msg)
}

// AsyncInfof logs a formatted info message using the default non-blocking logger
func AsyncInfof(ctx context.Context, format string, args ...interface{}) error {
	return DefaultAsync().Infof(ctx, format, args...)
}

// AsyncWarnf logs a formatted warning message using the default non-blocking logger
func AsyncWarnf(ctx context.Context, format string, args ...interface{}) error {
	return DefaultAsync().Warnf(ctx, format, args...)
}

// AsyncErrorf logs a formatted error message using the default non-blocking logger
func AsyncErrorf(ctx context.Context, format string, args ...interface{}) error {
	return DefaultAsync().Errorf(ctx, format, args...)
}
