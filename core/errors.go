package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by pinelog matches exactly one
// of these through errors.Is.
var (
	// ErrConfig marks a missing, unreadable or malformed settings source.
	ErrConfig = errors.New("pinelog: invalid configuration")
	// ErrIO marks a destination file that could not be opened or written.
	ErrIO = errors.New("pinelog: i/o failure")
	// ErrLock marks a failure to acquire a logger's exclusive access,
	// typically because the caller's context ended while waiting.
	ErrLock = errors.New("pinelog: could not acquire logger")
	// ErrClosed is returned by loggers and file handles after Close.
	ErrClosed = errors.New("pinelog: logger closed")
)

// ConfigError reports a settings file that could not be loaded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load settings: %v", e.Err)
	}
	return fmt.Sprintf("load settings %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// IOError reports a failed open, write or close of a destination file.
type IOError struct {
	Op   string // "open", "write" or "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s log file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes every IOError match ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
