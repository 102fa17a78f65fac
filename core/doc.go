// Package core defines the shared types used across pinelog.
//
// It provides the Level type for severity filtering, TimestampFormat for
// rendering the time of a log call, the Clock collaborator that supplies
// that time, the Entry type that represents one accepted log call, and
// the error taxonomy (ErrConfig, ErrIO, ErrLock, ErrClosed) with its
// typed wrappers ConfigError and IOError.
//
// Levels are totally ordered by declaration: InfoLevel < WarnLevel <
// ErrorLevel. String returns the plain tag written to files; decorated
// console rendering lives in the formatter package because it depends
// on the terminal.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once it has been written.
package core
