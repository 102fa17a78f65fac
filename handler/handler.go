package handler

import (
	"context"
)

// LineWriter appends one complete, newline-terminated line per call,
// blocking the calling goroutine until the write finished or failed.
type LineWriter interface {
	// WriteLine writes p with a single underlying write
	WriteLine(p []byte) error

	// Close releases the underlying resource
	Close() error
}

// ContextLineWriter appends one complete line per call without doing the
// I/O on the calling goroutine: the caller is parked until the owning
// goroutine reports the result. ctx bounds only the hand-off; once the
// line has been accepted the write runs to completion.
type ContextLineWriter interface {
	// WriteLineContext hands p to the writer and waits for the result
	WriteLineContext(ctx context.Context, p []byte) error

	// Close drains pending lines and releases the underlying resource
	Close() error
}
