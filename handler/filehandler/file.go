package filehandler

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/philipp01105/pinelog/core"
)

// errEmptyPath is wrapped in an IOError when no path was given.
var errEmptyPath = errors.New("path is empty")

// fileBase contains shared fields and methods for file handlers.
type fileBase struct {
	path   string
	file   *os.File
	closed chan struct{}
}

// openAppend opens path for appending, creating it if absent. The file
// is never truncated. Parent directories are not created.
func openAppend(path string) (*os.File, error) {
	if path == "" {
		return nil, &core.IOError{Op: "open", Path: path, Err: errEmptyPath}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, &core.IOError{Op: "open", Path: path, Err: err}
	}
	return file, nil
}

func initFileBase(b *fileBase, path string, file *os.File) {
	b.path = path
	b.file = file
	b.closed = make(chan struct{})
}

// Path returns the path the file was opened with.
func (b *fileBase) Path() string {
	return b.path
}

func (b *fileBase) isClosed() bool {
	select {
	case <-b.closed:
		return true
	default:
		return false
	}
}

// errClosed is returned for writes after Close.
func (b *fileBase) errClosed() error {
	return fmt.Errorf("write log file %s: %w", b.path, core.ErrClosed)
}

// writeLine performs one blocking write of p.
func (b *fileBase) writeLine(p []byte) error {
	if _, err := b.file.Write(p); err != nil {
		return &core.IOError{Op: "write", Path: b.path, Err: err}
	}
	return nil
}

// closeFile syncs and closes the underlying file.
func (b *fileBase) closeFile() error {
	if b.file == nil {
		return nil
	}
	syncErr := b.file.Sync()
	closeErr := b.file.Close()
	b.file = nil
	if err := errors.Join(syncErr, closeErr); err != nil {
		return &core.IOError{Op: "close", Path: b.path, Err: err}
	}
	return nil
}

// lockedBase guards a fileBase for callers that write from several
// goroutines without holding a logger lock.
type lockedBase struct {
	fileBase
	mu sync.Mutex
}
