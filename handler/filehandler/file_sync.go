package filehandler

import (
	"github.com/philipp01105/pinelog/handler"
)

// SyncFile is the blocking file handle used by sync-mode loggers. Every
// WriteLine is a write on the calling goroutine that returns once the
// bytes reached the operating system.
type SyncFile struct {
	lockedBase
}

var _ handler.LineWriter = (*SyncFile)(nil)

// OpenSync opens path in append mode, creating it if absent.
func OpenSync(path string) (*SyncFile, error) {
	file, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	h := &SyncFile{}
	initFileBase(&h.fileBase, path, file)
	return h, nil
}

// WriteLine appends p to the file.
func (h *SyncFile) WriteLine(p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.isClosed() {
		return h.errClosed()
	}
	return h.writeLine(p)
}

// Close syncs and closes the underlying file. Subsequent calls are no-ops.
func (h *SyncFile) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.isClosed() {
		return nil
	}
	close(h.closed)
	return h.closeFile()
}
