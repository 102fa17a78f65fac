package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/pinelog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Lines are fully formatted before they reach it, so the
// lock is held only during the actual I/O.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Config holds configuration for the console handler
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When false, writes are serialized by a mutex owned by the handler, so
	// a sync and a non-blocking logger sharing one handler never interleave
	// bytes. Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// Handler writes console lines. One Handler may be shared by several
// loggers; each WriteLine is a single Write on the underlying writer.
type Handler struct {
	writer io.Writer
	raw    io.Writer
	closed chan struct{}
	once   sync.Once
}

var _ handler.LineWriter = (*Handler)(nil)

// New creates a new console handler.
func New(cfg Config) *Handler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	h := &Handler{
		raw:    cfg.Writer,
		writer: cfg.Writer,
		closed: make(chan struct{}),
	}
	if !cfg.ConcurrentWriter && !isConcurrentSafeWriter(cfg.Writer) {
		h.writer = &lockedWriter{w: cfg.Writer}
	}
	return h
}

// Writer returns the writer lines end up on, before any locking wrapper.
func (h *Handler) Writer() io.Writer {
	return h.raw
}

// WriteLine writes one formatted line.
func (h *Handler) WriteLine(p []byte) error {
	select {
	case <-h.closed:
		return os.ErrClosed
	default:
	}
	_, err := h.writer.Write(p)
	return err
}

// Close stops the handler. The underlying writer is not closed: the
// console stream belongs to the process.
func (h *Handler) Close() error {
	h.once.Do(func() { close(h.closed) })
	return nil
}
