package filehandler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/handler"
)

// errDrainTimeout is reported to lines still queued when Close gave up.
var errDrainTimeout = errors.New("drain timeout exceeded")

// AsyncConfig holds configuration for the non-blocking file handle
type AsyncConfig struct {
	// BufferSize is the size of the hand-off queue (default: 64)
	BufferSize int
	// DrainTimeout bounds how long Close waits for queued lines (default: 5s)
	DrainTimeout time.Duration
}

func applyAsyncDefaults(cfg *AsyncConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 64
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// request is one line waiting for the owning goroutine.
type request struct {
	line []byte
	done chan error
}

// AsyncFile is the file handle used by non-blocking loggers. The file is
// owned by a single goroutine; callers hand lines over a channel and are
// parked until that goroutine reports the result, so no caller ever
// performs file I/O itself.
type AsyncFile struct {
	fileBase
	mu           sync.RWMutex // senders hold R while enqueueing, Close holds W
	queue        chan *request
	wg           sync.WaitGroup
	drainTimeout time.Duration
	reqPool      sync.Pool
	closeErr     error
}

var _ handler.ContextLineWriter = (*AsyncFile)(nil)

type openResult struct {
	file *os.File
	err  error
}

// OpenAsync opens path in append mode, creating it if absent. The open
// runs off the calling goroutine; if ctx ends first the file is closed
// once the open completes and ctx's error is returned.
func OpenAsync(ctx context.Context, path string, cfg AsyncConfig) (*AsyncFile, error) {
	applyAsyncDefaults(&cfg)

	opened := make(chan openResult, 1)
	go func() {
		file, err := openAppend(path)
		opened <- openResult{file: file, err: err}
	}()

	select {
	case res := <-opened:
		if res.err != nil {
			return nil, res.err
		}
		return newAsyncFile(path, res.file, cfg), nil
	case <-ctx.Done():
		go func() {
			if res := <-opened; res.file != nil {
				_ = res.file.Close()
			}
		}()
		return nil, &core.IOError{Op: "open", Path: path, Err: ctx.Err()}
	}
}

func newAsyncFile(path string, file *os.File, cfg AsyncConfig) *AsyncFile {
	h := &AsyncFile{
		queue:        make(chan *request, cfg.BufferSize),
		drainTimeout: cfg.DrainTimeout,
	}
	h.reqPool.New = func() interface{} {
		return &request{done: make(chan error, 1)}
	}
	initFileBase(&h.fileBase, path, file)

	h.wg.Add(1)
	go h.process()

	return h
}

// WriteLineContext hands p to the owning goroutine and waits for the
// write to finish. If ctx ends before the line was queued nothing is
// written and ctx's error is returned; once queued the line is always
// written in full.
func (h *AsyncFile) WriteLineContext(ctx context.Context, p []byte) error {
	req := h.reqPool.Get().(*request)
	req.line = p

	h.mu.RLock()
	if h.isClosed() {
		h.mu.RUnlock()
		h.putRequest(req)
		return h.errClosed()
	}
	select {
	case h.queue <- req:
		h.mu.RUnlock()
	case <-ctx.Done():
		h.mu.RUnlock()
		h.putRequest(req)
		return fmt.Errorf("queue line for %s: %w", h.path, ctx.Err())
	}

	err := <-req.done
	h.putRequest(req)
	return err
}

func (h *AsyncFile) putRequest(req *request) {
	req.line = nil
	h.reqPool.Put(req)
}

// process handles async line writes
func (h *AsyncFile) process() {
	defer h.wg.Done()

	for {
		select {
		case req := <-h.queue:
			req.done <- h.writeLine(req.line)
		case <-h.closed:
			// No sender can enqueue any more; drain what is left.
			deadline := time.Now().Add(h.drainTimeout)
		drainLoop:
			for {
				select {
				case req := <-h.queue:
					if time.Now().After(deadline) {
						req.done <- &core.IOError{Op: "write", Path: h.path, Err: errDrainTimeout}
						continue
					}
					req.done <- h.writeLine(req.line)
				default:
					// Queue empty
					break drainLoop
				}
			}
			h.closeErr = h.closeFile()
			return
		}
	}
}

// Close stops accepting lines, drains the queue within the drain timeout
// and closes the file. Subsequent calls are no-ops.
func (h *AsyncFile) Close() error {
	h.mu.Lock()
	if h.isClosed() {
		h.mu.Unlock()
		return nil
	}
	close(h.closed)
	h.mu.Unlock()

	h.wg.Wait()
	return h.closeErr
}
