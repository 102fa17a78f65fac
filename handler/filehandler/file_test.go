package filehandler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/pinelog/core"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestOpenSync_AppendsWithoutTruncating(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.log")
	if err := os.WriteFile(filename, []byte("existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := OpenSync(filename)
	if err != nil {
		t.Fatal(err)
	}
	if h.Path() != filename {
		t.Errorf("Path() = %q, want %q", h.Path(), filename)
	}
	if err := h.WriteLine([]byte("[INFO] appended\n")); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}

	// Visible before Close: no buffering
	lines := readLines(t, filename)
	if len(lines) != 2 || lines[0] != "existing" || lines[1] != "[INFO] appended" {
		t.Errorf("file lines = %q", lines)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestOpenSync_CreatesFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "new.log")

	h, err := OpenSync(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if _, err := os.Stat(filename); err != nil {
		t.Errorf("file was not created: %v", err)
	}
}

func TestOpen_Failures(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "out.log")

	for _, path := range []string{"", missingDir} {
		t.Run(fmt.Sprintf("sync %q", path), func(t *testing.T) {
			_, err := OpenSync(path)
			var ioErr *core.IOError
			if !errors.As(err, &ioErr) || ioErr.Op != "open" {
				t.Fatalf("OpenSync(%q) error = %v, want open IOError", path, err)
			}
			if !errors.Is(err, core.ErrIO) {
				t.Errorf("error %v should match core.ErrIO", err)
			}
		})
		t.Run(fmt.Sprintf("async %q", path), func(t *testing.T) {
			_, err := OpenAsync(context.Background(), path, AsyncConfig{})
			if !errors.Is(err, core.ErrIO) {
				t.Fatalf("OpenAsync(%q) error = %v, want core.ErrIO", path, err)
			}
		})
	}
}

func TestOpenAsync_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	filename := filepath.Join(t.TempDir(), "canceled.log")
	h, err := OpenAsync(ctx, filename, AsyncConfig{})
	if err == nil {
		// The open may win the race against the canceled context.
		h.Close()
		return
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("OpenAsync() error = %v, want context.Canceled", err)
	}
}

func TestSyncFile_WriteAfterClose(t *testing.T) {
	h, err := OpenSync(filepath.Join(t.TempDir(), "closed.log"))
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := h.WriteLine([]byte("late\n")); !errors.Is(err, core.ErrClosed) {
		t.Errorf("WriteLine() after Close = %v, want core.ErrClosed", err)
	}
}

func TestAsyncFile_WriteLineContext(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "async.log")

	h, err := OpenAsync(context.Background(), filename, AsyncConfig{BufferSize: 4})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.WriteLineContext(context.Background(), []byte("[WARN] first\n")); err != nil {
		t.Fatalf("WriteLineContext() error = %v", err)
	}
	// The call returned, so the line is already in the file.
	if lines := readLines(t, filename); len(lines) != 1 || lines[0] != "[WARN] first" {
		t.Errorf("file lines = %q", lines)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := h.WriteLineContext(context.Background(), []byte("late\n")); !errors.Is(err, core.ErrClosed) {
		t.Errorf("WriteLineContext() after Close = %v, want core.ErrClosed", err)
	}
}

func TestAsyncFile_CanceledBeforeQueue(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "async.log")
	h, err := OpenAsync(context.Background(), filename, AsyncConfig{})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = h.WriteLineContext(ctx, []byte("maybe\n"))
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("WriteLineContext() error = %v", err)
	}

	// Either the line was written whole or not at all.
	lines := readLines(t, filename)
	if err != nil && len(lines) != 0 {
		t.Errorf("canceled write left %q in the file", lines)
	}
	if err == nil && (len(lines) != 1 || lines[0] != "maybe") {
		t.Errorf("accepted write produced %q", lines)
	}
}

func TestFileHandles_ConcurrentWriters(t *testing.T) {
	const writers, perWriter = 16, 50

	type opener func(t *testing.T, path string) (func(p []byte) error, func() error)

	openers := map[string]opener{
		"sync": func(t *testing.T, path string) (func(p []byte) error, func() error) {
			h, err := OpenSync(path)
			if err != nil {
				t.Fatal(err)
			}
			return h.WriteLine, h.Close
		},
		"async": func(t *testing.T, path string) (func(p []byte) error, func() error) {
			h, err := OpenAsync(context.Background(), path, AsyncConfig{BufferSize: 8})
			if err != nil {
				t.Fatal(err)
			}
			return func(p []byte) error { return h.WriteLineContext(context.Background(), p) }, h.Close
		},
	}

	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), name+".log")
			write, closeFn := open(t, filename)

			var g errgroup.Group
			for w := 0; w < writers; w++ {
				w := w
				g.Go(func() error {
					for i := 0; i < perWriter; i++ {
						line := fmt.Sprintf("[INFO] writer-%02d line-%03d\n", w, i)
						if err := write([]byte(line)); err != nil {
							return err
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				t.Fatal(err)
			}
			if err := closeFn(); err != nil {
				t.Fatal(err)
			}

			lines := readLines(t, filename)
			if len(lines) != writers*perWriter {
				t.Fatalf("got %d lines, want %d", len(lines), writers*perWriter)
			}
			for i, l := range lines {
				if !strings.HasPrefix(l, "[INFO] writer-") || len(l) != len("[INFO] writer-00 line-000") {
					t.Fatalf("line %d is torn: %q", i, l)
				}
			}
		})
	}
}

func TestAsyncFile_CloseDrainsQueue(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "drain.log")
	h, err := OpenAsync(context.Background(), filename, AsyncConfig{BufferSize: 128, DrainTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			err := h.WriteLineContext(context.Background(), []byte("[ERROR] drained\n"))
			if errors.Is(err, core.ErrClosed) {
				return nil
			}
			return err
		})
	}
	// Let some of the writers queue before closing.
	time.Sleep(time.Millisecond)
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("queued writer failed: %v", err)
	}

	for i, l := range readLines(t, filename) {
		if l != "[ERROR] drained" {
			t.Fatalf("line %d = %q", i, l)
		}
	}
}
