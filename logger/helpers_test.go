package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/formatter"
	"github.com/philipp01105/pinelog/handler"
)

var testTime = time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("console gone") }

func testOptions(console *bytes.Buffer, extra ...Option) []Option {
	opts := []Option{
		WithConsole(console),
		WithColor(formatter.ColorNever),
		WithClock(fixedClock{testTime}),
		WithDiagnostics(zap.NewNop()),
	}
	return append(opts, extra...)
}

func observedDiagnostics() (Option, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	return WithDiagnostics(zap.New(obsCore)), logs
}

// newTestLogger builds a sync logger writing its console to a buffer.
func newTestLogger(t *testing.T, rec config.Record, extra ...Option) (*Logger, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	l, err := New(rec, testOptions(&console, extra...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l, &console
}

// newTestAsyncLogger builds a non-blocking logger writing its console to a buffer.
func newTestAsyncLogger(t *testing.T, rec config.Record, extra ...Option) (*AsyncLogger, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	l, err := NewAsync(context.Background(), rec, testOptions(&console, extra...)...)
	if err != nil {
		t.Fatalf("NewAsync() error = %v", err)
	}
	t.Cleanup(func() { _ = l.Close(context.Background()) })
	return l, &console
}

func tempLog(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func readFileLines(t *testing.T, path string) []string {
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

func lastLine(t *testing.T, path string) string {
	t.Helper()
	lines := readFileLines(t, path)
	if len(lines) == 0 {
		t.Fatalf("%s is empty", path)
	}
	return lines[len(lines)-1]
}

// target is the surface the mode-independent tests drive.
type target struct {
	log     func(level core.Level, msg string) error
	reload  func(rec config.Record) error
	close   func() error
	stats   func() handler.Snapshot
	console *bytes.Buffer
}

type targetFactory func(t *testing.T, rec config.Record, extra ...Option) target

// modes returns one factory per logger mode.
func modes() map[string]targetFactory {
	return map[string]targetFactory{
		ModeSync.String(): func(t *testing.T, rec config.Record, extra ...Option) target {
			l, console := newTestLogger(t, rec, extra...)
			return target{
				log:     l.Log,
				reload:  l.Reload,
				close:   l.Close,
				stats:   l.Stats,
				console: console,
			}
		},
		ModeNonBlocking.String(): func(t *testing.T, rec config.Record, extra ...Option) target {
			l, console := newTestAsyncLogger(t, rec, extra...)
			ctx := context.Background()
			return target{
				log:     func(level core.Level, msg string) error { return l.Log(ctx, level, msg) },
				reload:  func(rec config.Record) error { return l.Reload(ctx, rec) },
				close:   func() error { return l.Close(ctx) },
				stats:   l.Stats,
				console: console,
			}
		},
	}
}
