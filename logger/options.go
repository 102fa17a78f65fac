package logger

import (
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/formatter"
	"github.com/philipp01105/pinelog/handler/consolehandler"
	"github.com/philipp01105/pinelog/handler/filehandler"
	"github.com/philipp01105/pinelog/internal/diag"
)

// settings is the resolved form of a set of Options. It is shared, never
// copied, by every instance a logger or registry creates, so all of them
// write through the same console handler.
type settings struct {
	consoleWriter io.Writer
	console       *consolehandler.Handler
	color         formatter.ColorMode
	styles        *formatter.Styles
	clock         core.Clock
	diag          *zap.Logger
	asyncFile     filehandler.AsyncConfig
}

// Option configures a logger or a registry.
type Option func(*settings)

// WithConsole sets the console stream (default: os.Stdout).
func WithConsole(w io.Writer) Option {
	return func(s *settings) { s.consoleWriter = w }
}

// WithConsoleHandler shares one console handler, and with it one write
// lock, between loggers built separately.
func WithConsoleHandler(h *consolehandler.Handler) Option {
	return func(s *settings) { s.console = h }
}

// WithColor sets how console levels are decorated (default: ColorAuto).
func WithColor(mode formatter.ColorMode) Option {
	return func(s *settings) { s.color = mode }
}

// WithClock sets the time source (default: core.SystemClock).
func WithClock(c core.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithDiagnostics sets the logger pinelog reports its own failures to
// (default: sampled WARN-level console output on stderr).
func WithDiagnostics(z *zap.Logger) Option {
	return func(s *settings) { s.diag = z }
}

// WithAsyncFile tunes the file handle of non-blocking loggers.
func WithAsyncFile(cfg filehandler.AsyncConfig) Option {
	return func(s *settings) { s.asyncFile = cfg }
}

func newSettings(opts []Option) *settings {
	s := &settings{color: formatter.ColorAuto}
	for _, opt := range opts {
		opt(s)
	}
	if s.console == nil {
		s.console = consolehandler.New(consolehandler.Config{Writer: s.consoleWriter})
	}
	if s.styles == nil {
		s.styles = formatter.NewStyles(s.console.Writer(), s.color)
	}
	if s.clock == nil {
		s.clock = core.SystemClock{}
	}
	if s.diag == nil {
		s.diag = diag.Default()
	}
	return s
}
