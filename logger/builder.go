package logger

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/formatter"
)

// Builder provides a fluent API for building loggers
type Builder struct {
	rec  config.Record
	opts []Option
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{rec: config.Default()}
}

// WithConfig sets the configuration record
func (b *Builder) WithConfig(rec config.Record) *Builder {
	b.rec = rec
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.rec.MinLevel = level
	return b
}

// WithFile sets the destination file
func (b *Builder) WithFile(path string) *Builder {
	b.rec.FilePath = path
	return b
}

// WithTimestamp sets the timestamp format
func (b *Builder) WithTimestamp(format core.TimestampFormat) *Builder {
	b.rec.Timestamp = format
	return b
}

// WithConsole sets the console stream
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.opts = append(b.opts, WithConsole(w))
	return b
}

// WithColor sets the console color mode
func (b *Builder) WithColor(mode formatter.ColorMode) *Builder {
	b.opts = append(b.opts, WithColor(mode))
	return b
}

// WithClock sets the time source
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.opts = append(b.opts, WithClock(c))
	return b
}

// WithDiagnostics sets the diagnostics logger
func (b *Builder) WithDiagnostics(z *zap.Logger) *Builder {
	b.opts = append(b.opts, WithDiagnostics(z))
	return b
}

// WithOptions appends arbitrary options
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build creates a sync logger
func (b *Builder) Build() (*Logger, error) {
	return New(b.rec, b.opts...)
}

// BuildAsync creates a non-blocking logger
func (b *Builder) BuildAsync(ctx context.Context) (*AsyncLogger, error) {
	return NewAsync(ctx, b.rec, b.opts...)
}
