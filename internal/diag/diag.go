// Package diag builds the zap logger pinelog reports its own failures
// to. It is kept apart from the console and file being logged to, so a
// broken destination can still be noticed.
package diag

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// sampleTick, sampleFirst and sampleThereafter bound how often a
	// repeating failure is reported: the first sampleFirst identical
	// messages per tick, then every sampleThereafter-th.
	sampleTick       = time.Second
	sampleFirst      = 3
	sampleThereafter = 100
)

// New returns a sampled console logger writing WARN and above to w.
// A nil w writes to stderr.
func New(w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zapcore.WarnLevel),
	)
	core = zapcore.NewSamplerWithOptions(core, sampleTick, sampleFirst, sampleThereafter)

	return zap.New(core).Named("pinelog")
}

// Default returns the stderr diagnostics logger.
func Default() *zap.Logger {
	return New(os.Stderr)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
