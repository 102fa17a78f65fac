package benchmark

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/logger"
)

func createTemp(b *testing.B, pattern string) *os.File {
	b.Helper()
	f, err := os.CreateTemp(b.TempDir(), pattern)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

// Benchmark the timestamp layouts against each other
func BenchmarkTimestampFormats(b *testing.B) {
	for _, ts := range []core.TimestampFormat{core.TimestampNone, core.TimestampDate, core.TimestampTime, core.TimestampFull} {
		name := ts.String()
		if name == "" {
			name = "NONE"
		}
		b.Run(name, func(b *testing.B) {
			l := newPinelogLogger(b, config.Record{MinLevel: core.InfoLevel, Timestamp: ts})
			defer l.Close()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("timestamped")
			}
		})
	}
}

// Benchmark the cached clock against time.Now on the hot path
func BenchmarkClock(b *testing.B) {
	clocks := map[string]core.Clock{
		"system": core.SystemClock{},
		"coarse": core.NewCoarseClock(),
	}
	for name, clock := range clocks {
		b.Run(name, func(b *testing.B) {
			opts := append(pinelogOptions(), logger.WithClock(clock))
			l, err := logger.New(config.Record{MinLevel: core.InfoLevel, Timestamp: core.TimestampFull}, opts...)
			if err != nil {
				b.Fatal(err)
			}
			defer l.Close()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("clocked")
			}
		})
	}
}

// Benchmark one registry shared by parallel sync and non-blocking writers
func BenchmarkRegistry_MixedModes(b *testing.B) {
	reg := logger.NewRegistry(pinelogOptions()...)
	ctx := context.Background()
	defer reg.Close(ctx)

	path := filepath.Join(b.TempDir(), "mixed.log")
	rec := config.Record{MinLevel: core.InfoLevel, FilePath: path, Timestamp: core.TimestampTime}
	if err := reg.InitSync(rec); err != nil {
		b.Fatal(err)
	}
	if err := reg.InitNonBlocking(ctx, rec); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				reg.Sync().Info("sync")
			} else {
				_ = reg.NonBlocking().Info(ctx, "nonblocking")
			}
			i++
		}
	})
}

// Benchmark pinelog as a slog backend
func BenchmarkSlogBridge(b *testing.B) {
	l := newPinelogLogger(b, config.Record{MinLevel: core.InfoLevel})
	defer l.Close()
	log := slog.New(logger.NewSlogHandler(l))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("request", "status", 200, "path", "/health")
	}
}
