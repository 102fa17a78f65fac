package logger

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/formatter"
	"github.com/philipp01105/pinelog/handler"
	"github.com/philipp01105/pinelog/handler/filehandler"
)

// instance is the state behind one logger between two reloads. Exactly
// one of syncFile and asyncFile may be set, matching mode.
type instance struct {
	mode      Mode
	rec       config.Record
	format    *formatter.TextFormatter
	syncFile  handler.LineWriter
	asyncFile handler.ContextLineWriter
}

func newInstance(mode Mode, rec config.Record, s *settings) (*instance, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &instance{
		mode: mode,
		rec:  rec,
		format: formatter.NewTextFormatter(formatter.Config{
			Timestamp: rec.Timestamp,
			Styles:    s.styles,
		}),
	}, nil
}

func openSyncInstance(rec config.Record, s *settings) (*instance, error) {
	inst, err := newInstance(ModeSync, rec, s)
	if err != nil {
		return nil, err
	}
	if rec.HasFile() {
		f, err := filehandler.OpenSync(rec.FilePath)
		if err != nil {
			return nil, err
		}
		inst.syncFile = f
	}
	return inst, nil
}

func openAsyncInstance(ctx context.Context, rec config.Record, s *settings) (*instance, error) {
	inst, err := newInstance(ModeNonBlocking, rec, s)
	if err != nil {
		return nil, err
	}
	if rec.HasFile() {
		f, err := filehandler.OpenAsync(ctx, rec.FilePath, s.asyncFile)
		if err != nil {
			return nil, err
		}
		inst.asyncFile = f
	}
	return inst, nil
}

func (i *instance) hasFile() bool {
	return i.syncFile != nil || i.asyncFile != nil
}

// writeFile appends one line with the mode's primitive.
func (i *instance) writeFile(ctx context.Context, p []byte) error {
	switch i.mode {
	case ModeSync:
		return i.syncFile.WriteLine(p)
	case ModeNonBlocking:
		return i.asyncFile.WriteLineContext(ctx, p)
	default:
		return fmt.Errorf("unknown logger mode %d", i.mode)
	}
}

func (i *instance) close() error {
	switch {
	case i.syncFile != nil:
		return i.syncFile.Close()
	case i.asyncFile != nil:
		return i.asyncFile.Close()
	default:
		return nil
	}
}

// pipeline is the filtering and formatting path both modes share. Its
// buffer is reused, so callers must hold the owning logger's guard.
type pipeline struct {
	s     *settings
	stats *handler.Stats
	buf   bytes.Buffer
}

func newPipeline(s *settings) pipeline {
	return pipeline{s: s, stats: handler.NewStats()}
}

// emit writes the console line and, if inst has a file, the file line.
// The two writes are independent: a failure of one is reported and does
// not suppress the other.
func (p *pipeline) emit(ctx context.Context, inst *instance, level core.Level, msg string) error {
	if level < inst.rec.MinLevel {
		p.stats.IncrementFiltered()
		return nil
	}
	p.stats.IncrementAccepted(level)

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Time = p.s.clock.Now()
	entry.Level = level
	entry.Message = msg

	p.buf.Reset()
	inst.format.FormatConsole(entry, &p.buf)
	var consoleErr error
	if err := p.s.console.WriteLine(p.buf.Bytes()); err != nil {
		p.stats.IncrementConsoleErrors()
		consoleErr = fmt.Errorf("%w: write console: %w", core.ErrIO, err)
	}

	var fileErr error
	if inst.hasFile() {
		p.buf.Reset()
		inst.format.FormatFile(entry, &p.buf)
		if err := inst.writeFile(ctx, p.buf.Bytes()); err != nil {
			p.stats.IncrementFileErrors()
			fileErr = err
		}
	}

	return errors.Join(consoleErr, fileErr)
}
