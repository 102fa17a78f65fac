package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/pinelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// sync Logger, so pinelog can back log/slog. Attributes are appended to
// the message as key=value pairs; output stays plain text.
type SlogHandler struct {
	logger *Logger
	attrs  string // pre-rendered " k=v" pairs
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
// Levels below slog.LevelInfo have no pinelog equivalent and are never
// enabled.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l, ok := slogLevelToCore(level)
	return ok && l >= s.logger.Level()
}

// Handle writes the record as one line.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level, ok := slogLevelToCore(record.Level)
	if !ok {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})

	return s.logger.Log(level, sb.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  sb.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) (core.Level, bool) {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel, true
	case level >= slog.LevelWarn:
		return core.WarnLevel, true
	case level >= slog.LevelInfo:
		return core.InfoLevel, true
	default:
		return core.InfoLevel, false
	}
}

// appendAttr writes " key=value", prefixing the key with the group and
// flattening nested groups into dotted keys.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
