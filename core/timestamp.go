package core

import (
	"fmt"
	"strings"
	"time"
)

// TimestampFormat selects how the time of an entry is rendered.
// The zero value emits no timestamp at all.
type TimestampFormat uint8

const (
	// TimestampNone omits the timestamp
	TimestampNone TimestampFormat = iota
	// TimestampDate renders the calendar date, e.g. 2026-02-18
	TimestampDate
	// TimestampTime renders the wall clock time, e.g. 13:04:05
	TimestampTime
	// TimestampFull renders date and time, e.g. 2026-02-18 13:04:05
	TimestampFull
)

// layouts indexed by TimestampFormat
var layouts = [...]string{
	TimestampNone: "",
	TimestampDate: "2006-01-02",
	TimestampTime: "15:04:05",
	TimestampFull: "2006-01-02 15:04:05",
}

// Layout returns the time layout for the format, or "" for TimestampNone.
func (f TimestampFormat) Layout() string {
	if int(f) < len(layouts) {
		return layouts[f]
	}
	return ""
}

// Enabled reports whether a timestamp is emitted at all.
func (f TimestampFormat) Enabled() bool {
	return f.Layout() != ""
}

// AppendFormat appends t rendered per f to dst.
func (f TimestampFormat) AppendFormat(dst []byte, t time.Time) []byte {
	layout := f.Layout()
	if layout == "" {
		return dst
	}
	return t.AppendFormat(dst, layout)
}

// Format renders t per f.
func (f TimestampFormat) Format(t time.Time) string {
	return string(f.AppendFormat(nil, t))
}

// String returns the settings-file spelling of the format.
func (f TimestampFormat) String() string {
	switch f {
	case TimestampNone:
		return ""
	case TimestampDate:
		return "DATE"
	case TimestampTime:
		return "TIME"
	case TimestampFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// ParseTimestampFormat converts DATE, TIME or FULL (any case) to a
// TimestampFormat. The empty string yields TimestampNone.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return TimestampNone, nil
	case "DATE":
		return TimestampDate, nil
	case "TIME":
		return TimestampTime, nil
	case "FULL":
		return TimestampFull, nil
	default:
		return TimestampNone, fmt.Errorf("%w: unknown timestamp format %q", ErrConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f TimestampFormat) MarshalText() ([]byte, error) {
	if int(f) >= len(layouts) {
		return nil, fmt.Errorf("%w: unknown timestamp format %d", ErrConfig, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TimestampFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestampFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
