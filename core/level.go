package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// InfoLevel for general informational messages (default)
	InfoLevel Level = iota
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// Levels returns every level in ascending severity order.
func Levels() []Level {
	return []Level{InfoLevel, WarnLevel, ErrorLevel}
}

// String returns the plain, undecorated representation of the level
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= InfoLevel && l <= ErrorLevel
}

// Compare orders two levels by severity. It returns -1 if a is less
// severe than b, +1 if it is more severe and 0 if they are equal.
func Compare(a, b Level) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseLevel converts a string to a Level. Matching is case-insensitive
// and WARNING is accepted as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: unknown level %q", ErrConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: unknown level %d", ErrConfig, int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
