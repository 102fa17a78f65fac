package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/pinelog/core"
)

// TextFormatter composes console and file lines of the form
// "{timestamp} [{level}] {message}\n". When the timestamp format is
// TimestampNone the line starts at the opening bracket.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Styles == nil {
		cfg.Styles = NewStyles(nil, ColorNever)
	}
	return &TextFormatter{Config: cfg}
}

// FormatConsole writes the decorated console line for entry into buf.
func (f *TextFormatter) FormatConsole(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, f.Styles.Decorated(entry.Level), buf)
}

// FormatFile writes the plain file line for entry into buf.
func (f *TextFormatter) FormatFile(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, f.Styles.Plain(entry.Level), buf)
}

// ConsoleLine returns the decorated console line for entry.
func (f *TextFormatter) ConsoleLine(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)
	f.FormatConsole(entry, buf)
	return buf.String()
}

// FileLine returns the plain file line for entry.
func (f *TextFormatter) FileLine(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)
	f.FormatFile(entry, buf)
	return buf.String()
}

// WriteFileLine formats entry as a file line and writes it to w in a
// single Write call.
func (f *TextFormatter) WriteFileLine(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	f.FormatFile(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, level string, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	if f.Timestamp.Enabled() {
		buf.Write(f.Timestamp.AppendFormat(buf.AvailableBuffer(), entry.Time))
		buf.WriteByte(' ')
	}

	buf.WriteByte('[')
	buf.WriteString(level)
	buf.WriteString("] ")

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
