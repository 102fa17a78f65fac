// Package formatter renders accepted log entries into text lines.
//
// A TextFormatter produces the same line shape for both outputs,
// "{timestamp} [{level}] {message}\n", and differs only in the level
// tag: the console line uses the decorated tag from Styles, the file
// line uses the plain tag so persisted text never carries terminal
// escape sequences.
//
// Styles pre-renders the decorated tags once with lipgloss (green INFO,
// yellow WARN, red ERROR). ColorAuto enables colors only for terminal
// writers, detected with golang.org/x/term, and honours NO_COLOR.
//
// Formatting writes into a caller-provided bytes.Buffer using Go's
// Append-style time formatting so loggers can reuse one buffer under
// their own lock. Buffers larger than 64 KiB are not returned to the
// internal pool.
package formatter
