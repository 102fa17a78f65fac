// Package consolehandler writes pinelog console lines to an io.Writer,
// os.Stdout by default.
//
// Writers known to serialize concurrent Write calls (*os.File and
// io.Discard) are written directly. Any other writer is wrapped in a
// mutex owned by the Handler, so loggers in different modes sharing one
// Handler still produce whole lines.
//
// Closing a Handler stops further writes but never closes the writer.
package consolehandler
