// Package filehandler provides the two destination-file handles used by
// pinelog, one per logger mode.
//
// Both open the file once with O_CREATE|O_WRONLY|O_APPEND: an existing
// file is appended to, never truncated, and a missing one is created.
// Missing parent directories are an error. Open failures are returned as
// *core.IOError so callers decide whether to fall back to console-only
// output.
//
// SyncFile writes on the calling goroutine. AsyncFile owns the file in a
// dedicated goroutine fed by a channel; WriteLineContext parks the caller
// until its line has been written and returns the result. Neither handle
// buffers: a line is on disk (in the OS page cache) when the call returns.
//
// Neither handle rotates or reopens its file.
package filehandler
