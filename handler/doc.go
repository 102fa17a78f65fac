// Package handler defines the write capabilities shared by pinelog's
// console and file outputs, and the Stats counters loggers expose.
//
// Two capabilities exist, one per logger mode:
//
//   - LineWriter blocks the calling goroutine for the duration of the
//     write. It backs sync-mode file output (filehandler.SyncFile) and
//     console output (consolehandler.Handler).
//   - ContextLineWriter hands the line to a goroutine that owns the file
//     and parks the caller until the result arrives. It backs
//     non-blocking-mode file output (filehandler.AsyncFile).
//
// The two are deliberately distinct types: a sync logger can only hold a
// LineWriter and a non-blocking logger only a ContextLineWriter.
//
// Stats tracks accepted calls per level, calls filtered by the minimum
// level, and failed console and file writes. All counters are atomic and
// can be read at any time through GetSnapshot.
package handler
