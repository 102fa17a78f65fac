// Package logger is the public API of pinelog. Most users only need to
// import this package and config.
//
// Two loggers exist, one per mode. A Logger (ModeSync) guards each call
// with a mutex and writes its file on the calling goroutine. An
// AsyncLogger (ModeNonBlocking) guards each call with a context-aware
// semaphore and hands its file writes to a goroutine owning the file, so
// callers wait on a context instead of blocking in a system call. Both
// share the same pipeline: a call below the minimum level does nothing;
// an accepted call writes
//
//	{timestamp} [{level}] {message}
//
// to the console with a colored level, then appends the same line with
// a plain level to the destination file, if one is configured.
//
// The package keeps a default Registry with one logger per mode. Slots
// start with config.Default() and are replaced through Init and
// InitAsync:
//
//	if err := logger.InitFromFile("pinelog.toml"); err != nil {
//	    return err
//	}
//	logger.Warnf("disk %d%% full", pct)
//
//	if err := logger.AsyncInfo(ctx, "request served"); err != nil {
//	    return err
//	}
//
// Explicit loggers are built with New, NewAsync or the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithLevel(core.WarnLevel).
//	    WithFile("app.log").
//	    WithTimestamp(core.TimestampTime).
//	    Build()
//
// Replacing a configuration with Reload opens the new file before the
// old one is released, so a failed reload leaves the logger as it was.
package logger
