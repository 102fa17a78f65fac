package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the burst of events editors emit for one save.
const debounceInterval = 50 * time.Millisecond

// Watch reloads the settings file at path whenever it changes and passes
// the result to fn. A file that fails to load is reported through the
// error argument; fn is not called with a zero Record in that case.
//
// The parent directory is watched so that editors replacing the file
// through a rename are noticed. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(Record, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch settings %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch settings %s: %w", path, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch settings %s: %w", path, err)
	}

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceInterval)

		case <-debounce.C:
			rec, err := Load(abs)
			fn(rec, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(Record{}, fmt.Errorf("watch settings %s: %w", path, err))
		}
	}
}
