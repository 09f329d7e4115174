package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchAndRun runs the script once, then re-runs it with a fresh environment
// every time the file changes. It blocks until the watcher fails; the user
// stops it with Ctrl+C.
func watchAndRun(filename string, debounce time.Duration, stdout, stderr io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory rather than the file itself: editors that save by
	// rename would otherwise drop the watch after the first write.
	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %v", dir, err)
	}

	fmt.Fprintf(stdout, "[WATCH] watching %s\n", filename)
	runOnce(filename, stdout, stderr)

	var lastChange time.Time
	base := filepath.Base(filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write and create events for the watched script
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}

			// Debounce rapid changes
			if time.Since(lastChange) < debounce {
				continue
			}
			lastChange = time.Now()

			fmt.Fprintf(stdout, "[WATCH] %s changed, re-running\n", filename)
			runOnce(filename, stdout, stderr)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "[WATCH ERROR] %v\n", err)
		}
	}
}

// runOnce executes the script, reporting errors without stopping the watch.
func runOnce(filename string, stdout, stderr io.Writer) {
	if err := runFile(filename); err != nil {
		fmt.Fprintln(stderr, err)
	}
}
