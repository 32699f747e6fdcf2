package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"scribe/internal/logger"
)

// New creates a Watcher over inputDir. Files are handed to handler one
// at a time: each recording is processed start to finish before the
// next begins.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(inputDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fw,
	}, nil
}
