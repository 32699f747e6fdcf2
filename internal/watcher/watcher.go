package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"scribe/internal/logger"
)

// settleDelay gives the writer time to finish before we read the file.
const settleDelay = 500 * time.Millisecond

var audioExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".aac"}

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start blocks, monitoring the input directory for new audio files
// until the context is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for audio files (%s)", w.inputDir, strings.Join(audioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)
			time.Sleep(settleDelay)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range audioExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
