package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long Watch waits after the last change before reloading.
const DefaultWatchDebounce = 200 * time.Millisecond

// Reloader is implemented by *Translator.
type Reloader interface {
	Reload(ctx context.Context) error
}

// WatchOptions configures Watch.
type WatchOptions struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch reloads r whenever a catalog file in dir is written, created,
// removed or renamed. Bursts of events are coalesced into one reload.
// Reload errors are logged and the previous catalog stays active.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, dir string, r Reloader, opts WatchOptions) error {
	if r == nil {
		return ErrNilAdapter
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultWatchDebounce
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToReadDir, err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToReadDir, err)
	}
	log.InfoContext(ctx, "watching translation catalogs", "dir", dir)

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isCatalogEvent(event) {
				continue
			}
			log.DebugContext(ctx, "catalog change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(opts.Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				timer.Reset(opts.Debounce)
			}
			log.WarnContext(ctx, "catalog watcher error", "error", err)

		case <-timer.C:
			if err := r.Reload(ctx); err != nil {
				log.WarnContext(ctx, "catalog reload failed, keeping previous catalog", "dir", dir, "error", err)
			}
		}
	}
}

func isCatalogEvent(e fsnotify.Event) bool {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Remove) && !e.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Ext(e.Name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
