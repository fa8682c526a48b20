package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/inktally/inktally/pkg/core"
)

// debounceDelay coalesces the bursts of filesystem events an editor or
// atomic rewrite produces into a single reload.
const debounceDelay = 50 * time.Millisecond

// Watch observes the backing data file and reloads the store whenever
// it is rewritten, emitting one core.Event per reload. The watcher and
// the event channel shut down when ctx is cancelled.
//
// Watching does not make concurrent writers safe; it only lets a
// session notice that the file changed under it.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic rewrites replace the
	// inode, which silently drops a per-file watch.
	dir := filepath.Dir(s.config.Path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.config.Path)
	events := make(chan core.Event, 1)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(events)
		defer s.setWatcherActive(false)

		timer := time.NewTimer(debounceDelay)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if pending && !timer.Stop() {
					<-timer.C
				}
				timer.Reset(debounceDelay)
				pending = true

			case <-timer.C:
				pending = false
				err := s.Load(ctx)
				if err != nil {
					s.config.Logger.Error("reload failed", "path", s.config.Path, "error", err)
				}
				select {
				case events <- core.Event{Time: time.Now(), Records: s.Len(), Err: err}:
				case <-ctx.Done():
					return nil
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.config.Logger.Error("watcher error", "error", err)
			}
		}
	})

	return events, nil
}

var _ core.Watchable = (*Store)(nil)
