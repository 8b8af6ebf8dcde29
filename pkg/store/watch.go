package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the stored document changed on disk.
type Event struct{}

// Watch streams a change event whenever the state blob is rewritten, until
// ctx is cancelled. Events are coalesced; a slow consumer only sees the most
// recent change. The channel closes once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}
	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer closeWatcher()

		var pending bool
		var timer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		// Coalesce bursts: the store rewrites the blob in place, which
		// produces several filesystem events per save.
		const quiet = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				pending = true
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != stateKey {
					continue
				}
				pending = true
			case <-fire:
				fire = nil
				if pending {
					pending = false
					select {
					case events <- Event{}:
					default:
					}
				}
				continue
			}
			if pending && fire == nil {
				timer = time.NewTimer(quiet)
				fire = timer.C
			}
		}
	}()
	return events, nil
}
