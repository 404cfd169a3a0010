package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-triggers dataset runs when the config file or an input file is
// rewritten. Events inside the cooldown window are coalesced so editors that
// write in several chunks cause one rebuild.
type Watcher struct {
	watcher  *fsnotify.Watcher
	cooldown time.Duration
	onChange func(path string)

	mu   sync.Mutex
	last time.Time

	stopChan chan struct{}
	doneChan chan struct{}
}

// NewWatcher watches paths and calls onChange after a write or create event.
func NewWatcher(paths []string, cooldown time.Duration, onChange func(string)) (*Watcher, error) {
	if cooldown <= 0 {
		cooldown = time.Second
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
	}
	return &Watcher{
		watcher:  fsw,
		cooldown: cooldown,
		onChange: onChange,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}, nil
}

// Start begins dispatching events until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneChan)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handle(event.Name)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handle(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if time.Since(w.last) < w.cooldown {
		return
	}
	w.last = time.Now()
	if w.onChange != nil {
		w.onChange(path)
	}
}

// Stop shuts down the watcher and waits briefly for the loop to exit.
func (w *Watcher) Stop() error {
	select {
	case <-w.stopChan:
	default:
		close(w.stopChan)
	}
	select {
	case <-w.doneChan:
	case <-time.After(time.Second):
	}
	return w.watcher.Close()
}
