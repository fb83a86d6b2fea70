package light

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"gopkg.in/fsnotify.v1"
)

// Watcher reloads a light source file whenever it changes on disk.
type Watcher struct {
	path     string
	onReload func(map[string]*Group)
	onError  func(error)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
	stopped chan struct{}
}

// NewWatcher creates a watcher for path. onReload receives every successfully
// loaded catalog; onError receives load and watch failures and may be nil.
func NewWatcher(path string, onReload func(map[string]*Group), onError func(error)) *Watcher {
	if onError == nil {
		onError = func(error) {}
	}
	return &Watcher{
		path:     filepath.Clean(path),
		onReload: onReload,
		onError:  onError,
	}
}

// Start begins watching. The file's directory is watched rather than the file
// itself so editors that replace the file by rename are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return fmt.Errorf("watcher already started")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fw
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})
	go w.loop(ctx, fw, w.done, w.stopped)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	fw, done, stopped := w.watcher, w.done, w.stopped
	w.watcher = nil
	w.mu.Unlock()
	if fw == nil {
		return
	}
	close(done)
	fw.Close()
	<-stopped
}

// Reload loads the file once and hands the result to the callbacks.
func (w *Watcher) Reload(ctx context.Context) {
	groups, err := Load(ctx, FileProvider{Path: w.path})
	if err != nil {
		w.onError(err)
		return
	}
	if w.onReload != nil {
		w.onReload(groups)
	}
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, done, stopped chan struct{}) {
	defer close(stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.Reload(ctx)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.onError(fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}
