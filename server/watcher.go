package server

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces fsnotify events for every directory under a source tree
// into a single Update channel. Only Go files count.
type Watcher struct {
	watcher      *fsnotify.Watcher
	root         string
	timer        *time.Timer
	debounceTime time.Duration

	onUpdate chan<- error
	Update   <-chan error
}

const DEFAULT_DEBOUNCE_TIME = 250 * time.Millisecond

func WatchTree(root string, debounceTime time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != root && (name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})

	if err != nil {
		if err := watcher.Close(); err != nil {
			panic(err)
		}
		return nil, err
	}

	updateCh := make(chan error, 1)

	out := &Watcher{
		watcher:      watcher,
		root:         root,
		timer:        nil,
		debounceTime: debounceTime,
		onUpdate:     updateCh,
		Update:       updateCh,
	}

	go out.process()

	return out, nil
}

func (w *Watcher) debounceUpdate() {
	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounceTime, func() {
		w.onUpdate <- nil
	})
}

func (w *Watcher) Close() {
	w.watcher.Close()
	w.watcher = nil
}

func (w *Watcher) process() {
	for {
		select {
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onUpdate <- err
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Ext(ev.Name) != ".go" {
				continue
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				w.debounceUpdate()
			}
		}
	}
}
