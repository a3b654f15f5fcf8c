package codebase

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps a Codebase in sync with the filesystem. Directories are
// watched recursively; only .sketch files trigger a re-parse.
type FileWatcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
}

func NewFileWatcher(c *Codebase) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		codebase: c,
		watcher:  watcher,
		stopCh:   make(chan struct{}),
	}
	if err := w.addRecursive(c.RootDir()); err != nil {
		watcher.Close()
		return nil, err
	}
	return w, nil
}

func (w *FileWatcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watch: %s", err.Error())
		}
	}
}

func (w *FileWatcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			_ = w.addRecursive(path)
			return
		}
	}

	if filepath.Ext(path) != ".sketch" {
		return
	}

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if err := w.codebase.ScanFile(path); err == nil {
			log.Debugf("rescanned %s", path)
		}
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.codebase.RemoveFile(path)
		log.Debugf("removed %s", path)
	}
}
