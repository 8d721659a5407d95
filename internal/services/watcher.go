package services

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"text-editor/internal/debug"
)

// FileWatcher reports modifications of the current document on disk.
// The parent directory is watched rather than the file, so replacement by
// rename (as FileService.Write does) is seen too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   debug.Logger
	onChange func(path string)

	mu   sync.Mutex
	path string
	dir  string
	done chan struct{}
}

func NewFileWatcher(logger debug.Logger, onChange func(path string)) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  w,
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

// Watch switches the watch to path; an empty path stops watching.
func (fw *FileWatcher) Watch(path string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		path = abs
	}
	if path == fw.path {
		return nil
	}

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}
	if dir != fw.dir {
		if fw.dir != "" {
			if err := fw.watcher.Remove(fw.dir); err != nil {
				fw.logger.Debug("FileWatcher", "remove watch failed", map[string]interface{}{"dir": fw.dir, "error": err.Error()})
			}
		}
		if dir != "" {
			if err := fw.watcher.Add(dir); err != nil {
				fw.path, fw.dir = "", ""
				return err
			}
		}
	}

	fw.path, fw.dir = path, dir
	fw.logger.Debug("FileWatcher", "watching", map[string]interface{}{"path": path})
	return nil
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.mu.Lock()
			current := fw.path
			fw.mu.Unlock()
			if current != "" && filepath.Clean(event.Name) == current {
				fw.onChange(current)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warning("FileWatcher", "watch error", map[string]interface{}{"error": err.Error()})
		case <-fw.done:
			return
		}
	}
}

// Shutdown stops the watcher; it is safe to call more than once.
func (fw *FileWatcher) Shutdown() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	select {
	case <-fw.done:
		return
	default:
		close(fw.done)
	}
	fw.watcher.Close()
}
