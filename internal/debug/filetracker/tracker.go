package filetracker

import (
	"runtime"
	"sync"
	"time"
)

// LeakThreshold is how long a handle may stay open before it is reported.
const LeakThreshold = time.Minute

type FileInfo struct {
	Path       string
	Handle     uintptr
	OpenedAt   time.Time
	StackTrace []uintptr
}

type EventPublisher interface {
	Publish(eventType string, data map[string]interface{})
}

// Tracker records file handles opened by the file service so that a
// handle left open after a failed read or write shows up in the logs.
type Tracker struct {
	openFiles map[string]FileInfo
	mu        sync.RWMutex
	eventBus  EventPublisher
	enabled   bool
	now       func() time.Time
}

func NewTracker(eventBus EventPublisher) *Tracker {
	return &Tracker{
		openFiles: make(map[string]FileInfo),
		eventBus:  eventBus,
		enabled:   true,
		now:       time.Now,
	}
}

func (ft *Tracker) TrackOpen(path string, handle uintptr) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])

	info := FileInfo{
		Path:       path,
		Handle:     handle,
		OpenedAt:   ft.now(),
		StackTrace: pcs[:n],
	}
	ft.openFiles[path] = info

	if ft.eventBus != nil {
		ft.eventBus.Publish("file_handle_opened", map[string]interface{}{
			"path":   path,
			"handle": handle,
		})
	}
}

func (ft *Tracker) TrackClose(path string, handle uintptr) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	info, exists := ft.openFiles[path]
	if !exists || info.Handle != handle {
		return
	}
	delete(ft.openFiles, path)

	if ft.eventBus != nil {
		ft.eventBus.Publish("file_handle_closed", map[string]interface{}{
			"path":     path,
			"handle":   handle,
			"duration": ft.now().Sub(info.OpenedAt),
		})
	}
}

func (ft *Tracker) GetOpenFiles() map[string]FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make(map[string]FileInfo, len(ft.openFiles))
	for k, v := range ft.openFiles {
		result[k] = v
	}
	return result
}

func (ft *Tracker) DetectLeaks() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	threshold := ft.now().Add(-LeakThreshold)
	var leaks []FileInfo
	for _, info := range ft.openFiles {
		if info.OpenedAt.Before(threshold) {
			leaks = append(leaks, info)
		}
	}
	return leaks
}

func (ft *Tracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}
