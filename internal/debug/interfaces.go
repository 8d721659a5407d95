package debug

import (
	"context"
	"time"

	"text-editor/internal/logger"
)

// Logger is re-exported so callers holding a Coordinator need not import the logger package.
type Logger = logger.Logger

// EventPublisher distributes debug events to subscribers without blocking
type EventPublisher interface {
	Publish(event Event)
	Subscribe(eventType string, handler EventHandler)
	Unsubscribe(eventType string, handler EventHandler)
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// Event represents a diagnostic event raised by the editor
type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
	Context   context.Context
}

// Well-known event types.
const (
	EventFileOpened       = "file_opened"
	EventFileSaved        = "file_saved"
	EventReplaceCompleted = "replace_completed"
	EventTimingCompleted  = "timing_completed"
	EventFileHandleOpened = "file_handle_opened"
	EventFileHandleClosed = "file_handle_closed"
)

type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
	GetTimings(operation string) []time.Duration
}

// FileTracker monitors file handles opened by the file service
type FileTracker interface {
	TrackOpen(path string, handle uintptr)
	TrackClose(path string, handle uintptr)
	GetOpenFiles() map[string]FileInfo
	DetectLeaks() []FileInfo
}

type FileInfo struct {
	Path       string
	Handle     uintptr
	OpenedAt   time.Time
	StackTrace []uintptr
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	FileTracker() FileTracker
	EventPublisher() EventPublisher
	Shutdown()
}
