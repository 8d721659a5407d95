package debug

import (
	"context"
	"time"

	"text-editor/internal/debug/eventbus"
	"text-editor/internal/debug/filetracker"
	"text-editor/internal/debug/timing"
	"text-editor/internal/logger"
)

// EventBusImpl wraps eventbus.Bus to implement EventPublisher
type EventBusImpl struct {
	*eventbus.Bus
}

func (e *EventBusImpl) Publish(event Event) {
	e.Bus.Publish(eventbus.Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
		Context:   event.Context,
	})
}

func (e *EventBusImpl) Subscribe(eventType string, handler EventHandler) {
	e.Bus.Subscribe(eventType, &eventHandlerAdapter{handler: handler})
}

func (e *EventBusImpl) Unsubscribe(eventType string, handler EventHandler) {
	e.Bus.Unsubscribe(eventType, &eventHandlerAdapter{handler: handler})
}

type eventHandlerAdapter struct {
	handler EventHandler
}

func (e *eventHandlerAdapter) Handle(event eventbus.Event) {
	e.handler.Handle(Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
		Context:   event.Context,
	})
}

func (e *eventHandlerAdapter) GetID() string {
	return e.handler.GetID()
}

// trackerBus forwards tracker events onto the shared bus.
type trackerBus struct {
	eventBus *EventBusImpl
}

func (t *trackerBus) Publish(eventType string, data map[string]interface{}) {
	t.eventBus.Publish(Event{Type: eventType, Data: data})
}

type TimingTrackerImpl struct {
	tracker *timing.Tracker
}

func (t *TimingTrackerImpl) StartTiming(operation string) context.Context {
	return t.tracker.StartTiming(operation)
}

func (t *TimingTrackerImpl) EndTiming(ctx context.Context) {
	t.tracker.EndTiming(ctx)
}

func (t *TimingTrackerImpl) GetTimings(operation string) []time.Duration {
	return t.tracker.GetTimings(operation)
}

type FileTrackerImpl struct {
	tracker *filetracker.Tracker
}

func (f *FileTrackerImpl) TrackOpen(path string, handle uintptr) {
	f.tracker.TrackOpen(path, handle)
}

func (f *FileTrackerImpl) TrackClose(path string, handle uintptr) {
	f.tracker.TrackClose(path, handle)
}

func (f *FileTrackerImpl) GetOpenFiles() map[string]FileInfo {
	files := f.tracker.GetOpenFiles()
	result := make(map[string]FileInfo, len(files))
	for k, v := range files {
		result[k] = FileInfo(v)
	}
	return result
}

func (f *FileTrackerImpl) DetectLeaks() []FileInfo {
	leaks := f.tracker.DetectLeaks()
	result := make([]FileInfo, len(leaks))
	for i, v := range leaks {
		result[i] = FileInfo(v)
	}
	return result
}

// eventLogger writes diagnostic events to the debug log. Timing events
// carry the running average for their operation.
type eventLogger struct {
	log    Logger
	timing *timing.Tracker
}

func (l *eventLogger) Handle(event Event) {
	fields := make(map[string]interface{}, len(event.Data)+1)
	for k, v := range event.Data {
		fields[k] = v
	}
	if event.Type == EventTimingCompleted {
		if op, ok := event.Data["operation"].(string); ok {
			fields["average"] = l.timing.GetAverageTime(op)
		}
	}
	l.log.Debug("DebugEvents", event.Type, fields)
}

func (l *eventLogger) GetID() string { return "event-logger" }

var loggedEvents = []string{
	EventFileOpened,
	EventFileSaved,
	EventReplaceCompleted,
	EventTimingCompleted,
	EventFileHandleOpened,
	EventFileHandleClosed,
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker TimingTracker
	fileTracker   FileTracker
	eventBus      *EventBusImpl
}

func NewCoordinator(config Config) *DebugCoordinator {
	var loggerImpl Logger
	switch {
	case !config.EnableLogging:
		loggerImpl = logger.NoOpLogger{}
	case config.UseJSONLogging:
		loggerImpl = logger.NewJSONLogger(config.LogLevel)
	default:
		loggerImpl = logger.NewConsoleLogger(config.LogLevel)
	}

	return NewCoordinatorWithLogger(config, loggerImpl)
}

// NewCoordinatorWithLogger is used by tests and by callers that already own a logger.
func NewCoordinatorWithLogger(config Config, log Logger) *DebugCoordinator {
	eventBus := &EventBusImpl{Bus: eventbus.NewBus(config.EventBufferSize)}
	forward := &trackerBus{eventBus: eventBus}

	fileTracker := filetracker.NewTracker(forward)
	fileTracker.SetEnabled(config.EnableFileTracking)

	timingTracker := timing.NewTracker(forward)
	timingTracker.SetEnabled(config.EnableTimingTracking)

	if config.EnableLogging {
		sink := &eventLogger{log: log, timing: timingTracker}
		for _, eventType := range loggedEvents {
			eventBus.Subscribe(eventType, sink)
		}
	}

	return &DebugCoordinator{
		logger:        log,
		timingTracker: &TimingTrackerImpl{tracker: timingTracker},
		fileTracker:   &FileTrackerImpl{tracker: fileTracker},
		eventBus:      eventBus,
	}
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) FileTracker() FileTracker {
	return dc.fileTracker
}

func (dc *DebugCoordinator) EventPublisher() EventPublisher {
	return dc.eventBus
}

func (dc *DebugCoordinator) Shutdown() {
	for _, leak := range dc.fileTracker.DetectLeaks() {
		dc.logger.Warning("DebugCoordinator", "file handle still open at shutdown", map[string]interface{}{
			"path": leak.Path,
		})
	}
	dc.eventBus.Bus.Shutdown()
	if dropped := dc.eventBus.Dropped(); dropped > 0 {
		dc.logger.Warning("DebugCoordinator", "diagnostic events dropped", map[string]interface{}{
			"count": dropped,
		})
	}
}

type Config struct {
	EnableLogging        bool
	EnableFileTracking   bool
	EnableTimingTracking bool
	UseJSONLogging       bool
	LogLevel             logger.LogLevel
	EventBufferSize      int
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   true,
		EnableTimingTracking: true,
		UseJSONLogging:       false,
		LogLevel:             logger.InfoLevel,
		EventBufferSize:      256,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   false,
		EnableTimingTracking: false,
		UseJSONLogging:       true,
		LogLevel:             logger.ErrorLevel,
		EventBufferSize:      64,
	}
}
