package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type EventPublisher interface {
	Publish(eventType string, data map[string]interface{})
}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

// Tracker keeps per-operation durations for file reads, writes and replaces.
type Tracker struct {
	timings  map[string][]time.Duration
	mu       sync.RWMutex
	eventBus EventPublisher
	enabled  bool
}

func NewTracker(eventBus EventPublisher) *Tracker {
	return &Tracker{
		timings:  make(map[string][]time.Duration),
		eventBus: eventBus,
		enabled:  true,
	}
}

func (tt *Tracker) StartTiming(operation string) context.Context {
	tt.mu.RLock()
	enabled := tt.enabled
	tt.mu.RUnlock()

	if !enabled {
		return context.Background()
	}

	return context.WithValue(context.Background(), timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: time.Now(),
	})
}

func (tt *Tracker) EndTiming(ctx context.Context) {
	timingInfo, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return
	}

	duration := time.Since(timingInfo.StartTime)

	tt.mu.Lock()
	tt.timings[timingInfo.Operation] = append(tt.timings[timingInfo.Operation], duration)
	tt.mu.Unlock()

	if tt.eventBus != nil {
		tt.eventBus.Publish("timing_completed", map[string]interface{}{
			"operation": timingInfo.Operation,
			"duration":  duration,
		})
	}
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}
	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

// Reset drops the history of one operation, or of all of them when operation is empty.
func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
