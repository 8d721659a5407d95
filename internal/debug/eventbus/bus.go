package eventbus

import (
	"context"
	"sync"
	"time"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
	Context   context.Context
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// Bus delivers events on a single worker goroutine. Publish never blocks:
// events are dropped when the buffer is full or the bus is shut down.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	closed      bool
	closeMu     sync.RWMutex
	wg          sync.WaitGroup
	dropped     int
}

func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
	}

	bus.startWorker()
	return bus
}

func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.closeMu.RLock()
	defer b.closeMu.RUnlock()
	if b.closed {
		return
	}

	select {
	case b.buffer <- event:
	default:
		b.mu.Lock()
		b.dropped++
		b.mu.Unlock()
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (b *Bus) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Shutdown stops accepting events, drains what is buffered and waits for the worker.
func (b *Bus) Shutdown() {
	b.closeMu.Lock()
	if b.closed {
		b.closeMu.Unlock()
		return
	}
	b.closed = true
	close(b.buffer)
	b.closeMu.Unlock()

	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for event := range b.buffer {
			b.dispatchEvent(event)
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				// a panicking subscriber must not take the worker down
				_ = recover()
			}()
			handler.Handle(event)
		}()
	}
}
