package controllers

import "fmt"

// Event names emitted by the Editor. Handlers run synchronously, in
// registration order, at the end of the operation that caused them.
const (
	EventDocument = "document" // text replaced outside the widget; data: string
	EventSpans    = "spans"    // formatting spans changed; data: nil
	EventStatus   = "status"   // data: models.StatusSummary
	EventTitle    = "title"    // data: string
	EventView     = "view"     // data: models.ViewState
	EventError    = "error"    // data: error
)

// EventHandler reacts to an editor event.
type EventHandler func(data interface{}) error

// On registers handler for eventType.
func (e *Editor) On(eventType string, handler EventHandler) {
	e.eventHandlers[eventType] = append(e.eventHandlers[eventType], handler)
}

func (e *Editor) emit(eventType string, data interface{}) {
	for _, handler := range e.eventHandlers[eventType] {
		if err := handler(data); err != nil {
			e.logger.Error("Editor", fmt.Errorf("%s handler: %w", eventType, err), nil)
		}
	}
}
