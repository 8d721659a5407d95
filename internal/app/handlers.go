package app

import (
	"fyne.io/fyne/v2"

	"text-editor/internal/controllers"
	"text-editor/internal/debug"
)

// Handlers bridge events that arrive outside the menu system into the
// editor session.
type Handlers struct {
	editor *controllers.Editor
	logger debug.Logger
}

func NewHandlers(editor *controllers.Editor, logger debug.Logger) *Handlers {
	return &Handlers{
		editor: editor,
		logger: logger,
	}
}

// HandleExternalChange runs on the watcher goroutine; the editor is only
// touched on the UI thread.
func (h *Handlers) HandleExternalChange(path string) {
	h.logger.Debug("Handlers", "file change observed", map[string]interface{}{"path": path})
	fyne.Do(func() {
		h.editor.ExternalChange(path)
	})
}

// HandleStartupFile opens the file named on the command line.
func (h *Handlers) HandleStartupFile(path string) error {
	if path == "" {
		return nil
	}
	h.logger.Info("Handlers", "opening file from command line", map[string]interface{}{"path": path})
	return h.editor.OpenFile(path)
}
