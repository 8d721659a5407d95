package controllers

import (
	"context"
	"errors"
	"path/filepath"

	"text-editor/internal/debug"
	"text-editor/internal/models"
	"text-editor/internal/services"
)

const (
	DefaultTitle = "Enhanced Text Editor"
	titlePrefix  = "Text Editor - "
)

// TitleFor is the window title shown for a document backed by path.
func TitleFor(path string) string {
	if path == "" {
		return DefaultTitle
	}
	return titlePrefix + path
}

// Options carries the editor's start-up state.
type Options struct {
	View   models.ViewState
	Policy models.TogglePolicy
}

// Editor is the editing session: one document, its file path and the view
// state. All methods are expected to run on the UI thread.
type Editor struct {
	ctx      context.Context
	files    *services.FileService
	replacer *services.ReplaceService
	logger   debug.Logger

	dialogs Dialogs
	surface Surface
	watcher Watcher

	doc    *models.Document
	path   string
	title  string
	view   models.ViewState
	policy models.TogglePolicy

	// diskText is what the session last read from or wrote to path.
	diskText string

	eventHandlers map[string][]EventHandler
}

func NewEditor(ctx context.Context, files *services.FileService, replacer *services.ReplaceService, logger debug.Logger, opts Options) *Editor {
	return &Editor{
		ctx:           ctx,
		files:         files,
		replacer:      replacer,
		logger:        logger,
		doc:           models.NewDocument(""),
		title:         DefaultTitle,
		view:          opts.View,
		policy:        opts.Policy,
		eventHandlers: make(map[string][]EventHandler),
	}
}

func (e *Editor) SetDialogs(d Dialogs) { e.dialogs = d }
func (e *Editor) SetSurface(s Surface) { e.surface = s }
func (e *Editor) SetWatcher(w Watcher) { e.watcher = w }

func (e *Editor) Document() *models.Document { return e.doc }
func (e *Editor) Text() string               { return e.doc.Text() }
func (e *Editor) Path() string               { return e.path }
func (e *Editor) Title() string              { return e.title }
func (e *Editor) View() models.ViewState     { return e.view }
func (e *Editor) Policy() models.TogglePolicy { return e.policy }

// New empties the document and forgets the file path.
func (e *Editor) New() {
	e.path = ""
	e.diskText = ""
	e.doc.Clear()
	e.watch("")
	e.setTitle(DefaultTitle)
	e.emit(EventDocument, "")
	e.emit(EventSpans, nil)
	e.UpdateStatusBar()

	e.logger.Info("Editor", "new document", nil)
}

// Open asks for a file and loads it. Cancelling changes nothing.
func (e *Editor) Open() {
	e.dialogs.ChooseOpenPath(func(path string, err error) {
		if e.cancelledOrFailed("Open", err) {
			return
		}
		_ = e.OpenFile(path)
	})
}

// OpenFile loads path into the document. On failure the document and
// path are left as they were and the error is reported.
func (e *Editor) OpenFile(path string) error {
	text, err := e.files.Read(e.ctx, path)
	if err != nil {
		e.report("Open failed", err)
		return err
	}

	e.doc.SetText(text)
	e.path = path
	e.diskText = text
	e.watch(path)
	e.setTitle(TitleFor(path))
	e.emit(EventDocument, text)
	e.emit(EventSpans, nil)
	e.UpdateStatusBar()

	e.logger.Info("Editor", "file opened", map[string]interface{}{
		"path":  path,
		"runes": e.doc.Len(),
	})
	return nil
}

// Save writes to the current path, or behaves as SaveAs when there is none.
func (e *Editor) Save() {
	if e.path == "" {
		e.SaveAs()
		return
	}
	_ = e.write(e.path)
}

// SaveAs asks for a destination and writes the document there.
func (e *Editor) SaveAs() {
	e.dialogs.ChooseSavePath(func(path string, err error) {
		if e.cancelledOrFailed("Save As", err) {
			return
		}
		_ = e.SaveFile(path)
	})
}

// SaveFile writes the document to path and makes path current.
func (e *Editor) SaveFile(path string) error {
	if err := e.write(path); err != nil {
		return err
	}
	e.path = path
	e.watch(path)
	e.setTitle(TitleFor(path))
	return nil
}

func (e *Editor) write(path string) error {
	text := e.doc.Text()
	if err := e.files.Write(e.ctx, path, text); err != nil {
		e.report("Save failed", err)
		return err
	}
	e.diskText = text

	e.logger.Info("Editor", "file saved", map[string]interface{}{
		"path":  path,
		"runes": e.doc.Len(),
	})
	return nil
}

func (e *Editor) Cut() {
	if e.surface != nil {
		e.surface.Cut()
	}
}

func (e *Editor) Copy() {
	if e.surface != nil {
		e.surface.Copy()
	}
}

func (e *Editor) Paste() {
	if e.surface != nil {
		e.surface.Paste()
	}
}

func (e *Editor) ToggleBold()      { e.toggle(models.StyleBold) }
func (e *Editor) ToggleItalic()    { e.toggle(models.StyleItalic) }
func (e *Editor) ToggleUnderline() { e.toggle(models.StyleUnderline) }

func (e *Editor) toggle(style models.Style) {
	if e.surface == nil {
		return
	}
	sel, ok := e.surface.Selection()
	if !ok {
		e.logger.Debug("Editor", "toggle without selection ignored", map[string]interface{}{"style": style.String()})
		return
	}

	res := e.doc.ToggleStyle(style, sel, e.policy, e.view.Descriptor(style))
	if !res.Changed {
		return
	}
	e.emit(EventSpans, nil)

	e.logger.Debug("Editor", "style toggled", map[string]interface{}{
		"style":   style.String(),
		"applied": res.Applied,
		"start":   sel.Start,
		"end":     sel.End,
		"policy":  e.policy.String(),
	})
}

// FindReplace prompts for a search string and a replacement, then replaces
// every occurrence. Cancelling either prompt changes nothing.
func (e *Editor) FindReplace() {
	e.dialogs.AskString("Find", "Enter the text to find:", func(find string, err error) {
		if e.cancelledOrFailed("Find", err) {
			return
		}
		e.dialogs.AskString("Replace", "Enter the text to replace with:", func(replace string, err error) {
			if e.cancelledOrFailed("Replace", err) {
				return
			}
			e.ReplaceAll(find, replace)
		})
	})
}

// ReplaceAll replaces every literal occurrence of find and returns the count.
func (e *Editor) ReplaceAll(find, replace string) int {
	n := e.replacer.ReplaceAll(e.doc, find, replace)
	if n == 0 {
		return 0
	}

	e.emit(EventDocument, e.doc.Text())
	e.emit(EventSpans, nil)
	e.UpdateStatusBar()
	return n
}

// TextEdited records an edit made in the widget (typing, cut, paste).
func (e *Editor) TextEdited(text string) {
	if !e.doc.Sync(text) {
		return
	}
	e.emit(EventSpans, nil)
	e.UpdateStatusBar()
}

func (e *Editor) SetFontFamily(family string) {
	if family == e.view.FontFamily {
		return
	}
	e.view.FontFamily = family
	e.emit(EventView, e.view)
	e.logger.Debug("Editor", "font family changed", map[string]interface{}{"family": family})
}

func (e *Editor) SetFontSize(size int) error {
	if !models.ValidFontSize(size) {
		return ErrInvalidFontSize
	}
	if size == e.view.FontSize {
		return nil
	}
	e.view.FontSize = size
	e.emit(EventView, e.view)
	e.logger.Debug("Editor", "font size changed", map[string]interface{}{"size": size})
	return nil
}

func (e *Editor) ToggleDarkMode() {
	e.view.DarkMode = !e.view.DarkMode
	e.emit(EventView, e.view)
}

// UpdateStatusBar recomputes the counts and publishes them.
func (e *Editor) UpdateStatusBar() models.StatusSummary {
	summary := models.Summarize(e.doc.Text())
	e.emit(EventStatus, summary)
	return summary
}

// ExternalChange is called when the watched file changed on disk. The user
// is told once per distinct content; the document is not reloaded.
func (e *Editor) ExternalChange(path string) {
	if path == "" || !samePath(path, e.path) {
		return
	}
	text, err := e.files.Read(e.ctx, path)
	if err != nil {
		e.logger.Debug("Editor", "changed file unreadable", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	if text == e.diskText {
		return
	}
	e.diskText = text
	e.logger.Warning("Editor", "file modified outside the editor", map[string]interface{}{"path": path})
	if e.dialogs != nil {
		e.dialogs.ShowNotice("File changed on disk", path+" was modified by another program.")
	}
}

func (e *Editor) setTitle(title string) {
	if title == e.title {
		return
	}
	e.title = title
	e.emit(EventTitle, title)
}

func (e *Editor) watch(path string) {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Watch(path); err != nil {
		e.logger.Warning("Editor", "cannot watch file", map[string]interface{}{"path": path, "error": err.Error()})
	}
}

func (e *Editor) cancelledOrFailed(op string, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrDialogCancelled):
		e.logger.Debug("Editor", "dialog cancelled", map[string]interface{}{"operation": op})
	default:
		e.report(op+" failed", err)
	}
	return true
}

func (e *Editor) report(title string, err error) {
	e.logger.Error("Editor", err, map[string]interface{}{"title": title})
	e.emit(EventError, err)
	if e.dialogs != nil {
		e.dialogs.ShowError(title, err)
	}
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
