package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"text-editor/internal/controllers"
	"text-editor/internal/debug"
	"text-editor/internal/gui/components"
	"text-editor/internal/models"
)

const previewOffset = 0.6

// Manager owns the window content and keeps it in step with the editor.
type Manager struct {
	window     fyne.Window
	editor     *controllers.Editor
	catalog    *FontCatalog
	logger     debug.Logger
	isShutdown bool

	editorView *components.EditorView
	preview    *components.FormattedPreview
	statusBar  *components.StatusBar
	split      *components.PaneSplit
	themed     *container.ThemeOverride
	theme      *EditorTheme

	bindings []Binding
	menus    *menuBuilder
}

func NewManager(window fyne.Window, editor *controllers.Editor, catalog *FontCatalog, clipboard fyne.Clipboard, logger debug.Logger, quit func()) (*Manager, error) {
	if editor == nil {
		return nil, fmt.Errorf("gui manager: editor is required")
	}
	if catalog == nil {
		catalog = ScanFontDirs(logger)
	}

	editorView := components.NewEditorView(clipboard)
	preview := components.NewFormattedPreview()
	statusBar := components.NewStatusBar()
	split := components.NewPaneSplit(editorView, preview.GetContainer(), previewOffset)

	m := &Manager{
		window:     window,
		editor:     editor,
		catalog:    catalog,
		logger:     logger,
		editorView: editorView,
		preview:    preview,
		statusBar:  statusBar,
		split:      split,
		bindings:   Bindings(editor),
	}
	m.theme = NewEditorTheme(editor.View(), catalog, editor.Document())
	m.themed = container.NewThemeOverride(split, m.theme)

	if quit == nil {
		quit = window.Close
	}
	dialogs := NewDialogs(window, logger)
	m.menus = newMenuBuilder(editor, m.bindings, catalog.Families(), quit, dialogs.ShowError)

	editor.SetSurface(editorView)
	editor.SetDialogs(dialogs)
	editorView.SetOnEdited(editor.TextEdited)

	m.bindEditorEvents()
	m.setupMenus()
	RegisterShortcuts(window.Canvas(), editorView, m.bindings)

	m.applyView(editor.View())
	statusBar.SetStatus(models.Summarize(editor.Text()))
	window.SetTitle(editor.Title())

	logger.Info("GUIManager", "initialized", map[string]interface{}{
		"font_families": len(catalog.Families()),
		"shortcuts":     len(m.bindings),
	})
	return m, nil
}

func (m *Manager) bindEditorEvents() {
	m.editor.On(controllers.EventDocument, func(data interface{}) error {
		text, ok := data.(string)
		if !ok {
			return fmt.Errorf("unexpected document payload %T", data)
		}
		m.editorView.SetContent(text)
		return nil
	})
	m.editor.On(controllers.EventSpans, func(interface{}) error {
		m.refreshFormatting()
		return nil
	})
	m.editor.On(controllers.EventStatus, func(data interface{}) error {
		summary, ok := data.(models.StatusSummary)
		if !ok {
			return fmt.Errorf("unexpected status payload %T", data)
		}
		m.statusBar.SetStatus(summary)
		return nil
	})
	m.editor.On(controllers.EventTitle, func(data interface{}) error {
		title, ok := data.(string)
		if !ok {
			return fmt.Errorf("unexpected title payload %T", data)
		}
		m.window.SetTitle(title)
		return nil
	})
	m.editor.On(controllers.EventView, func(data interface{}) error {
		view, ok := data.(models.ViewState)
		if !ok {
			return fmt.Errorf("unexpected view payload %T", data)
		}
		m.applyView(view)
		return nil
	})
}

func (m *Manager) setupMenus() {
	m.window.SetMainMenu(m.menus.build())
}

// applyView re-themes the text area and status bar and moves the font
// menu check marks.
func (m *Manager) applyView(view models.ViewState) {
	m.theme = NewEditorTheme(view, m.catalog, m.editor.Document())
	m.themed.Theme = m.theme
	m.themed.Refresh()
	m.statusBar.SetPalette(view.Palette())

	if m.menus.syncChecks(view) && m.menus.mainMenu != nil {
		m.menus.mainMenu.Refresh()
	}

	m.logger.Debug("GUIManager", "view applied", map[string]interface{}{
		"family":    view.FontFamily,
		"size":      view.FontSize,
		"dark_mode": view.DarkMode,
	})
}

// refreshFormatting redraws the preview; the theme is rebuilt because a
// toggle may have captured a new font descriptor.
func (m *Manager) refreshFormatting() {
	m.theme = NewEditorTheme(m.editor.View(), m.catalog, m.editor.Document())
	m.themed.Theme = m.theme
	m.preview.Render(m.editor.Document().Segments())
	m.themed.Refresh()
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		m.themed,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) EditorView() *components.EditorView {
	return m.editorView
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) Preview() *components.FormattedPreview {
	return m.preview
}

func (m *Manager) Theme() *EditorTheme {
	return m.theme
}

// FocusEditor puts keyboard focus on the text area.
func (m *Manager) FocusEditor() {
	m.window.Canvas().Focus(m.editorView)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
