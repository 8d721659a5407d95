package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"text-editor/internal/config"
	"text-editor/internal/controllers"
	"text-editor/internal/debug"
	"text-editor/internal/gui"
	"text-editor/internal/models"
	"text-editor/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Text Editor"
	AppID      = "com.example.texteditor"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	guiManager *gui.Manager
	editor     *controllers.Editor
	watcher    *services.FileWatcher
	debugCoord debug.Coordinator
	handlers   *Handlers
	lifecycle  *Lifecycle

	stopped atomic.Bool
}

// NewApplication builds the editor on a new fyne app.
func NewApplication(ctx context.Context, cfg config.Config, debugCoord debug.Coordinator) (*Application, error) {
	return NewApplicationWith(app.NewWithID(AppID), ctx, cfg, debugCoord, nil)
}

// NewApplicationWith builds the editor on fyneApp. A nil catalog scans the
// configured and system font directories.
func NewApplicationWith(fyneApp fyne.App, ctx context.Context, cfg config.Config, debugCoord debug.Coordinator, catalog *gui.FontCatalog) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := debugCoord.Logger()

	window := fyneApp.NewWindow(controllers.DefaultTitle)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	if catalog == nil {
		catalog = gui.NewFontCatalog(logger, cfg.FontDirs...)
	}
	family := cfg.FontFamily
	if !catalog.Has(family) {
		logger.Warning("Application", "configured font not found, using default", map[string]interface{}{
			"family": family,
		})
		family = ""
	}

	editor := controllers.NewEditor(ctx,
		services.NewFileService(debugCoord),
		services.NewReplaceService(debugCoord),
		logger,
		controllers.Options{
			View: models.ViewState{
				FontFamily: family,
				FontSize:   cfg.FontSize,
				DarkMode:   cfg.DarkMode,
			},
			Policy: models.ParseTogglePolicy(cfg.StylePolicy),
		},
	)

	logger.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"config_file":   cfg.Path,
		"clipboard":     cfg.Clipboard,
		"style_policy":  cfg.StylePolicy,
	})

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		editor:     editor,
		debugCoord: debugCoord,
		handlers:   NewHandlers(editor, logger),
	}

	clipboard := services.SelectClipboard(cfg.Clipboard, window.Clipboard(), logger)
	guiManager, err := gui.NewManager(window, editor, catalog, clipboard, logger, application.Quit)
	if err != nil {
		return nil, err
	}
	application.guiManager = guiManager

	if err := application.setupHandlers(); err != nil {
		return nil, err
	}

	application.lifecycle = NewLifecycle(debugCoord, application.watcher, guiManager, application.closeWindow)

	logger.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() error {
	if !a.config.WatchFiles {
		return nil
	}

	watcher, err := services.NewFileWatcher(a.debugCoord.Logger(), a.handlers.HandleExternalChange)
	if err != nil {
		// The editor works without change notices.
		a.debugCoord.Logger().Warning("Application", "file watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	a.watcher = watcher
	a.editor.SetWatcher(watcher)
	return nil
}

// OpenAtStartup loads path before the window is shown.
func (a *Application) OpenAtStartup(path string) error {
	return a.handlers.HandleStartupFile(path)
}

func (a *Application) Editor() *controllers.Editor {
	return a.editor
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

func (a *Application) Run() error {
	logger := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.guiManager.FocusEditor()
	a.window.Show()

	logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// The app can also end without the close intercept, e.g. a platform
	// quit; the components still need stopping.
	a.stopped.Store(true)
	a.lifecycle.Shutdown()
	return nil
}

// Quit shuts the components down; the window closes last.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
}

func (a *Application) closeWindow() {
	if a.stopped.Load() {
		return
	}
	fyne.Do(a.window.Close)
}
