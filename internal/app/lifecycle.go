package app

import (
	"text-editor/internal/debug"
	"text-editor/internal/gui"
	"text-editor/internal/services"
	"text-editor/internal/shutdown"
)

// Lifecycle stops the application's components in reverse dependency
// order: GUI, file watcher, debug coordinator, then the window.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  debug.Logger
}

func NewLifecycle(dc debug.Coordinator, watcher *services.FileWatcher, gm *gui.Manager, closeWindow func()) *Lifecycle {
	logger := dc.Logger()
	manager := shutdown.NewManager(logger)

	if closeWindow != nil {
		manager.Register(shutdown.Func(closeWindow))
	}
	// Debug coordinator stops after everything it observes.
	manager.Register(dc)
	if watcher != nil {
		manager.Register(watcher)
	}
	if gm != nil {
		manager.Register(gm)
	}

	return &Lifecycle{
		manager: manager,
		logger:  logger,
	}
}

// Listen shuts down on SIGINT or SIGTERM.
func (l *Lifecycle) Listen() {
	l.manager.Listen()
}

func (l *Lifecycle) Shutdown() {
	select {
	case <-l.manager.Done():
		return
	default:
	}
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.manager.Shutdown()
}

// Done is closed once shutdown has started.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
