package services

import (
	"text-editor/internal/debug"
	"text-editor/internal/logger"
)

func newTestCoordinator() *debug.DebugCoordinator {
	cfg := debug.DefaultConfig()
	cfg.EnableFileTracking = true
	return debug.NewCoordinatorWithLogger(cfg, logger.NoOpLogger{})
}
