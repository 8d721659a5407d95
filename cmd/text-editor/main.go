package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"text-editor/internal/app"
	"text-editor/internal/config"
	"text-editor/internal/debug"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "text-editor: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	debugCoord := debug.NewCoordinator(cfg.Debug())
	logger := debugCoord.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication(ctx, cfg, debugCoord)
	if err != nil {
		debugCoord.Shutdown()
		return fmt.Errorf("initialize application: %w", err)
	}

	application.Lifecycle().Listen()

	// A file that cannot be read is reported in the window; the editor
	// still starts with an empty document.
	if err := application.OpenAtStartup(path); err != nil {
		logger.Warning("Main", "startup file not opened", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}
