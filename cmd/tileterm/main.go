// Command tileterm walks the tilecaster levels in a terminal, drawing each
// frame with half-block characters.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/automoto/tilecaster/assets"
	"github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/logging"
	"github.com/automoto/tilecaster/systems"
	"github.com/automoto/tilecaster/telemetry"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file for local development; env vars may be set directly.
	_ = godotenv.Load()
	envErr := config.LoadEnv()

	dir := flag.String("dir", config.Viewer.LevelsDir, "directory of .tmx levels, falls back to the embedded levels")
	level := flag.String("level", config.Viewer.StartLevel, "level to start in")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// The terminal belongs to the viewer, so logs only go to a file.
	logger, err := logging.NewFile(config.Logging, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger.Named("systems"))
	systems.SetTickRate(ticksPerSecond)
	if envErr != nil {
		logger.Warn("environment", zap.Error(envErr))
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if config.Debug.Tracing && telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without tracing", zap.Error(err))
		} else {
			defer func() { _ = shutdown(ctx) }()
			tracer = telemetry.Tracer("raycast")
		}
	}

	screen, err := NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	fsys, levelsDir := assets.Open(*dir)
	viewer, err := NewViewer(screen, fsys, levelsDir, *level, logger, tracer)
	if err != nil {
		screen.Close()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Info("starting terminal viewer", zap.String("levels", levelsDir))

	viewer.Run()
	screen.Close()
}
