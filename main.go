package main

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/tilecaster/assets"
	"github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/fonts"
	"github.com/automoto/tilecaster/logging"
	"github.com/automoto/tilecaster/scenes"
	"github.com/automoto/tilecaster/systems"
	"github.com/automoto/tilecaster/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(fsys fs.FS, dir string, logger *zap.Logger, tracer trace.Tracer, saved *systems.SavedSettings) *Game {
	return &Game{
		scene: scenes.NewViewerScene(fsys, dir, logger, tracer, saved),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Load .env file for local development; env vars may be set directly.
	envErr := godotenv.Load()

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	logger, err := logging.New(config.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger.Named("systems"))

	if envErr != nil {
		logger.Debug(".env file not loaded", zap.Error(envErr))
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if config.Debug.Tracing && telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown", zap.Error(err))
				}
			}()
			tracer = telemetry.Tracer("raycast")
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved)

	fsys, dir := assets.Open(config.Viewer.LevelsDir)
	logger.Info("starting viewer",
		zap.String("levels", dir),
		zap.String("start", config.Viewer.StartLevel),
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height))

	if err := ebiten.RunGame(NewGame(fsys, dir, logger, tracer, saved)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
}
