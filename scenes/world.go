package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/raycast"
	"github.com/automoto/tilecaster/systems"
	factory2 "github.com/automoto/tilecaster/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ViewerScene walks the camera through the loaded levels.
type ViewerScene struct {
	ecs    *ecs.ECS
	fsys   fs.FS
	dir    string
	logger *zap.Logger
	tracer trace.Tracer
	saved  *systems.SavedSettings
	once   sync.Once
	err    error
}

// NewViewerScene creates a viewer over the levels in dir of fsys. saved
// may be nil.
func NewViewerScene(fsys fs.FS, dir string, logger *zap.Logger, tracer trace.Tracer, saved *systems.SavedSettings) *ViewerScene {
	return &ViewerScene{fsys: fsys, dir: dir, logger: logger, tracer: tracer, saved: saved}
}

func (vs *ViewerScene) Update() error {
	vs.once.Do(func() { vs.err = vs.configure() })
	if vs.err != nil {
		return vs.err
	}
	vs.ecs.Update()

	input, ok := components.Input.First(vs.ecs.World)
	if ok && systems.GetAction(components.Input.Get(input), cfg.ActionQuit).JustPressed {
		return ebiten.Termination
	}
	return nil
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *ViewerScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.UpdateRenderTicks)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMinimap)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	vs.ecs = ecs

	scale := cfg.Raycast.Scale
	if scale <= 0 {
		scale = 1
	}
	width, height := cfg.C.Width/scale, cfg.C.Height/scale
	if width <= 0 || height <= 0 {
		return errors.New("render target is empty")
	}

	renderer := raycast.NewRenderer(
		raycast.WithFOV(cfg.Raycast.FOV),
		raycast.WithMaxDistance(cfg.Raycast.MaxDistance),
		raycast.WithShading(cfg.Raycast.ShadeDistance),
		raycast.WithCeiling(cfg.Raycast.CeilingColor),
		raycast.WithLogger(vs.logger.Named("raycast")),
		raycast.WithTracer(vs.tracer),
	)
	factory2.CreateRender(vs.ecs, renderer, width, height)

	// Create the level entity and load level data FIRST.
	level, err := factory2.CreateLevel(vs.ecs, vs.fsys, vs.dir, cfg.Viewer.StartLevel)
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	systems.ApplySavedSettings(vs.ecs, vs.saved)
	systems.EnterLevel(vs.ecs, components.Level.Get(level).LevelIndex)
	return nil
}
