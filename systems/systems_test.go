package systems

import (
	"math"
	"testing"

	"github.com/automoto/tilecaster/assets"
	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/raycast"
	"github.com/automoto/tilecaster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const eps = 1e-9

// newTestECS loads the embedded levels and enters start with the update
// systems the viewers share.
func newTestECS(t *testing.T, start string) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateLevel)
	e.AddSystem(UpdateSettings)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateCharacters)
	e.AddSystem(UpdateRenderTicks)

	factory.CreateRender(e, raycast.NewRenderer(), 32, 24)
	level, err := factory.CreateLevel(e, assets.FS(), assets.LevelsDir, start)
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	EnterLevel(e, components.Level.Get(level).LevelIndex)
	return e
}

// step runs n updates with the given actions held.
func step(e *ecs.ECS, n int, held ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, id := range held {
		pressed[id] = true
	}
	for i := 0; i < n; i++ {
		SetActions(e, pressed)
		e.Update()
	}
}

func cameraOf(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatalf("no camera")
	}
	return components.Camera.Get(entry)
}

func TestMoveDelta(t *testing.T) {
	tests := []struct {
		name            string
		angle           float64
		forward, strafe float64
		wantX, wantY    float64
	}{
		{"east forward", 0, 1, 0, 1, 0},
		{"north forward", math.Pi / 2, 1, 0, 0, -1},
		{"east strafe right", 0, 0, 1, 0, 1},
		{"north strafe right", math.Pi / 2, 0, 1, 1, 0},
		{"west back", math.Pi, -1, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := moveDelta(tt.angle, tt.forward, tt.strafe)
			if math.Abs(d.X-tt.wantX) > eps || math.Abs(d.Y-tt.wantY) > eps {
				t.Errorf("moveDelta = (%v, %v), want (%v, %v)", d.X, d.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{0, -math.Pi / 2, -math.Pi / 2},
		{math.Pi, -math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, math.Pi, -math.Pi / 2},
		{5 * math.Pi / 2, 0, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := angleBetween(tt.a, tt.b); math.Abs(got-tt.want) > eps {
			t.Errorf("angleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMovementStopsAtWalls(t *testing.T) {
	e := newTestECS(t, "cellar")
	camera := cameraOf(t, e)
	if camera.Position.X != 1 || camera.Position.Y != 1 || camera.Facing != raycast.East {
		t.Fatalf("cellar start = %+v", camera)
	}

	step(e, 10, cfg.ActionMoveForward)
	if want := 1 + 10*cfg.Viewer.MoveSpeed; math.Abs(camera.Position.X-want) > 1e-6 {
		t.Errorf("after forward X = %v, want %v", camera.Position.X, want)
	}

	// Back into the west wall: the box ends flush with column 0.
	step(e, 100, cfg.ActionMoveBack)
	want := 1 + cfg.Viewer.CameraSize/2 - 0.5
	if math.Abs(camera.Position.X-want) > 1e-6 {
		t.Errorf("against wall X = %v, want %v", camera.Position.X, want)
	}
	if math.Abs(camera.Position.Y-1) > 1e-6 {
		t.Errorf("Y drifted to %v", camera.Position.Y)
	}
}

func TestTurnTweensToFacing(t *testing.T) {
	e := newTestECS(t, "cellar")
	camera := cameraOf(t, e)

	step(e, 1, cfg.ActionTurnLeft)
	if camera.Facing != raycast.North {
		t.Fatalf("facing after left turn = %v, want north", camera.Facing)
	}
	if camera.Turn == nil {
		t.Fatalf("turn not tweened")
	}

	// Movement is ignored while turning.
	x := camera.Position.X
	step(e, 1, cfg.ActionMoveForward)
	if camera.Position.X != x {
		t.Errorf("moved during turn")
	}

	step(e, 60)
	if camera.Turn != nil {
		t.Fatalf("turn still running")
	}
	if camera.Angle != raycast.North.Angle() {
		t.Errorf("angle = %v, want %v", camera.Angle, raycast.North.Angle())
	}
}

func TestLevelCycling(t *testing.T) {
	e := newTestECS(t, "")
	entry, _ := components.Level.First(e.World)
	ld := components.Level.Get(entry)
	if ld.CurrentLevel.Name != "atrium" {
		t.Fatalf("start level = %s", ld.CurrentLevel.Name)
	}
	characters := func() int {
		n := 0
		components.Character.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}
	if got := characters(); got != 2 {
		t.Errorf("atrium characters = %d, want 2", got)
	}

	step(e, 1, cfg.ActionNextLevel)
	step(e, 1)
	if ld.CurrentLevel.Name != "cellar" {
		t.Errorf("after next = %s, want cellar", ld.CurrentLevel.Name)
	}
	if got := characters(); got != 1 {
		t.Errorf("cellar characters = %d, want 1", got)
	}
	cameras := 0
	components.Camera.Each(e.World, func(*donburi.Entry) { cameras++ })
	if cameras != 1 {
		t.Errorf("cameras = %d, want 1", cameras)
	}

	// Wraps around.
	step(e, 1, cfg.ActionNextLevel)
	if ld.CurrentLevel.Name != "atrium" {
		t.Errorf("after wrap = %s, want atrium", ld.CurrentLevel.Name)
	}
	step(e, 1)
	step(e, 1, cfg.ActionPrevLevel)
	if ld.CurrentLevel.Name != "cellar" {
		t.Errorf("after prev = %s, want cellar", ld.CurrentLevel.Name)
	}
}

func TestReloadLevelKeepsIndex(t *testing.T) {
	e := newTestECS(t, "cellar")
	step(e, 5, cfg.ActionMoveForward)
	step(e, 1, cfg.ActionReloadLevel)

	entry, _ := components.Level.First(e.World)
	ld := components.Level.Get(entry)
	if ld.CurrentLevel.Name != "cellar" {
		t.Errorf("reloaded into %s", ld.CurrentLevel.Name)
	}
	camera := cameraOf(t, e)
	if camera.Position.X != 1 || camera.Position.Y != 1 {
		t.Errorf("camera not reset to spawn: %+v", camera.Position)
	}
}

func TestCharactersPatrol(t *testing.T) {
	e := newTestECS(t, "cellar")
	entry, ok := components.Character.First(e.World)
	if !ok {
		t.Fatalf("no character")
	}
	c := components.Character.Get(entry)
	if c.PatrolX != nil || c.PatrolY == nil {
		t.Fatalf("lurker patrols = %v %v, want vertical only", c.PatrolX, c.PatrolY)
	}

	// speed 4 is four seconds a leg.
	step(e, 4*60)
	if math.Abs(c.Position.Y-(c.Origin.Y+6)) > 1e-3 || c.Position.X != c.Origin.X {
		t.Errorf("after one leg position = %+v, origin %+v", c.Position, c.Origin)
	}
	step(e, 4*60)
	if math.Abs(c.Position.Y-c.Origin.Y) > 1e-3 {
		t.Errorf("after return Y = %v, want %v", c.Position.Y, c.Origin.Y)
	}

	entities := CharacterEntities(e, nil)
	if len(entities) != 1 || entities[0].Tile != c.Tile {
		t.Errorf("entities = %+v", entities)
	}
}

func TestSettingsFOVSteps(t *testing.T) {
	e := newTestECS(t, "cellar")
	settings := GetOrCreateSettings(e)
	start := settings.FOVIndex
	if start != nearestFOVStep(cfg.Raycast.FOV) {
		t.Fatalf("FOVIndex = %d", start)
	}

	step(e, 1, cfg.ActionWiderFOV)
	if settings.FOVIndex != start+1 || !settings.Dirty {
		t.Errorf("wider: index %d dirty %v", settings.FOVIndex, settings.Dirty)
	}
	entry, _ := components.Render.First(e.World)
	if got := components.Render.Get(entry).Renderer.FOV(); math.Abs(got-FOVRadians(start+1)) > eps {
		t.Errorf("renderer FOV = %v, want %v", got, FOVRadians(start+1))
	}

	// Held keys only step once; the narrowest step is a floor.
	for i := 0; i < len(cfg.Settings.FOVSteps)+2; i++ {
		step(e, 1)
		step(e, 1, cfg.ActionNarrowerFOV)
	}
	if settings.FOVIndex != 0 {
		t.Errorf("narrowest index = %d, want 0", settings.FOVIndex)
	}

	step(e, 1)
	step(e, 1, cfg.ActionToggleMinimap)
	if settings.ShowMinimap == cfg.Debug.ShowMinimap {
		t.Errorf("minimap not toggled")
	}
}

func TestRenderFrameFillsTarget(t *testing.T) {
	e := newTestECS(t, "atrium")
	entry, _ := components.Render.First(e.World)
	rd := components.Render.Get(entry)
	if !RenderFrame(e, rd) {
		t.Fatalf("RenderFrame reported nothing to draw")
	}
	for i := 3; i < len(rd.Pixels); i += 4 {
		if rd.Pixels[i] != 255 {
			t.Fatalf("pixel %d alpha = %d", i/4, rd.Pixels[i])
		}
	}

	ResizeRender(e, 16, 8)
	if rd.Width != 16 || rd.Height != 8 || len(rd.Pixels) != 16*8*4 {
		t.Errorf("resized to %dx%d (%d bytes)", rd.Width, rd.Height, len(rd.Pixels))
	}
}
