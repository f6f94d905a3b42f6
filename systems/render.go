package systems

import (
	"image"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var frameDrawOp = &ebiten.DrawImageOptions{}

// UpdateRenderTicks advances the animation clock.
func UpdateRenderTicks(e *ecs.ECS) {
	if renderEntry, ok := components.Render.First(e.World); ok {
		components.Render.Get(renderEntry).Ticks++
	}
}

// DrawWorld ray-casts the current level from the camera into the frame
// buffer and scales it onto the screen.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	renderEntry, ok := components.Render.First(e.World)
	if !ok {
		return
	}
	rd := components.Render.Get(renderEntry)
	if !RenderFrame(e, rd) {
		return
	}
	if rd.Frame == nil {
		rd.Frame = ebiten.NewImage(rd.Width, rd.Height)
	}
	rd.Frame.WritePixels(rd.Pixels)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	frameDrawOp.GeoM.Reset()
	frameDrawOp.GeoM.Scale(float64(sw)/float64(rd.Width), float64(sh)/float64(rd.Height))
	screen.DrawImage(rd.Frame, frameDrawOp)
}

// RenderFrame draws the current level into rd.Pixels. It reports false
// when there is no level or camera yet.
func RenderFrame(e *ecs.ECS, rd *components.RenderData) bool {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return false
	}

	r := rd.Renderer
	r.SetFacing(camera.Facing)
	r.SetAngle(camera.Angle)
	if rate := cfg.Viewer.AnimationRate; rate > 0 {
		r.SetTick(rd.Ticks / rate)
	}

	rd.Entities = CharacterEntities(e, rd.Entities)
	r.Render(rd.Pixels, camera.Position, level.Region.ID,
		image.Rect(0, 0, rd.Width, rd.Height), rd.Width*4, rd.Entities, level.Tileset)
	return true
}

// ResizeRender reallocates the render target to width x height pixels.
func ResizeRender(e *ecs.ECS, width, height int) {
	renderEntry, ok := components.Render.First(e.World)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	rd := components.Render.Get(renderEntry)
	if rd.Width == width && rd.Height == height {
		return
	}
	rd.Width, rd.Height = width, height
	rd.Pixels = make([]byte, width*height*4)
	if rd.Frame != nil {
		rd.Frame.Deallocate()
		rd.Frame = nil
	}
}
