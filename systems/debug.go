package systems

import (
	"math"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawMinimap draws a top-down view of the level in the top-right corner:
// floor, walls, characters and the camera with its view direction.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(e).ShowMinimap {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	cell := float32(cfg.UI.MinimapCell)
	originX := float32(screen.Bounds().Dx()) - float32(level.Width)*cell - hudMargin
	originY := float32(hudMargin)

	for p := range level.Region.Floor {
		vector.FillRect(screen, originX+float32(p.X)*cell, originY+float32(p.Y)*cell, cell, cell, cfg.UI.MinimapFloor, false)
	}
	for p := range level.Region.Walls {
		vector.FillRect(screen, originX+float32(p.X)*cell, originY+float32(p.Y)*cell, cell, cell, cfg.UI.MinimapWallColor, false)
	}

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		x := originX + float32(c.Position.X+0.5)*cell
		y := originY + float32(c.Position.Y+0.5)*cell
		vector.FillCircle(screen, x, y, cell/2, cfg.UI.MinimapSprite, true)
	})

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	x := originX + float32(camera.Position.X+0.5)*cell
	y := originY + float32(camera.Position.Y+0.5)*cell
	// Authoring y grows southwards, so the view direction's y flips.
	dx := float32(math.Cos(camera.Angle)) * cell * 2
	dy := float32(-math.Sin(camera.Angle)) * cell * 2
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 1, cfg.UI.MinimapCamera, true)
	vector.FillCircle(screen, x, y, cell/2, cfg.UI.MinimapCamera, true)
}
