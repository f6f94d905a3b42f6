package factory

import (
	"github.com/automoto/tilecaster/archetypes"
	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/raycast"
	"github.com/automoto/tilecaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the viewer camera at pos (authoring cells) with a
// collision box centred on the cell centre.
func CreateCamera(ecs *ecs.ECS, pos math.Vec2, facing raycast.Facing) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	size := cfg.Viewer.CameraSize * float64(cfg.Viewer.CellPixels)
	x, y := CellToPixels(pos)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvCamera)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = camera
	components.Object.SetValue(camera, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	components.Camera.Set(camera, &components.CameraData{
		Position: pos,
		Facing:   facing,
		Angle:    facing.Angle(),
	})
	return camera
}

// CellToPixels returns the collision space centre of an authoring position.
func CellToPixels(pos math.Vec2) (float64, float64) {
	s := float64(cfg.Viewer.CellPixels)
	return (pos.X + 0.5) * s, (pos.Y + 0.5) * s
}

// PixelsToCell is the inverse of CellToPixels.
func PixelsToCell(x, y float64) math.Vec2 {
	s := float64(cfg.Viewer.CellPixels)
	return math.Vec2{X: x/s - 0.5, Y: y/s - 0.5}
}
