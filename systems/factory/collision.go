package factory

import (
	"image"

	"github.com/automoto/tilecaster/archetypes"
	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space of a level of width x height
// cells, with one resolv cell per level cell.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	s := cfg.Viewer.CellPixels
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width*s, height*s, s, s))
	return space
}

// CreateWall adds a solid box covering the level cell at p.
func CreateWall(ecs *ecs.ECS, p image.Point) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	s := float64(cfg.Viewer.CellPixels)
	obj := resolv.NewObject(float64(p.X)*s, float64(p.Y)*s, s, s, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, s, s))
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return wall
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
