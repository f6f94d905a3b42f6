package factory

import (
	"github.com/automoto/tilecaster/archetypes"
	"github.com/automoto/tilecaster/components"
	"github.com/automoto/tilecaster/raycast"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRender spawns the render target: a width x height RGBA buffer the
// renderer draws into. The ebiten image it is uploaded to is created on
// first draw.
func CreateRender(ecs *ecs.ECS, renderer *raycast.Renderer, width, height int) *donburi.Entry {
	render := archetypes.Render.Spawn(ecs)
	components.Render.Set(render, &components.RenderData{
		Renderer: renderer,
		Pixels:   make([]byte, width*height*4),
		Width:    width,
		Height:   height,
	})
	return render
}
