package systems

import (
	"github.com/automoto/tilecaster/components"
	"github.com/automoto/tilecaster/raycast"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters advances every character along its patrol route.
func UpdateCharacters(e *ecs.ECS) {
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		c.Position.X = c.Origin.X + advance(c.PatrolX)
		c.Position.Y = c.Origin.Y + advance(c.PatrolY)
	})
}

// advance steps a looping patrol sequence and returns its offset.
func advance(seq *gween.Sequence) float64 {
	if seq == nil {
		return 0
	}
	v, _, done := seq.Update(tickSeconds)
	if done {
		seq.Reset()
	}
	return float64(v)
}

// CharacterEntities returns the current character snapshot for the renderer.
func CharacterEntities(e *ecs.ECS, dst []raycast.Entity) []raycast.Entity {
	dst = dst[:0]
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		dst = append(dst, raycast.Entity{Position: c.Position, Tile: c.Tile})
	})
	return dst
}
