package factory

import (
	"github.com/automoto/tilecaster/archetypes"
	"github.com/automoto/tilecaster/components"
	"github.com/automoto/tilecaster/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a patrolling sprite character from a level spawn.
func CreateCharacter(ecs *ecs.ECS, spawn leveldata.CharacterSpawn) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	components.Character.Set(character, &components.CharacterData{
		Name:     spawn.Name,
		Tile:     spawn.Tile,
		Origin:   spawn.Position,
		Position: spawn.Position,
		PatrolX:  patrol(spawn.PatrolX, spawn.Speed),
		PatrolY:  patrol(spawn.PatrolY, spawn.Speed),
	})
	return character
}

// patrol moves an offset out to distance and back, each leg taking
// seconds. Characters with no distance stand still.
func patrol(distance, seconds float64) *gween.Sequence {
	if distance == 0 {
		return nil
	}
	if seconds <= 0 {
		seconds = 1
	}
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(distance), float32(seconds), ease.InOutQuad),
		gween.New(float32(distance), 0, float32(seconds), ease.InOutQuad),
	)
	return tw
}
