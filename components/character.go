package components

import (
	"github.com/automoto/tilecaster/raycast"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CharacterData is a sprite-rendered character walking a patrol route.
type CharacterData struct {
	Name     string
	Tile     raycast.TileRef
	Origin   math.Vec2 // spawn position in authoring cells
	Position math.Vec2
	PatrolX  *gween.Sequence // x offset from Origin, nil when stationary
	PatrolY  *gween.Sequence // y offset from Origin, nil when stationary
}

var Character = donburi.NewComponentType[CharacterData]()
