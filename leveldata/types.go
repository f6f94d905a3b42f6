// Package leveldata loads TMX levels into the region, tileset and spawn
// data the ray-cast renderer consumes. It is pure data: no ebitengine, no
// ECS systems, no collision.
package leveldata

import (
	"github.com/automoto/tilecaster/raycast"
	"github.com/yohamta/donburi/features/math"
)

// Tile layer and object group names recognised in TMX files.
const (
	FloorLayer   = "floor"
	WallLayer    = "walls"
	CeilingLayer = "ceiling"

	PlayerSpawnGroup = "PlayerSpawn"
	CharacterGroup   = "Characters"
)

// Level is one loaded TMX map.
type Level struct {
	Name         string
	Region       *raycast.Region
	Tileset      *Tileset
	PlayerSpawns []PlayerSpawn
	Characters   []CharacterSpawn
	Width        int // cells
	Height       int // cells
}

// PlayerSpawn is a camera start position in authoring cells.
type PlayerSpawn struct {
	Position math.Vec2
	Facing   raycast.Facing
	Index    int
}

// CharacterSpawn is a tile object placed on the Characters layer.
type CharacterSpawn struct {
	Name     string
	Position math.Vec2
	Tile     raycast.TileRef
	PatrolX  float64 // cells travelled east then back, 0 for none
	PatrolY  float64 // cells travelled south then back, 0 for none
	Speed    float64 // seconds per patrol leg
}

// Start returns the camera start of the level: the spawn with the lowest
// index, or the first floor cell.
func (l *Level) Start() PlayerSpawn {
	if len(l.PlayerSpawns) > 0 {
		return l.PlayerSpawns[0]
	}
	for _, p := range sortedPoints(l.Region.Floor) {
		if _, wall := l.Region.Walls[p]; !wall {
			return PlayerSpawn{Position: math.Vec2{X: float64(p.X), Y: float64(p.Y)}}
		}
	}
	return PlayerSpawn{}
}

// Entities returns the character spawns as a renderer entity snapshot.
func (l *Level) Entities() []raycast.Entity {
	out := make([]raycast.Entity, 0, len(l.Characters))
	for _, c := range l.Characters {
		out = append(out, raycast.Entity{Position: c.Position, Tile: c.Tile})
	}
	return out
}
