// Package raycast renders tile regions as a perspective 2.5D view by
// marching rays through a per-region world model. Regions, tilesets and
// entity snapshots are supplied by the caller; the renderer owns the world
// models built from them.
package raycast

import (
	"image"

	"github.com/yohamta/donburi/features/math"
)

// RegionID identifies one region (level) of authoring data.
type RegionID string

// TilemapID identifies a tilemap source image inside a tileset.
type TilemapID string

// TileRef points at one grid cell of a tilemap.
type TileRef struct {
	Tilemap TilemapID
	X, Y    int // grid offset (column, row) inside the tilemap
}

// Tilemap is a decoded tilemap image.
type Tilemap struct {
	ID       TilemapID
	Pix      []byte // RGBA, 4 bytes per texel, rows of Width texels
	Width    int
	Height   int
	GridSize int
}

// TileDescriptor carries the metadata of one tile.
type TileDescriptor struct {
	Properties Properties
	Variants   int // number of declared animation variants
}

// Frames returns the animation frame count, never less than 1.
func (d *TileDescriptor) Frames() int {
	if d == nil || d.Variants < 1 {
		return 1
	}
	return d.Variants
}

// Tileset provides tilemap pixels and tile metadata.
type Tileset interface {
	Tilemaps() []TilemapID
	Tilemap(id TilemapID) (*Tilemap, bool)
	Tile(ref TileRef) (*TileDescriptor, bool)
}

// Region is the authoring data of one region. Keys are authoring cell
// coordinates, y growing downwards.
type Region struct {
	ID      RegionID
	Floor   map[image.Point]TileRef
	Walls   map[image.Point]TileRef
	Ceiling map[image.Point]TileRef
}

// Entity is one live character of the per-tick snapshot. Position is in
// authoring cell coordinates.
type Entity struct {
	Position math.Vec2
	Tile     TileRef
}

// TexRect addresses a tile inside an atlas image. X and Y are byte offsets
// into the flat RGBA buffer; W and H are texels.
type TexRect struct {
	Atlas int
	X, Y  int
	W, H  int
}

// Image is one atlas entry.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}
