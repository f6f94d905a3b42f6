package raycast

import (
	"context"
	"image"
	"testing"
)

var (
	green  = [4]byte{0, 200, 0, 255}
	red    = [4]byte{220, 0, 0, 255}
	blue   = [4]byte{0, 0, 220, 255}
	yellow = [4]byte{220, 220, 0, 255}
)

const testGrid = 4

// fakeTileset is an in-memory Tileset.
type fakeTileset struct {
	order []TilemapID
	maps  map[TilemapID]*Tilemap
	tiles map[TileRef]*TileDescriptor
}

func newFakeTileset() *fakeTileset {
	return &fakeTileset{
		maps:  make(map[TilemapID]*Tilemap),
		tiles: make(map[TileRef]*TileDescriptor),
	}
}

func (f *fakeTileset) Tilemaps() []TilemapID { return f.order }

func (f *fakeTileset) Tilemap(id TilemapID) (*Tilemap, bool) {
	tm, ok := f.maps[id]
	return tm, ok
}

func (f *fakeTileset) Tile(ref TileRef) (*TileDescriptor, bool) {
	d, ok := f.tiles[ref]
	return d, ok
}

// addStrip registers a tilemap holding one row of solid-coloured tiles.
func (f *fakeTileset) addStrip(id TilemapID, colors ...[4]byte) {
	width := testGrid * len(colors)
	pix := make([]byte, width*testGrid*4)
	for y := 0; y < testGrid; y++ {
		for x := 0; x < width; x++ {
			c := colors[x/testGrid]
			copy(pix[(y*width+x)*4:], c[:])
		}
	}
	f.order = append(f.order, id)
	f.maps[id] = &Tilemap{ID: id, Pix: pix, Width: width, Height: testGrid, GridSize: testGrid}
}

func (f *fakeTileset) describe(ref TileRef, variants int, props Properties) {
	f.tiles[ref] = &TileDescriptor{Properties: props, Variants: variants}
}

// fill places ref on every authoring cell of [x0, x1) x [y0, y1).
func fill(x0, y0, x1, y1 int, ref TileRef) map[image.Point]TileRef {
	m := make(map[image.Point]TileRef)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m[image.Pt(x, y)] = ref
		}
	}
	return m
}

func pixelAt(buf []byte, stride, x, y int) [4]byte {
	off := y*stride + x*4
	return [4]byte{buf[off], buf[off+1], buf[off+2], buf[off+3]}
}

func mustWorld(t *testing.T, r *Renderer, id RegionID) *World {
	t.Helper()
	w, ok := r.World(id)
	if !ok {
		t.Fatalf("no world for region %q", id)
	}
	return w
}

func build(r *Renderer, ts Tileset, region *Region) {
	r.Build(context.Background(), ts, region)
}
