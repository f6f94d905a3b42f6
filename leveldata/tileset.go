package leveldata

import (
	"fmt"
	"image"
	"io/fs"
	"path"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/automoto/tilecaster/raycast"
	"github.com/lafriks/go-tiled"
)

// Tileset serves the tilesets of one TMX map to the renderer.
type Tileset struct {
	order []raycast.TilemapID
	maps  map[raycast.TilemapID]*raycast.Tilemap
	tiles map[raycast.TileRef]*raycast.TileDescriptor
	cols  map[*tiled.Tileset]int
}

var _ raycast.Tileset = (*Tileset)(nil)

func (t *Tileset) Tilemaps() []raycast.TilemapID { return t.order }

func (t *Tileset) Tilemap(id raycast.TilemapID) (*raycast.Tilemap, bool) {
	tm, ok := t.maps[id]
	return tm, ok
}

func (t *Tileset) Tile(ref raycast.TileRef) (*raycast.TileDescriptor, bool) {
	d, ok := t.tiles[ref]
	return d, ok
}

// loadTileset decodes every image-backed tileset of m. mapDir is the
// directory of the TMX file inside fsys.
func loadTileset(fsys fs.FS, mapDir string, m *tiled.Map) (*Tileset, error) {
	ts := &Tileset{
		maps:  make(map[raycast.TilemapID]*raycast.Tilemap),
		tiles: make(map[raycast.TileRef]*raycast.TileDescriptor),
		cols:  make(map[*tiled.Tileset]int),
	}

	for _, set := range m.Tilesets {
		// Image collection tilesets have no single atlas image.
		if set.Image == nil || set.Image.Source == "" {
			continue
		}
		id := raycast.TilemapID(set.Name)
		if _, dup := ts.maps[id]; dup {
			return nil, fmt.Errorf("duplicate tileset name %q", set.Name)
		}

		dir := mapDir
		if set.Source != "" {
			dir = path.Join(mapDir, path.Dir(set.Source))
		}
		imgPath := path.Join(dir, set.Image.Source)
		pix, w, h, err := decodeTilemap(fsys, imgPath)
		if err != nil {
			return nil, fmt.Errorf("tileset %s: %w", set.Name, err)
		}

		cols := set.Columns
		if cols <= 0 && set.TileWidth > 0 {
			cols = w / set.TileWidth
		}
		if cols <= 0 {
			return nil, fmt.Errorf("tileset %s: no columns", set.Name)
		}
		ts.cols[set] = cols
		ts.order = append(ts.order, id)
		ts.maps[id] = &raycast.Tilemap{
			ID:       id,
			Pix:      pix,
			Width:    w,
			Height:   h,
			GridSize: set.TileWidth,
		}

		for _, tile := range set.Tiles {
			ref := raycast.TileRef{Tilemap: id, X: int(tile.ID) % cols, Y: int(tile.ID) / cols}
			ts.tiles[ref] = &raycast.TileDescriptor{
				Properties: properties(tile.Properties),
				Variants:   len(tile.Animation),
			}
		}
	}
	return ts, nil
}

// ref converts a placed layer tile into a renderer tile reference.
func (t *Tileset) ref(lt *tiled.LayerTile) (raycast.TileRef, bool) {
	if lt == nil || lt.IsNil() || lt.Tileset == nil {
		return raycast.TileRef{}, false
	}
	cols, ok := t.cols[lt.Tileset]
	if !ok {
		return raycast.TileRef{}, false
	}
	return raycast.TileRef{
		Tilemap: raycast.TilemapID(lt.Tileset.Name),
		X:       int(lt.ID) % cols,
		Y:       int(lt.ID) / cols,
	}, true
}

// decodeTilemap reads an image file into a straight-alpha RGBA buffer.
func decodeTilemap(fsys fs.FS, name string) ([]byte, int, int, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", name, err)
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst.Pix, b.Dx(), b.Dy(), nil
}

func properties(props tiled.Properties) raycast.Properties {
	if len(props) == 0 {
		return nil
	}
	out := make(raycast.Properties, len(props))
	for _, p := range props {
		out[p.Name] = p.Value
	}
	return out
}
