package raycast

import (
	"context"
	"image"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// tileInfo is the build-time cache entry of a wall-layer tile.
type tileInfo struct {
	hints  TileHints
	frames int
}

// Build creates the world model of region unless one already exists.
// Repeated calls for the same region id are no-ops.
func (r *Renderer) Build(ctx context.Context, tileset Tileset, region *Region) {
	if region == nil || tileset == nil {
		return
	}
	if _, ok := r.worlds[region.ID]; ok {
		return
	}

	_, span := r.tracer.Start(ctx, "world.build")
	defer span.End()

	w := newWorld(region.ID, regionBounds(region), r.ceiling)

	// Register every tilemap of the tileset in the atlas.
	lookup := make(map[TilemapID]tilemapSlot)
	for _, id := range tileset.Tilemaps() {
		tm, ok := tileset.Tilemap(id)
		if !ok || tm == nil {
			continue
		}
		lookup[id] = tilemapSlot{
			atlas:  len(w.atlas),
			grid:   tm.GridSize,
			width:  tm.Width,
			height: tm.Height,
		}
		w.atlas = append(w.atlas, Image{Pix: tm.Pix, Width: tm.Width, Height: tm.Height})
	}

	var floors, walls, ceilings, skipped int

	for _, p := range sortedCells(region.Floor) {
		ref := region.Floor[p]
		slot, ok := lookup[ref.Tilemap]
		if !ok {
			skipped++
			continue
		}
		x, y := worldCell(p.X, p.Y)
		w.setFloor(x, y, Texture{Rect: slot.rect(ref), Frames: 1})
		floors++
	}

	for _, p := range sortedCells(region.Ceiling) {
		ref := region.Ceiling[p]
		slot, ok := lookup[ref.Tilemap]
		if !ok {
			skipped++
			continue
		}
		x, y := worldCell(p.X, p.Y)
		w.setCeiling(x, y, Texture{Rect: slot.rect(ref), Frames: 1})
		ceilings++
	}

	infos := make(map[TileRef]tileInfo)
	var static []Sprite
	for _, p := range sortedCells(region.Walls) {
		ref := region.Walls[p]
		slot, ok := lookup[ref.Tilemap]
		if !ok {
			skipped++
			continue
		}
		info, ok := infos[ref]
		if !ok {
			desc, _ := tileset.Tile(ref)
			info = tileInfo{frames: desc.Frames(), hints: DefaultHints}
			if desc != nil {
				info.hints = ResolveHints(desc.Properties)
			}
			infos[ref] = info
		}

		x, y := worldCell(p.X, p.Y)
		if info.hints.Class == ClassSprite {
			static = append(static, Sprite{
				Position:       toWorld(vec(p)),
				Rect:           slot.rect(ref),
				Frames:         info.frames,
				Shrink:         info.hints.Shrink,
				VerticalOffset: info.hints.VerticalOffset,
			})
			continue
		}
		w.setWall(x, y, Texture{Rect: slot.rect(ref), Frames: info.frames})
		walls++
	}

	w.static = static
	r.worlds[region.ID] = w
	r.lookups[region.ID] = lookup
	cached := make([]Sprite, len(static))
	copy(cached, static)
	r.statics[region.ID] = cached

	if !r.cameraSet {
		r.SetFacing(North)
		r.cameraSet = true
	}

	span.SetAttributes(
		attribute.String("region", string(region.ID)),
		attribute.Int("atlas", len(w.atlas)),
		attribute.Int("walls", walls),
		attribute.Int("sprites", len(static)),
	)
	r.logger.Debug("world built",
		zap.String("region", string(region.ID)),
		zap.Int("atlas", len(w.atlas)),
		zap.Int("floors", floors),
		zap.Int("walls", walls),
		zap.Int("ceilings", ceilings),
		zap.Int("sprites", len(static)),
		zap.Int("skipped", skipped),
	)
}

// regionBounds returns the world cell rectangle covering every layer.
func regionBounds(region *Region) image.Rectangle {
	var b image.Rectangle
	first := true
	for _, layer := range []map[image.Point]TileRef{region.Floor, region.Walls, region.Ceiling} {
		for p := range layer {
			x, y := worldCell(p.X, p.Y)
			c := image.Rect(x, y, x+1, y+1)
			if first {
				b = c
				first = false
				continue
			}
			b = b.Union(c)
		}
	}
	return b
}

// sortedCells returns the keys of layer in row-major order so builds are
// deterministic.
func sortedCells(layer map[image.Point]TileRef) []image.Point {
	cells := make([]image.Point, 0, len(layer))
	for p := range layer {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
