package raycast

import (
	gomath "math"
	"sort"
)

// Compose returns the sprite list of one frame: a copy of the static sprites
// of region followed by one sprite per entity whose tilemap is registered
// for the region.
func (r *Renderer) Compose(region RegionID, entities []Entity, tileset Tileset) []Sprite {
	static := r.statics[region]
	out := make([]Sprite, len(static), len(static)+len(entities))
	copy(out, static)

	lookup := r.lookups[region]
	for _, e := range entities {
		slot, ok := lookup[e.Tile.Tilemap]
		if !ok {
			continue
		}
		var desc *TileDescriptor
		if tileset != nil {
			desc, _ = tileset.Tile(e.Tile)
		}
		hints := DefaultHints
		if desc != nil {
			hints = ResolveHints(desc.Properties)
		}
		out = append(out, Sprite{
			Position:       toWorld(e.Position),
			Rect:           slot.rect(e.Tile),
			Frames:         desc.Frames(),
			Shrink:         hints.Shrink,
			VerticalOffset: hints.VerticalOffset,
		})
	}
	return out
}

type projected struct {
	sprite *Sprite
	dist   float64
}

// drawSprites draws the world's current sprites back to front, clipped by
// the wall depth of each column.
func (r *Renderer) drawSprites(dst []byte, w *World, v *view) {
	if len(w.sprites) == 0 {
		return
	}

	order := make([]projected, 0, len(w.sprites))
	for i := range w.sprites {
		s := &w.sprites[i]
		sx, sy := s.Position.X-v.origin.X, s.Position.Y-v.origin.Y
		order = append(order, projected{sprite: s, dist: sx*sx + sy*sy})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].dist > order[j].dist })

	det := v.planeX*v.dirY - v.dirX*v.planeY
	if det == 0 {
		return
	}
	inv := 1 / det

	width, height := v.rect.Dx(), v.rect.Dy()
	for _, p := range order {
		s := p.sprite
		sx, sy := s.Position.X-v.origin.X, s.Position.Y-v.origin.Y

		camX := inv * (v.dirY*sx - v.dirX*sy)
		depth := inv * (-v.planeY*sx + v.planeX*sy)
		if depth <= 0.05 {
			continue
		}

		shrink := s.Shrink
		if shrink < 1 {
			shrink = 1
		}
		size := float64(height) / depth / float64(shrink)
		screenX := float64(width) / 2 * (1 + camX/depth)
		// Shrunk sprites rest on the floor; the vertical offset moves them
		// down in texels at unit distance.
		floorShift := (float64(height)/depth - size) / 2
		top := v.center - size/2 + floorShift + s.VerticalOffset/depth
		left := screenX - size/2

		x0 := clampInt(int(gomath.Floor(left)), 0, width)
		x1 := clampInt(int(gomath.Ceil(left+size)), 0, width)
		y0 := clampInt(int(gomath.Floor(top)), 0, height)
		y1 := clampInt(int(gomath.Ceil(top+size)), 0, height)

		frames := s.Frames
		if frames < 1 {
			frames = 1
		}
		frame := r.tick % frames
		f := r.shade(gomath.Sqrt(p.dist))

		for col := x0; col < x1; col++ {
			if depth >= r.depth[col] {
				continue
			}
			u := (float64(col) + 0.5 - left) / size
			if u < 0 || u >= 1 {
				continue
			}
			for row := y0; row < y1; row++ {
				tv := (float64(row) + 0.5 - top) / size
				if tv < 0 || tv >= 1 {
					continue
				}
				cr, cg, cb, ca, ok := w.texel(s.Rect, frame, u, tv)
				if !ok {
					continue
				}
				off := (v.rect.Min.Y+row)*v.stride + (v.rect.Min.X+col)*4
				blend(dst, off, cr, cg, cb, ca, f)
			}
		}
	}
}
