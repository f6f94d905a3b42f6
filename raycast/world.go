package raycast

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi/features/math"
)

// Texture is a tile placed into the world. A zero Texture is empty.
type Texture struct {
	Rect   TexRect
	Frames int
}

// Empty reports whether no tile is placed.
func (t Texture) Empty() bool { return t.Frames == 0 }

// Sprite is a billboard in world space.
type Sprite struct {
	Position       math.Vec2
	Rect           TexRect
	Frames         int
	Shrink         int
	VerticalOffset float64
}

type cell struct {
	floor   Texture
	wall    Texture
	ceiling Texture
}

// World is the renderable model of one region. Cells are addressed in world
// space, where the authoring cell (x, y) becomes (x, -y).
type World struct {
	region  RegionID
	bounds  image.Rectangle
	cells   []cell
	atlas   []Image
	ceiling color.RGBA
	static  []Sprite
	sprites []Sprite
}

func newWorld(region RegionID, bounds image.Rectangle, ceiling color.RGBA) *World {
	return &World{
		region:  region,
		bounds:  bounds,
		cells:   make([]cell, bounds.Dx()*bounds.Dy()),
		ceiling: ceiling,
	}
}

// Region returns the id of the region the world was built from.
func (w *World) Region() RegionID { return w.region }

// Bounds returns the world cell rectangle covered by the region.
func (w *World) Bounds() image.Rectangle { return w.bounds }

// AtlasLen returns the number of registered atlas images.
func (w *World) AtlasLen() int { return len(w.atlas) }

// CeilingColor returns the flat ceiling colour.
func (w *World) CeilingColor() color.RGBA { return w.ceiling }

// StaticSprites returns a copy of the sprites baked at build time.
func (w *World) StaticSprites() []Sprite {
	out := make([]Sprite, len(w.static))
	copy(out, w.static)
	return out
}

// Sprites returns the sprite list injected by the most recent Render.
func (w *World) Sprites() []Sprite { return w.sprites }

// Floor returns the floor texture of the world cell p.
func (w *World) Floor(p image.Point) (Texture, bool) {
	c := w.at(p.X, p.Y)
	if c == nil || c.floor.Empty() {
		return Texture{}, false
	}
	return c.floor, true
}

// Wall returns the wall texture of the world cell p.
func (w *World) Wall(p image.Point) (Texture, bool) {
	c := w.at(p.X, p.Y)
	if c == nil || c.wall.Empty() {
		return Texture{}, false
	}
	return c.wall, true
}

// Ceiling returns the ceiling override of the world cell p.
func (w *World) Ceiling(p image.Point) (Texture, bool) {
	c := w.at(p.X, p.Y)
	if c == nil || c.ceiling.Empty() {
		return Texture{}, false
	}
	return c.ceiling, true
}

func (w *World) at(x, y int) *cell {
	if x < w.bounds.Min.X || y < w.bounds.Min.Y || x >= w.bounds.Max.X || y >= w.bounds.Max.Y {
		return nil
	}
	return &w.cells[(y-w.bounds.Min.Y)*w.bounds.Dx()+(x-w.bounds.Min.X)]
}

func (w *World) setFloor(x, y int, t Texture) {
	if c := w.at(x, y); c != nil {
		c.floor = t
	}
}

func (w *World) setWall(x, y int, t Texture) {
	if c := w.at(x, y); c != nil {
		c.wall = t
	}
}

func (w *World) setCeiling(x, y int, t Texture) {
	if c := w.at(x, y); c != nil {
		c.ceiling = t
	}
}

// texel samples t at (u, v) in [0, 1) for the given animation frame.
// Frames are laid out left to right in the tilemap.
func (w *World) texel(t TexRect, frame int, u, v float64) (r, g, b, a byte, ok bool) {
	if t.Atlas < 0 || t.Atlas >= len(w.atlas) || t.W <= 0 || t.H <= 0 {
		return 0, 0, 0, 0, false
	}
	img := &w.atlas[t.Atlas]
	tx := clampInt(int(u*float64(t.W)), 0, t.W-1)
	ty := clampInt(int(v*float64(t.H)), 0, t.H-1)
	off := t.Y + ty*img.Width*4 + t.X + (frame*t.W+tx)*4
	if off < 0 || off+3 >= len(img.Pix) {
		return 0, 0, 0, 0, false
	}
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3], true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
