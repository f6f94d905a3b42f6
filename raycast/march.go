package raycast

import (
	"image"
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// rayHit describes the first wall cell a ray meets.
type rayHit struct {
	cell  image.Point
	perp  float64 // distance along the view direction
	dist  float64 // euclidean distance
	side  int     // 0: crossed a vertical grid line, 1: a horizontal one
	wallU float64 // horizontal texture coordinate on the wall face
	tex   Texture
}

// cast walks the grid from origin along (dx, dy) with a DDA until it meets a
// wall, travels past maxDist, or leaves the world for good. The direction
// does not need to be normalised: perp is measured in units of it.
func (w *World) cast(origin math.Vec2, dx, dy, maxDist float64) (rayHit, bool) {
	mapX := int(gomath.Floor(origin.X))
	mapY := int(gomath.Floor(origin.Y))

	deltaX, deltaY := gomath.Inf(1), gomath.Inf(1)
	if dx != 0 {
		deltaX = gomath.Abs(1 / dx)
	}
	if dy != 0 {
		deltaY = gomath.Abs(1 / dy)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dx < 0 {
		stepX = -1
		sideX = (origin.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - origin.X) * deltaX
	}
	if dy < 0 {
		stepY = -1
		sideY = (origin.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - origin.Y) * deltaY
	}

	length := gomath.Hypot(dx, dy)
	if length == 0 {
		return rayHit{}, false
	}
	maxPerp := maxDist / length
	maxSteps := int(2*maxDist) + 2

	for step := 0; step < maxSteps; step++ {
		var side int
		var perp float64
		if sideX < sideY {
			perp = sideX
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			perp = sideY
			sideY += deltaY
			mapY += stepY
			side = 1
		}

		if perp > maxPerp {
			return rayHit{}, false
		}
		if w.leaving(mapX, mapY, stepX, stepY) {
			return rayHit{}, false
		}

		c := w.at(mapX, mapY)
		if c == nil || c.wall.Empty() {
			continue
		}

		hit := rayHit{
			cell: image.Pt(mapX, mapY),
			perp: perp,
			dist: perp * length,
			side: side,
			tex:  c.wall,
		}
		var u float64
		if side == 0 {
			u = origin.Y + perp*dy
		} else {
			u = origin.X + perp*dx
		}
		u -= gomath.Floor(u)
		if side == 0 && dx < 0 {
			u = 1 - u
		}
		if side == 1 && dy > 0 {
			u = 1 - u
		}
		hit.wallU = u
		return hit, true
	}
	return rayHit{}, false
}

// leaving reports whether the cell is outside the world and the ray moves
// further away on that axis.
func (w *World) leaving(x, y, stepX, stepY int) bool {
	b := w.bounds
	return (x < b.Min.X && stepX < 0) || (x >= b.Max.X && stepX > 0) ||
		(y < b.Min.Y && stepY < 0) || (y >= b.Max.Y && stepY > 0)
}
