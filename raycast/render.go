package raycast

import (
	"image"
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// view is the per-frame projection state.
type view struct {
	origin         math.Vec2
	dirX, dirY     float64
	planeX, planeY float64
	rect           image.Rectangle
	stride         int
	center         float64 // horizon row, relative to rect
}

// Render draws one frame of region as seen from camera (authoring cell
// coordinates) into dst, an RGBA buffer of stride bytes per row, within
// rect. Unknown regions and out-of-buffer areas are left untouched.
func (r *Renderer) Render(dst []byte, camera math.Vec2, region RegionID, rect image.Rectangle, stride int, entities []Entity, tileset Tileset) {
	w, ok := r.worlds[region]
	if !ok {
		return
	}
	rect = clipTarget(len(dst), rect, stride)
	if rect.Empty() {
		return
	}

	w.sprites = r.Compose(region, entities, tileset)

	v := r.newView(camera, rect, stride)
	width := rect.Dx()
	if cap(r.depth) < width {
		r.depth = make([]float64, width)
	}
	r.depth = r.depth[:width]

	for col := 0; col < width; col++ {
		r.depth[col] = r.drawColumn(dst, w, &v, col)
	}
	r.drawSprites(dst, w, &v)
}

func (r *Renderer) newView(camera math.Vec2, rect image.Rectangle, stride int) view {
	off := cameraOffset(r.camera.Facing)
	dirX, dirY := gomath.Cos(r.camera.Angle), gomath.Sin(r.camera.Angle)
	half := gomath.Tan(r.fov / 2)
	return view{
		origin: math.Vec2{X: camera.X + off.X, Y: -camera.Y + off.Y},
		dirX:   dirX,
		dirY:   dirY,
		// Right-hand perpendicular of the view direction: column 0 is the
		// left edge of the screen.
		planeX: dirY * half,
		planeY: -dirX * half,
		rect:   rect,
		stride: stride,
		center: float64(rect.Dy()) / 2,
	}
}

// rayDir returns the unnormalised direction of the ray through col.
func (v *view) rayDir(col int) (float64, float64) {
	camX := 2*(float64(col)+0.5)/float64(v.rect.Dx()) - 1
	return v.dirX + v.planeX*camX, v.dirY + v.planeY*camX
}

// drawColumn writes ceiling, wall and floor of one column and returns the
// wall depth used for sprite clipping.
func (r *Renderer) drawColumn(dst []byte, w *World, v *view, col int) float64 {
	dx, dy := v.rayDir(col)
	height := v.rect.Dy()

	hit, ok := w.cast(v.origin, dx, dy, r.maxDistance)
	depth := gomath.Inf(1)
	wallTop, wallBottom := v.center, v.center
	if ok {
		depth = hit.perp
		half := float64(height) / (2 * hit.perp)
		wallTop = v.center - half
		wallBottom = v.center + half
	}

	frame := 0
	if ok {
		frame = r.tick % hit.tex.Frames
	}
	wallShade := 1.0
	if ok {
		wallShade = r.shade(hit.dist)
		if hit.side == 1 && r.shadeDistance > 0 {
			wallShade *= 0.75
		}
	}

	for row := 0; row < height; row++ {
		off := (v.rect.Min.Y+row)*v.stride + (v.rect.Min.X+col)*4
		y := float64(row) + 0.5

		switch {
		case ok && y >= wallTop && y < wallBottom:
			tv := (y - wallTop) / (wallBottom - wallTop)
			if cr, cg, cb, ca, found := w.texel(hit.tex.Rect, frame, hit.wallU, tv); found && ca > 0 {
				putShaded(dst, off, cr, cg, cb, wallShade)
			} else {
				putRGBA(dst, off, w.ceiling.R, w.ceiling.G, w.ceiling.B)
			}
		case y >= v.center:
			r.drawPlane(dst, off, w, v, dx, dy, y-v.center, false)
		default:
			r.drawPlane(dst, off, w, v, dx, dy, v.center-y, true)
		}
	}
	return depth
}

// drawPlane samples the floor (or ceiling) texel seen p rows away from the
// horizon along the ray (dx, dy).
func (r *Renderer) drawPlane(dst []byte, off int, w *World, v *view, dx, dy, p float64, ceiling bool) {
	bg := w.ceiling
	if p <= 0 {
		putRGBA(dst, off, bg.R, bg.G, bg.B)
		return
	}
	rowDist := v.center / p
	if rowDist*gomath.Hypot(dx, dy) > r.maxDistance {
		putRGBA(dst, off, bg.R, bg.G, bg.B)
		return
	}

	fx := v.origin.X + dx*rowDist
	fy := v.origin.Y + dy*rowDist
	cx, cy := int(gomath.Floor(fx)), int(gomath.Floor(fy))

	c := w.at(cx, cy)
	var tex Texture
	if c != nil {
		if ceiling {
			tex = c.ceiling
		} else {
			tex = c.floor
		}
	}
	if tex.Empty() {
		putRGBA(dst, off, bg.R, bg.G, bg.B)
		return
	}

	u := fx - gomath.Floor(fx)
	tv := 1 - (fy - gomath.Floor(fy))
	cr, cg, cb, _, found := w.texel(tex.Rect, 0, u, tv)
	if !found {
		putRGBA(dst, off, bg.R, bg.G, bg.B)
		return
	}
	putShaded(dst, off, cr, cg, cb, r.shade(rowDist*gomath.Hypot(dx, dy)))
}

// shade returns the brightness factor for a texel at distance d.
func (r *Renderer) shade(d float64) float64 {
	if r.shadeDistance <= 0 {
		return 1
	}
	f := 1 - d/r.shadeDistance
	if f < 0.2 {
		return 0.2
	}
	return f
}

// clipTarget restricts rect to the pixels addressable in a buffer of n
// bytes with the given stride.
func clipTarget(n int, rect image.Rectangle, stride int) image.Rectangle {
	if stride < 4 || n <= 0 {
		return image.Rectangle{}
	}
	rows := n / stride
	if n%stride >= rect.Max.X*4 {
		rows++
	}
	return rect.Intersect(image.Rect(0, 0, stride/4, rows))
}

func putRGBA(dst []byte, off int, r, g, b byte) {
	dst[off] = r
	dst[off+1] = g
	dst[off+2] = b
	dst[off+3] = 0xff
}

func putShaded(dst []byte, off int, r, g, b byte, f float64) {
	if f >= 1 {
		putRGBA(dst, off, r, g, b)
		return
	}
	putRGBA(dst, off, byte(float64(r)*f), byte(float64(g)*f), byte(float64(b)*f))
}

// blend composites a straight-alpha texel over the destination pixel.
func blend(dst []byte, off int, r, g, b, a byte, f float64) {
	switch a {
	case 0:
		return
	case 0xff:
		putShaded(dst, off, r, g, b, f)
		return
	}
	if f > 1 {
		f = 1
	}
	alpha := float64(a) / 255
	mix := func(s, d byte) byte {
		return byte(float64(s)*f*alpha + float64(d)*(1-alpha))
	}
	dst[off] = mix(r, dst[off])
	dst[off+1] = mix(g, dst[off+1])
	dst[off+2] = mix(b, dst[off+2])
	dst[off+3] = 0xff
}
