package raycast

import (
	"image/color"
	gomath "math"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	DefaultFOV         = gomath.Pi / 3
	DefaultMaxDistance = 32.0
)

// DefaultCeiling is the flat ceiling colour used when no option overrides it.
var DefaultCeiling = color.RGBA{R: 40, G: 44, B: 64, A: 255}

// tilemapSlot is the per-region lookup entry of a registered tilemap.
type tilemapSlot struct {
	atlas  int
	grid   int
	width  int
	height int
}

// rect resolves a tile reference into byte-stride addressing of the tilemap.
func (s tilemapSlot) rect(ref TileRef) TexRect {
	return TexRect{
		Atlas: s.atlas,
		X:     ref.X * s.grid * 4,
		Y:     ref.Y * s.width * s.grid * 4,
		W:     s.grid,
		H:     s.grid,
	}
}

// Renderer owns the world models of every region it has built and draws
// frames from them. A Renderer is not safe for concurrent use.
type Renderer struct {
	worlds  map[RegionID]*World
	lookups map[RegionID]map[TilemapID]tilemapSlot
	statics map[RegionID][]Sprite

	camera    Camera
	cameraSet bool
	tick      int

	fov           float64
	maxDistance   float64
	shadeDistance float64
	ceiling       color.RGBA

	depth []float64

	logger *zap.Logger
	tracer trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFOV sets the horizontal field of view in radians.
func WithFOV(fov float64) Option {
	return func(r *Renderer) {
		if fov > 0 && fov < gomath.Pi {
			r.fov = fov
		}
	}
}

// WithMaxDistance caps how far rays and floor sampling reach, in cells.
func WithMaxDistance(d float64) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.maxDistance = d
		}
	}
}

// WithShading darkens texels linearly until distance d. Zero disables it.
func WithShading(d float64) Option {
	return func(r *Renderer) {
		if d >= 0 {
			r.shadeDistance = d
		}
	}
}

// WithCeiling sets the flat ceiling colour of newly built worlds.
func WithCeiling(c color.RGBA) Option {
	return func(r *Renderer) { r.ceiling = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRenderer creates a renderer without any world.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		worlds:      make(map[RegionID]*World),
		lookups:     make(map[RegionID]map[TilemapID]tilemapSlot),
		statics:     make(map[RegionID][]Sprite),
		camera:      Camera{Facing: North, Angle: North.Angle()},
		fov:         DefaultFOV,
		maxDistance: DefaultMaxDistance,
		ceiling:     DefaultCeiling,
		logger:      zap.NewNop(),
		tracer:      noop.NewTracerProvider().Tracer("tilecaster/raycast"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// World returns the world model built for region.
func (r *Renderer) World(region RegionID) (*World, bool) {
	w, ok := r.worlds[region]
	return w, ok
}

// Invalidate drops the world model of region so the next Build recreates
// it from fresh authoring data.
func (r *Renderer) Invalidate(region RegionID) {
	if _, ok := r.worlds[region]; !ok {
		return
	}
	delete(r.worlds, region)
	delete(r.lookups, region)
	delete(r.statics, region)
	r.logger.Debug("world invalidated", zap.String("region", string(region)))
}

// Camera returns the current view state.
func (r *Renderer) Camera() Camera { return r.camera }

// SetFacing turns the camera to f.
func (r *Renderer) SetFacing(f Facing) {
	r.camera.Facing = f
	r.camera.Angle = f.Angle()
}

// SetAngle sets a free view angle in radians without changing the facing.
func (r *Renderer) SetAngle(a float64) { r.camera.Angle = a }

// SetTick sets the animation counter used to pick tile frames.
func (r *Renderer) SetTick(tick int) { r.tick = tick }

// Tick returns the animation counter.
func (r *Renderer) Tick() int { return r.tick }

// FOV returns the horizontal field of view in radians.
func (r *Renderer) FOV() float64 { return r.fov }

// SetFOV changes the horizontal field of view; invalid values are ignored.
func (r *Renderer) SetFOV(fov float64) { WithFOV(fov)(r) }
