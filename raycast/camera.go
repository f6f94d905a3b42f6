package raycast

import (
	"image"
	gomath "math"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

// Facing is one of the four cardinal view directions.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseFacing parses a facing name, case-insensitively. Unknown names yield
// North and false.
func ParseFacing(s string) (Facing, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	}
	return North, false
}

// Angle returns the view angle of the facing in radians, counter-clockwise
// from east in world space (y up).
func (f Facing) Angle() float64 {
	switch f {
	case East:
		return 0
	case South:
		return -gomath.Pi / 2
	case West:
		return gomath.Pi
	}
	return gomath.Pi / 2
}

// Right returns the facing after a clockwise quarter turn.
func (f Facing) Right() Facing { return (f + 1) % 4 }

// Left returns the facing after a counter-clockwise quarter turn.
func (f Facing) Left() Facing { return (f + 3) % 4 }

// Camera is the view state kept by the renderer between frames.
type Camera struct {
	Facing Facing
	Angle  float64
}

// cameraOffset is the translation applied to the camera cell position
// before projection. Every facing currently maps to the cell centre.
func cameraOffset(f Facing) math.Vec2 {
	switch f {
	case North, South:
		return math.Vec2{X: 0.5, Y: 0.5}
	case East, West:
		return math.Vec2{X: 0.5, Y: 0.5}
	}
	return math.Vec2{X: 0.5, Y: 0.5}
}

// toWorld maps an authoring cell position to world space: y is inverted
// and the position moves to the cell centre.
func toWorld(p math.Vec2) math.Vec2 {
	return math.Vec2{X: p.X + 0.5, Y: -p.Y + 0.5}
}

// worldCell maps an authoring cell to its world cell.
func worldCell(x, y int) (int, int) {
	return x, -y
}

func vec(p image.Point) math.Vec2 {
	return math.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
