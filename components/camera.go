package components

import (
	"github.com/automoto/tilecaster/raycast"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the viewer camera. Position is in authoring cells and is
// derived from the collision object each tick.
type CameraData struct {
	Position math.Vec2
	Facing   raycast.Facing
	Angle    float64      // radians, counter-clockwise from east
	Turn     *gween.Tween // in-flight 90 degree turn, nil when idle
}

var Camera = donburi.NewComponentType[CameraData]()
