package systems

import (
	"math"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/raycast"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the duration of one update, ebiten's default TPS unless
// changed with SetTickRate.
var tickSeconds = float32(1.0 / 60.0)

// SetTickRate sets the number of updates per second; non-positive values
// are ignored.
func SetTickRate(tps int) {
	if tps > 0 {
		tickSeconds = 1 / float32(tps)
	}
}

// UpdateCamera advances 90 degree turns and starts new ones from input.
// The view angle is tweened; the facing changes as soon as a turn starts.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.Turn != nil {
		angle, done := camera.Turn.Update(tickSeconds)
		camera.Angle = float64(angle)
		if done {
			camera.Angle = camera.Facing.Angle()
			camera.Turn = nil
		}
		return
	}

	input := getOrCreateInput(e)
	switch {
	case GetAction(input, cfg.ActionTurnLeft).Pressed:
		startTurn(camera, camera.Facing.Left())
	case GetAction(input, cfg.ActionTurnRight).Pressed:
		startTurn(camera, camera.Facing.Right())
	}
}

// startTurn begins a tweened turn from the current angle to facing to,
// taking the short way round.
func startTurn(camera *components.CameraData, to raycast.Facing) {
	from := camera.Angle
	target := from + angleBetween(from, to.Angle())
	camera.Facing = to
	if cfg.Viewer.TurnDuration <= 0 {
		camera.Angle = to.Angle()
		return
	}
	camera.Turn = gween.New(float32(from), float32(target), cfg.Viewer.TurnDuration, ease.OutQuad)
}

// angleBetween returns the signed shortest rotation from a to b in (-pi, pi].
func angleBetween(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
