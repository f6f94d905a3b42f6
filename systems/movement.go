package systems

import (
	gomath "math"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/systems/factory"
	"github.com/automoto/tilecaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovement walks the camera along its view direction and strafes
// sideways, sliding along walls. Movement is suspended during turns.
func UpdateMovement(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Turn != nil {
		return
	}
	obj := components.Object.Get(cameraEntry)
	input := getOrCreateInput(e)

	var forward, strafe float64
	if GetAction(input, cfg.ActionMoveForward).Pressed {
		forward += cfg.Viewer.MoveSpeed
	}
	if GetAction(input, cfg.ActionMoveBack).Pressed {
		forward -= cfg.Viewer.MoveSpeed
	}
	if GetAction(input, cfg.ActionStrafeRight).Pressed {
		strafe += cfg.Viewer.StrafeSpeed
	}
	if GetAction(input, cfg.ActionStrafeLeft).Pressed {
		strafe -= cfg.Viewer.StrafeSpeed
	}
	if forward == 0 && strafe == 0 {
		return
	}

	d := moveDelta(camera.Angle, forward, strafe)
	s := float64(cfg.Viewer.CellPixels)
	moveObject(obj.Object, d.X*s, d.Y*s)

	camera.Position = factory.PixelsToCell(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// moveDelta converts forward/strafe distances into an authoring cell delta
// for a camera looking along angle. Authoring y grows southwards.
func moveDelta(angle, forward, strafe float64) math.Vec2 {
	dirX, dirY := gomath.Cos(angle), -gomath.Sin(angle)
	// Right of the view direction in authoring space.
	rightX, rightY := -dirY, dirX
	return math.Vec2{
		X: dirX*forward + rightX*strafe,
		Y: dirY*forward + rightY*strafe,
	}
}

// moveObject moves obj by (dx, dy) pixels one axis at a time, stopping
// flush against solid objects.
func moveObject(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
	obj.Update()
}
