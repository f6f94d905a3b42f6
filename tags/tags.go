package tags

import "github.com/yohamta/donburi"

var (
	Camera    = donburi.NewTag().SetName("Camera")
	Wall      = donburi.NewTag().SetName("Wall")
	Character = donburi.NewTag().SetName("Character")
)

// Resolv tags for camera collision
const (
	ResolvSolid  = "solid"
	ResolvCamera = "camera"
)
