package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a box in the level's collision space. Walls and the camera
// carry one; characters pass through walls and do not.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the per-level resolv space, one cell per level cell.
var Space = donburi.NewComponentType[resolv.Space]()
