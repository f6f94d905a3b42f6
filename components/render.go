package components

import (
	"github.com/automoto/tilecaster/raycast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RenderData owns the renderer and the frame it draws into.
type RenderData struct {
	Renderer *raycast.Renderer
	Pixels   []byte // RGBA, Width*Height*4
	Width    int
	Height   int
	Frame    *ebiten.Image
	Ticks    int // viewer ticks since start
	Entities []raycast.Entity
}

var Render = donburi.NewComponentType[RenderData]()
