package components

import (
	cfg "github.com/automoto/tilecaster/config"
	"github.com/yohamta/donburi"
)

// InputMethod is the device that last produced an action.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTerminal
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	case InputTerminal:
		return "terminal"
	}
	return "keyboard"
}

// ActionState is one action as seen by a system during an update.
type ActionState struct {
	Pressed      bool
	JustPressed  bool // down now, up last update
	JustReleased bool // up now, down last update
}

// InputData holds the action buttons for this update and the one before.
// Systems never read devices directly; they go through GetAction.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
