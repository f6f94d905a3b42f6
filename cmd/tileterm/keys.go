package main

import (
	cfg "github.com/automoto/tilecaster/config"
	"github.com/gdamore/tcell/v2"
)

// holdTicks is how long a key counts as held after its last event.
// Terminals report presses and auto-repeat but never releases.
const holdTicks = 4

var runeActions = map[rune]cfg.ActionID{
	'w': cfg.ActionMoveForward,
	's': cfg.ActionMoveBack,
	'a': cfg.ActionStrafeLeft,
	'd': cfg.ActionStrafeRight,
	'q': cfg.ActionTurnLeft,
	'e': cfg.ActionTurnRight,
	'n': cfg.ActionNextLevel,
	'p': cfg.ActionPrevLevel,
	'r': cfg.ActionReloadLevel,
	'm': cfg.ActionToggleMinimap,
	']': cfg.ActionWiderFOV,
	'=': cfg.ActionWiderFOV,
	'[': cfg.ActionNarrowerFOV,
	'-': cfg.ActionNarrowerFOV,
}

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyUp:     cfg.ActionMoveForward,
	tcell.KeyDown:   cfg.ActionMoveBack,
	tcell.KeyLeft:   cfg.ActionTurnLeft,
	tcell.KeyRight:  cfg.ActionTurnRight,
	tcell.KeyPgDn:   cfg.ActionNextLevel,
	tcell.KeyPgUp:   cfg.ActionPrevLevel,
	tcell.KeyF5:     cfg.ActionReloadLevel,
	tcell.KeyF1:     cfg.ActionToggleDebug,
	tcell.KeyTab:    cfg.ActionToggleMinimap,
	tcell.KeyEscape: cfg.ActionQuit,
	tcell.KeyCtrlC:  cfg.ActionQuit,
}

// actionFor maps a key event to a viewer action.
func actionFor(ev *tcell.EventKey) cfg.ActionID {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeActions[r]
	}
	return keyActions[ev.Key()]
}

// keyState turns key events into held actions.
type keyState struct {
	tick  int
	until [cfg.ActionCount]int
}

// press marks id held for the next holdTicks ticks.
func (k *keyState) press(id cfg.ActionID) {
	if id == cfg.ActionNone {
		return
	}
	k.until[id] = k.tick + holdTicks
}

// next advances one tick and returns the actions held during it.
func (k *keyState) next() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for id, until := range k.until {
		pressed[id] = until > k.tick
	}
	k.tick++
	return pressed
}
