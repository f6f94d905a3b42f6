package main

import (
	"testing"

	cfg "github.com/automoto/tilecaster/config"
	"github.com/gdamore/tcell/v2"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want cfg.ActionID
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), cfg.ActionMoveForward},
		{"upper W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), cfg.ActionMoveForward},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), cfg.ActionMoveForward},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), cfg.ActionTurnLeft},
		{"bracket", tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), cfg.ActionWiderFOV},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cfg.ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), cfg.ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), cfg.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.ev); got != tt.want {
				t.Errorf("actionFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyStateHoldsForTicks(t *testing.T) {
	var k keyState
	k.press(cfg.ActionMoveForward)

	for i := 0; i < holdTicks; i++ {
		if !k.next()[cfg.ActionMoveForward] {
			t.Fatalf("tick %d: forward released early", i)
		}
	}
	if k.next()[cfg.ActionMoveForward] {
		t.Errorf("forward still held after %d ticks", holdTicks)
	}

	// A repeat before expiry extends the hold.
	k.press(cfg.ActionTurnLeft)
	k.next()
	k.press(cfg.ActionTurnLeft)
	for i := 0; i < holdTicks; i++ {
		if !k.next()[cfg.ActionTurnLeft] {
			t.Fatalf("tick %d: turn released after repeat", i)
		}
	}
}

func TestKeyStateIgnoresNone(t *testing.T) {
	var k keyState
	k.press(cfg.ActionNone)
	if k.next()[cfg.ActionNone] {
		t.Errorf("ActionNone reported as held")
	}
}
