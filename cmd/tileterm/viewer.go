package main

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/raycast"
	"github.com/automoto/tilecaster/systems"
	"github.com/automoto/tilecaster/systems/factory"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ticksPerSecond is the terminal viewer's update rate.
const ticksPerSecond = 30

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Viewer runs the level viewer against a terminal screen.
type Viewer struct {
	ecs    *ecs.ECS
	screen *Screen
	keys   keyState
	logger *zap.Logger
}

// NewViewer loads the levels in dir of fsys and enters start, or the first
// level when start is empty or unknown.
func NewViewer(screen *Screen, fsys fs.FS, dir, start string, logger *zap.Logger, tracer trace.Tracer) (*Viewer, error) {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateLevel)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateCharacters)
	e.AddSystem(systems.UpdateRenderTicks)

	renderer := raycast.NewRenderer(
		raycast.WithFOV(cfg.Raycast.FOV),
		raycast.WithMaxDistance(cfg.Raycast.MaxDistance),
		raycast.WithShading(cfg.Raycast.ShadeDistance),
		raycast.WithCeiling(cfg.Raycast.CeilingColor),
		raycast.WithLogger(logger.Named("raycast")),
		raycast.WithTracer(tracer),
	)
	cols, rows := screen.Size()
	width, height := frameSize(cols, rows)
	factory.CreateRender(e, renderer, max(width, 1), max(height, 1))

	level, err := factory.CreateLevel(e, fsys, dir, start)
	if err != nil {
		return nil, fmt.Errorf("tileterm: %w", err)
	}
	systems.EnterLevel(e, components.Level.Get(level).LevelIndex)

	return &Viewer{ecs: e, screen: screen, logger: logger}, nil
}

// HandleEvent applies one terminal event. It reports false when the viewer
// should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		id := actionFor(ev)
		if id == cfg.ActionQuit {
			return false
		}
		v.keys.press(id)
	case *tcell.EventResize:
		cols, rows := v.screen.Size()
		width, height := frameSize(cols, rows)
		systems.ResizeRender(v.ecs, width, height)
		v.logger.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
		v.screen.Sync()
	}
	return true
}

// Tick runs one update with the currently held keys.
func (v *Viewer) Tick() {
	systems.SetActions(v.ecs, v.keys.next())
	v.ecs.Update()
}

// Draw renders a frame and the status line.
func (v *Viewer) Draw() {
	renderEntry, ok := components.Render.First(v.ecs.World)
	if !ok {
		return
	}
	rd := components.Render.Get(renderEntry)
	cols, rows := v.screen.Size()
	if w, h := frameSize(cols, rows); w == 0 || h == 0 {
		return
	}
	if !systems.RenderFrame(v.ecs, rd) {
		return
	}

	status := " " + strings.Join(systems.StatusLines(v.ecs), "  ")
	v.screen.DrawText(0, 0, status+strings.Repeat(" ", max(cols-len([]rune(status)), 0)), statusStyle)
	blit(v.screen, rd.Pixels, rd.Width, rd.Height, 1)
	v.screen.Show()
}

// Run polls terminal events on a goroutine and ticks until quit.
func (v *Viewer) Run() {
	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}
