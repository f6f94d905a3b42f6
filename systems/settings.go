package systems

import (
	"math"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug toggles and field of view steps.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleMinimap).JustPressed {
		settings.ShowMinimap = !settings.ShowMinimap
		settings.Dirty = true
	}

	step := 0
	if GetAction(input, cfg.ActionWiderFOV).JustPressed {
		step = 1
	}
	if GetAction(input, cfg.ActionNarrowerFOV).JustPressed {
		step = -1
	}
	if step != 0 {
		next := settings.FOVIndex + step
		if next >= 0 && next < len(cfg.Settings.FOVSteps) {
			settings.FOVIndex = next
			settings.Dirty = true
		}
	}

	if renderEntry, ok := components.Render.First(e.World); ok {
		components.Render.Get(renderEntry).Renderer.SetFOV(FOVRadians(settings.FOVIndex))
	}
}

// FOVRadians returns the field of view of a settings step, or the
// configured default for an out-of-range index.
func FOVRadians(index int) float64 {
	if index < 0 || index >= len(cfg.Settings.FOVSteps) {
		return cfg.Raycast.FOV
	}
	return cfg.Settings.FOVSteps[index] * math.Pi / 180
}

// GetOrCreateSettings returns the singleton Settings component, creating
// it from the configured defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			FOVIndex:        nearestFOVStep(cfg.Raycast.FOV),
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
			ShowHUD:         cfg.Debug.ShowHUD,
			ShowMinimap:     cfg.Debug.ShowMinimap,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

func markSettingsDirty(e *ecs.ECS) {
	GetOrCreateSettings(e).Dirty = true
}

// nearestFOVStep returns the FOV step closest to fov radians.
func nearestFOVStep(fov float64) int {
	best, bestDiff := cfg.Settings.DefaultFOVIndex, math.Inf(1)
	for i, deg := range cfg.Settings.FOVSteps {
		if d := math.Abs(deg*math.Pi/180 - fov); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
