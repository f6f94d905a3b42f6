package systems

import (
	"encoding/json"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	FOVIndex        int    `json:"fovIndex"`
	ResolutionIndex int    `json:"resolutionIndex"`
	Fullscreen      bool   `json:"fullscreen"`
	ShowHUD         bool   `json:"showHud"`
	ShowMinimap     bool   `json:"showMinimap"`
	LastLevel       string `json:"lastLevel"`
}

// settingsStore is the subset of *gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

const settingsKey = "settings"

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilecaster",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error
// when persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// UpdatePersistence writes the settings back once they change.
func UpdatePersistence(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false

	saved := &SavedSettings{
		FOVIndex:        settings.FOVIndex,
		ResolutionIndex: settings.ResolutionIndex,
		Fullscreen:      settings.Fullscreen,
		ShowHUD:         settings.ShowHUD,
		ShowMinimap:     settings.ShowMinimap,
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			saved.LastLevel = level.Name
		}
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the scene's Settings
// component.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	if saved.FOVIndex >= 0 && saved.FOVIndex < len(cfg.Settings.FOVSteps) {
		settings.FOVIndex = saved.FOVIndex
	}
	settings.ResolutionIndex = saved.ResolutionIndex
	settings.Fullscreen = saved.Fullscreen
	settings.ShowHUD = saved.ShowHUD
	settings.ShowMinimap = saved.ShowMinimap
}

// ApplySavedSettingsGlobal applies window settings and the last level
// before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if cfg.Viewer.StartLevel == "" {
		cfg.Viewer.StartLevel = saved.LastLevel
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
