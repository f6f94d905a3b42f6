package components

import "github.com/yohamta/donburi"

// SettingsData stores the current viewer settings
type SettingsData struct {
	FOVIndex        int
	ResolutionIndex int
	Fullscreen      bool
	ShowHUD         bool
	ShowMinimap     bool
	Dirty           bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
