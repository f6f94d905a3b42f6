package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the persisted viewer option ranges
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	FOVSteps               []float64 // degrees
	DefaultFOVIndex        int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
		FOVSteps:               []float64{45, 60, 75, 90, 110},
		DefaultFOVIndex:        1,
	}
}
