package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds the window settings.
type Config struct {
	Width  int
	Height int
	Title  string
}

// RaycastConfig contains the renderer tuning values.
type RaycastConfig struct {
	FOV           float64    // horizontal field of view in radians
	MaxDistance   float64    // cells a ray may travel
	ShadeDistance float64    // distance at which texels reach minimum brightness, 0 disables
	CeilingColor  color.RGBA // flat ceiling and background colour
	Scale         int        // window pixels per rendered pixel
}

// ViewerConfig contains camera movement and level selection values.
type ViewerConfig struct {
	LevelsDir     string
	StartLevel    string
	MoveSpeed     float64 // cells per tick
	StrafeSpeed   float64 // cells per tick
	TurnDuration  float32 // seconds for a 90 degree turn
	CellPixels    int     // collision space pixels per cell
	CameraSize    float64 // collision box edge in cells
	AnimationRate int     // ticks per wall animation frame
}

// LoggingConfig selects the zap logger setup.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// UIConfig contains HUD colours and sizes.
type UIConfig struct {
	HUDTextColor     color.RGBA
	HUDTextBgColor   color.RGBA
	HUDFontSize      float64
	DebugFontSize    float64
	MinimapCell      float64
	MinimapWallColor color.RGBA
	MinimapFloor     color.RGBA
	MinimapCamera    color.RGBA
	MinimapSprite    color.RGBA
}

// DebugConfig contains debug toggles, overridable from the environment.
type DebugConfig struct {
	ShowHUD     bool
	ShowMinimap bool
	Tracing     bool // export spans when an OTLP endpoint is configured
}

var C *Config
var Raycast RaycastConfig
var Viewer ViewerConfig
var Logging LoggingConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 40, G: 44, B: 64, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "tilecaster",
	}

	Raycast = RaycastConfig{
		FOV:           math.Pi / 3,
		MaxDistance:   32,
		ShadeDistance: 16,
		CeilingColor:  Slate,
		Scale:         2,
	}

	Viewer = ViewerConfig{
		LevelsDir:     "levels",
		MoveSpeed:     0.06,
		StrafeSpeed:   0.045,
		TurnDuration:  0.2,
		CellPixels:    16,
		CameraSize:    0.4,
		AnimationRate: 15,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	UI = UIConfig{
		HUDTextColor:     White,
		HUDTextBgColor:   BlackOverlay,
		HUDFontSize:      12,
		DebugFontSize:    10,
		MinimapCell:      4,
		MinimapWallColor: DarkBlue,
		MinimapFloor:     color.RGBA{R: 30, G: 30, B: 30, A: 200},
		MinimapCamera:    Yellow,
		MinimapSprite:    Red,
	}

	Debug = DebugConfig{
		ShowHUD:     true,
		ShowMinimap: false,
	}
}
