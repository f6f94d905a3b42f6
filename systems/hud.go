package systems

import (
	"fmt"
	"math"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 6
	hudPadding = 4
)

// DrawHUD renders the level name, camera position and frame rate in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(e).ShowHUD {
		return
	}
	lines := StatusLines(e)
	if len(lines) == 0 {
		return
	}
	lines = append(lines, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()))

	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(width+2*hudPadding), float32(len(lines)*lineHeight+2*hudPadding),
		cfg.UI.HUDTextBgColor, false)

	for i, l := range lines {
		y := hudMargin + hudPadding + (i+1)*lineHeight - face.Metrics().Descent.Ceil()
		text.Draw(screen, l, face, hudMargin+hudPadding, y, cfg.UI.HUDTextColor)
	}
}

// StatusLines returns the level, camera, field of view and input readout.
func StatusLines(e *ecs.ECS) []string {
	var lines []string
	if levelEntry, ok := components.Level.First(e.World); ok {
		ld := components.Level.Get(levelEntry)
		if ld.CurrentLevel != nil {
			lines = append(lines, fmt.Sprintf("%s (%d/%d)", ld.CurrentLevel.Name, ld.LevelIndex+1, len(ld.Names)))
		}
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		c := components.Camera.Get(cameraEntry)
		lines = append(lines,
			fmt.Sprintf("pos %.2f,%.2f", c.Position.X, c.Position.Y),
			fmt.Sprintf("facing %s %.0f°", c.Facing, c.Angle*180/math.Pi))
	}
	settings := GetOrCreateSettings(e)
	lines = append(lines, fmt.Sprintf("fov %.0f°", FOVRadians(settings.FOVIndex)*180/math.Pi))
	if inputEntry, ok := components.Input.First(e.World); ok {
		lines = append(lines, "input "+components.Input.Get(inputEntry).LastInputMethod.String())
	}
	return lines
}
