package config

import (
	"math"
	"strings"
	"testing"
)

// snapshot restores the global config after a test mutates it.
func snapshot(t *testing.T) {
	t.Helper()
	c, rc, v, l, d := *C, Raycast, Viewer, Logging, Debug
	t.Cleanup(func() {
		*C, Raycast, Viewer, Logging, Debug = c, rc, v, l, d
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	snapshot(t)
	t.Setenv("TILECASTER_WIDTH", "800")
	t.Setenv("TILECASTER_FOV", "90")
	t.Setenv("TILECASTER_SHADE_DISTANCE", "0")
	t.Setenv("TILECASTER_LEVELS_DIR", " maps ")
	t.Setenv("TILECASTER_LOG_LEVEL", "debug")
	t.Setenv("TILECASTER_MINIMAP", "true")

	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if C.Width != 800 {
		t.Errorf("Width = %d, want 800", C.Width)
	}
	if math.Abs(Raycast.FOV-math.Pi/2) > 1e-9 {
		t.Errorf("FOV = %v, want pi/2", Raycast.FOV)
	}
	if Raycast.ShadeDistance != 0 {
		t.Errorf("ShadeDistance = %v, want 0", Raycast.ShadeDistance)
	}
	if Viewer.LevelsDir != "maps" {
		t.Errorf("LevelsDir = %q, want maps", Viewer.LevelsDir)
	}
	if Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", Logging.Level)
	}
	if !Debug.ShowMinimap {
		t.Errorf("ShowMinimap = false, want true")
	}
}

func TestLoadEnvKeepsDefaultsOnBadValues(t *testing.T) {
	snapshot(t)
	width, fov := C.Width, Raycast.FOV

	tests := []struct {
		key, value string
	}{
		{"TILECASTER_WIDTH", "wide"},
		{"TILECASTER_WIDTH", "-5"},
		{"TILECASTER_FOV", "NaN"},
		{"TILECASTER_MINIMAP", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := LoadEnv()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
			if C.Width != width || Raycast.FOV != fov {
				t.Errorf("defaults changed: width %d fov %v", C.Width, Raycast.FOV)
			}
		})
	}
}

func TestLoadEnvEmptyIsNoop(t *testing.T) {
	snapshot(t)
	before := Viewer
	t.Setenv("TILECASTER_LEVEL", "")
	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if Viewer != before {
		t.Errorf("Viewer changed: %+v", Viewer)
	}
}
