package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "TILECASTER_"

// LoadEnv applies TILECASTER_* environment overrides to the global config.
// Call it after godotenv.Load so values from a .env file are visible.
// Malformed values are reported and leave the default in place.
func LoadEnv() error {
	var errs []string
	report := func(key string, err error) {
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s%s: %v", EnvPrefix, key, err))
		}
	}

	report("WIDTH", envInt("WIDTH", &C.Width))
	report("HEIGHT", envInt("HEIGHT", &C.Height))
	report("SCALE", envInt("SCALE", &Raycast.Scale))
	report("MAX_DISTANCE", envFloat("MAX_DISTANCE", &Raycast.MaxDistance))
	report("SHADE_DISTANCE", envFloat("SHADE_DISTANCE", &Raycast.ShadeDistance))

	var fovDegrees float64
	if ok, err := lookupFloat("FOV", &fovDegrees); err != nil {
		report("FOV", err)
	} else if ok {
		Raycast.FOV = fovDegrees * math.Pi / 180
	}

	envString("LEVELS_DIR", &Viewer.LevelsDir)
	envString("LEVEL", &Viewer.StartLevel)
	report("MOVE_SPEED", envFloat("MOVE_SPEED", &Viewer.MoveSpeed))

	envString("LOG_LEVEL", &Logging.Level)
	envString("LOG_FORMAT", &Logging.Format)

	report("DEBUG_HUD", envBool("DEBUG_HUD", &Debug.ShowHUD))
	report("MINIMAP", envBool("MINIMAP", &Debug.ShowMinimap))
	report("TRACING", envBool("TRACING", &Debug.Tracing))

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	_, err := lookupFloat(key, dst)
	return err
}

func lookupFloat(key string, dst *float64) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return false, fmt.Errorf("must be a finite non-negative number, got %v", f)
	}
	*dst = f
	return true, nil
}

func envBool(key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
