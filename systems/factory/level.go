package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/tilecaster/archetypes"
	"github.com/automoto/tilecaster/components"
	"github.com/automoto/tilecaster/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads every level in dir and selects start, or the first
// level by name when start is empty or unknown.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, dir, start string) (*donburi.Entry, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}

	levelIndex := 0
	for i, name := range names {
		if name == start {
			levelIndex = i
			break
		}
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		Names:        names,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[names[levelIndex]],
		FS:           fsys,
		Dir:          dir,
	})
	return level, nil
}
