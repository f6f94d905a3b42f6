package systems

import (
	"context"
	"path"

	"github.com/automoto/tilecaster/components"
	cfg "github.com/automoto/tilecaster/config"
	"github.com/automoto/tilecaster/leveldata"
	"github.com/automoto/tilecaster/systems/factory"
	"github.com/automoto/tilecaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateLevel cycles through the loaded levels and reloads the current one
// from disk on request.
func UpdateLevel(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	input := getOrCreateInput(e)

	switch {
	case GetAction(input, cfg.ActionNextLevel).JustPressed:
		EnterLevel(e, levelData.LevelIndex+1)
	case GetAction(input, cfg.ActionPrevLevel).JustPressed:
		EnterLevel(e, levelData.LevelIndex-1)
	case GetAction(input, cfg.ActionReloadLevel).JustPressed:
		ReloadLevel(e)
	}
}

// EnterLevel makes the level at index current, wrapping around, and
// rebuilds its collision space, camera and characters.
func EnterLevel(e *ecs.ECS, index int) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	n := len(levelData.Names)
	if n == 0 {
		return
	}
	index = ((index % n) + n) % n
	levelData.LevelIndex = index
	levelData.CurrentLevel = levelData.Levels[levelData.Names[index]]

	populate(e, levelData.CurrentLevel)
	markSettingsDirty(e)
	logger.Info("level entered",
		zap.String("level", levelData.CurrentLevel.Name),
		zap.Int("index", index),
		zap.Int("characters", len(levelData.CurrentLevel.Characters)))
}

// ReloadLevel re-reads the current level from disk, drops the renderer's
// cached world for it and enters it again. On failure the loaded level is
// kept.
func ReloadLevel(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.FS == nil {
		return
	}
	name := levelData.CurrentLevel.Name
	level, err := leveldata.LoadLevel(levelData.FS, path.Join(levelData.Dir, name+".tmx"))
	if err != nil {
		logger.Warn("level reload failed", zap.String("level", name), zap.Error(err))
		return
	}
	levelData.Levels[name] = level

	if renderEntry, ok := components.Render.First(e.World); ok {
		components.Render.Get(renderEntry).Renderer.Invalidate(level.Region.ID)
	}
	EnterLevel(e, levelData.LevelIndex)
}

// populate replaces the per-level entities with those of level.
func populate(e *ecs.ECS, level *leveldata.Level) {
	clearLevelEntities(e)

	factory.CreateSpace(e, level.Width, level.Height)
	for p := range level.Region.Walls {
		factory.CreateWall(e, p)
	}
	for _, c := range level.Characters {
		factory.CreateCharacter(e, c)
	}

	start := level.Start()
	factory.CreateCamera(e, start.Position, start.Facing)

	if renderEntry, ok := components.Render.First(e.World); ok {
		r := components.Render.Get(renderEntry).Renderer
		r.Build(context.Background(), level.Tileset, level.Region)
		r.SetFacing(start.Facing)
	}
}

func clearLevelEntities(e *ecs.ECS) {
	var stale []donburi.Entity
	collect := func(entry *donburi.Entry) { stale = append(stale, entry.Entity()) }
	tags.Wall.Each(e.World, collect)
	tags.Character.Each(e.World, collect)
	tags.Camera.Each(e.World, collect)
	components.Space.Each(e.World, collect)

	for _, entity := range stale {
		e.World.Remove(entity)
	}
}
