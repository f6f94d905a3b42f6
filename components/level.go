package components

import (
	"io/fs"

	"github.com/automoto/tilecaster/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       map[string]*leveldata.Level
	Names        []string // sorted level names, indexed by LevelIndex
	FS           fs.FS
	Dir          string
}

var Level = donburi.NewComponentType[LevelData]()
