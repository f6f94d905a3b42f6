package leveldata

import (
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tilecaster/raycast"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// LoadLevel parses a TMX file and returns its region, tileset and spawns.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileset, err := loadTileset(fsys, path.Dir(tmxPath), levelMap)
	if err != nil {
		return nil, fmt.Errorf("load tilesets of %s: %w", tmxPath, err)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	level := &Level{
		Name: name,
		Region: &raycast.Region{
			ID:    raycast.RegionID(name),
			Floor: make(map[image.Point]raycast.TileRef),
			Walls: make(map[image.Point]raycast.TileRef),
		},
		Tileset: tileset,
		Width:   levelMap.Width,
		Height:  levelMap.Height,
	}

	for _, layer := range levelMap.Layers {
		var dst map[image.Point]raycast.TileRef
		switch layer.Name {
		case FloorLayer:
			dst = level.Region.Floor
		case WallLayer:
			dst = level.Region.Walls
		case CeilingLayer:
			if level.Region.Ceiling == nil {
				level.Region.Ceiling = make(map[image.Point]raycast.TileRef)
			}
			dst = level.Region.Ceiling
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				if ref, ok := tileset.ref(layer.Tiles[i]); ok {
					dst[image.Pt(x, y)] = ref
				}
			}
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				facing, _ := raycast.ParseFacing(o.Properties.GetString("facing"))
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					Position: math.Vec2{X: o.X / tileW, Y: o.Y / tileH},
					Facing:   facing,
					Index:    o.Properties.GetInt("spawnIndex"),
				})
			}
		case CharacterGroup:
			for _, o := range og.Objects {
				if o.GID == 0 {
					continue
				}
				lt, err := levelMap.TileGIDToTile(o.GID)
				if err != nil {
					continue
				}
				ref, ok := tileset.ref(lt)
				if !ok {
					continue
				}
				// Tile objects are anchored at their bottom-left corner.
				h := o.Height
				if h == 0 {
					h = tileH
				}
				level.Characters = append(level.Characters, CharacterSpawn{
					Name:     o.Name,
					Position: math.Vec2{X: o.X / tileW, Y: (o.Y - h) / tileH},
					Tile:     ref,
					PatrolX:  o.Properties.GetFloat("patrolX"),
					PatrolY:  o.Properties.GetFloat("patrolY"),
					Speed:    o.Properties.GetFloat("speed"),
				})
			}
		}
	}

	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func sortedPoints(layer map[image.Point]raycast.TileRef) []image.Point {
	points := make([]image.Point, 0, len(layer))
	for p := range layer {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
