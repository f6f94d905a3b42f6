// Package assets embeds the sample levels shipped with the viewers.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory of the embedded levels inside FS.
const LevelsDir = "levels"

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// Open returns the filesystem to load levels from together with the levels
// directory inside it. A non-empty dir that exists on disk wins over the
// embedded levels, so maps can be edited without rebuilding.
func Open(dir string) (fs.FS, string) {
	if dir != "" && dir != LevelsDir {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir), "."
		}
	}
	return assetFS, LevelsDir
}
