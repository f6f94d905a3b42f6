package raycast

import (
	"strconv"
	"strings"
)

// HintSchemaVersion is bumped whenever a hint key is added or its meaning
// changes.
const HintSchemaVersion = 1

// Properties is the raw custom property map of a tile.
type Properties map[string]string

// HintKey enumerates the tile properties the renderer understands.
type HintKey int

const (
	HintRender HintKey = iota
	HintShrink
	HintVerticalOffset
)

var hintNames = [...]string{
	HintRender:         "render",
	HintShrink:         "shrink",
	HintVerticalOffset: "voffset",
}

// hintAliases are older property names still accepted on read.
var hintAliases = map[HintKey][]string{
	HintRender: {"classification"},
}

// Name returns the property name of the key.
func (k HintKey) Name() string {
	if k < 0 || int(k) >= len(hintNames) {
		return ""
	}
	return hintNames[k]
}

// Classification says how the wall layer treats a tile.
type Classification int

const (
	ClassWall Classification = iota
	ClassSprite
)

func (c Classification) String() string {
	if c == ClassSprite {
		return "sprite"
	}
	return "wall"
}

// TileHints are the render hints extracted from tile properties.
type TileHints struct {
	Class          Classification
	Shrink         int
	VerticalOffset float64
}

// DefaultHints apply to tiles without any recognised property.
var DefaultHints = TileHints{
	Class:          ClassWall,
	Shrink:         1,
	VerticalOffset: 0,
}

// ResolveHints reads the render hints out of props. Missing or malformed
// values keep their defaults.
func ResolveHints(props Properties) TileHints {
	hints := DefaultHints
	if props == nil {
		return hints
	}

	if v, ok := props.lookup(HintRender); ok && strings.EqualFold(strings.TrimSpace(v), "sprite") {
		hints.Class = ClassSprite
	}
	if v, ok := props.lookup(HintShrink); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			hints.Shrink = n
		}
	}
	if v, ok := props.lookup(HintVerticalOffset); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			hints.VerticalOffset = float64(n)
		}
	}
	return hints
}

func (p Properties) lookup(k HintKey) (string, bool) {
	if v, ok := p[k.Name()]; ok {
		return v, true
	}
	for _, alias := range hintAliases[k] {
		if v, ok := p[alias]; ok {
			return v, true
		}
	}
	return "", false
}
