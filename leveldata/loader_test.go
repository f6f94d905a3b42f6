package leveldata

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/tilecaster/raycast"
)

const dungeonTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="3">
 <tileset firstgid="1" name="dungeon" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="dungeon.png" width="32" height="32"/>
  <tile id="1">
   <properties>
    <property name="render" value="Sprite"/>
    <property name="shrink" value="2"/>
   </properties>
  </tile>
  <tile id="2">
   <animation>
    <frame tileid="2" duration="200"/>
    <frame tileid="3" duration="200"/>
   </animation>
  </tile>
 </tileset>
 <layer id="1" name="floor" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,1,1,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="walls" width="4" height="3">
  <data encoding="csv">
4,4,4,4,
4,0,2,4,
4,3,4,4
</data>
 </layer>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="1" x="16" y="16">
   <properties>
    <property name="facing" value="east"/>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Characters">
  <object id="2" name="ghost" gid="2" x="32" y="48" width="16" height="16">
   <properties>
    <property name="patrolX" type="float" value="1.5"/>
    <property name="speed" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func dungeonPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 0x40, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func dungeonFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"levels/dungeon.tmx": {Data: []byte(dungeonTMX)},
		"levels/dungeon.png": {Data: dungeonPNG(t)},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(dungeonFS(t), "levels/dungeon.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "dungeon" || level.Region.ID != "dungeon" {
		t.Errorf("name = %q, region = %q, want dungeon", level.Name, level.Region.ID)
	}
	if level.Width != 4 || level.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", level.Width, level.Height)
	}
	if got := len(level.Region.Floor); got != 12 {
		t.Errorf("floor cells = %d, want 12", got)
	}
	if got := len(level.Region.Walls); got != 11 {
		t.Errorf("wall cells = %d, want 11", got)
	}
	if _, ok := level.Region.Walls[image.Pt(1, 1)]; ok {
		t.Errorf("gid 0 produced a wall at (1,1)")
	}
	if level.Region.Ceiling != nil {
		t.Errorf("ceiling layer = %v, want nil without a ceiling layer", level.Region.Ceiling)
	}

	tests := []struct {
		at   image.Point
		want raycast.TileRef
	}{
		{image.Pt(0, 0), raycast.TileRef{Tilemap: "dungeon", X: 1, Y: 1}},
		{image.Pt(2, 1), raycast.TileRef{Tilemap: "dungeon", X: 1, Y: 0}},
		{image.Pt(1, 2), raycast.TileRef{Tilemap: "dungeon", X: 0, Y: 1}},
	}
	for _, tt := range tests {
		if got := level.Region.Walls[tt.at]; got != tt.want {
			t.Errorf("wall at %v = %+v, want %+v", tt.at, got, tt.want)
		}
	}
	if got := level.Region.Floor[image.Pt(3, 2)]; got != (raycast.TileRef{Tilemap: "dungeon"}) {
		t.Errorf("floor at (3,2) = %+v, want dungeon (0,0)", got)
	}
}

func TestLoadLevelTileset(t *testing.T) {
	level, err := LoadLevel(dungeonFS(t), "levels/dungeon.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	ts := level.Tileset

	if ids := ts.Tilemaps(); len(ids) != 1 || ids[0] != "dungeon" {
		t.Fatalf("tilemaps = %v, want [dungeon]", ids)
	}
	tm, ok := ts.Tilemap("dungeon")
	if !ok {
		t.Fatalf("tilemap dungeon missing")
	}
	if tm.Width != 32 || tm.Height != 32 || tm.GridSize != 16 || len(tm.Pix) != 32*32*4 {
		t.Errorf("tilemap = %dx%d grid %d pix %d", tm.Width, tm.Height, tm.GridSize, len(tm.Pix))
	}
	// Pixel (3,5) encodes x*8, y*8.
	off := (5*32 + 3) * 4
	if tm.Pix[off] != 24 || tm.Pix[off+1] != 40 || tm.Pix[off+3] != 0xff {
		t.Errorf("pixel (3,5) = %v", tm.Pix[off:off+4])
	}

	sprite, ok := ts.Tile(raycast.TileRef{Tilemap: "dungeon", X: 1, Y: 0})
	if !ok {
		t.Fatalf("descriptor for tile 1 missing")
	}
	hints := raycast.ResolveHints(sprite.Properties)
	if hints.Class != raycast.ClassSprite || hints.Shrink != 2 {
		t.Errorf("tile 1 hints = %+v, want sprite shrink 2", hints)
	}

	anim, ok := ts.Tile(raycast.TileRef{Tilemap: "dungeon", X: 0, Y: 1})
	if !ok {
		t.Fatalf("descriptor for tile 2 missing")
	}
	if anim.Frames() != 2 {
		t.Errorf("tile 2 frames = %d, want 2", anim.Frames())
	}

	if _, ok := ts.Tile(raycast.TileRef{Tilemap: "dungeon", X: 1, Y: 1}); ok {
		t.Errorf("tile 3 has no properties but got a descriptor")
	}
}

func TestLoadLevelSpawns(t *testing.T) {
	level, err := LoadLevel(dungeonFS(t), "levels/dungeon.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	start := level.Start()
	if start.Position.X != 1 || start.Position.Y != 1 || start.Facing != raycast.East {
		t.Errorf("start = %+v, want (1,1) facing east", start)
	}

	if len(level.Characters) != 1 {
		t.Fatalf("characters = %d, want 1", len(level.Characters))
	}
	c := level.Characters[0]
	if c.Name != "ghost" || c.Position.X != 2 || c.Position.Y != 2 {
		t.Errorf("character = %+v, want ghost at (2,2)", c)
	}
	if c.Tile != (raycast.TileRef{Tilemap: "dungeon", X: 1, Y: 0}) {
		t.Errorf("character tile = %+v", c.Tile)
	}
	if c.PatrolX != 1.5 || c.Speed != 2 {
		t.Errorf("patrol = %v speed = %v, want 1.5, 2", c.PatrolX, c.Speed)
	}

	ents := level.Entities()
	if len(ents) != 1 || ents[0].Tile != c.Tile || ents[0].Position != c.Position {
		t.Errorf("entities = %+v", ents)
	}
}

func TestLevelStartFallsBackToFloor(t *testing.T) {
	level := &Level{Region: &raycast.Region{
		Floor: map[image.Point]raycast.TileRef{
			image.Pt(0, 0): {}, image.Pt(1, 0): {}, image.Pt(0, 1): {},
		},
		Walls: map[image.Point]raycast.TileRef{image.Pt(0, 0): {}},
	}}
	start := level.Start()
	if start.Position.X != 1 || start.Position.Y != 0 {
		t.Errorf("start = %+v, want first open floor (1,0)", start.Position)
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := dungeonFS(t)
	fsys["levels/crypt.tmx"] = &fstest.MapFile{Data: []byte(dungeonTMX)}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "crypt" || names[1] != "dungeon" {
		t.Errorf("names = %v, want [crypt dungeon]", names)
	}
	if levels["crypt"].Region.ID != "crypt" {
		t.Errorf("crypt region id = %q", levels["crypt"].Region.ID)
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Errorf("expected error for a directory without levels")
	}
}

func TestLoadLevelMissingImage(t *testing.T) {
	fsys := fstest.MapFS{"levels/dungeon.tmx": {Data: []byte(dungeonTMX)}}
	if _, err := LoadLevel(fsys, "levels/dungeon.tmx"); err == nil {
		t.Fatalf("expected error when the tileset image is missing")
	}
}
