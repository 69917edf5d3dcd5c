package leveldata

import (
	"math"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="platforms" width="4" height="4">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="MovingPlatforms">
  <object id="1" name="lift" x="16" y="16" width="32" height="8">
   <properties>
    <property name="axis" value="y"/>
    <property name="distance" value="32"/>
    <property name="duration" value="60"/>
    <property name="sticky" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="2" name="spawn-b" x="40" y="16"/>
  <object id="3" name="spawn-a" x="8" y="16"/>
 </objectgroup>
 <objectgroup id="4" name="EnemySpawn">
  <object id="4" name="enemy" x="24" y="16"/>
 </objectgroup>
</map>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadPlatformTiles(t *testing.T) {
	lvl, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if lvl.Name != "test" {
		t.Errorf("Name = %q, want \"test\"", lvl.Name)
	}
	if lvl.Width != 64 || lvl.Height != 64 {
		t.Errorf("bounds = %vx%v, want 64x64", lvl.Width, lvl.Height)
	}
	if len(lvl.Platforms) != 4 {
		t.Fatalf("platform count = %d, want 4", len(lvl.Platforms))
	}

	// Bottom tile row, flipped into Y-up center coordinates: centers at Y=8.
	first := lvl.Platforms[0]
	if first.X != 8 || first.Y != 8 || first.HalfW != 8 || first.HalfH != 8 {
		t.Errorf("first tile = %+v, want center (8, 8) half (8, 8)", first)
	}
}

func TestLoadMovingPlatform(t *testing.T) {
	lvl, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvl.MovingPlatforms) != 1 {
		t.Fatalf("moving platform count = %d, want 1", len(lvl.MovingPlatforms))
	}

	mp := lvl.MovingPlatforms[0]
	if mp.Name != "lift" {
		t.Errorf("name = %q", mp.Name)
	}
	// TMX rect (16, 16) 32x8, flipped: center (32, 64-20) = (32, 44).
	if mp.X != 32 || mp.Y != 44 || mp.HalfW != 16 || mp.HalfH != 4 {
		t.Errorf("rect = %+v, want center (32, 44) half (16, 4)", mp.PlatformRect)
	}
	if mp.DirX != 0 || mp.DirY != 1 {
		t.Errorf("dir = (%v, %v), want (0, 1)", mp.DirX, mp.DirY)
	}
	if mp.Distance != 32 || mp.Duration != 60 {
		t.Errorf("travel = %v over %v, want 32 over 60", mp.Distance, mp.Duration)
	}
	if !mp.Sticky {
		t.Error("sticky flag not parsed")
	}
}

func TestLoadSpawnsSortedLeftToRight(t *testing.T) {
	lvl, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(lvl.PlayerSpawns) != 2 {
		t.Fatalf("player spawn count = %d, want 2", len(lvl.PlayerSpawns))
	}
	if lvl.PlayerSpawns[0].X > lvl.PlayerSpawns[1].X {
		t.Error("player spawns should be sorted by X")
	}
	if got := lvl.PlayerSpawns[0]; got.X != 8 || math.Abs(got.Y-48) > 1e-9 {
		t.Errorf("first spawn = %+v, want (8, 48)", got)
	}

	if len(lvl.EnemySpawns) != 1 {
		t.Fatalf("enemy spawn count = %d, want 1", len(lvl.EnemySpawns))
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 1 || names[0] != "test" {
		t.Errorf("names = %v, want [test]", names)
	}
	if levels["test"] == nil {
		t.Error("level map missing \"test\"")
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("LoadAll on an empty dir should fail")
	}
}

func TestBadMovingPlatformAxis(t *testing.T) {
	bad := fstest.MapFS{
		"bad.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="MovingPlatforms">
  <object id="1" name="lift" x="0" y="0" width="16" height="8">
   <properties>
    <property name="axis" value="diagonal"/>
   </properties>
  </object>
 </objectgroup>
</map>`)},
	}
	if _, err := Load(bad, "bad.tmx"); err == nil {
		t.Error("unknown axis should fail the load")
	}
}
