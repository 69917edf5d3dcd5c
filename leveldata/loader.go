package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader understands.
const (
	platformLayer     = "platforms"
	movingPlatformsOG = "MovingPlatforms"
	playerSpawnsOG    = "PlayerSpawn"
	enemySpawnsOG     = "EnemySpawn"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. TMX uses Y-down, top-left anchored rectangles; the
// loader flips them into the simulation's Y-up, center-anchored world space.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapH := float64(levelMap.Height * levelMap.TileHeight)
	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: mapH,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != platformLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				lvl.Platforms = append(lvl.Platforms, PlatformRect{
					X:     float64(x)*tileW + tileW/2,
					Y:     mapH - (float64(y)*tileH + tileH/2),
					HalfW: tileW / 2,
					HalfH: tileH / 2,
					Name:  fmt.Sprintf("tile-%d-%d", x, y),
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case movingPlatformsOG:
			for _, o := range og.Objects {
				def, err := parseMovingPlatform(o, mapH)
				if err != nil {
					return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
				}
				lvl.MovingPlatforms = append(lvl.MovingPlatforms, def)
			}
		case playerSpawnsOG:
			for _, o := range og.Objects {
				lvl.PlayerSpawns = append(lvl.PlayerSpawns, SpawnPoint{X: o.X, Y: mapH - o.Y})
			}
		case enemySpawnsOG:
			for _, o := range og.Objects {
				lvl.EnemySpawns = append(lvl.EnemySpawns, SpawnPoint{X: o.X, Y: mapH - o.Y})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment.
	sort.Slice(lvl.PlayerSpawns, func(i, j int) bool {
		return lvl.PlayerSpawns[i].X < lvl.PlayerSpawns[j].X
	})

	return lvl, nil
}

func parseMovingPlatform(o *tiled.Object, mapH float64) (MovingPlatformDef, error) {
	def := MovingPlatformDef{
		PlatformRect: PlatformRect{
			X:     o.X + o.Width/2,
			Y:     mapH - (o.Y + o.Height/2),
			HalfW: o.Width / 2,
			HalfH: o.Height / 2,
			Name:  o.Name,
		},
		DirX:     1,
		Distance: 64,
		Duration: 120,
	}

	switch o.Properties.GetString("axis") {
	case "", "x":
		def.DirX, def.DirY = 1, 0
	case "y":
		def.DirX, def.DirY = 0, 1
	default:
		return def, fmt.Errorf("moving platform %q: unknown axis %q", o.Name, o.Properties.GetString("axis"))
	}

	if s := o.Properties.GetString("distance"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def, fmt.Errorf("moving platform %q: bad distance %q: %w", o.Name, s, err)
		}
		def.Distance = v
	}
	if s := o.Properties.GetString("duration"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def, fmt.Errorf("moving platform %q: bad duration %q: %w", o.Name, s, err)
		}
		def.Duration = v
	}
	def.Sticky = o.Properties.GetBool("sticky")

	return def, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads each,
// returning a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
