package config

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names read from arena maps
const (
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
	groupBossSpawn   = "BossSpawn"
)

// ArenaMap is the playfield read from a Tiled map, in pixels
type ArenaMap struct {
	Name        string
	Width       int
	Height      int
	TileSize    int
	PlayerSpawn SpawnConfig
	BossSpawns  []SpawnConfig
	EnemySpawns []SpawnConfig
}

// SpawnConfig is one spawn object of an arena map
type SpawnConfig struct {
	Name  string
	X, Y  float64
	Index int
	Kind  string // BossSpawn only
}

// LoadArenaMap parses a TMX file into an ArenaMap. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadArenaMap(fsys fs.FS, tmxPath string) (*ArenaMap, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load arena map %s: %w", tmxPath, err)
	}

	arena := &ArenaMap{
		Width:    m.Width * m.TileWidth,
		Height:   m.Height * m.TileHeight,
		TileSize: m.TileWidth,
	}

	hasPlayer := false
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			sp := SpawnConfig{
				Name:  o.Name,
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			}
			switch og.Name {
			case groupPlayerSpawn:
				if !hasPlayer {
					arena.PlayerSpawn = sp
					hasPlayer = true
				}
			case groupEnemySpawn:
				arena.EnemySpawns = append(arena.EnemySpawns, sp)
			case groupBossSpawn:
				sp.Kind = o.Properties.GetString("kind")
				if sp.Kind == "" {
					sp.Kind = "boss"
				}
				arena.BossSpawns = append(arena.BossSpawns, sp)
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("arena map %s: no %s object", tmxPath, groupPlayerSpawn)
	}
	if len(arena.EnemySpawns) == 0 {
		return nil, fmt.Errorf("arena map %s: no %s objects", tmxPath, groupEnemySpawn)
	}

	// Stable order for seeded spawn selection
	sort.SliceStable(arena.EnemySpawns, func(i, j int) bool {
		return arena.EnemySpawns[i].Index < arena.EnemySpawns[j].Index
	})

	return arena, nil
}
