package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Arena *ArenaConfig
	Map   *ArenaMap
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadArenaConfig loads and validates arena.yaml
func (l *Loader) LoadArenaConfig() (*ArenaConfig, error) {
	data, err := fs.ReadFile(l.fsys, "arena.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read arena.yaml: %w", err)
	}

	var cfg ArenaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadArenaMap loads arenas/<name>.tmx
func (l *Loader) LoadArenaMap(name string) (*ArenaMap, error) {
	m, err := LoadArenaMap(l.fsys, "arenas/"+name+".tmx")
	if err != nil {
		return nil, err
	}
	m.Name = name
	return m, nil
}

// LoadAll loads arena.yaml and the named arena map, and checks that
// threshold spawn locations exist on the map.
func (l *Loader) LoadAll(arenaName string) (*GameConfig, error) {
	arena, err := l.LoadArenaConfig()
	if err != nil {
		return nil, err
	}

	m, err := l.LoadArenaMap(arenaName)
	if err != nil {
		return nil, err
	}

	for _, name := range sortedNames(arena.Agents) {
		for _, th := range arena.Agents[name].Thresholds {
			if th.At == "" {
				continue
			}
			if _, ok := m.EnemySpawn(th.At); !ok {
				return nil, fmt.Errorf("agent %s: threshold spawn point %q not on arena %s", name, th.At, arenaName)
			}
		}
	}

	return &GameConfig{
		Arena: arena,
		Map:   m,
	}, nil
}

// EnemySpawn finds an enemy spawn point by name
func (m *ArenaMap) EnemySpawn(name string) (SpawnConfig, bool) {
	for _, sp := range m.EnemySpawns {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpawnConfig{}, false
}
