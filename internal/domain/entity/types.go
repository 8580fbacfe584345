package entity

// EntityID is a unique identifier for an entity. 0 means "none".
type EntityID uint32

// Faction tags an agent for targeting and collision filtering
type Faction int

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionEnemy
	FactionBoss
)

// String returns the tag name of the faction
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	case FactionBoss:
		return "boss"
	default:
		return "none"
	}
}

// Hostile returns the factions this faction attacks
func (f Faction) Hostile() []Faction {
	switch f {
	case FactionPlayer:
		return []Faction{FactionEnemy, FactionBoss}
	case FactionEnemy, FactionBoss:
		return []Faction{FactionPlayer}
	default:
		return nil
	}
}

// SpawnPoint is a named position in the arena
type SpawnPoint struct {
	Name string
	Pos  Vec2
	Kind string // agent kind placed here at match start, if any
}

// Arena represents the playfield bounds and its spawn points
type Arena struct {
	Width       float64
	Height      float64
	PlayerSpawn Vec2
	BossSpawns  []SpawnPoint
	EnemySpawns []SpawnPoint
}

// EnemySpawn finds an enemy spawn point by name
func (a *Arena) EnemySpawn(name string) (SpawnPoint, bool) {
	for _, sp := range a.EnemySpawns {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}

// Contains reports whether p lies inside the arena bounds
func (a *Arena) Contains(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= a.Width && p.Y <= a.Height
}

// Clamp returns p moved inside the arena bounds
func (a *Arena) Clamp(p Vec2) Vec2 {
	return Vec2{X: clampf(p.X, 0, a.Width), Y: clampf(p.Y, 0, a.Height)}
}

func clampf(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
