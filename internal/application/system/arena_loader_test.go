package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

func createTestArenaMap() *config.ArenaMap {
	return &config.ArenaMap{
		Name:        "test",
		Width:       640,
		Height:      320,
		TileSize:    16,
		PlayerSpawn: config.SpawnConfig{Name: "PlayerSpawn", X: 160, Y: 160},
		BossSpawns:  []config.SpawnConfig{{Name: "BossSpawn", X: 320, Y: 32, Kind: "boss"}},
		EnemySpawns: []config.SpawnConfig{
			{Name: "west", X: 16, Y: 160},
			{Name: "east", X: 624, Y: 160, Index: 1},
		},
	}
}

func TestLoadArena(t *testing.T) {
	arena := LoadArena(createTestArenaMap())

	assert.Equal(t, 40.0, arena.Width)
	assert.Equal(t, 20.0, arena.Height)
	assert.Equal(t, entity.Vec2{X: 10, Y: 10}, arena.PlayerSpawn)
	require.Len(t, arena.BossSpawns, 1)
	assert.Equal(t, entity.SpawnPoint{Name: "BossSpawn", Pos: entity.Vec2{X: 20, Y: 2}, Kind: "boss"}, arena.BossSpawns[0])
	require.Len(t, arena.EnemySpawns, 2)
	assert.Equal(t, entity.Vec2{X: 39, Y: 10}, arena.EnemySpawns[1].Pos)
}

func TestLoadArena_ZeroTileSize(t *testing.T) {
	m := createTestArenaMap()
	m.TileSize = 0

	arena := LoadArena(m)

	assert.Equal(t, 640.0, arena.Width, "pixels are used as-is")
}

func TestLoadProjectileSpecs(t *testing.T) {
	cfg := &config.ArenaConfig{
		Projectiles: map[string]config.ProjectileConfig{
			"orb": {Speed: 5, Damage: 10, KnockbackForce: 5, Lifetime: 3, Radius: 0.3, Homing: true, TrackingRange: 10},
		},
	}

	specs := LoadProjectileSpecs(cfg)

	require.Contains(t, specs, "orb")
	assert.Equal(t, &entity.ProjectileSpec{
		Name:           "orb",
		Speed:          5,
		Damage:         10,
		KnockbackForce: 5,
		Lifetime:       3,
		Radius:         0.3,
		Homing:         true,
		TrackingRange:  10,
	}, specs["orb"])
}

func TestLoadPolicies(t *testing.T) {
	arena := LoadArena(createTestArenaMap())
	cfg := &config.ArenaConfig{
		Agents: map[string]config.AgentConfig{
			"archer": {Faction: "enemy", Variant: "ranged", MaxHealth: 30, Projectile: "bolt", RemovalDelay: 4},
			"boss": {
				Faction:   "boss",
				Variant:   "boss",
				MaxHealth: 300,
				Knockback: config.KnockbackConfig{Force: 2, Duration: 0.1},
				Thresholds: []config.ThresholdConfig{
					{Fraction: 0.5, Payload: "archer", At: "east"},
					{Fraction: 0.25, Payload: "archer"},
					{Fraction: 0.1, Payload: "archer", At: "nowhere"},
				},
			},
		},
	}

	policies := LoadPolicies(cfg, arena)

	archer := policies["archer"]
	require.NotNil(t, archer)
	assert.Equal(t, entity.FactionEnemy, archer.Faction)
	assert.Equal(t, entity.VariantRanged, archer.Variant)
	assert.Equal(t, 4.0, archer.RemovalDelay)

	boss := policies["boss"]
	require.NotNil(t, boss)
	assert.Equal(t, entity.FactionBoss, boss.Faction)
	assert.Equal(t, 2.0, boss.KnockbackForce)
	assert.Equal(t, 0.1, boss.KnockbackDuration)
	require.Len(t, boss.Thresholds, 3)
	require.NotNil(t, boss.Thresholds[0].At)
	assert.Equal(t, entity.Vec2{X: 39, Y: 10}, *boss.Thresholds[0].At)
	assert.Nil(t, boss.Thresholds[1].At, "no point spawns at the boss")
	assert.Nil(t, boss.Thresholds[2].At, "unknown points fall back to the boss")
}

func TestParseFaction(t *testing.T) {
	tests := []struct {
		in   string
		want entity.Faction
	}{
		{"player", entity.FactionPlayer},
		{"enemy", entity.FactionEnemy},
		{"boss", entity.FactionBoss},
		{"", entity.FactionNone},
		{"neutral", entity.FactionNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFaction(tt.in))
		})
	}
}
