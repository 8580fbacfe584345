package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arena/internal/domain/entity"
)

func TestProjectile_HitsHostile(t *testing.T) {
	s, log := createTestCombat(t)
	player := s.Player().Agent()

	id := s.Launch("bolt", entity.FactionEnemy, entity.Vec2{X: 7, Y: 10}, entity.Vec2{X: 6})
	require.NotZero(t, id)

	run(s, PlayerInput{}, 0.5)

	assert.Equal(t, 90, player.Health.Current())
	assert.False(t, s.World().Exists(id))

	effects := log.Effects()
	require.Len(t, effects, 1)
	assert.Equal(t, "hit_spark", effects[0].Effect)
	assert.Equal(t, 2.0, effects[0].TTL)
	assert.InDelta(t, 10, effects[0].Position.Y, 1e-9)
}

func TestProjectile_KnockbackImmediateDamageDelayed(t *testing.T) {
	cfg := createTestGameConfig()
	bolt := cfg.Arena.Projectiles["bolt"]
	bolt.HitDelay = 0.5
	cfg.Arena.Projectiles["bolt"] = bolt

	s := NewCombatSystem(cfg, nil, nil, testRNG())
	player := s.SpawnPlayer().Agent()

	id := s.Launch("bolt", entity.FactionEnemy, entity.Vec2{X: 8, Y: 10}, entity.Vec2{X: 6})
	run(s, PlayerInput{}, 0.25)

	assert.False(t, s.World().Exists(id), "projectile is spent on contact")
	assert.True(t, player.Knockback.Active())
	assert.Greater(t, player.Body.Velocity().X, 0.0, "pushed along the flight direction")
	assert.Equal(t, 100, player.Health.Current())

	run(s, PlayerInput{}, 0.5)
	assert.Equal(t, 90, player.Health.Current())
}

func TestProjectile_PassesThroughOwnFaction(t *testing.T) {
	s, _ := createTestCombat(t)
	player := s.Player().Agent()
	dummy := spawnDummy(t, s, entity.Vec2{X: 8, Y: 10})

	s.Launch("bolt", entity.FactionEnemy, entity.Vec2{X: 5, Y: 10}, entity.Vec2{X: 6})
	run(s, PlayerInput{}, 1)

	assert.Equal(t, 50, dummy.Health.Current())
	assert.Equal(t, 90, player.Health.Current())
}

func TestProjectile_HitsOnlyFirstTarget(t *testing.T) {
	s, _ := createTestCombat(t)
	a := spawnDummy(t, s, entity.Vec2{X: 14, Y: 10})
	b := spawnDummy(t, s, entity.Vec2{X: 14.2, Y: 10})

	s.Launch("bolt", entity.FactionPlayer, entity.Vec2{X: 12, Y: 10}, entity.Vec2{X: 6})
	run(s, PlayerInput{}, 1)

	assert.Equal(t, 40, a.Health.Current(), "nearest body takes the hit")
	assert.Equal(t, 50, b.Health.Current())
	assert.Empty(t, s.World().Projectiles)
}

func TestProjectile_Expires(t *testing.T) {
	s, _ := createTestCombat(t)

	id := s.Launch("bolt", entity.FactionEnemy, entity.Vec2{X: 2, Y: 2}, entity.Vec2{X: 6})
	run(s, PlayerInput{}, 4.9)
	assert.True(t, s.World().Exists(id))

	run(s, PlayerInput{}, 0.2)
	assert.False(t, s.World().Exists(id))
}

func TestProjectile_HomingSteersTowardTarget(t *testing.T) {
	s, _ := createTestCombat(t)
	dummy := spawnDummy(t, s, entity.Vec2{X: 13, Y: 13})

	id := s.Launch("orb", entity.FactionPlayer, entity.Vec2{X: 10, Y: 10}, entity.Vec2{X: 10})
	p := s.World().Projectiles[id]
	require.Equal(t, dummy.ID, p.Target)

	s.Update(PlayerInput{}, tick)

	// Homing flies at its configured speed toward the target
	assert.InDelta(t, 5.0, p.Velocity.Len(), 1e-9)
	assert.InDelta(t, p.Velocity.X, p.Velocity.Y, 1e-9)

	run(s, PlayerInput{}, 1)
	assert.Equal(t, 40, dummy.Health.Current())
}

func TestProjectile_HomingTargetDestroyedMidFlight(t *testing.T) {
	s, _ := createTestCombat(t)
	dummy := spawnDummy(t, s, entity.Vec2{X: 13, Y: 13})

	id := s.Launch("orb", entity.FactionPlayer, entity.Vec2{X: 10, Y: 10}, entity.Vec2{X: 10})
	p := s.World().Projectiles[id]
	s.Update(PlayerInput{}, tick)
	heading := p.Velocity

	s.Damage(dummy.ID, 50, entity.Vec2{})
	before := p.Position
	s.Update(PlayerInput{}, tick)

	assert.Equal(t, entity.EntityID(0), p.Target)
	assert.True(t, s.World().Exists(id))
	assert.Equal(t, heading, p.Velocity, "keeps its last heading")
	assert.InDelta(t, before.X+heading.X*tick, p.Position.X, 1e-9)
	assert.InDelta(t, before.Y+heading.Y*tick, p.Position.Y, 1e-9)
}

func TestProjectile_HomingWithoutTargetFliesStraight(t *testing.T) {
	s, _ := createTestCombat(t)

	id := s.Launch("orb", entity.FactionPlayer, entity.Vec2{X: 10, Y: 10}, entity.Vec2{X: 10})
	p := s.World().Projectiles[id]
	require.Equal(t, entity.EntityID(0), p.Target)

	s.Update(PlayerInput{}, tick)

	assert.Equal(t, entity.Vec2{X: 10}, p.Velocity)
	assert.InDelta(t, 10+10*tick, p.Position.X, 1e-9)
}
