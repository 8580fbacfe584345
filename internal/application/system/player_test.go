package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arena/internal/domain/entity"
)

func TestPlayer_Move(t *testing.T) {
	tests := []struct {
		name  string
		input PlayerInput
		want  entity.Vec2
	}{
		{"right", PlayerInput{MoveX: 1}, entity.Vec2{X: 5}},
		{"up", PlayerInput{MoveY: -1}, entity.Vec2{Y: -5}},
		{"idle", PlayerInput{}, entity.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestCombat(t)
			player := s.Player().Agent()

			s.Update(tt.input, tick)

			assert.Equal(t, tt.want, player.Body.Velocity())
			assert.InDelta(t, 10+tt.want.X*tick, player.Position().X, 1e-9)
			assert.InDelta(t, 10+tt.want.Y*tick, player.Position().Y, 1e-9)
		})
	}
}

func TestPlayer_DiagonalIsNormalized(t *testing.T) {
	s, _ := createTestCombat(t)

	s.Update(PlayerInput{MoveX: 1, MoveY: 1}, tick)

	assert.InDelta(t, 5.0, s.Player().Agent().Body.Velocity().Len(), 1e-9)
}

func TestPlayer_FacingFollowsInput(t *testing.T) {
	s, log := createTestCombat(t)
	player := s.Player().Agent()

	s.Update(PlayerInput{MoveX: -1}, tick)
	assert.False(t, player.FacingRight)

	// Vertical movement keeps the facing
	s.Update(PlayerInput{MoveY: 1}, tick)
	assert.False(t, player.FacingRight)

	assert.Contains(t, log.Intents, Intent(FacingIntent{EntityID: player.ID, Right: false}))
}

func TestPlayer_Dash(t *testing.T) {
	s, log := createTestCombat(t)
	pc := s.Player()
	player := pc.Agent()

	s.Update(PlayerInput{Dash: true}, tick)

	require.True(t, pc.Dashing())
	assert.Equal(t, entity.Vec2{X: 15}, player.Body.Velocity(), "idle dash goes along the facing")
	assert.Equal(t, 80.0, pc.Stamina().Current)
	assert.Contains(t, log.Triggers(player.ID), TriggerDash)

	run(s, PlayerInput{}, 0.25)
	assert.False(t, pc.Dashing())
	assert.Equal(t, entity.Vec2{}, player.Body.Velocity())

	// Cooldown blocks a second dash
	s.Update(PlayerInput{Dash: true}, tick)
	assert.False(t, pc.Dashing())

	run(s, PlayerInput{}, 1)
	s.Update(PlayerInput{Dash: true, MoveY: -1}, tick)
	assert.True(t, pc.Dashing())
	assert.InDelta(t, -15.0, player.Body.Velocity().Y, 1e-9)
}

func TestPlayer_DashNeedsStamina(t *testing.T) {
	s, _ := createTestCombat(t)
	pc := s.Player()
	pc.Stamina().Current = 10

	s.Update(PlayerInput{Dash: true}, tick)

	assert.False(t, pc.Dashing())
}

func TestPlayer_StaminaRegenPausedWhileDashing(t *testing.T) {
	s, _ := createTestCombat(t)
	pc := s.Player()

	s.Update(PlayerInput{Dash: true}, tick)
	run(s, PlayerInput{}, 0.1)
	assert.Equal(t, 80.0, pc.Stamina().Current)

	run(s, PlayerInput{}, 1.2)
	assert.Greater(t, pc.Stamina().Current, 80.0)
}

func TestPlayer_KnockbackOwnsVelocity(t *testing.T) {
	s, _ := createTestCombat(t)
	pc := s.Player()
	player := pc.Agent()

	require.True(t, player.Knockback.Request(entity.Vec2{X: -1}, 10))
	s.Update(PlayerInput{MoveX: 1, Dash: true}, tick)

	assert.Equal(t, entity.Vec2{X: -10}, player.Body.Velocity())
	assert.False(t, pc.Dashing(), "no dash during knockback")
	assert.Equal(t, 100.0, pc.Stamina().Current)

	// Control returns once the knockback expires
	run(s, PlayerInput{MoveX: 1}, 0.6)
	assert.Equal(t, entity.Vec2{X: 5}, player.Body.Velocity())
}

func TestPlayer_DashEndingDuringKnockbackKeepsVelocity(t *testing.T) {
	s, _ := createTestCombat(t)
	pc := s.Player()
	player := pc.Agent()

	s.Update(PlayerInput{Dash: true}, tick)
	require.True(t, player.Knockback.Request(entity.Vec2{X: -1}, 10))
	assert.Equal(t, entity.Vec2{X: 5}, player.Body.Velocity())

	run(s, PlayerInput{}, 0.3)
	require.False(t, pc.Dashing())
	require.True(t, player.Knockback.Active())
	assert.Equal(t, entity.Vec2{X: 5}, player.Body.Velocity())
}

func TestPlayer_Fire(t *testing.T) {
	s, log := createTestCombat(t)
	pc := s.Player()
	player := pc.Agent()
	dummy := spawnDummy(t, s, entity.Vec2{X: 15, Y: 10})

	s.Update(PlayerInput{Fire: true}, tick)

	ids := s.World().ProjectileIDs()
	require.Len(t, ids, 1)
	p := s.World().Projectiles[ids[0]]
	assert.Equal(t, "orb", p.Spec.Name)
	assert.Equal(t, entity.FactionPlayer, p.Owner)
	assert.Equal(t, dummy.ID, p.Target)
	assert.Equal(t, 80.0, pc.Stamina().Current)
	assert.Contains(t, log.Triggers(player.ID), TriggerProjectile)

	// Cooldown blocks the next shot
	s.Update(PlayerInput{Fire: true}, tick)
	assert.Len(t, s.World().Projectiles, 1)

	run(s, PlayerInput{}, 0.3)
	s.Update(PlayerInput{Fire: true}, tick)
	assert.Len(t, s.World().ProjectileIDs(), 2)
}

func TestPlayer_FireNeedsStamina(t *testing.T) {
	s, _ := createTestCombat(t)
	s.Player().Stamina().Current = 10

	s.Update(PlayerInput{Fire: true}, tick)

	assert.Empty(t, s.World().Projectiles)
}

func TestPlayer_DeadIgnoresInput(t *testing.T) {
	s, _ := createTestCombat(t)
	pc := s.Player()
	player := pc.Agent()
	s.Damage(player.ID, 100, player.Position())

	pc.Update(PlayerInput{MoveX: 1, Fire: true, Dash: true, Attack: true}, tick)

	assert.Equal(t, entity.Vec2{}, player.Body.Velocity())
	assert.Empty(t, s.World().Projectiles)
	assert.False(t, pc.Dashing())
	assert.Equal(t, 0, pc.Combo().Step())
}
