package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arena/internal/domain/entity"
)

const comboStep = 0.05

func spawnDummy(t *testing.T, s *CombatSystem, pos entity.Vec2) *entity.Agent {
	t.Helper()
	id := s.Spawn("dummy", pos)
	require.NotZero(t, id)
	a, _ := s.World().Agent(id)
	return a
}

func comboTick(s *CombatSystem, input PlayerInput, n int) {
	for i := 0; i < n; i++ {
		s.Update(input, comboStep)
	}
}

func TestMeleeCombo_Chain(t *testing.T) {
	s, log := createTestCombat(t)
	combo := s.Player().Combo()
	dummy := spawnDummy(t, s, entity.Vec2{X: 11, Y: 10})
	attack := PlayerInput{Attack: true}

	comboTick(s, attack, 1) // t=0.05
	assert.Equal(t, 1, combo.Step())

	comboTick(s, attack, 1) // t=0.10, inside the anti-spam window
	assert.Equal(t, 1, combo.Step())

	comboTick(s, PlayerInput{}, 3)
	comboTick(s, attack, 1) // t=0.30
	assert.Equal(t, 2, combo.Step())

	comboTick(s, PlayerInput{}, 4)
	comboTick(s, attack, 1) // t=0.55
	assert.Equal(t, 3, combo.Step())

	comboTick(s, PlayerInput{}, 4)
	comboTick(s, attack, 1) // t=0.80, clamped at the finisher
	assert.Equal(t, 3, combo.Step())

	comboTick(s, PlayerInput{}, 3) // t=0.95
	assert.Equal(t, 3, combo.Step())
	assert.Equal(t, 50, dummy.Health.Current(), "hits land after the hit delay")

	comboTick(s, PlayerInput{}, 3) // t=1.10, finisher reset from t=0.55 has run
	assert.Equal(t, 0, combo.Step())
	assert.False(t, combo.Suspended())

	comboTick(s, PlayerInput{}, 17) // t=1.95
	assert.Equal(t, 10, dummy.Health.Current())

	player := s.Player().Agent()
	assert.Equal(t, []string{"attack1", "attack2", "attack3", "attack3"}, log.Triggers(player.ID))
}

func TestMeleeCombo_FinisherResetDoesNotLeakIntoNextChain(t *testing.T) {
	s, _ := createTestCombat(t)
	combo := s.Player().Combo()
	attack := PlayerInput{Attack: true}

	comboTick(s, attack, 1) // t=0.05
	comboTick(s, PlayerInput{}, 4)
	comboTick(s, attack, 1) // t=0.30
	comboTick(s, PlayerInput{}, 4)
	comboTick(s, attack, 1) // t=0.55, finisher
	comboTick(s, PlayerInput{}, 4)
	comboTick(s, attack, 1) // t=0.80, second finisher input
	require.Equal(t, 3, combo.Step())
	assert.Equal(t, 1, s.Scheduler().Pending(), "one finisher reset per chain")

	comboTick(s, PlayerInput{}, 7) // t=1.15
	require.Equal(t, 0, combo.Step())

	comboTick(s, attack, 1) // t=1.20, fresh chain
	comboTick(s, PlayerInput{}, 3)
	assert.Equal(t, 1, combo.Step(), "fresh chain keeps its first step")
	assert.True(t, combo.Suspended())
	assert.Equal(t, 0, s.Scheduler().Pending())
}

func TestMeleeCombo_ResetsAfterIdle(t *testing.T) {
	s, _ := createTestCombat(t)
	combo := s.Player().Combo()
	player := s.Player().Agent()

	comboTick(s, PlayerInput{Attack: true}, 1) // t=0.05
	require.Equal(t, 1, combo.Step())
	assert.True(t, combo.Suspended())

	// Movement is held while the chain is live
	comboTick(s, PlayerInput{MoveX: 1}, 18) // t=0.95
	assert.Equal(t, 1, combo.Step())
	assert.Equal(t, entity.Vec2{}, player.Body.Velocity())

	comboTick(s, PlayerInput{MoveX: 1}, 3) // t=1.10
	assert.Equal(t, 0, combo.Step())
	assert.False(t, combo.Suspended())
	assert.Equal(t, entity.Vec2{X: 5}, player.Body.Velocity())
}

func TestMeleeCombo_HitSetFixedAtAttack(t *testing.T) {
	s, _ := createTestCombat(t)
	dummy := spawnDummy(t, s, entity.Vec2{X: 11, Y: 10})
	bystander := spawnDummy(t, s, entity.Vec2{X: 20, Y: 10})

	comboTick(s, PlayerInput{Attack: true}, 1)

	// Swap places before the hit lands
	dummy.Body.SetPosition(entity.Vec2{X: 20, Y: 15})
	bystander.Body.SetPosition(entity.Vec2{X: 11, Y: 10})
	comboTick(s, PlayerInput{}, 21)

	assert.Equal(t, 40, dummy.Health.Current())
	assert.Equal(t, 50, bystander.Health.Current())
}

func TestMeleeCombo_NoDamageWhenOwnerDead(t *testing.T) {
	s, _ := createTestCombat(t)
	dummy := spawnDummy(t, s, entity.Vec2{X: 11, Y: 10})
	player := s.Player().Agent()

	comboTick(s, PlayerInput{Attack: true}, 1)
	s.Damage(player.ID, 100, entity.Vec2{})

	// The match is over, so drive the scheduler directly
	s.Clock().Advance(1.5)
	s.Scheduler().Run()

	assert.Equal(t, 50, dummy.Health.Current())
	assert.False(t, s.Player().Combo().Attack(), "dead players cannot attack")
}

func TestMeleeCombo_AttackPointFollowsFacing(t *testing.T) {
	s, _ := createTestCombat(t)
	combo := s.Player().Combo()

	assert.InDelta(t, 10.6, combo.AttackPoint().X, 1e-9)
	assert.InDelta(t, 10.0, combo.AttackPoint().Y, 1e-9)

	s.Update(PlayerInput{MoveX: -1}, tick)
	pos := s.Player().Agent().Position()
	assert.InDelta(t, pos.X-0.6, combo.AttackPoint().X, 1e-9)
}

func TestMeleeCombo_MissSchedulesNothing(t *testing.T) {
	s, _ := createTestCombat(t)
	combo := s.Player().Combo()

	require.True(t, combo.Attack())
	assert.Equal(t, 0, s.Scheduler().Pending())
}
