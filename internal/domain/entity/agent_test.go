package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBossPolicy() *AgentPolicy {
	return &AgentPolicy{
		Faction:           FactionBoss,
		Variant:           VariantBoss,
		MaxHealth:         300,
		KnockbackForce:    10,
		KnockbackDuration: 0.5,
		FlashDuration:     0.1,
		RemovalDelay:      5,
		Thresholds: []SpawnThreshold{
			{Fraction: 0.5, Payload: "grunt"},
			{Fraction: 0.25, Payload: "archer"},
		},
	}
}

func TestAgent_TakeDamage(t *testing.T) {
	body := &fakeBody{pos: Vec2{X: 5}}
	a := NewAgent(1, "boss", createTestBossPolicy(), body)

	res := a.TakeDamage(30, Vec2{X: 4})
	assert.True(t, res.Applied)
	assert.Equal(t, 270, res.NewHealth)
	assert.True(t, a.Flash.Active())
	assert.True(t, a.Knockback.Active())
	require.Len(t, body.impulses, 1)
	assert.InDelta(t, 10.0, body.impulses[0].X, 1e-9, "pushed away from source")
	assert.InDelta(t, 0.0, body.impulses[0].Y, 1e-9)

	a.TakeDamage(10, Vec2{X: 6})
	assert.Len(t, body.impulses, 1, "knockback not refreshed while active")
}

func TestAgent_ThresholdsPerAgent(t *testing.T) {
	policy := createTestBossPolicy()
	a := NewAgent(1, "boss", policy, &fakeBody{})
	b := NewAgent(2, "boss", policy, &fakeBody{})

	res := a.TakeDamage(150, Vec2{})
	require.Len(t, res.Fired, 1)
	assert.Equal(t, "grunt", res.Fired[0].Payload)

	res = a.TakeDamage(75, Vec2{})
	require.Len(t, res.Fired, 1)
	assert.Equal(t, "archer", res.Fired[0].Payload)

	res = b.TakeDamage(150, Vec2{})
	require.Len(t, res.Fired, 1, "thresholds are not shared between agents")
	assert.False(t, policy.Thresholds[0].Fired())
}

func TestAgent_DeadIgnoresDamage(t *testing.T) {
	body := &fakeBody{}
	a := NewAgent(1, "boss", createTestBossPolicy(), body)

	res := a.TakeDamage(300, Vec2{X: -1})
	assert.True(t, res.Died)
	assert.False(t, a.Alive())
	assert.Len(t, res.Fired, 2, "killing blow still fires crossed thresholds")

	a.Advance(1)
	res = a.TakeDamage(10, Vec2{X: -1})
	assert.False(t, res.Applied)
	assert.False(t, a.Flash.Active())
	assert.False(t, a.Knockback.Active())
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{VariantMelee, VariantRanged, VariantBoss} {
		got, ok := ParseVariant(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseVariant("dragon")
	assert.False(t, ok)
}
