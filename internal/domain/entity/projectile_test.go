package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestSpec() *ProjectileSpec {
	return &ProjectileSpec{Name: "orb", Speed: 5, Damage: 10, Lifetime: 5, Radius: 0.3}
}

func TestProjectile_DriftAndAge(t *testing.T) {
	p := NewProjectile(1, createTestSpec(), FactionEnemy, Vec2{}, Vec2{X: 5})
	assert.True(t, p.Active)
	assert.InDelta(t, 5.0, p.Lifetime, 1e-9)

	p.Drift(0.5)
	assert.InDelta(t, 2.5, p.Position.X, 1e-9)

	assert.True(t, p.Age(4.9))
	assert.False(t, p.Age(0.2))
	assert.False(t, p.Active)
}

func TestProjectile_SteerKeepsHeading(t *testing.T) {
	p := NewProjectile(1, createTestSpec(), FactionPlayer, Vec2{}, Vec2{X: 5})

	p.Steer(Vec2{Y: 10}, 0.2)
	assert.InDelta(t, 0.0, p.Position.X, 1e-9)
	assert.InDelta(t, 1.0, p.Position.Y, 1e-9)
	assert.InDelta(t, 5.0, p.Velocity.Y, 1e-9, "velocity follows steering")

	p.Drift(0.2)
	assert.InDelta(t, 2.0, p.Position.Y, 1e-9, "continues straight without a target")
}

func TestProjectile_Targets(t *testing.T) {
	p := NewProjectile(1, createTestSpec(), FactionPlayer, Vec2{}, Vec2{})
	assert.ElementsMatch(t, []Faction{FactionEnemy, FactionBoss}, p.Targets())

	p = NewProjectile(2, createTestSpec(), FactionBoss, Vec2{}, Vec2{})
	assert.Equal(t, []Faction{FactionPlayer}, p.Targets())
}
