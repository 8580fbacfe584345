package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// LoadArena converts an ArenaMap (pixels) into an Arena (tiles as world units)
func LoadArena(m *config.ArenaMap) *entity.Arena {
	unit := float64(m.TileSize)
	if unit <= 0 {
		unit = 1
	}
	toWorld := func(sp config.SpawnConfig) entity.SpawnPoint {
		return entity.SpawnPoint{
			Name: sp.Name,
			Pos:  entity.Vec2{X: sp.X / unit, Y: sp.Y / unit},
			Kind: sp.Kind,
		}
	}

	arena := &entity.Arena{
		Width:       float64(m.Width) / unit,
		Height:      float64(m.Height) / unit,
		PlayerSpawn: toWorld(m.PlayerSpawn).Pos,
	}
	for _, sp := range m.EnemySpawns {
		arena.EnemySpawns = append(arena.EnemySpawns, toWorld(sp))
	}
	for _, sp := range m.BossSpawns {
		arena.BossSpawns = append(arena.BossSpawns, toWorld(sp))
	}
	return arena
}

// LoadProjectileSpecs converts projectile configs into specs keyed by name
func LoadProjectileSpecs(cfg *config.ArenaConfig) map[string]*entity.ProjectileSpec {
	specs := make(map[string]*entity.ProjectileSpec, len(cfg.Projectiles))
	for name, p := range cfg.Projectiles {
		specs[name] = &entity.ProjectileSpec{
			Name:           name,
			Speed:          p.Speed,
			Damage:         p.Damage,
			KnockbackForce: p.KnockbackForce,
			HitDelay:       p.HitDelay,
			Lifetime:       p.Lifetime,
			Radius:         p.Radius,
			Homing:         p.Homing,
			TrackingRange:  p.TrackingRange,
		}
	}
	return specs
}

// LoadPolicies converts agent configs into policies keyed by kind.
// Threshold spawn points are resolved against the arena.
func LoadPolicies(cfg *config.ArenaConfig, arena *entity.Arena) map[string]*entity.AgentPolicy {
	policies := make(map[string]*entity.AgentPolicy, len(cfg.Agents))
	for kind, a := range cfg.Agents {
		variant, _ := entity.ParseVariant(a.Variant)
		policy := &entity.AgentPolicy{
			Faction:           parseFaction(a.Faction),
			Variant:           variant,
			MaxHealth:         a.MaxHealth,
			MoveSpeed:         a.MoveSpeed,
			DetectionRange:    a.DetectionRange,
			AttackRange:       a.AttackRange,
			AttackCooldown:    a.AttackCooldown,
			AttackDamage:      a.AttackDamage,
			DamageDelay:       a.DamageDelay,
			Projectile:        a.Projectile,
			ProjectileSpeed:   a.ProjectileSpeed,
			KnockbackForce:    a.Knockback.Force,
			KnockbackDuration: a.Knockback.Duration,
			FlashDuration:     a.FlashDuration,
			RemovalDelay:      a.RemovalDelay,
			ClearTargetOnLoss: a.ClearTargetOnLoss,
		}
		for _, th := range a.Thresholds {
			t := entity.SpawnThreshold{Fraction: th.Fraction, Payload: th.Payload}
			if sp, ok := arena.EnemySpawn(th.At); ok {
				pos := sp.Pos
				t.At = &pos
			}
			policy.Thresholds = append(policy.Thresholds, t)
		}
		policies[kind] = policy
	}
	return policies
}

func parseFaction(s string) entity.Faction {
	switch s {
	case "player":
		return entity.FactionPlayer
	case "enemy":
		return entity.FactionEnemy
	case "boss":
		return entity.FactionBoss
	default:
		return entity.FactionNone
	}
}
