package config

import (
	"fmt"
	"sort"
)

// ArenaConfig is the root config for arena.yaml
type ArenaConfig struct {
	Display     DisplayConfig               `yaml:"display"`
	Physics     PhysicsConfig               `yaml:"physics"`
	Effects     EffectsConfig               `yaml:"effects"`
	Agents      map[string]AgentConfig      `yaml:"agents"`
	Projectiles map[string]ProjectileConfig `yaml:"projectiles"`
	Player      PlayerConfig                `yaml:"player"`
	Combo       ComboConfig                 `yaml:"combo"`
	Waves       WaveConfig                  `yaml:"waves"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	TickRate     int `yaml:"tickRate"`
}

type PhysicsConfig struct {
	CellSize   int     `yaml:"cellSize"`   // world units per resolv cell
	BodyRadius float64 `yaml:"bodyRadius"` // world units
}

type EffectsConfig struct {
	HitEffect    string  `yaml:"hitEffect"`
	HitEffectTTL float64 `yaml:"hitEffectTTL"` // seconds
}

// AgentConfig holds the tunables of one agent kind
type AgentConfig struct {
	Faction           string            `yaml:"faction"` // player, enemy, boss
	Variant           string            `yaml:"variant"` // melee, ranged, boss
	MaxHealth         int               `yaml:"maxHealth"`
	MoveSpeed         float64           `yaml:"moveSpeed"`
	DetectionRange    float64           `yaml:"detectionRange"`
	AttackRange       float64           `yaml:"attackRange"`
	AttackCooldown    float64           `yaml:"attackCooldown"`
	AttackDamage      int               `yaml:"attackDamage"`
	DamageDelay       float64           `yaml:"damageDelay"`
	Projectile        string            `yaml:"projectile"`
	ProjectileSpeed   float64           `yaml:"projectileSpeed"`
	Knockback         KnockbackConfig   `yaml:"knockback"`
	FlashDuration     float64           `yaml:"flashDuration"`
	RemovalDelay      float64           `yaml:"removalDelay"` // <0 = never
	ClearTargetOnLoss bool              `yaml:"clearTargetOnLoss"`
	Thresholds        []ThresholdConfig `yaml:"thresholds"`
}

type KnockbackConfig struct {
	Force    float64 `yaml:"force"`
	Duration float64 `yaml:"duration"`
}

// ThresholdConfig spawns Payload when health drops to Fraction of max.
// At names an EnemySpawn point of the arena; empty spawns at the agent.
type ThresholdConfig struct {
	Fraction float64 `yaml:"fraction"`
	Payload  string  `yaml:"payload"`
	At       string  `yaml:"at"`
}

type ProjectileConfig struct {
	Speed          float64 `yaml:"speed"`
	Damage         int     `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockbackForce"`
	HitDelay       float64 `yaml:"hitDelay"`
	Lifetime       float64 `yaml:"lifetime"`
	Radius         float64 `yaml:"radius"`
	Homing         bool    `yaml:"homing"`
	TrackingRange  float64 `yaml:"trackingRange"`
}

type PlayerConfig struct {
	Dash    DashConfig    `yaml:"dash"`
	Stamina StaminaConfig `yaml:"stamina"`
	Fire    FireConfig    `yaml:"fire"`
}

type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type StaminaConfig struct {
	Max       float64 `yaml:"max"`
	RegenRate float64 `yaml:"regenRate"`
	DashCost  float64 `yaml:"dashCost"`
	FireCost  float64 `yaml:"fireCost"`
}

type FireConfig struct {
	Projectile string  `yaml:"projectile"`
	Speed      float64 `yaml:"speed"` // launch speed before homing takes over
	Cooldown   float64 `yaml:"cooldown"`
}

type ComboConfig struct {
	AntiSpam      float64 `yaml:"antiSpam"`
	ResetTime     float64 `yaml:"resetTime"`
	FinisherReset float64 `yaml:"finisherReset"`
	HitDelay      float64 `yaml:"hitDelay"`
	Radius        float64 `yaml:"radius"`
	Offset        float64 `yaml:"offset"`
	Damage        int     `yaml:"damage"`
}

type WaveConfig struct {
	Total            int      `yaml:"total"`
	EnemiesPerWave   int      `yaml:"enemiesPerWave"`
	Scaling          int      `yaml:"scaling"`
	TimeBetweenWaves float64  `yaml:"timeBetweenWaves"`
	Kinds            []string `yaml:"kinds"`
}

// Validate checks cross-references and ranges
func (c *ArenaConfig) Validate() error {
	if _, ok := c.Agents["player"]; !ok {
		return fmt.Errorf("agent player is required")
	}

	for _, name := range sortedNames(c.Agents) {
		a := c.Agents[name]
		if a.MaxHealth <= 0 {
			return fmt.Errorf("agent %s: maxHealth must be positive, got %d", name, a.MaxHealth)
		}
		if a.AttackRange > a.DetectionRange {
			return fmt.Errorf("agent %s: attackRange %.2f exceeds detectionRange %.2f", name, a.AttackRange, a.DetectionRange)
		}
		switch a.Faction {
		case "player", "enemy", "boss":
		default:
			return fmt.Errorf("agent %s: unknown faction %q", name, a.Faction)
		}
		switch a.Variant {
		case "melee":
		case "ranged", "boss":
			if _, ok := c.Projectiles[a.Projectile]; !ok {
				return fmt.Errorf("agent %s: unknown projectile %q", name, a.Projectile)
			}
		default:
			return fmt.Errorf("agent %s: unknown variant %q", name, a.Variant)
		}
		for i, th := range a.Thresholds {
			if th.Fraction <= 0 || th.Fraction > 1 {
				return fmt.Errorf("agent %s: threshold %d fraction must be in (0, 1], got %.2f", name, i, th.Fraction)
			}
			if _, ok := c.Agents[th.Payload]; !ok {
				return fmt.Errorf("agent %s: threshold %d payload %q is not an agent", name, i, th.Payload)
			}
		}
	}

	if _, ok := c.Projectiles[c.Player.Fire.Projectile]; !ok {
		return fmt.Errorf("player fire: unknown projectile %q", c.Player.Fire.Projectile)
	}

	if c.Waves.Total < 1 {
		return fmt.Errorf("waves: total must be at least 1, got %d", c.Waves.Total)
	}
	if len(c.Waves.Kinds) == 0 {
		return fmt.Errorf("waves: at least one enemy kind is required")
	}
	for _, kind := range c.Waves.Kinds {
		if _, ok := c.Agents[kind]; !ok {
			return fmt.Errorf("waves: unknown enemy kind %q", kind)
		}
	}

	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
