package entity

// Variant selects an agent's attack payload
type Variant int

const (
	VariantMelee Variant = iota
	VariantRanged
	VariantBoss
)

// String returns the config name of the variant
func (v Variant) String() string {
	switch v {
	case VariantRanged:
		return "ranged"
	case VariantBoss:
		return "boss"
	default:
		return "melee"
	}
}

// ParseVariant converts a config name to a Variant
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "melee":
		return VariantMelee, true
	case "ranged":
		return VariantRanged, true
	case "boss":
		return VariantBoss, true
	}
	return VariantMelee, false
}

// AttackWindow is how long an agent stays in its attack pose
const AttackWindow = 0.5

// AgentPolicy holds the tunables of one agent kind
type AgentPolicy struct {
	Faction        Faction
	Variant        Variant
	MaxHealth      int
	MoveSpeed      float64
	DetectionRange float64
	AttackRange    float64
	AttackCooldown float64
	AttackDamage   int
	DamageDelay    float64 // melee hit-scan to damage

	Projectile      string // projectile spec name; ranged and boss only
	ProjectileSpeed float64

	KnockbackForce    float64
	KnockbackDuration float64
	FlashDuration     float64
	RemovalDelay      float64 // <0 = never removed

	// Melee agents forget their target when it leaves detection range
	ClearTargetOnLoss bool

	Thresholds []SpawnThreshold
}

// Agent is a combatant: the player, an enemy, or the boss
type Agent struct {
	ID      EntityID
	Faction Faction
	Kind    string
	Policy  *AgentPolicy

	Body       Body
	Health     *HealthPool
	Knockback  *KnockbackController
	Flash      *DamageFlashController
	Cooldown   *AttackCooldown
	Thresholds SpawnThresholds

	FacingRight bool
}

// NewAgent creates an agent at full health from its policy
func NewAgent(id EntityID, kind string, policy *AgentPolicy, body Body) *Agent {
	a := &Agent{
		ID:          id,
		Faction:     policy.Faction,
		Kind:        kind,
		Policy:      policy,
		Body:        body,
		Health:      NewHealthPool(policy.MaxHealth),
		Knockback:   NewKnockbackController(body, policy.KnockbackDuration),
		Flash:       NewDamageFlashController(policy.FlashDuration),
		Cooldown:    NewAttackCooldown(policy.AttackCooldown),
		FacingRight: true,
	}
	for _, t := range policy.Thresholds {
		t := t
		t.fired = false
		a.Thresholds = append(a.Thresholds, &t)
	}
	return a
}

// Alive returns true if the agent has health left
func (a *Agent) Alive() bool {
	return a.Health.Alive()
}

// Position returns the body position, or the zero vector without a body
func (a *Agent) Position() Vec2 {
	if a.Body == nil {
		return Vec2{}
	}
	return a.Body.Position()
}

// TakeDamage applies damage from source: health, hit flash, knockback away
// from source, then spawn thresholds. Dead agents ignore it.
func (a *Agent) TakeDamage(amount int, source Vec2) DamageResult {
	res := a.Health.ApplyDamage(amount)
	if !res.Applied {
		return res
	}

	a.Flash.Trigger()
	if a.Policy.KnockbackForce > 0 {
		dir := a.Position().Sub(source).Normalized()
		a.Knockback.Request(dir, a.Policy.KnockbackForce)
	}

	res.Fired = a.Thresholds.Evaluate(a.Health.Current(), a.Health.Max())
	return res
}

// Advance ticks the agent's timers
func (a *Agent) Advance(dt float64) {
	a.Knockback.Advance(dt)
	a.Flash.Advance(dt)
}
