package entity

// DamageResult describes the outcome of a damage application
type DamageResult struct {
	NewHealth int
	Died      bool // true only on the hit that killed
	Applied   bool // false when the target was already dead

	// Boss spawn thresholds crossed by this hit, in declared order
	Fired []SpawnThreshold
}

// HealthPool is a clamped health value with one-shot death
type HealthPool struct {
	current int
	max     int
	alive   bool
}

// NewHealthPool creates a pool at full health.
// A non-positive max is raised to 1.
func NewHealthPool(max int) *HealthPool {
	if max < 1 {
		max = 1
	}
	return &HealthPool{current: max, max: max, alive: true}
}

// ApplyDamage subtracts amount and clamps to [0, max].
// Damage to a dead pool has no effect.
func (h *HealthPool) ApplyDamage(amount int) DamageResult {
	if !h.alive {
		return DamageResult{NewHealth: h.current}
	}
	if amount < 0 {
		amount = 0
	}

	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}

	res := DamageResult{NewHealth: h.current, Applied: true}
	if h.current == 0 {
		h.alive = false
		res.Died = true
	}
	return res
}

// Current returns the current health
func (h *HealthPool) Current() int { return h.current }

// Max returns the maximum health
func (h *HealthPool) Max() int { return h.max }

// Alive returns false once health has reached 0
func (h *HealthPool) Alive() bool { return h.alive }

// Fraction returns current/max (0.0 ~ 1.0)
func (h *HealthPool) Fraction() float64 {
	return float64(h.current) / float64(h.max)
}
