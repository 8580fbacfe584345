package entity

// AttackCooldown gates attack issuance
type AttackCooldown struct {
	Remaining float64
	Duration  float64
}

// NewAttackCooldown creates a cooldown that starts ready
func NewAttackCooldown(duration float64) *AttackCooldown {
	return &AttackCooldown{Duration: duration}
}

// Ready returns true if an attack may be issued
func (c *AttackCooldown) Ready() bool {
	return c.Remaining <= 0
}

// Trigger resets the cooldown to its full duration
func (c *AttackCooldown) Trigger() {
	c.Remaining = c.Duration
}

// Advance counts the cooldown down, never below 0
func (c *AttackCooldown) Advance(dt float64) {
	if c.Remaining <= 0 {
		return
	}
	c.Remaining -= dt
	if c.Remaining < 0 {
		c.Remaining = 0
	}
}
