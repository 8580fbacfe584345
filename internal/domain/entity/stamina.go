package entity

// Stamina is the player's dash/fire resource
type Stamina struct {
	Current   float64
	Max       float64
	RegenRate float64 // per second
}

// NewStamina creates a full stamina pool
func NewStamina(max, regenRate float64) *Stamina {
	return &Stamina{Current: max, Max: max, RegenRate: regenRate}
}

// Spend removes cost if enough stamina is available
func (s *Stamina) Spend(cost float64) bool {
	if s.Current < cost {
		return false
	}
	s.Current -= cost
	return true
}

// Drain removes cost unconditionally, flooring at 0
func (s *Stamina) Drain(cost float64) {
	s.Current -= cost
	if s.Current < 0 {
		s.Current = 0
	}
}

// Regen restores RegenRate*dt, capped at Max
func (s *Stamina) Regen(dt float64) {
	s.Current += s.RegenRate * dt
	if s.Current > s.Max {
		s.Current = s.Max
	}
}

// Fraction returns Current/Max (0.0 ~ 1.0)
func (s *Stamina) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	return s.Current / s.Max
}
