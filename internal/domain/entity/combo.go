package entity

// MaxComboStep is the last step of the player's melee chain
const MaxComboStep = 3

// ComboState tracks the player's melee chain
type ComboState struct {
	Step      int     // 0 = idle, 1..MaxComboStep
	LastInput float64 // clock time of the last accepted input

	started bool
}

// Accept registers an attack input at now.
// Inputs closer than antiSpam to the previous accepted input are ignored.
func (c *ComboState) Accept(now, antiSpam float64) bool {
	if c.started && now < c.LastInput+antiSpam {
		return false
	}
	c.Step++
	if c.Step > MaxComboStep {
		c.Step = MaxComboStep
	}
	c.LastInput = now
	c.started = true
	return true
}

// Expired returns true if an active chain has gone resetTime without input
func (c *ComboState) Expired(now, resetTime float64) bool {
	return c.Step > 0 && now-c.LastInput >= resetTime
}

// Finished returns true on the last step of the chain
func (c *ComboState) Finished() bool {
	return c.Step == MaxComboStep
}

// Reset returns the chain to idle. The anti-spam window is kept.
func (c *ComboState) Reset() {
	c.Step = 0
}
