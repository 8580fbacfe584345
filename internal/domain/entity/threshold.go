package entity

// SpawnThreshold spawns Payload the first time health drops to Fraction of max.
// It fires at most once per lifetime.
type SpawnThreshold struct {
	Fraction float64 // (0, 1]
	Payload  string  // agent kind to spawn
	At       *Vec2   // spawn location; nil = at the boss

	fired bool
}

// Fired reports whether the threshold has already spawned
func (t *SpawnThreshold) Fired() bool { return t.fired }

// SpawnThresholds is an ordered threshold list
type SpawnThresholds []*SpawnThreshold

// Evaluate marks and returns every threshold crossed at current/max,
// in declared order.
func (ts SpawnThresholds) Evaluate(current, max int) []SpawnThreshold {
	var fired []SpawnThreshold
	for _, t := range ts {
		if t.fired {
			continue
		}
		if float64(current) <= float64(max)*t.Fraction {
			t.fired = true
			fired = append(fired, *t)
		}
	}
	return fired
}
