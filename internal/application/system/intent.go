package system

import "github.com/younwookim/arena/internal/domain/entity"

// Intent is a presentation request emitted by the simulation.
// The simulation never reads presentation state back.
type Intent interface {
	isIntent()
}

// Animation flag and trigger names
const (
	FlagMoving    = "isMoving"
	FlagAttacking = "isAttacking"

	TriggerHurt       = "hurt"
	TriggerDie        = "Die"
	TriggerDash       = "dash"
	TriggerProjectile = "projectile"
)

// ComboTrigger returns the animation trigger for a combo step (attack1..attack3)
func ComboTrigger(step int) string {
	switch step {
	case 1:
		return "attack1"
	case 2:
		return "attack2"
	default:
		return "attack3"
	}
}

// AnimationFlagIntent sets a boolean animation parameter
type AnimationFlagIntent struct {
	EntityID entity.EntityID
	Flag     string
	Value    bool
}

func (AnimationFlagIntent) isIntent() {}

// AnimationTriggerIntent fires a one-shot animation trigger
type AnimationTriggerIntent struct {
	EntityID entity.EntityID
	Trigger  string
}

func (AnimationTriggerIntent) isIntent() {}

// FacingIntent flips an entity's sprite
type FacingIntent struct {
	EntityID entity.EntityID
	Right    bool
}

func (FacingIntent) isIntent() {}

// OneShotIntent plays a sound clip once
type OneShotIntent struct {
	EntityID entity.EntityID
	Clip     string
}

func (OneShotIntent) isIntent() {}

// VisualEffectIntent spawns an effect at a position for TTL seconds
type VisualEffectIntent struct {
	Effect   string
	Position entity.Vec2
	TTL      float64
}

func (VisualEffectIntent) isIntent() {}

// Presenter receives intents
type Presenter interface {
	Present(Intent)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(Intent)

// Present calls f(i)
func (f PresenterFunc) Present(i Intent) { f(i) }

// IntentLog records every intent it receives
type IntentLog struct {
	Intents []Intent
}

// Present appends i to the log
func (l *IntentLog) Present(i Intent) {
	l.Intents = append(l.Intents, i)
}

// Triggers returns the animation triggers sent to id, in order
func (l *IntentLog) Triggers(id entity.EntityID) []string {
	var out []string
	for _, i := range l.Intents {
		if t, ok := i.(AnimationTriggerIntent); ok && t.EntityID == id {
			out = append(out, t.Trigger)
		}
	}
	return out
}

// Effects returns every visual effect intent, in order
func (l *IntentLog) Effects() []VisualEffectIntent {
	var out []VisualEffectIntent
	for _, i := range l.Intents {
		if e, ok := i.(VisualEffectIntent); ok {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears the log
func (l *IntentLog) Reset() {
	l.Intents = l.Intents[:0]
}
