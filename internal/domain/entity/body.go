package entity

// Body is the physical body of an agent, owned by the physics collaborator.
// Knockback and movement are the only writers to its velocity.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
	Velocity() Vec2
	SetVelocity(v Vec2)
	ApplyImpulse(impulse Vec2)
}

// KnockbackController is a timed velocity override on a body
type KnockbackController struct {
	body     Body
	duration float64

	active    bool
	remaining float64
	override  Vec2 // last impulse applied
}

// NewKnockbackController creates a controller for body.
// body may be nil, in which case every request is refused.
func NewKnockbackController(body Body, duration float64) *KnockbackController {
	return &KnockbackController{body: body, duration: duration}
}

// Request applies direction*force as an impulse and starts the timer.
// Returns false if a knockback is already active or there is no body.
func (k *KnockbackController) Request(direction Vec2, force float64) bool {
	if k.active || k.body == nil {
		return false
	}

	impulse := direction.Scale(force)
	k.body.ApplyImpulse(impulse)
	k.override = impulse
	k.active = true
	k.remaining = k.duration
	return true
}

// Advance decrements the timer. On expiry the body is stopped.
func (k *KnockbackController) Advance(dt float64) {
	if !k.active {
		return
	}
	k.remaining -= dt
	if k.remaining <= 0 {
		k.remaining = 0
		k.active = false
		k.override = Vec2{}
		k.body.SetVelocity(Vec2{})
	}
}

// Active returns true while movement commands must be suppressed
func (k *KnockbackController) Active() bool { return k.active }

// Override returns the impulse of the current knockback (zero when inactive)
func (k *KnockbackController) Override() Vec2 { return k.override }
