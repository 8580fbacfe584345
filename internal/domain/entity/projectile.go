package entity

// ProjectileSpec holds the tunables of one projectile kind
type ProjectileSpec struct {
	Name           string
	Speed          float64
	Damage         int
	KnockbackForce float64
	HitDelay       float64 // collision to damage
	Lifetime       float64
	Radius         float64
	Homing         bool
	TrackingRange  float64 // homing acquisition radius
}

// Projectile represents a fired projectile
type Projectile struct {
	ID    EntityID
	Spec  *ProjectileSpec
	Owner Faction

	Position Vec2
	Velocity Vec2
	Lifetime float64 // seconds left

	// Homing target. Resolved through the world each tick; 0 = none.
	Target EntityID

	Active bool
}

// NewProjectile creates a projectile at pos flying along velocity
func NewProjectile(id EntityID, spec *ProjectileSpec, owner Faction, pos, velocity Vec2) *Projectile {
	return &Projectile{
		ID:       id,
		Spec:     spec,
		Owner:    owner,
		Position: pos,
		Velocity: velocity,
		Lifetime: spec.Lifetime,
		Active:   true,
	}
}

// Age counts the lifetime down. Returns false once expired.
func (p *Projectile) Age(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Active = false
	}
	return p.Active
}

// Drift moves the projectile along its velocity
func (p *Projectile) Drift(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Steer moves toward target at Speed and adopts that heading as velocity,
// so a projectile that loses its target keeps flying the same way.
func (p *Projectile) Steer(target Vec2, dt float64) {
	dir := target.Sub(p.Position).Normalized()
	if !dir.IsZero() {
		p.Velocity = dir.Scale(p.Spec.Speed)
	}
	p.Position = MoveTowards(p.Position, target, p.Spec.Speed*dt)
}

// Targets returns the factions this projectile can hit
func (p *Projectile) Targets() []Faction {
	return p.Owner.Hostile()
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.Active = false
}
