package system

import "github.com/younwookim/arena/internal/domain/entity"

// ProjectileSystem moves projectiles and resolves their hits
type ProjectileSystem struct {
	env          *Env
	hitEffect    string
	hitEffectTTL float64
}

// NewProjectileSystem creates a projectile system
func NewProjectileSystem(env *Env, hitEffect string, hitEffectTTL float64) *ProjectileSystem {
	return &ProjectileSystem{env: env, hitEffect: hitEffect, hitEffectTTL: hitEffectTTL}
}

// Launch spawns a projectile. Homing projectiles pick the nearest hostile
// within tracking range once, here.
func (s *ProjectileSystem) Launch(spec *entity.ProjectileSpec, owner entity.Faction, pos, velocity entity.Vec2) entity.EntityID {
	p := entity.NewProjectile(s.env.World.NewEntity(), spec, owner, pos, velocity)
	if spec.Homing {
		if t, ok := s.env.nearestLive(pos, spec.TrackingRange, p.Targets()...); ok {
			p.Target = t.ID
		}
	}
	s.env.World.AddProjectile(p)
	return p.ID
}

// Update ages, moves and collides every projectile
func (s *ProjectileSystem) Update(dt float64) {
	for _, id := range s.env.World.ProjectileIDs() {
		p := s.env.World.Projectiles[id]
		if !p.Age(dt) {
			s.env.World.DestroyEntity(id)
			continue
		}

		s.move(p, dt)
		s.collide(p)
	}
}

func (s *ProjectileSystem) move(p *entity.Projectile, dt float64) {
	if p.Target != 0 {
		if t, ok := s.env.World.LiveAgent(p.Target); ok && t.Body != nil {
			p.Steer(t.Position(), dt)
			return
		}
		// Target gone: keep flying on the last heading
		p.Target = 0
	}
	p.Drift(dt)
}

func (s *ProjectileSystem) collide(p *entity.Projectile) {
	for _, id := range s.env.Space.QueryRadius(p.Position, p.Spec.Radius, p.Targets()...) {
		target, ok := s.env.World.LiveAgent(id)
		if !ok {
			continue
		}

		s.env.present(VisualEffectIntent{Effect: s.hitEffect, Position: p.Position, TTL: s.hitEffectTTL})

		if p.Spec.KnockbackForce > 0 {
			normal := target.Position().Sub(p.Position).Normalized()
			target.Knockback.Request(normal, p.Spec.KnockbackForce)
		}

		damage, source := p.Spec.Damage, p.Position
		s.env.Scheduler.After(p.Spec.HitDelay, 0, func() {
			s.env.Damage.Damage(id, damage, source)
		})

		p.Deactivate()
		s.env.World.DestroyEntity(p.ID)
		return
	}
}
