package physics

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/arena/internal/domain/entity"
)

// Body is a unit-mass circle backed by a resolv object
type Body struct {
	id     entity.EntityID
	obj    *resolv.Object
	radius float64

	pos entity.Vec2 // center
	vel entity.Vec2
}

// ID returns the entity that owns the body
func (b *Body) ID() entity.EntityID { return b.id }

// Radius returns the body radius
func (b *Body) Radius() float64 { return b.radius }

// Position returns the body center
func (b *Body) Position() entity.Vec2 { return b.pos }

// SetPosition moves the body center and refreshes its space cells
func (b *Body) SetPosition(p entity.Vec2) {
	b.pos = p
	b.obj.X = (p.X - b.radius) * PixelsPerUnit
	b.obj.Y = (p.Y - b.radius) * PixelsPerUnit
	b.obj.Update()
}

// Velocity returns the body velocity in units per second
func (b *Body) Velocity() entity.Vec2 { return b.vel }

// SetVelocity replaces the body velocity
func (b *Body) SetVelocity(v entity.Vec2) { b.vel = v }

// ApplyImpulse adds an instantaneous velocity change
func (b *Body) ApplyImpulse(impulse entity.Vec2) {
	b.vel = b.vel.Add(impulse)
}
