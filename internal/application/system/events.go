package system

import "github.com/younwookim/arena/internal/domain/entity"

// DamageEvent is published after damage is applied to an agent
type DamageEvent struct {
	Target  entity.EntityID
	Faction entity.Faction
	Amount  int
	Health  int
	Max     int
	Source  entity.Vec2
}

// DeathEvent is published once when an agent's health reaches 0
type DeathEvent struct {
	ID       entity.EntityID
	Faction  entity.Faction
	Kind     string
	Position entity.Vec2
}

// EventBus delivers combat events synchronously, in subscription order
type EventBus struct {
	damage []func(DamageEvent)
	death  []func(DeathEvent)
}

// NewEventBus creates an event bus with no subscribers
func NewEventBus() *EventBus {
	return &EventBus{}
}

// OnDamage subscribes fn to damage events
func (b *EventBus) OnDamage(fn func(DamageEvent)) {
	b.damage = append(b.damage, fn)
}

// OnDeath subscribes fn to death events
func (b *EventBus) OnDeath(fn func(DeathEvent)) {
	b.death = append(b.death, fn)
}

// PublishDamage delivers e to every damage subscriber
func (b *EventBus) PublishDamage(e DamageEvent) {
	for _, fn := range b.damage {
		fn(e)
	}
}

// PublishDeath delivers e to every death subscriber
func (b *EventBus) PublishDeath(e DeathEvent) {
	for _, fn := range b.death {
		fn(e)
	}
}

// HUD receives numeric updates for on-screen display
type HUD interface {
	HealthChanged(id entity.EntityID, current, max int)
	WaveChanged(current, total int)
	EnemiesRemainingChanged(n int)
}

// NopHUD discards every update
type NopHUD struct{}

func (NopHUD) HealthChanged(entity.EntityID, int, int) {}
func (NopHUD) WaveChanged(int, int)                    {}
func (NopHUD) EnemiesRemainingChanged(int)             {}
