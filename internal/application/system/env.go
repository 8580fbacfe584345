package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
)

// SpatialQuery answers faction-filtered radius queries over agent bodies.
// Results are ordered nearest first, ties by ID.
type SpatialQuery interface {
	QueryRadius(origin entity.Vec2, radius float64, factions ...entity.Faction) []entity.EntityID
}

// Spawner creates agents by kind and removes entities after a delay
type Spawner interface {
	Spawn(kind string, pos entity.Vec2) entity.EntityID
	Destroy(id entity.EntityID, delay float64)
}

// Damager is the single entry point for applying damage to an agent.
// Stale or dead targets are ignored.
type Damager interface {
	Damage(target entity.EntityID, amount int, source entity.Vec2)
}

// Launcher spawns projectiles
type Launcher interface {
	Launch(spec *entity.ProjectileSpec, owner entity.Faction, pos, velocity entity.Vec2) entity.EntityID
}

// Env bundles the collaborators shared by every controller
type Env struct {
	World     *ecs.World
	Space     SpatialQuery
	Clock     *Clock
	Scheduler *Scheduler
	Presenter Presenter
	Damage    Damager
	Launcher  Launcher

	Projectiles map[string]*entity.ProjectileSpec
}

func (e *Env) present(i Intent) {
	if e.Presenter != nil {
		e.Presenter.Present(i)
	}
}

// nearestLive returns the closest live agent of factions within radius.
// Corpses keep their bodies until removal and are skipped.
func (e *Env) nearestLive(origin entity.Vec2, radius float64, factions ...entity.Faction) (*entity.Agent, bool) {
	for _, id := range e.Space.QueryRadius(origin, radius, factions...) {
		if a, ok := e.World.LiveAgent(id); ok {
			return a, true
		}
	}
	return nil, false
}
