package ecs

import (
	"sort"

	"github.com/younwookim/arena/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds every live agent and projectile, keyed by entity ID
type World struct {
	nextID EntityID

	Agents      map[EntityID]*entity.Agent
	Projectiles map[EntityID]*entity.Projectile

	// Tags
	IsBoss map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Agents:      make(map[EntityID]*entity.Agent),
		Projectiles: make(map[EntityID]*entity.Projectile),
		IsBoss:      make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddAgent registers an agent; bosses are tagged for the victory check
func (w *World) AddAgent(a *entity.Agent) {
	w.Agents[a.ID] = a
	if a.Faction == entity.FactionBoss {
		w.IsBoss[a.ID] = struct{}{}
	}
}

// AddProjectile registers a projectile
func (w *World) AddProjectile(p *entity.Projectile) {
	w.Projectiles[p.ID] = p
}

// DestroyEntity removes an entity from every map
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Agents, id)
	delete(w.Projectiles, id)
	delete(w.IsBoss, id)
}

// Exists checks if an entity is still registered
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Agents[id]; ok {
		return true
	}
	_, ok := w.Projectiles[id]
	return ok
}

// Agent returns the agent with the given ID, if present
func (w *World) Agent(id EntityID) (*entity.Agent, bool) {
	a, ok := w.Agents[id]
	return a, ok
}

// LiveAgent returns the agent only if it is present and alive
func (w *World) LiveAgent(id EntityID) (*entity.Agent, bool) {
	a, ok := w.Agents[id]
	if !ok || !a.Alive() {
		return nil, false
	}
	return a, true
}

// AgentIDs returns all agent IDs in ascending order
func (w *World) AgentIDs() []EntityID {
	return sortedKeys(w.Agents)
}

// ProjectileIDs returns all projectile IDs in ascending order
func (w *World) ProjectileIDs() []EntityID {
	return sortedKeys(w.Projectiles)
}

// BossAlive returns true if any registered boss is alive
func (w *World) BossAlive() bool {
	for id := range w.IsBoss {
		if a, ok := w.Agents[id]; ok && a.Alive() {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[EntityID]V) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
