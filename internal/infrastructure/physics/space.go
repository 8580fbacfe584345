// Package physics keeps agent bodies in a resolv space and answers
// faction-filtered radius queries against it.
package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/younwookim/arena/internal/domain/entity"
)

// PixelsPerUnit is the resolution of the resolv space: one world unit is
// one 16px arena tile.
const PixelsPerUnit = 16

// probePad widens query probes so resolv's pixel-inclusive cell bounds
// never drop a body that overlaps on the last pixel.
const probePad = 2

// Space owns every body in the arena
type Space struct {
	space  *resolv.Space
	bounds entity.Arena
	bodies map[entity.EntityID]*Body
}

// NewSpace creates a space covering the arena, bucketed into cells of
// cellSize world units.
func NewSpace(arena entity.Arena, cellSize int) *Space {
	if cellSize < 1 {
		cellSize = 1
	}
	cell := cellSize * PixelsPerUnit
	w := int(math.Ceil(arena.Width*PixelsPerUnit)) + cell
	h := int(math.Ceil(arena.Height*PixelsPerUnit)) + cell
	return &Space{
		space:  resolv.NewSpace(w, h, cell, cell),
		bounds: arena,
		bodies: make(map[entity.EntityID]*Body),
	}
}

// AddBody creates a circular body for id centered on pos
func (s *Space) AddBody(id entity.EntityID, faction entity.Faction, pos entity.Vec2, radius float64) *Body {
	size := radius * 2 * PixelsPerUnit
	obj := resolv.NewObject(0, 0, size, size, faction.String())
	obj.Data = id
	s.space.Add(obj)

	b := &Body{id: id, obj: obj, radius: radius}
	b.SetPosition(pos)
	s.bodies[id] = b
	return b
}

// RemoveBody takes the body of id out of the space
func (s *Space) RemoveBody(id entity.EntityID) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	s.space.Remove(b.obj)
	delete(s.bodies, id)
}

// Body returns the body of id, if present
func (s *Space) Body(id entity.EntityID) (*Body, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// Step integrates every body's velocity and keeps it inside the arena
func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		if b.vel.IsZero() {
			continue
		}
		b.SetPosition(s.bounds.Clamp(b.pos.Add(b.vel.Scale(dt))))
	}
}

// QueryRadius returns the IDs of bodies tagged with one of factions whose
// circle overlaps the query circle, nearest first (ties by ID).
func (s *Space) QueryRadius(origin entity.Vec2, radius float64, factions ...entity.Faction) []entity.EntityID {
	if radius <= 0 || len(factions) == 0 {
		return nil
	}

	tags := make([]string, len(factions))
	for i, f := range factions {
		tags[i] = f.String()
	}

	size := radius*2*PixelsPerUnit + probePad*2
	probe := resolv.NewObject(
		(origin.X-radius)*PixelsPerUnit-probePad,
		(origin.Y-radius)*PixelsPerUnit-probePad,
		size, size,
	)
	s.space.Add(probe)
	check := probe.Check(0, 0, tags...)
	s.space.Remove(probe)
	if check == nil {
		return nil
	}

	type hit struct {
		id   entity.EntityID
		dist float64
	}
	var hits []hit
	for _, obj := range check.Objects {
		id, ok := obj.Data.(entity.EntityID)
		if !ok {
			continue
		}
		b, ok := s.bodies[id]
		if !ok {
			continue
		}
		d := origin.Dist(b.pos)
		if d <= radius+b.radius {
			hits = append(hits, hit{id: id, dist: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].id < hits[j].id
	})

	ids := make([]entity.EntityID, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

// Len returns the number of bodies in the space
func (s *Space) Len() int {
	return len(s.bodies)
}
