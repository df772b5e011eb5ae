package roster

import (
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Space owns a collection of entities and is their lifecycle boundary:
// entities are created and destroyed here, and belong to one space for
// their whole lifetime (there is no cross-space move). Queries span all
// spaces of a world.
type Space struct {
	id    uuid.UUID
	world *World

	entities map[EntityID]*Entity
	order    []*Entity // insertion order, drives enumeration and query seeding
}

func newSpace(w *World) *Space {
	return &Space{
		id:       uuid.New(),
		world:    w,
		entities: make(map[EntityID]*Entity, w.entityCapacity),
	}
}

// ID returns the space's diagnostic identifier, used in log fields.
func (s *Space) ID() uuid.UUID { return s.id }

// World returns the owning world.
func (s *Space) World() *World { return s.world }

// Len returns the number of live entities in the space.
func (s *Space) Len() int { return len(s.order) }

// Entity returns the live entity with the given id, if it is in this space.
func (s *Space) Entity(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Each yields the space's live entities in creation order.
func (s *Space) Each() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range s.order {
			if !yield(e) {
				return
			}
		}
	}
}

// CreateEntity allocates a new entity with an empty signature, registers
// it into the space, and reports it to the query manager. Queries with
// empty required and any-of masks qualify it immediately.
func (s *Space) CreateEntity() *Entity {
	e := &Entity{
		id:         s.world.nextEntityID(),
		space:      s,
		world:      s.world,
		components: make(map[ComponentTypeIndex]Component),
	}
	s.entities[e.id] = e
	s.order = append(s.order, e)

	s.world.queries.signatureChanged(e)
	e.initialised = true

	s.world.log.Debug("entity created",
		zap.String("space", s.id.String()),
		zap.Uint64("entity", uint64(e.id)),
	)
	s.world.announceEntityCreated(e)
	return e
}

// DestroyEntity runs the entity destruction protocol. Destroying an entity
// that was already destroyed, or that belongs to another space, is a no-op.
func (s *Space) DestroyEntity(e *Entity) {
	if e == nil || e.space != s {
		return
	}
	e.Destroy()
}

// detach removes e from the space's collection. Enumeration order of the
// remaining entities is preserved.
func (s *Space) detach(e *Entity) {
	delete(s.entities, e.id)
	for i, cur := range s.order {
		if cur == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
