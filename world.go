package roster

import (
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World is the composition root: it owns exactly one ComponentRegistry and
// one QueryManager, shared by every space it creates. All entity and
// component mutations from every owned space route into that single query
// manager, so queries span spaces.
//
// Worlds are independent of each other. Component type handles, query
// handles, and entities never cross world boundaries.
type World struct {
	id       uuid.UUID
	log      *zap.Logger
	registry *ComponentRegistry
	queries  *QueryManager
	spaces   []*Space
	events   Events

	lastEntityID   uint64
	entityCapacity int
}

// NewWorld creates an empty world. Options configure logging, lifecycle
// event callbacks, and capacity hints; the zero configuration is a nop
// logger and no callbacks.
func NewWorld(opts ...Option) *World {
	w := &World{
		id:  uuid.New(),
		log: zap.NewNop(),
	}
	w.registry = newComponentRegistry(w)
	w.queries = newQueryManager(w)
	for _, opt := range opts {
		opt(w)
	}
	w.log.Debug("world created", zap.String("world", w.id.String()))
	return w
}

// ID returns the world's diagnostic identifier.
func (w *World) ID() uuid.UUID { return w.id }

// Registry returns the world's component registry.
func (w *World) Registry() *ComponentRegistry { return w.registry }

// QueryManager returns the world's query manager.
func (w *World) QueryManager() *QueryManager { return w.queries }

// CreateSpace creates a new entity space owned by this world.
func (w *World) CreateSpace() *Space {
	s := newSpace(w)
	w.spaces = append(w.spaces, s)
	w.log.Debug("space created",
		zap.String("world", w.id.String()),
		zap.String("space", s.id.String()),
	)
	return s
}

// Spaces yields the world's spaces in creation order.
func (w *World) Spaces() iter.Seq[*Space] {
	return func(yield func(*Space) bool) {
		for _, s := range w.spaces {
			if !yield(s) {
				return
			}
		}
	}
}

// EntityCount returns the number of live entities across all spaces.
func (w *World) EntityCount() int {
	n := 0
	for _, s := range w.spaces {
		n += s.Len()
	}
	return n
}

// RegisterQuery compiles descriptor d and returns its query handle. Two
// registrations whose compiled masks are structurally equal share one
// query: one result set, one evaluation per signature change. A new
// query's result set is seeded with a single scan over live entities,
// without firing notifications.
//
// When one mutation crosses several queries' boundaries, their
// notifications fire in query registration order; that order is stable
// for the world's lifetime.
func (w *World) RegisterQuery(d QueryDescriptor) (*Query, error) {
	return w.queries.register(d)
}

// nextEntityID hands out dense, never-reused entity ids, starting at 1.
func (w *World) nextEntityID() EntityID {
	w.lastEntityID++
	return EntityID(w.lastEntityID)
}

// signatureChanged routes a component add/remove on e into the query
// manager for incremental re-evaluation.
func (w *World) signatureChanged(e *Entity) {
	w.queries.signatureChanged(e)
}

// entityDestroyed finalizes destruction after e has shed its components
// and left its space.
func (w *World) entityDestroyed(e *Entity) {
	w.queries.deregister(e)
	w.log.Debug("entity destroyed",
		zap.String("world", w.id.String()),
		zap.Uint64("entity", uint64(e.id)),
	)
	w.announceEntityDestroyed(e)
}
