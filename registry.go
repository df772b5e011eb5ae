package roster

import (
	"reflect"

	"go.uber.org/zap"
)

// ComponentRegistry assigns each component type a stable, monotonically
// increasing ComponentTypeIndex on first registration. Indices are never
// reused, even if every instance of the type is later removed, so bit
// positions in signatures and masks remain valid for the World's lifetime.
//
// The index space is owned by exactly one World; handles issued here are
// rejected by every other World. There is no unregistration.
type ComponentRegistry struct {
	world   *World
	types   map[reflect.Type]*componentType
	byIndex []*componentType
}

func newComponentRegistry(w *World) *ComponentRegistry {
	return &ComponentRegistry{
		world: w,
		types: make(map[reflect.Type]*componentType),
	}
}

// register is idempotent per reflect type: the second registration of the
// same type returns the handle the first one produced.
func (r *ComponentRegistry) register(rt reflect.Type, alloc func() Component) *componentType {
	if ct, ok := r.types[rt]; ok {
		return ct
	}
	ct := &componentType{
		index: ComponentTypeIndex(len(r.byIndex)),
		name:  rt.String(),
		world: r.world,
		alloc: alloc,
	}
	r.types[rt] = ct
	r.byIndex = append(r.byIndex, ct)
	r.world.log.Debug("component type registered",
		zap.String("world", r.world.id.String()),
		zap.String("type", ct.name),
		zap.Uint32("index", uint32(ct.index)),
	)
	return ct
}

// TypeCount returns the number of registered component types.
func (r *ComponentRegistry) TypeCount() int {
	return len(r.byIndex)
}

// TypeFor returns the handle registered at index i, if any.
func (r *ComponentRegistry) TypeFor(i ComponentTypeIndex) (ComponentType, bool) {
	if int(i) >= len(r.byIndex) {
		return nil, false
	}
	return r.byIndex[i], true
}

// resolve narrows a public handle back to its registry entry, rejecting
// handles issued by other Worlds. Handles may arrive wrapped (AccessibleType
// embeds the interface), so resolution goes through the interface methods
// rather than a concrete assertion.
func (r *ComponentRegistry) resolve(t ComponentType) (*componentType, error) {
	if t == nil || t.owner() != r.world {
		return nil, UnregisteredComponentTypeError{Type: t}
	}
	return r.byIndex[t.Index()], nil
}
