package roster

import "iter"

// Entity is an identity-only record: a unique id, the signature bitset of
// attached component type indices, and the map from index to component
// instance. Bitset and map are always mutated together before any observer
// (query manager, listeners) runs, so the two never disagree.
//
// Entities are created by Space.CreateEntity and belong to that space for
// their whole lifetime.
type Entity struct {
	id    EntityID
	space *Space
	world *World

	signature  BitSet
	components map[ComponentTypeIndex]Component
	attached   []ComponentTypeIndex // insertion order, drives teardown order

	initialised bool
}

// ID returns the entity's world-unique id.
func (e *Entity) ID() EntityID { return e.id }

// Space returns the owning space, or nil once destroyed.
func (e *Entity) Space() *Space { return e.space }

// World returns the owning world, or nil once destroyed.
func (e *Entity) World() *World { return e.world }

// Alive reports whether the entity has not been destroyed.
func (e *Entity) Alive() bool { return e.space != nil }

// Initialised reports whether the entity has completed construction inside
// its space.
func (e *Entity) Initialised() bool { return e.initialised }

// Signature returns an independent copy of the entity's component bitset.
func (e *Entity) Signature() *BitSet { return e.signature.Clone() }

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int { return len(e.attached) }

// Each yields the attached components in insertion order.
func (e *Entity) Each() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, idx := range e.attached {
			if !yield(e.components[idx]) {
				return
			}
		}
	}
}

// Add constructs a component of type t on the entity, forwarding args
// verbatim to the component's Init hook if it has one. It fails with
// DuplicateComponentError if a component of that type is already attached,
// with UnregisteredComponentTypeError if t was issued by another world, and
// with StaleEntityError if the entity has been destroyed. On failure the
// entity is left exactly as it was.
//
// A successful add re-tests the entity against every registered query, so
// qualify notifications may fire before Add returns.
func (e *Entity) Add(t ComponentType, args ...any) (Component, error) {
	if e.space == nil {
		return nil, StaleEntityError{ID: e.id}
	}
	ct, err := e.world.registry.resolve(t)
	if err != nil {
		return nil, err
	}
	if e.signature.Test(ct.index) {
		return nil, DuplicateComponentError{Type: t}
	}

	c := ct.alloc()
	if b, ok := c.(entityBinder); ok {
		b.bindEntity(e)
	}
	if init, ok := c.(Initializer); ok {
		init.Init(args...)
	}

	e.components[ct.index] = c
	e.signature.Set(ct.index)
	e.attached = append(e.attached, ct.index)
	e.initialised = true

	e.world.signatureChanged(e)
	e.world.announceComponentAdded(e, c)
	return c, nil
}

// Get returns the attached component of type t, failing with
// ComponentNotFoundError if absent.
func (e *Entity) Get(t ComponentType) (Component, error) {
	if e.world == nil {
		return nil, StaleEntityError{ID: e.id}
	}
	ct, err := e.world.registry.resolve(t)
	if err != nil {
		return nil, err
	}
	c, ok := e.components[ct.index]
	if !ok {
		return nil, ComponentNotFoundError{Type: t}
	}
	return c, nil
}

// Find returns the attached component of type t, or nil if absent. It
// never fails; an unregistered or foreign handle reads as absent.
func (e *Entity) Find(t ComponentType) Component {
	if e.world == nil {
		return nil
	}
	ct, err := e.world.registry.resolve(t)
	if err != nil {
		return nil
	}
	return e.components[ct.index]
}

// Has reports whether a component of type t is attached.
func (e *Entity) Has(t ComponentType) bool {
	if e.world == nil {
		return false
	}
	ct, err := e.world.registry.resolve(t)
	if err != nil {
		return false
	}
	return e.signature.Test(ct.index)
}

// Remove detaches the targeted component, calling its Finalize hook first.
// It fails with ComponentNotFoundError if no component of the targeted
// type is attached, or, for ByInstance targets, if that exact instance is
// not the one attached. On failure the entity is left exactly as it was.
//
// A successful remove re-tests the entity against every registered query,
// so disqualify notifications may fire before Remove returns.
func (e *Entity) Remove(target RemoveTarget) error {
	if e.space == nil {
		return StaleEntityError{ID: e.id}
	}
	idx, err := e.resolveTarget(target)
	if err != nil {
		return err
	}

	c := e.detach(idx)
	e.world.signatureChanged(e)
	e.world.announceComponentRemoved(e, c)
	return nil
}

func (e *Entity) resolveTarget(target RemoveTarget) (ComponentTypeIndex, error) {
	if target.typ != nil {
		ct, err := e.world.registry.resolve(target.typ)
		if err != nil {
			return 0, err
		}
		if !e.signature.Test(ct.index) {
			return 0, ComponentNotFoundError{Type: target.typ}
		}
		return ct.index, nil
	}
	for _, idx := range e.attached {
		if e.components[idx] == target.instance {
			return idx, nil
		}
	}
	return 0, ComponentNotFoundError{Instance: target.instance}
}

// detach finalizes and unlinks the component at idx, keeping bitset, map,
// and insertion order in lockstep. Callers report the signature change.
func (e *Entity) detach(idx ComponentTypeIndex) Component {
	c := e.components[idx]
	if fin, ok := c.(Finalizer); ok {
		fin.Finalize()
	}
	delete(e.components, idx)
	e.signature.Clear(idx)
	for i, attached := range e.attached {
		if attached == idx {
			e.attached = append(e.attached[:i], e.attached[i+1:]...)
			break
		}
	}
	if b, ok := c.(entityBinder); ok {
		b.bindEntity(nil)
	}
	return c
}

// Destroy removes and destroys all attached components in insertion order,
// removes the entity from its space, and deregisters it from the query
// manager. Each component removal fires disqualify notifications as
// memberships drop; deregistration fires a final disqualify for queries
// the empty signature still matched.
//
// Destroy is idempotent: once the entity is detached from its space, the
// call is a silent no-op.
func (e *Entity) Destroy() {
	if e.space == nil {
		return
	}
	for len(e.attached) > 0 {
		c := e.detach(e.attached[0])
		e.world.signatureChanged(e)
		e.world.announceComponentRemoved(e, c)
	}
	space := e.space
	space.detach(e)
	e.world.entityDestroyed(e)
	e.space = nil
	e.world = nil
}
