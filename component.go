package roster

import "reflect"

// componentType is the registry entry behind every ComponentType handle.
type componentType struct {
	index ComponentTypeIndex
	name  string
	world *World
	alloc func() Component
}

var _ ComponentType = &componentType{}

func (ct *componentType) Index() ComponentTypeIndex { return ct.index }
func (ct *componentType) Name() string              { return ct.name }
func (ct *componentType) owner() *World             { return ct.world }

// Owned gives a component a back-reference to its owning entity. Embed it
// in a component struct and Entity() is valid from Init until Finalize
// returns; it is nil while the component is detached.
type Owned struct {
	entity *Entity
}

// Entity returns the owning entity, or nil while detached.
func (o *Owned) Entity() *Entity { return o.entity }

func (o *Owned) bindEntity(e *Entity) { o.entity = e }

// entityBinder is satisfied by any component embedding Owned.
type entityBinder interface {
	bindEntity(e *Entity)
}

// RegisterComponent registers T with the world's component registry and
// returns a typed handle. Registration is idempotent: registering the same
// type twice returns a handle with the same index.
func RegisterComponent[T any](w *World) AccessibleType[T] {
	rt := reflect.TypeFor[T]()
	ct := w.registry.register(rt, func() Component { return new(T) })
	return AccessibleType[T]{ComponentType: ct}
}

// AccessibleType extends a ComponentType handle with typed access helpers,
// so call sites skip the Component type assertion.
type AccessibleType[T any] struct {
	ComponentType
}

// AddTo constructs a T on e, forwarding args to its Init hook if present.
func (a AccessibleType[T]) AddTo(e *Entity, args ...any) (*T, error) {
	c, err := e.Add(a.ComponentType, args...)
	if err != nil {
		return nil, err
	}
	return c.(*T), nil
}

// From returns e's attached T, or ComponentNotFoundError if absent.
func (a AccessibleType[T]) From(e *Entity) (*T, error) {
	c, err := e.Get(a.ComponentType)
	if err != nil {
		return nil, err
	}
	return c.(*T), nil
}

// FindIn returns e's attached T, or nil if absent. It never fails.
func (a AccessibleType[T]) FindIn(e *Entity) *T {
	c := e.Find(a.ComponentType)
	if c == nil {
		return nil
	}
	return c.(*T)
}

// MustFrom returns e's attached T, panicking if absent. Intended for query
// iteration where the query's required mask already guarantees presence.
func (a AccessibleType[T]) MustFrom(e *Entity) *T {
	c, err := e.Get(a.ComponentType)
	if err != nil {
		panic(err)
	}
	return c.(*T)
}

// RemoveFrom detaches e's attached T.
func (a AccessibleType[T]) RemoveFrom(e *Entity) error {
	return e.Remove(ByType(a.ComponentType))
}
