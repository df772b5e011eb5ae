package roster

// ComponentTypeIndex is the dense integer assigned to a component type at
// first registration within a World. Indices are never reused, so bit
// positions in signatures and query masks stay stable for the World's
// lifetime.
type ComponentTypeIndex uint32

// EntityID uniquely identifies an entity for the lifetime of its World.
// IDs are never recycled.
type EntityID uint64

// Component is a typed data instance attached to exactly one entity at a
// time. Any value works as a component; the optional lifecycle interfaces
// below let a component hook into attachment and detachment.
type Component any

// Initializer is implemented by components that take construction
// arguments. Init is called once, immediately after allocation, with the
// arguments passed to Entity.Add, forwarded verbatim.
type Initializer interface {
	Init(args ...any)
}

// Finalizer is implemented by components that hold resources. Finalize is
// called immediately before detachment, while the component is still
// attached to its entity.
type Finalizer interface {
	Finalize()
}

// ComponentType identifies a component type registered with a World.
// Handles are world-scoped: a handle issued by one World is rejected by
// every other.
type ComponentType interface {
	Index() ComponentTypeIndex
	Name() string

	// owner pins handle implementations to this package.
	owner() *World
}

// QueryListener receives membership transitions for one query. Callbacks
// run synchronously, on the same call stack as the mutation that caused
// the transition.
type QueryListener interface {
	EntityQualified(e *Entity)
	EntityDisqualified(e *Entity)
}

// Events carries optional lifecycle announcement callbacks, wired with
// WithLifecycleEvents. They are an out-of-band channel for external
// listeners and have no bearing on query correctness. Nil callbacks are
// skipped.
type Events struct {
	EntityCreated    func(e *Entity)
	EntityDestroyed  func(e *Entity)
	ComponentAdded   func(e *Entity, c Component)
	ComponentRemoved func(e *Entity, c Component)
}

// RemoveTarget names what Entity.Remove should detach: a component type,
// or one concrete attached instance. Construct with ByType or ByInstance.
type RemoveTarget struct {
	typ      ComponentType
	instance Component
}

// ByType targets whichever component of type t is attached.
func ByType(t ComponentType) RemoveTarget {
	return RemoveTarget{typ: t}
}

// ByInstance targets the exact component instance c. Removal fails if c is
// not the instance currently attached.
func ByInstance(c Component) RemoveTarget {
	return RemoveTarget{instance: c}
}
