package roster

import "fmt"

// All error kinds below are programming-contract violations surfaced
// synchronously at the violating call. Nothing is retried or swallowed,
// and a failed call leaves the entity's bitset and component map untouched.

type DuplicateComponentError struct {
	Type ComponentType
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component already exists on entity: %s", typeName(e.Type))
}

type ComponentNotFoundError struct {
	Type     ComponentType
	Instance Component
}

func (e ComponentNotFoundError) Error() string {
	if e.Instance != nil {
		return fmt.Sprintf("component instance not attached to entity: %T", e.Instance)
	}
	return fmt.Sprintf("component does not exist on entity: %s", typeName(e.Type))
}

type UnregisteredComponentTypeError struct {
	Type ComponentType
}

func (e UnregisteredComponentTypeError) Error() string {
	return fmt.Sprintf("component type not registered with this world: %s", typeName(e.Type))
}

type StaleEntityError struct {
	ID EntityID
}

func (e StaleEntityError) Error() string {
	return fmt.Sprintf("entity %d has been destroyed", e.ID)
}

func typeName(t ComponentType) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
