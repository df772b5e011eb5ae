package roster

import (
	"reflect"
	"testing"
)

func TestRegistrationIdempotent(t *testing.T) {
	world := NewWorld()

	first := RegisterComponent[Position](world)
	second := RegisterComponent[Position](world)

	if first.Index() != second.Index() {
		t.Errorf("same type got two indices: %d and %d", first.Index(), second.Index())
	}
	if world.Registry().TypeCount() != 1 {
		t.Errorf("TypeCount() = %d, want 1", world.Registry().TypeCount())
	}
}

func TestIndicesDenseAndDistinct(t *testing.T) {
	world := NewWorld()

	pos := RegisterComponent[Position](world)
	vel := RegisterComponent[Velocity](world)
	health := RegisterComponent[Health](world)

	seen := map[ComponentTypeIndex]string{}
	for _, ct := range []ComponentType{pos, vel, health} {
		if prev, dup := seen[ct.Index()]; dup {
			t.Errorf("index %d assigned to both %s and %s", ct.Index(), prev, ct.Name())
		}
		seen[ct.Index()] = ct.Name()
	}
	// Dense: 0..n-1 with no holes
	for i := 0; i < 3; i++ {
		if _, ok := world.Registry().TypeFor(ComponentTypeIndex(i)); !ok {
			t.Errorf("TypeFor(%d) missing, indices not dense", i)
		}
	}
	if _, ok := world.Registry().TypeFor(3); ok {
		t.Errorf("TypeFor(3) present, want absent")
	}
}

func TestIndexNotRecycledAfterRemoval(t *testing.T) {
	world := NewWorld()
	space := world.CreateSpace()
	pos := RegisterComponent[Position](world)

	e := space.CreateEntity()
	if _, err := e.Add(pos); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := e.Remove(ByType(pos)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// A new type registered after the last Position instance is gone must
	// not take Position's index.
	vel := RegisterComponent[Velocity](world)
	if vel.Index() == pos.Index() {
		t.Errorf("index %d recycled", pos.Index())
	}
}

func TestWorldsHaveIndependentIndexSpaces(t *testing.T) {
	worldA := NewWorld()
	worldB := NewWorld()

	// Register in different orders; each world assigns from zero.
	velA := RegisterComponent[Velocity](worldA)
	posA := RegisterComponent[Position](worldA)
	posB := RegisterComponent[Position](worldB)

	if velA.Index() != 0 || posA.Index() != 1 {
		t.Errorf("worldA indices = (%d, %d), want (0, 1)", velA.Index(), posA.Index())
	}
	if posB.Index() != 0 {
		t.Errorf("worldB Position index = %d, want 0", posB.Index())
	}
}

// registerManyTypes manufactures n distinct component types (array types of
// differing lengths, which are distinct in Go's type identity) against the
// world's registry.
func registerManyTypes(world *World, n int) []ComponentType {
	types := make([]ComponentType, n)
	for i := 0; i < n; i++ {
		rt := reflect.ArrayOf(i+1, reflect.TypeFor[int8]())
		types[i] = world.registry.register(rt, func() Component {
			return reflect.New(rt).Interface()
		})
	}
	return types
}

func TestManyTypesCrossWordBoundary(t *testing.T) {
	world := NewWorld()
	types := registerManyTypes(world, 70)

	for i, ct := range types {
		if int(ct.Index()) != i {
			t.Fatalf("type %d got index %d", i, ct.Index())
		}
	}
	if world.Registry().TypeCount() != 70 {
		t.Errorf("TypeCount() = %d, want 70", world.Registry().TypeCount())
	}

	// A signature touching both words must round-trip through an entity.
	space := world.CreateSpace()
	e := space.CreateEntity()
	for _, i := range []int{0, 63, 64, 69} {
		if _, err := e.Add(types[i]); err != nil {
			t.Fatalf("Add(type %d) failed: %v", i, err)
		}
	}
	for _, i := range []int{0, 63, 64, 69} {
		if !e.Has(types[i]) {
			t.Errorf("Has(type %d) = false after add", i)
		}
	}
	if e.ComponentCount() != 4 {
		t.Errorf("ComponentCount() = %d, want 4", e.ComponentCount())
	}
}
