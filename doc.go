/*
Package roster provides the storage and query core of an Entity-Component-System
(ECS) library for games and simulations.

Roster keeps entities as identity-only records with typed data components
attached to them, and maintains live, incrementally updated result sets for
declarative queries over component signatures. Simulation logic runs per tick
over query results instead of scanning the whole entity population.

Core Concepts:

  - Entity: a unique identifier plus the set of components attached to it.
  - Component: a data container that defines entity attributes.
  - Signature: the bitset of component type indices attached to an entity.
  - Query: a required/any/excluded condition over component types, compiled
    to bitmasks and kept up to date as entities change.
  - World: the composition root owning the component registry, the query
    manager, and all spaces.

Basic Usage:

	world := roster.NewWorld()
	space := world.CreateSpace()

	// Register component types with the world
	position := roster.RegisterComponent[Position](world)
	velocity := roster.RegisterComponent[Velocity](world)

	// Declare a query; its result set stays current from here on
	moving, _ := world.RegisterQuery(roster.QueryDescriptor{
		Required: []roster.ComponentType{position, velocity},
	})

	// Create an entity and attach components
	e := space.CreateEntity()
	e.Add(position)
	e.Add(velocity)

	// Iterate matching entities each tick
	for _, e := range moving.Entities() {
		pos := position.MustFrom(e)
		vel := velocity.MustFrom(e)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Component churn is cheap: every add or remove re-tests only the affected
entity against the registered queries, so steady-state cost is proportional
to the number of distinct queries rather than the number of entities.

All operations are synchronous and single-threaded; query state is consistent
the moment any mutating call returns. Query result sets expose their live
backing slice for zero-copy reads. A consumer that mutates entities while
walking a result set must iterate a Snapshot instead; see Query.Entities and
Query.Snapshot for the exact contract.
*/
package roster
