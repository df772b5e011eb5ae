package roster

import "iter"

// QueryDescriptor declares a condition over component types:
//
//   - Required: the entity must have all of these.
//   - Any: the entity must have at least one, if the set is non-empty.
//   - Excluded: the entity must have none of these.
//
// Descriptors are compiled once at registration; later edits to the slices
// have no effect on the registered query.
type QueryDescriptor struct {
	Required []ComponentType
	Any      []ComponentType
	Excluded []ComponentType
}

// Query is a registered query handle with a live result set. Queries with
// structurally equal compiled masks share one Query instance (and one
// evaluation cost), so the handle returned by World.RegisterQuery may be
// one an earlier registration produced.
type Query struct {
	world    *World
	required *BitSet
	anyOf    *BitSet
	excluded *BitSet

	results   resultSet
	listeners []QueryListener
}

// matches applies the query's condition to a signature:
// all required bits present, at least one any-of bit present (when the
// any-of mask is non-empty), and no excluded bit present.
func (q *Query) matches(sig *BitSet) bool {
	return sig.ContainsAll(q.required) &&
		(q.anyOf.IsEmpty() || sig.ContainsAny(q.anyOf)) &&
		sig.ContainsNone(q.excluded)
}

// Len returns the number of entities currently matching.
func (q *Query) Len() int { return len(q.results.dense) }

// Contains reports whether e currently matches.
func (q *Query) Contains(e *Entity) bool { return q.results.contains(e.id) }

// Entities returns the live backing slice of matching entities, in
// unspecified order. This is a zero-copy read view: it changes underfoot
// whenever a mutation moves entities in or out of the query. Consumers
// that add or remove components, or destroy entities, while iterating must
// use Snapshot instead.
func (q *Query) Entities() []*Entity { return q.results.dense }

// Snapshot returns an independent copy of the current result set, safe to
// iterate while mutating the entities it contains.
func (q *Query) Snapshot() []*Entity {
	out := make([]*Entity, len(q.results.dense))
	copy(out, q.results.dense)
	return out
}

// Each yields the matching entities from the live result set. The same
// read-only contract as Entities applies.
func (q *Query) Each() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range q.results.dense {
			if !yield(e) {
				return
			}
		}
	}
}

// Notify subscribes l to this query's qualify/disqualify transitions.
// Listeners fire synchronously in subscription order. Subscribing does not
// replay current membership; seed state comes from Entities.
func (q *Query) Notify(l QueryListener) {
	q.listeners = append(q.listeners, l)
}

func (q *Query) qualify(e *Entity) {
	for _, l := range q.listeners {
		l.EntityQualified(e)
	}
}

func (q *Query) disqualify(e *Entity) {
	for _, l := range q.listeners {
		l.EntityDisqualified(e)
	}
}

// resultSet is a dense entity slice with an id-to-slot index. Removal
// swaps the last entity into the vacated slot and truncates, so both
// insert and remove are O(1) and iteration order is unspecified.
type resultSet struct {
	dense []*Entity
	slots map[EntityID]int
}

func newResultSet() resultSet {
	return resultSet{slots: make(map[EntityID]int)}
}

func (rs *resultSet) contains(id EntityID) bool {
	_, ok := rs.slots[id]
	return ok
}

func (rs *resultSet) add(e *Entity) {
	rs.slots[e.id] = len(rs.dense)
	rs.dense = append(rs.dense, e)
}

func (rs *resultSet) remove(id EntityID) {
	slot, ok := rs.slots[id]
	if !ok {
		return
	}
	last := len(rs.dense) - 1
	moved := rs.dense[last]
	rs.dense[slot] = moved
	rs.dense[last] = nil
	rs.dense = rs.dense[:last]
	rs.slots[moved.id] = slot
	delete(rs.slots, id)
}
