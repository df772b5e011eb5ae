package roster

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// QueryManager compiles query descriptors into bitset masks and keeps
// every registered query's result set current as entities change.
//
// Registration performs the module's only full scan over live entities, to
// seed the new query's result set. From then on maintenance is
// incremental: each signature change re-tests just the affected entity
// against every registered query, O(queries) per mutation.
//
// A QueryManager is owned by exactly one World.
type QueryManager struct {
	world *World

	// queries holds registration order, which is also the notification
	// order across queries for a single mutation.
	queries []*Query

	// buckets groups queries by mask hash; structural equality within a
	// bucket dedupes.
	buckets map[uint64][]*Query
}

func newQueryManager(w *World) *QueryManager {
	return &QueryManager{
		world:   w,
		buckets: make(map[uint64][]*Query),
	}
}

// Len returns the number of distinct registered queries.
func (m *QueryManager) Len() int { return len(m.queries) }

// register compiles d and returns its query, reusing an existing query
// whose three compiled masks are structurally equal. New queries are
// seeded against every live entity without firing notifications.
func (m *QueryManager) register(d QueryDescriptor) (*Query, error) {
	required, err := m.compileMask(d.Required)
	if err != nil {
		return nil, err
	}
	anyOf, err := m.compileMask(d.Any)
	if err != nil {
		return nil, err
	}
	excluded, err := m.compileMask(d.Excluded)
	if err != nil {
		return nil, err
	}

	key := maskKey(required, anyOf, excluded)
	for _, q := range m.buckets[key] {
		if q.required.Equal(required) && q.anyOf.Equal(anyOf) && q.excluded.Equal(excluded) {
			return q, nil
		}
	}

	q := &Query{
		world:    m.world,
		required: required,
		anyOf:    anyOf,
		excluded: excluded,
		results:  newResultSet(),
	}
	m.seed(q)
	m.queries = append(m.queries, q)
	m.buckets[key] = append(m.buckets[key], q)

	m.world.log.Debug("query registered",
		zap.String("world", m.world.id.String()),
		zap.Int("queries", len(m.queries)),
		zap.Int("seeded", q.Len()),
	)
	return q, nil
}

func (m *QueryManager) compileMask(types []ComponentType) (*BitSet, error) {
	mask := &BitSet{}
	for _, t := range types {
		ct, err := m.world.registry.resolve(t)
		if err != nil {
			return nil, err
		}
		mask.Set(ct.index)
	}
	return mask, nil
}

// seed fills a fresh query's result set from the current entity
// population. Seeding is silent: no qualify notifications fire.
func (m *QueryManager) seed(q *Query) {
	for _, s := range m.world.spaces {
		for _, e := range s.order {
			if q.matches(&e.signature) {
				q.results.add(e)
			}
		}
	}
}

// signatureChanged re-tests e against every registered query and updates
// memberships, notifying listeners on each transition. Queries are visited
// in registration order; entities whose match state is unchanged cost one
// mask test and nothing else.
func (m *QueryManager) signatureChanged(e *Entity) {
	for _, q := range m.queries {
		in := q.results.contains(e.id)
		match := q.matches(&e.signature)
		switch {
		case match && !in:
			q.results.add(e)
			q.qualify(e)
		case !match && in:
			q.results.remove(e.id)
			q.disqualify(e)
		}
	}
}

// deregister drops e from every result set it still occupies, firing
// disqualify notifications. Called once at the end of entity destruction,
// after all components have been removed.
func (m *QueryManager) deregister(e *Entity) {
	for _, q := range m.queries {
		if q.results.contains(e.id) {
			q.results.remove(e.id)
			q.disqualify(e)
		}
	}
}

// maskKey hashes the three compiled masks into the dedup bucket key.
// Trailing zero words are ignored so zero-padding-equal masks collide, and
// word counts are folded in so mask boundaries stay unambiguous.
func maskKey(masks ...*BitSet) uint64 {
	var buf [8]byte
	d := xxhash.New()
	for _, m := range masks {
		n := m.trimmedLen()
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = d.Write(buf[:])
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint64(buf[:], m.wordAt(i))
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
