package ecs

import "iter"

// Query is a View that remembers which archetypes match. Declare it as a
// field of a System and the Scheduler initializes it on Register.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	matched []queryMatch
	seen    int
}

type queryMatch struct {
	archetype *Archetype
	cols      []int
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage, dropping any cached archetypes.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.matched = nil
	q.seen = 0
}

// refresh checks archetypes created since the last call. Archetypes are
// never removed, so only the tail of the creation order needs a look.
func (q *Query[T]) refresh() {
	if q.storage == nil {
		panic("ecs: Query used before Init")
	}

	for _, a := range q.storage.order[q.seen:] {
		if q.view.matches(a) {
			q.matched = append(q.matched, queryMatch{archetype: a, cols: q.view.columns(a)})
		}
	}
	q.seen = len(q.storage.order)
}

// Iter yields every matching entity view.
func (q *Query[T]) Iter() iter.Seq[T] {
	q.refresh()
	return func(yield func(T) bool) {
		var result T
		for _, m := range q.matched {
			for row := range m.archetype.Len() {
				q.view.fill(&result, m.archetype, row, m.cols)
				if !yield(result) {
					return
				}
			}
		}
	}
}

// First returns the first matching entity view.
func (q *Query[T]) First() (T, bool) {
	for item := range q.Iter() {
		return item, true
	}
	var zero T
	return zero, false
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	q.refresh()
	n := 0
	for _, m := range q.matched {
		n += m.archetype.Len()
	}
	return n
}

// Get returns the view of one entity, or nil.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}
