package ecs

import "iter"

// Query is a View whose results are materialised once per frame. The
// Scheduler executes every Query field of a system right before that
// system runs, so a system sees spawns flushed by earlier stages and frames.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	archetypes     []*Archetype
	archetypeCount int

	entities   []EntityId
	components []T
	valid      bool
}

// NewQuery creates a Query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops every cache.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.archetypeCount = -1
	q.valid = false
}

// Execute rebuilds the result cache.
func (q *Query[T]) Execute() {
	if n := len(q.storage.archetypes); n != q.archetypeCount {
		q.archetypes = q.archetypes[:0]
		for _, archetype := range q.storage.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
		q.archetypeCount = n
	}

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.entities = append(q.entities, id)
			q.components = append(q.components, item)
		}
	}

	q.valid = true
}

// Len returns the number of cached results.
func (q *Query[T]) Len() int {
	if !q.valid {
		panic("Query.Len() called before Query.Execute()")
	}
	return len(q.entities)
}

// Iter yields the cached ids and projections.
// It panics when Execute has never been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.valid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values yields the cached projections.
// It panics when Execute has never been called.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.valid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}
