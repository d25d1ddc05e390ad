package ecs

import "iter"

// column is the type-erased view of a single component type's storage
// inside an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}
