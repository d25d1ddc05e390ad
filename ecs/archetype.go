package ecs

import (
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly the same set of component
// types. Each type gets its own column; an entity's index is the same slot
// in every column.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

// NewArchetype creates an archetype for the given sorted component types.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for idx, typ := range types {
		a.columns[idx] = registry.newColumn(typ)
	}
	return a
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.columnIndex(componentType(comp))
		if idx < 0 {
			continue
		}
		slot = a.columns[idx].Append(comp)
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the entity's component of compType, or
// nil when the archetype has no such column or the slot is empty.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnIndex(compType)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].Get(int(entityIndex))
}

// Delete frees the entity's slot in every column.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, c := range a.columns {
		c.Delete(int(entityIndex))
	}
}

// HasComponent reports whether compType is part of this archetype.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype id.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields the id of every live entity in slot order.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}
