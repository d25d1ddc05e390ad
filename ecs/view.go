package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View projects entities onto a struct of component pointers.
//
//	type movable struct {
//		ecs.EntityId
//		*Transform
//		Sprite *Sprite `ecs:"optional"`
//	}
//
// Every pointer field names a component type. Embedded fields are always
// required; named fields may be tagged `ecs:"optional"` and are nil when
// the entity lacks the component. A field of type EntityId receives the
// entity's id.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
}

// NewView builds a view for struct type T.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or ecs.EntityId")
		}

		isOptional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			isOptional = true
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates *ptr for entity id. It returns false when the entity is
// missing a required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype := v.storage.lookup(id)
	if archetype == nil {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, int(id.Index()), v.columnIndices(archetype))
}

// Get returns the projection of entity id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, t := range v.types {
		if !v.optional[i] && !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

func (v *View[T]) columnIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, t := range v.types {
		indices[i] = archetype.columnIndex(t)
	}
	return indices
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, archetype *Archetype, slot int, indices []int) bool {
	for i, colIdx := range indices {
		fieldPtr := unsafe.Add(resultPtr, v.fieldOffset[i])

		var component any
		if colIdx >= 0 {
			component = archetype.columns[colIdx].Get(slot)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = NewEntityId(archetype.id, uint32(slot))
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}

		indices := v.columnIndices(archetype)
		var result T
		resultPtr := unsafe.Pointer(&result)

		for slot := range archetype.columns[0].Iter() {
			if !v.populate(resultPtr, archetype, slot, indices) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(slot)), result) {
				return
			}
		}
	}
}

// Iter yields every matching entity in archetype creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values yields the projections without ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
