package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	index      *intmap.Map[uint32, *Archetype]
	archetypes []*Archetype // creation order, so iteration is deterministic
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value   reflect.Value // *T
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty world that spawns components known to registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		index:      intmap.New[uint32, *Archetype](32),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Registry returns the component registry the storage spawns from.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Archetypes returns all archetypes in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.archetypes
}

// GetArchetype returns the archetype holding exactly the given component
// types, or nil.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.index.Get(hashTypesToUint32(types))
	return archetype
}

// Spawn creates an entity from the given component values (or pointers to
// them) and returns its id.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.Spawn(components))
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	if archetype, ok := s.index.Get(id); ok {
		return archetype
	}
	archetype := NewArchetype(id, types, s.registry)
	s.index.Put(id, archetype)
	s.archetypes = append(s.archetypes, archetype)
	return archetype
}

func (s *Storage) lookup(id EntityId) *Archetype {
	archetype, _ := s.index.Get(id.ArchetypeId())
	return archetype
}

// Delete removes the entity. Unknown ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype := s.lookup(id); archetype != nil {
		archetype.Delete(id.Index())
	}
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype := s.lookup(id)
	if archetype == nil {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent reports whether the entity's archetype carries compType.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype := s.lookup(id)
	return archetype != nil && archetype.HasComponent(compType)
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.archetypes {
		total += archetype.Len()
	}
	return total
}

// AddSingleton stores value as the world-wide instance of its type,
// replacing any previous one. Singletons need no registration.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
		value = reflect.ValueOf(value).Elem().Interface()
	}

	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton fills target, which must be a **T, with the stored singleton
// of type T. It returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(v.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	v.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// extractComponentTypes returns the sorted component types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentType(comp))
	}
	sort.Sort(byTypeName(types))
	return types
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// hashTypesToUint32 is FNV-1a over the runtime type pointers of a sorted
// type list.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}
		h ^= val
		h *= prime
	}

	return h
}

// ComponentReader is anything that can look up a component by entity id.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent is the typed form of GetComponent. It returns nil when the
// entity has no T.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
