package ecs

import "reflect"

// ComponentRegistry knows how to build storage for every component type a
// Storage may hold. Each Storage owns its registry, so independent worlds
// (the game and its tests, for instance) never share type registrations.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T spawnable. Registering the same type twice is a
// no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() column {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}
