package ecs_test

import "github.com/plus3/agilitycamp/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type Collectible struct{}

type Obstacle struct {
	Speed float32
}

type Counter int32

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Collectible](registry)
	ecs.RegisterComponent[Obstacle](registry)
	ecs.RegisterComponent[Counter](registry)
	return registry
}
