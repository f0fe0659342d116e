package ecs_test

import "github.com/plus3/blockfall/ecs"

// Component types shared by the tests.
type Cell struct {
	Row, Col int
}

type Fall struct {
	Speed float64
}

type Glow struct {
	Alpha float64
}

type Label struct {
	Text string
}

type Tag string

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Cell](registry)
	ecs.RegisterComponent[Fall](registry)
	ecs.RegisterComponent[Glow](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Tag](registry)
	return registry
}
