// Package ecs is a small archetype-based entity component system. Entities
// with the same set of component types share an Archetype whose components
// are stored densely per type. Systems read them through typed Views and
// Queries and defer structural changes to a Commands buffer that the
// Scheduler flushes after every frame.
package ecs

// EntityId identifies an entity for the lifetime of its Storage. Ids are
// handed out sequentially and never reused. Zero is never a valid id.
type EntityId uint64

// location is the archetype row currently holding an entity.
type location struct {
	archetype *Archetype
	row       int
}
