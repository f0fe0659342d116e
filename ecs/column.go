package ecs

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentRegistry maps component types to their column constructors.
// Each Storage is created from a registry, so independent worlds can register
// different component sets.
type ComponentRegistry struct {
	columns map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		columns: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers T as a component type. Every type passed to
// Storage.Spawn must be registered first.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.columns[reflect.TypeFor[T]()] = func() column {
		return &denseColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.columns[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.columns[t]
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	return factory()
}

// column is the type-erased storage for one component type of an archetype.
// Rows line up across all columns of an archetype.
type column interface {
	push(value any)
	swapRemove(row int)
	pointer(row int) unsafe.Pointer
	get(row int) any
	len() int
}

// denseColumn keeps components packed in a slice. Removal moves the last
// row into the hole, so pointers into a column are only valid until the
// next structural change of its archetype.
type denseColumn[T any] struct {
	values []T
}

func (c *denseColumn[T]) push(value any) {
	switch v := value.(type) {
	case T:
		c.values = append(c.values, v)
	case *T:
		c.values = append(c.values, *v)
	default:
		panic(fmt.Sprintf("ecs: cannot store %T in a %s column", value, reflect.TypeFor[T]()))
	}
}

func (c *denseColumn[T]) swapRemove(row int) {
	last := len(c.values) - 1
	c.values[row] = c.values[last]

	var zero T
	c.values[last] = zero
	c.values = c.values[:last]
}

func (c *denseColumn[T]) pointer(row int) unsafe.Pointer {
	return unsafe.Pointer(&c.values[row])
}

func (c *denseColumn[T]) get(row int) any {
	return &c.values[row]
}

func (c *denseColumn[T]) len() int {
	return len(c.values)
}
