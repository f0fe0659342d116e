package ecs

import (
	"reflect"
	"slices"
	"strings"
	"unsafe"
)

// Archetype holds every entity with one exact set of component types.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	columns  []column
	entities []EntityId
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for i, typ := range types {
		a.columns[i] = registry.newColumn(typ)
	}
	return a
}

// ID returns the archetype's hash of its component types.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types, sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of entities stored.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns the stored entity ids in row order. The slice must not be
// modified.
func (a *Archetype) Entities() []EntityId {
	return a.entities
}

// HasComponent reports whether the archetype stores compType.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

func (a *Archetype) String() string {
	names := make([]string, len(a.types))
	for i, t := range a.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// push appends an entity row. components must hold exactly one value per
// archetype type, in any order.
func (a *Archetype) push(id EntityId, components []any) int {
	for _, comp := range components {
		a.columns[a.columnIndex(componentType(comp))].push(comp)
	}
	a.entities = append(a.entities, id)
	return len(a.entities) - 1
}

// remove deletes a row by moving the last row into it. It returns the id of
// the entity that now occupies row, if any moved.
func (a *Archetype) remove(row int) (EntityId, bool) {
	last := len(a.entities) - 1
	for _, col := range a.columns {
		col.swapRemove(row)
	}

	moved := a.entities[last]
	a.entities[row] = moved
	a.entities = a.entities[:last]

	return moved, row != last
}

func (a *Archetype) get(row int, compType reflect.Type) any {
	idx := a.columnIndex(compType)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].get(row)
}

func (a *Archetype) pointer(row, col int) unsafe.Pointer {
	return a.columns[col].pointer(row)
}
