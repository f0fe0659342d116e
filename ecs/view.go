package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View reads entities through a struct type T. Every pointer field of T
// names a component: embedded fields are required, named fields may be
// marked `ecs:"optional"` and are nil when the entity lacks the component.
// A field of type EntityId receives the entity's id.
//
//	type falling struct {
//		ID EntityId
//		*Position
//		Speed *Velocity `ecs:"optional"`
//	}
type View[T any] struct {
	storage *Storage
	fields  []viewField

	idOffset uintptr
	hasId    bool
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// NewView builds a view over storage. It panics if T is not a valid view struct.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: View field " + field.Name + " must be a component pointer or EntityId")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" {
			if tag != "optional" || field.Anonymous {
				panic("ecs: invalid ecs tag on " + field.Name + ": \"" + tag + "\"")
			}
			optional = true
		}

		v.fields = append(v.fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}
	return v
}

// matches reports whether the archetype has every required component.
func (v *View[T]) matches(a *Archetype) bool {
	for _, f := range v.fields {
		if !f.optional && !a.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

// columns maps each view field to the archetype's column index, or -1.
func (v *View[T]) columns(a *Archetype) []int {
	cols := make([]int, len(v.fields))
	for i, f := range v.fields {
		cols[i] = a.columnIndex(f.typ)
	}
	return cols
}

func (v *View[T]) fill(dst *T, a *Archetype, row int, cols []int) {
	base := unsafe.Pointer(dst)
	for i, f := range v.fields {
		field := (*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if cols[i] < 0 {
			*field = nil
			continue
		}
		*field = a.pointer(row, cols[i])
	}
	if v.hasId {
		*(*EntityId)(unsafe.Add(base, v.idOffset)) = a.entities[row]
	}
}

// Get returns the view of one entity, or nil if it does not exist or lacks a
// required component.
func (v *View[T]) Get(id EntityId) *T {
	loc, ok := v.storage.locations.Get(id)
	if !ok || !v.matches(loc.archetype) {
		return nil
	}

	var result T
	v.fill(&result, loc.archetype, loc.row, v.columns(loc.archetype))
	return &result
}

// Iter yields every matching entity. Component pointers are valid until the
// next structural change to the storage.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, a := range v.storage.order {
			if a.Len() == 0 || !v.matches(a) {
				continue
			}

			cols := v.columns(a)
			var result T
			for row := range a.Len() {
				v.fill(&result, a, row, cols)
				if !yield(a.entities[row], result) {
					return
				}
			}
		}
	}
}

// Values yields the matching views without their ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
