package ecs

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns all entities, their components and the singletons of one world.
type Storage struct {
	registry   *ComponentRegistry
	archetypes map[uint32]*Archetype
	// order lists archetypes by creation so iteration is deterministic.
	order      []*Archetype
	locations  *intmap.Map[EntityId, location]
	singletons map[reflect.Type]any
	lastId     EntityId
}

// NewStorage creates an empty world for the component types in registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: make(map[uint32]*Archetype),
		locations:  intmap.New[EntityId, location](256),
		singletons: make(map[reflect.Type]any),
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from component values (or pointers to them, which
// are copied). Each component type may appear once.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	archetype := s.archetypeFor(extractComponentTypes(components))

	s.lastId++
	id := s.lastId
	row := archetype.push(id, components)
	s.locations.Put(id, location{archetype: archetype, row: row})
	return id
}

// Delete removes an entity and all of its components. It reports whether the
// entity existed.
func (s *Storage) Delete(id EntityId) bool {
	loc, ok := s.locations.Get(id)
	if !ok {
		return false
	}

	if moved, ok := loc.archetype.remove(loc.row); ok {
		s.locations.Put(moved, location{archetype: loc.archetype, row: loc.row})
	}
	s.locations.Del(id)
	return true
}

// Alive reports whether id refers to an existing entity.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.locations.Get(id)
	return ok
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.locations.Len()
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// GetComponent returns a pointer to the entity's component of compType, or
// nil if the entity does not exist or lacks the component.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	loc, ok := s.locations.Get(id)
	if !ok {
		return nil
	}
	return loc.archetype.get(loc.row, compType)
}

// HasComponent reports whether the entity has a component of compType.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	loc, ok := s.locations.Get(id)
	return ok && loc.archetype.HasComponent(compType)
}

// AddSingleton stores a world-wide component that belongs to no entity. If a
// singleton of the same type exists its value is overwritten in place, so
// pointers handed out earlier stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if existing, ok := s.singletons[v.Type()]; ok {
		reflect.ValueOf(existing).Elem().Set(v)
		return
	}

	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr.Interface()
}

func (s *Storage) getSingleton(t reflect.Type) any {
	return s.singletons[t]
}

// ReadSingleton returns the singleton of type T, or nil if none was added.
func ReadSingleton[T any](s *Storage) *T {
	ptr, _ := s.getSingleton(reflect.TypeFor[T]()).(*T)
	return ptr
}

// ComponentReader is implemented by Storage.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	ptr, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return ptr
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	for {
		archetype, ok := s.archetypes[id]
		if !ok {
			archetype = newArchetype(id, types, s.registry)
			s.archetypes[id] = archetype
			s.order = append(s.order, archetype)
			return archetype
		}
		if slices.Equal(archetype.types, types) {
			return archetype
		}
		// hash collision, probe the next id
		id++
	}
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes returns the sorted component types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)

		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
			panic("ecs: components cannot be pointers, maps, channels, or functions")
		}
		if slices.Contains(types, t) {
			panic(fmt.Sprintf("ecs: duplicate component %s", t))
		}
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// hashTypes is FNV-1a over the runtime type pointers of a sorted type list.
func hashTypes(types []reflect.Type) uint32 {
	const prime uint32 = 16777619
	h := uint32(2166136261)

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		h ^= uint32(ptr) ^ uint32(uint64(ptr)>>32)
		h *= prime
	}
	return h
}
