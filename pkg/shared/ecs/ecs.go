package ecs

import (
	"reflect"
	"slices"
)

// Entity is a unique identifier for a game object.
type Entity uint64

// System is logic that runs once per frame. now is the frame's clock reading.
type System interface {
	Update(now int64) error
}

// Component is a marker interface for data attached to entities.
type Component interface{}

// World manages entities and their components. Not safe for concurrent use;
// the frame loop owns it.
type World struct {
	nextEntityID uint64
	// components maps ComponentType -> EntityID -> Component
	components map[reflect.Type]map[Entity]Component
	systems    []System
}

func NewWorld() *World {
	return &World{
		components: make(map[reflect.Type]map[Entity]Component),
		systems:    make([]System, 0),
	}
}

// NewEntity creates a new entity with a unique ID.
func (w *World) NewEntity() Entity {
	w.nextEntityID++
	return Entity(w.nextEntityID)
}

// RemoveEntity removes all components associated with an entity.
func (w *World) RemoveEntity(e Entity) {
	for _, store := range w.components {
		delete(store, e)
	}
}

// AddComponent attaches a component to an entity, replacing one of the same type.
func (w *World) AddComponent(e Entity, c Component) {
	cType := reflect.TypeOf(c)
	if _, ok := w.components[cType]; !ok {
		w.components[cType] = make(map[Entity]Component)
	}
	w.components[cType][e] = c
}

// RemoveComponent removes the component of c's type from an entity.
func (w *World) RemoveComponent(e Entity, c Component) {
	if store, ok := w.components[reflect.TypeOf(c)]; ok {
		delete(store, e)
	}
}

// GetComponent retrieves the component of type T for an entity.
// Store pointers to get mutable components back.
func GetComponent[T Component](w *World, e Entity) (T, bool) {
	var zero T
	if store, ok := w.components[reflect.TypeOf(zero)]; ok {
		if val, ok := store[e]; ok {
			return val.(T), true
		}
	}
	return zero, false
}

// AddSystem appends a system; systems run in insertion order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Update runs every system, stopping at the first error.
func (w *World) Update(now int64) error {
	for _, system := range w.systems {
		if err := system.Update(now); err != nil {
			return err
		}
	}
	return nil
}

// Query returns the entities that have a component of type T, in creation order.
func Query[T Component](w *World) []Entity {
	var zero T
	var entities []Entity
	if store, ok := w.components[reflect.TypeOf(zero)]; ok {
		for e := range store {
			entities = append(entities, e)
		}
	}
	slices.Sort(entities)
	return entities
}
