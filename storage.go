package ecs

import "github.com/tiger-punch-sports-club/ecsreg/sparse"

// erasedStorage is the type-blind interface the registry dispatches bulk
// operations through — what makes RemoveAllComponents work without knowing
// any concrete component type. Per spec §4.4, every typed storage exposes
// exactly these two operations behind the erasure.
type erasedStorage interface {
	remove(index uint32) bool
	exists(index uint32) bool
}

// storage[T] is the one-per-component-type backing store: a sparse map
// keyed by the index part of the entity id (not the full id — generation is
// carried by the registry's live-entity set, so a component never needs to
// know it, per spec §3's storage rationale).
type storage[T any] struct {
	data *sparse.Map[T]
}

func newStorage[T any]() *storage[T] {
	return &storage[T]{data: sparse.NewMap[T]()}
}

// assign constructs or overwrites the component at index. Overwrite is
// mandatory per spec §4.4 — re-assigning never silently keeps the old
// value.
func (s *storage[T]) assign(index uint32, value T) error {
	inserted, err := s.data.Insert(index, value)
	if err != nil {
		return err
	}
	if !inserted {
		*s.data.GetPtr(index) = value
	}
	return nil
}

func (s *storage[T]) remove(index uint32) bool {
	return s.data.Erase(index)
}

func (s *storage[T]) exists(index uint32) bool {
	return s.data.Has(index)
}

func (s *storage[T]) find(index uint32) *T {
	return s.data.GetPtr(index)
}

func (s *storage[T]) len() int {
	return s.data.Len()
}

// forEach visits every (index, *component) pair in dense order. The
// visitor may mutate the component in place; it must not add or remove
// entries in this storage (spec §4.6's mutation-during-iteration contract).
func (s *storage[T]) forEach(fn func(index uint32, c *T) bool) {
	keys := s.data.Keys()
	values := s.data.Values()
	for i := range keys {
		if !fn(keys[i], &values[i]) {
			return
		}
	}
}
