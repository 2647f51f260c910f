package ecs

import (
	"github.com/tiger-punch-sports-club/ecsreg/sparse"
)

// Registry owns the entity-id set, the table of typed storages, and
// implements single-type and joined iteration per spec §3/§4.5/§4.6. It is
// the sole collaborator external systems hold a reference to (spec §1) and
// is not safe for concurrent use from multiple goroutines (spec §5).
type Registry struct {
	lastIndex uint32
	free      []id
	live      *sparse.Set[id]
	storages  *sparse.Map[erasedStorage]
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		live:     sparse.NewSet(indexOf),
		storages: sparse.NewMap[erasedStorage](),
	}
	r.live.SetMaxSize(maxIndex + 1)
	return r
}

// CreateEntity allocates a fresh entity, recycling a freed index slot with a
// bumped generation when one is available, per spec §4.2.
func (r *Registry) CreateEntity() (Entity, error) {
	if n := len(r.free); n > 0 {
		freed := r.free[n-1]
		newID := joinID(indexOf(freed), generationOf(freed)+1)
		if _, err := r.live.Insert(newID); err != nil {
			return Entity{}, err
		}
		r.free = r.free[:n-1]
		return Entity{owner: r, id: newID}, nil
	}
	if r.lastIndex < maxIndex {
		r.lastIndex++
		newID := joinID(r.lastIndex, 0)
		if _, err := r.live.Insert(newID); err != nil {
			r.lastIndex--
			return Entity{}, err
		}
		return Entity{owner: r, id: newID}, nil
	}
	return Entity{}, ErrIndexSpaceExhausted
}

// DestroyEntity removes every component of e (guarded on e being alive —
// see SPEC_FULL.md's Open Question resolution) and frees its index slot for
// future reuse. Returns true iff e was alive.
func (r *Registry) DestroyEntity(e Entity) bool {
	if e.owner != r || !r.live.Has(e.id) {
		return false
	}
	r.removeAllComponentsByIndex(indexOf(e.id))
	r.live.Erase(e.id)
	r.free = append(r.free, e.id)
	return true
}

// IsAlive reports whether e refers to a currently live entity in r. A
// stale-generation handle fails this test via the sparse set's
// value-equality guard (invariant S1), as does an Entity from another
// registry.
func (r *Registry) IsAlive(e Entity) bool {
	return e.owner == r && r.live.Has(e.id)
}

// entityAt reconstructs the live Entity currently occupying index, used
// during joined iteration to turn a bare component index back into a
// handle carrying the current generation.
func (r *Registry) entityAt(index uint32) (Entity, bool) {
	v, ok := r.live.ByKey(index)
	if !ok {
		return Entity{}, false
	}
	return Entity{owner: r, id: v}, true
}

func (r *Registry) storageFor(family uint32) (erasedStorage, bool) {
	return r.storages.Get(family)
}

func getStorage[T any](r *Registry) (*storage[T], bool) {
	erased, ok := r.storageFor(familyID[T]())
	if !ok {
		return nil, false
	}
	return erased.(*storage[T]), true
}

func getOrCreateStorage[T any](r *Registry) (*storage[T], error) {
	family := familyID[T]()
	if erased, ok := r.storageFor(family); ok {
		return erased.(*storage[T]), nil
	}
	s := newStorage[T]()
	if _, err := r.storages.Insert(family, s); err != nil {
		return nil, err
	}
	return s, nil
}

// AssignComponent constructs or overwrites T on e. Returns (false, nil) if
// e is not alive; the storage is lazily created on this write path (read
// paths never create one, per spec §4.5/§9).
func AssignComponent[T any](r *Registry, e Entity, value T) (bool, error) {
	if !r.IsAlive(e) {
		return false, nil
	}
	s, err := getOrCreateStorage[T](r)
	if err != nil {
		return false, err
	}
	if err := s.assign(indexOf(e.id), value); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveComponent removes T from e. False if e is not alive, T has no
// storage at all, or e has no T.
func RemoveComponent[T any](r *Registry, e Entity) bool {
	if !r.IsAlive(e) {
		return false
	}
	s, ok := getStorage[T](r)
	if !ok {
		return false
	}
	return s.remove(indexOf(e.id))
}

// ExistsComponent reports whether e is alive and has a T.
func ExistsComponent[T any](r *Registry, e Entity) bool {
	if !r.IsAlive(e) {
		return false
	}
	s, ok := getStorage[T](r)
	if !ok {
		return false
	}
	return s.exists(indexOf(e.id))
}

// GetComponent returns a pointer to e's T, or ErrComponentNotFound if e is
// dead or lacks the component (spec §7's one routinely-failing get_* form).
func GetComponent[T any](r *Registry, e Entity) (*T, error) {
	if p, ok := FindComponent[T](r, e); ok {
		return p, nil
	}
	return nil, ErrComponentNotFound
}

// FindComponent returns a pointer to e's T and true, or (nil, false) if e is
// dead or lacks the component. Never an error — a routine absence result.
func FindComponent[T any](r *Registry, e Entity) (*T, bool) {
	if !r.IsAlive(e) {
		return nil, false
	}
	s, ok := getStorage[T](r)
	if !ok {
		return nil, false
	}
	p := s.find(indexOf(e.id))
	return p, p != nil
}

// ForEachComponent visits every (Entity, *T) pair in T's storage, in dense
// order. Absent storage means zero visits. The visitor returning false
// stops iteration early.
func ForEachComponent[T any](r *Registry, fn func(Entity, *T) bool) {
	s, ok := getStorage[T](r)
	if !ok {
		return
	}
	s.forEach(func(index uint32, c *T) bool {
		e, ok := r.entityAt(index)
		if !ok {
			return true
		}
		return fn(e, c)
	})
}

// RemoveAllComponents removes every component e has across every storage,
// returning the count removed. It is a no-op returning 0 when e is not
// alive — SPEC_FULL.md's resolution of the source's ambiguity here, chosen
// because ecs.hpp's registry::remove_all_components_impl_ guards on
// is_entity_alive_impl_ before touching any storage.
func (r *Registry) RemoveAllComponents(e Entity) int {
	if e.owner != r || !r.live.Has(e.id) {
		return 0
	}
	return r.removeAllComponentsByIndex(indexOf(e.id))
}

func (r *Registry) removeAllComponentsByIndex(index uint32) int {
	removed := 0
	for _, s := range r.storages.Values() {
		if s.remove(index) {
			removed++
		}
	}
	return removed
}
