package ecs

// Entity is a lightweight, non-owning handle: a registry identity plus a
// packed (index, generation) id. Holding one is never a memory-safety
// hazard — a stale handle simply fails IsAlive. Entities are cheap to copy
// and outlive nothing; per spec §9, the registry pointer here is never used
// to extend the registry's lifetime.
type Entity struct {
	owner *Registry
	id    id
}

// Nil is the zero Entity: it never refers to a live entity in any registry.
var Nil Entity

// Equal reports whether two handles reference the same registry (by
// identity) and carry the same id, per spec §6.
func (e Entity) Equal(other Entity) bool {
	return e.owner == other.owner && e.id == other.id
}

// Index returns the recyclable index part of the entity's id.
func (e Entity) Index() uint32 {
	return indexOf(e.id)
}

// Generation returns the generation counter that distinguishes reuses of
// the same index.
func (e Entity) Generation() uint32 {
	return generationOf(e.id)
}

// IsAlive reports whether e currently refers to a live entity in its owning
// registry. A zero Entity, or one from a different registry, is never
// alive.
func (e Entity) IsAlive() bool {
	return e.owner != nil && e.owner.IsAlive(e)
}
