package ecs

// id is the packed (index, generation) pair spec §3 calls the entity id: a
// 32-bit value with a 22-bit index in the low bits and a 10-bit generation
// in the high bits. id(0) is the reserved null id and is never allocated.
type id uint32

const (
	indexBits = 22
	indexMask = 1<<indexBits - 1

	genBits = 10
	genMask = 1<<genBits - 1

	// maxIndex is the highest index create can hand out (spec §3: index
	// ≤ 2²²−1).
	maxIndex = indexMask
)

func indexOf(v id) uint32 {
	return uint32(v) & indexMask
}

func generationOf(v id) uint32 {
	return (uint32(v) >> indexBits) & genMask
}

// joinID composes an id from its parts. Generation wraps modulo 2^10 per
// spec §4.2 — a slot can be reused indefinitely; ecsreg documents this
// rather than widening the field, matching ecs.hpp's entity_id_join.
func joinID(index, generation uint32) id {
	return id((generation&genMask)<<indexBits | (index & indexMask))
}
