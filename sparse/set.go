// Package sparse implements the sparse-set and sparse-map primitives that
// back ecsreg's entity-id allocator and component storages: two parallel
// arrays giving O(1) insert/erase/membership with contiguous dense
// iteration. See ecs.hpp's detail::sparse_set / detail::sparse_map, which
// this package generalizes with Go generics in place of C++ templates.
package sparse

import "github.com/rotisserie/eris"

// ErrCapacityExceeded is returned by Reserve (and, transitively, Insert) when
// growing a sparse container would exceed its configured maximum size.
var ErrCapacityExceeded = eris.New("sparse: capacity exceeded")

// Indexer maps a value to the non-negative integer key used to address it in
// the sparse array. ecsreg uses the entity index as the indexer for the
// live-entity set, and the identity function for maps already keyed by a
// raw uint32 (component storages, the family-id table).
type Indexer[T any] func(v T) uint32

// Set is a sparse set of values of type T, addressed through an Indexer.
// The zero value is not usable; construct with NewSet.
type Set[T comparable] struct {
	indexer Indexer[T]
	dense   []T
	sparse  []uint32
	size    int
	maxSize uint32
}

// defaultMaxSize caps growth when the caller never calls SetMaxSize. It
// matches the 22-bit entity index space ecsreg's allocator uses, which is
// the tightest real constraint any Set in this module operates under.
const defaultMaxSize = 1 << 22

// NewSet constructs an empty sparse set using indexer to map values to keys.
func NewSet[T comparable](indexer Indexer[T]) *Set[T] {
	return &Set[T]{indexer: indexer, maxSize: defaultMaxSize}
}

// SetMaxSize overrides the growth ceiling used by Reserve/Insert. Call
// before any insertions; it does not shrink existing capacity.
func (s *Set[T]) SetMaxSize(max uint32) {
	s.maxSize = max
}

// Len reports the number of live entries.
func (s *Set[T]) Len() int { return s.size }

// Cap reports the current backing capacity.
func (s *Set[T]) Cap() int { return len(s.dense) }

// Has reports whether v is present, per invariant S1: sparse[v] < size and
// dense[sparse[v]] == v. The value-equality guard rejects stale slots left
// behind by erase, which never clears sparse.
func (s *Set[T]) Has(v T) bool {
	k := s.indexer(v)
	return int(k) < len(s.sparse) &&
		s.sparse[k] < uint32(s.size) &&
		s.dense[s.sparse[k]] == v
}

// Find returns the dense position of v and true if present, or (0, false).
func (s *Set[T]) Find(v T) (int, bool) {
	k := s.indexer(v)
	if int(k) >= len(s.sparse) {
		return 0, false
	}
	pos := s.sparse[k]
	if pos >= uint32(s.size) || s.dense[pos] != v {
		return 0, false
	}
	return int(pos), true
}

// ByKey returns the live value currently occupying key, without requiring
// the caller to already know the full value. This is what lets a registry
// reconstruct a live Entity (index + current generation) from a bare
// component index during joined iteration.
func (s *Set[T]) ByKey(key uint32) (T, bool) {
	var zero T
	if int(key) >= len(s.sparse) {
		return zero, false
	}
	pos := s.sparse[key]
	if pos >= uint32(s.size) || s.indexer(s.dense[pos]) != key {
		return zero, false
	}
	return s.dense[pos], true
}

// Insert adds v if not already present. Returns (true, nil) on insertion,
// (false, nil) if v was already present, or (false, err) if growing the
// backing arrays would exceed the configured max size.
func (s *Set[T]) Insert(v T) (bool, error) {
	if s.Has(v) {
		return false, nil
	}
	k := s.indexer(v)
	if k >= uint32(len(s.sparse)) {
		if err := s.Reserve(k + 1); err != nil {
			return false, err
		}
	}
	s.dense[s.size] = v
	s.sparse[k] = uint32(s.size)
	s.size++
	return true, nil
}

// Erase removes v if present, via swap-and-pop: the last dense entry is
// moved into v's slot and the sparse array is repointed. Erase is
// unordered — it does not preserve the relative order of remaining
// entries. Returns true iff v was present.
func (s *Set[T]) Erase(v T) bool {
	pos, ok := s.Find(v)
	if !ok {
		return false
	}
	last := s.size - 1
	moved := s.dense[last]
	s.dense[pos] = moved
	s.sparse[s.indexer(moved)] = uint32(pos)
	s.size--
	return true
}

// Clear empties the set without releasing backing capacity.
func (s *Set[T]) Clear() {
	s.size = 0
}

// Dense returns the live prefix of the dense array, in the order shaped by
// insertions and swap-and-pop erasures. The slice is owned by the Set and
// is only valid until the next mutating call.
func (s *Set[T]) Dense() []T {
	return s.dense[:s.size]
}

// Reserve grows the backing arrays so that needed keys fit, doubling
// capacity (per ecs.hpp's new_capacity_for_) up to the configured max size.
// It is strongly exception-safe: the two arrays either both grow to equal
// length, or neither is modified.
func (s *Set[T]) Reserve(needed uint32) error {
	if needed <= uint32(len(s.dense)) {
		return nil
	}
	if needed > s.maxSize {
		return eris.Wrapf(ErrCapacityExceeded, "need %d, max %d", needed, s.maxSize)
	}
	newCap := uint32(len(s.dense)) * 2
	if newCap < needed {
		newCap = needed
	}
	if newCap > s.maxSize {
		newCap = s.maxSize
	}
	dense := make([]T, newCap)
	sp := make([]uint32, newCap)
	copy(dense, s.dense)
	copy(sp, s.sparse)
	s.dense = dense
	s.sparse = sp
	return nil
}
