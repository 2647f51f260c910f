package sparse

import "github.com/rotisserie/eris"

// Map is a sparse set of uint32 keys with a parallel dense array of values,
// giving O(1) insert/erase/lookup plus contiguous dense iteration over both
// keys and values. ecsreg keys typed component storages by entity index and
// the storage table by family id. See ecs.hpp's detail::sparse_map.
type Map[V any] struct {
	keys    Set[uint32]
	values  []V
	maxSize uint32
}

// NewMap constructs an empty sparse map.
func NewMap[V any]() *Map[V] {
	m := &Map[V]{maxSize: defaultMaxSize}
	m.keys = Set[uint32]{indexer: identity, maxSize: defaultMaxSize}
	return m
}

func identity(v uint32) uint32 { return v }

// SetMaxSize overrides the growth ceiling. Call before any insertions.
func (m *Map[V]) SetMaxSize(max uint32) {
	m.maxSize = max
	m.keys.maxSize = max
}

// Len reports the number of live entries.
func (m *Map[V]) Len() int { return m.keys.Len() }

// Has reports whether key is present.
func (m *Map[V]) Has(key uint32) bool { return m.keys.Has(key) }

// Get returns the value paired with key, and whether key was present.
func (m *Map[V]) Get(key uint32) (V, bool) {
	pos, ok := m.keys.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[pos], true
}

// GetPtr returns a pointer into the dense value array for key, valid until
// the next mutating call on the map. Returns nil if key is absent.
func (m *Map[V]) GetPtr(key uint32) *V {
	pos, ok := m.keys.Find(key)
	if !ok {
		return nil
	}
	return &m.values[pos]
}

// GetIndex returns the dense position of key. Absent keys are a caller
// precondition violation — spec §7's component-not-found / "get_index on an
// absent sparse-map key" kind.
func (m *Map[V]) GetIndex(key uint32) (int, error) {
	pos, ok := m.keys.Find(key)
	if !ok {
		return 0, eris.Wrapf(ErrKeyNotFound, "key %d", key)
	}
	return pos, nil
}

// Insert adds key/value if key is not already present. Returns (true, nil)
// on insertion, (false, nil) if key was already present (value untouched —
// callers that want overwrite semantics should erase first or use a typed
// storage's assign), or (false, err) on capacity exhaustion.
//
// Exception safety: if recording the key fails, the value is never pushed,
// so the two arrays never end up with mismatched logical length.
func (m *Map[V]) Insert(key uint32, value V) (bool, error) {
	if m.keys.Has(key) {
		return false, nil
	}
	if err := m.reserve(key + 1); err != nil {
		return false, err
	}
	inserted, err := m.keys.Insert(key)
	if err != nil {
		return false, err
	}
	if !inserted {
		// Has() above already ruled this out; defensive, not expected.
		return false, nil
	}
	m.values[m.keys.size-1] = value
	return true, nil
}

// Erase removes key via swap-and-pop on both the key set and the value
// array. Returns true iff key was present.
func (m *Map[V]) Erase(key uint32) bool {
	pos, ok := m.keys.Find(key)
	if !ok {
		return false
	}
	last := m.keys.size - 1
	m.values[pos] = m.values[last]
	m.keys.Erase(key)
	return true
}

// Clear empties the map without releasing backing capacity.
func (m *Map[V]) Clear() {
	m.keys.Clear()
}

// Keys returns the live prefix of the dense key array, in dense order.
func (m *Map[V]) Keys() []uint32 {
	return m.keys.Dense()
}

// Values returns the live prefix of the dense value array, parallel to
// Keys(), in the same dense order.
func (m *Map[V]) Values() []V {
	return m.values[:m.keys.size]
}

func (m *Map[V]) reserve(needed uint32) error {
	if needed <= uint32(len(m.values)) {
		return nil
	}
	if needed > m.maxSize {
		return eris.Wrapf(ErrCapacityExceeded, "need %d, max %d", needed, m.maxSize)
	}
	newCap := uint32(len(m.values)) * 2
	if newCap < needed {
		newCap = needed
	}
	if newCap > m.maxSize {
		newCap = m.maxSize
	}
	values := make([]V, newCap)
	copy(values, m.values)
	m.values = values
	return nil
}

// ErrKeyNotFound is returned by GetIndex for an absent key.
var ErrKeyNotFound = eris.New("sparse: key not found")
