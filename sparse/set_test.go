package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiger-punch-sports-club/ecsreg/sparse"
)

func identitySet() *sparse.Set[uint32] {
	return sparse.NewSet(func(v uint32) uint32 { return v })
}

func TestSetInsertHasErase(t *testing.T) {
	s := identitySet()

	ok, err := s.Insert(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, s.Has(5))
	require.Equal(t, 1, s.Len())

	ok, err = s.Insert(5)
	require.NoError(t, err)
	require.False(t, ok, "duplicate insert must report false")

	require.True(t, s.Erase(5))
	require.False(t, s.Has(5))
	require.Equal(t, 0, s.Len())
	require.False(t, s.Erase(5), "erase of absent value is a no-op false")
}

// TestSetBijection exercises invariant S1/S2: after every op, every live
// value v satisfies sparse[v] < size && dense[sparse[v]] == v.
func TestSetBijection(t *testing.T) {
	s := identitySet()
	live := map[uint32]bool{}

	ops := []struct {
		insert bool
		v      uint32
	}{
		{true, 3}, {true, 1}, {true, 9}, {true, 0},
		{false, 1}, {true, 1}, {true, 100},
		{false, 3}, {false, 9}, {true, 9},
	}

	for _, op := range ops {
		if op.insert {
			if _, err := s.Insert(op.v); err != nil {
				t.Fatalf("insert(%d): %v", op.v, err)
			}
			live[op.v] = true
		} else {
			s.Erase(op.v)
			delete(live, op.v)
		}

		require.Equal(t, len(live), s.Len())
		for v := range live {
			pos, ok := s.Find(v)
			require.True(t, ok, "value %d should be found", v)
			require.Less(t, pos, s.Len())
			require.Equal(t, v, s.Dense()[pos])
		}
	}
}

func TestSetEraseIsUnorderedButPreservesOthers(t *testing.T) {
	s := identitySet()
	for _, v := range []uint32{10, 20, 30, 40} {
		if _, err := s.Insert(v); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	require.True(t, s.Erase(20))
	require.Equal(t, 3, s.Len())
	require.False(t, s.Has(20))
	for _, v := range []uint32{10, 30, 40} {
		require.True(t, s.Has(v))
	}
}

func TestSetByKeyReconstructsOccupant(t *testing.T) {
	type handle struct {
		index uint32
		gen   uint32
	}
	s := sparse.NewSet(func(h handle) uint32 { return h.index })

	h := handle{index: 4, gen: 7}
	if _, err := s.Insert(h); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok := s.ByKey(4)
	require.True(t, ok)
	require.Equal(t, h, got)

	_, ok = s.ByKey(5)
	require.False(t, ok, "unoccupied key must report absent")
}

func TestSetReserveCapsAtMaxSize(t *testing.T) {
	s := identitySet()
	s.SetMaxSize(4)

	for _, v := range []uint32{0, 1, 2, 3} {
		if _, err := s.Insert(v); err != nil {
			t.Fatalf("insert(%d): %v", v, err)
		}
	}

	_, err := s.Insert(4)
	require.Error(t, err, "inserting past max size must fail")
	require.Equal(t, 4, s.Len(), "failed insert must not touch size")
}

func TestSetClearDoesNotReleaseCapacity(t *testing.T) {
	s := identitySet()
	for _, v := range []uint32{1, 2, 3} {
		if _, err := s.Insert(v); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	capBefore := s.Cap()
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.Equal(t, capBefore, s.Cap())
	require.False(t, s.Has(1))
}
