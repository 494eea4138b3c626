package robinhood

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/robinhood/pkg/hash"
)

// randomOps drives m and an insertion ordered reference map through the
// same random inserts, erases and lookups, checking the slot table after
// every step.
func randomOps(t *testing.T, m *Map[int, int], seed int64, ops, keySpace int) {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	ref := linkedhashmap.New()
	for op := 0; op < ops; op++ {
		k := rnd.Intn(keySpace)
		switch r := rnd.Intn(10); {
		case r < 5:
			_, present := ref.Get(k)
			if !present {
				ref.Put(k, op)
			}
			require.Equal(t, !present, m.Insert(k, op), "op %d insert %d", op, k)
			require.Less(t, 3*m.Len(), 2*m.Cap(), "op %d", op)
		case r < 8:
			_, present := ref.Get(k)
			ref.Remove(k)
			require.Equal(t, present, m.Erase(k), "op %d erase %d", op, k)
		default:
			want, present := ref.Get(k)
			got, ok := m.Get(k)
			require.Equal(t, present, ok, "op %d find %d", op, k)
			if present {
				require.Equal(t, want, got, "op %d find %d", op, k)
			}
		}
		require.NoError(t, m.checkInvariants(), "op %d", op)
		require.Equal(t, ref.Size(), m.Len(), "op %d", op)
	}
	var want []int
	for _, k := range ref.Keys() {
		want = append(want, k.(int))
	}
	require.Equal(t, want, slices.Collect(m.Keys()))
}

func TestMap_RandomOps(t *testing.T) {
	tests := []struct {
		name     string
		hasher   hash.Func[int]
		growth   int
		initial  int
		keySpace int
	}{
		{"identity", identity, DefaultGrowthFactor, 1, 64},
		{"identity-double", identity, 2, 1, 256},
		{"default", hash.Default[int](), DefaultGrowthFactor, 1, 512},
		// every key lands in one of three home slots
		{"collide", func(k int) uint64 { return uint64(k % 3) }, 2, 1, 96},
		// homes bunch up at the end of the table so runs wrap around
		{"wrap", func(k int) uint64 { return ^uint64(0) - uint64(k%5) }, 2, 8, 128},
		{"constant", func(int) uint64 { return 7 }, 3, 1, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 4; seed++ {
				m := New[int, int](
					WithHasher(tt.hasher),
					WithGrowthFactor[int](tt.growth),
					WithInitialCapacity[int](tt.initial),
				)
				randomOps(t, m, seed, 2000, tt.keySpace)
			}
		})
	}
}

func TestMap_RandomOpsAfterClone(t *testing.T) {
	m := New[int, int](WithHasher(identity))
	randomOps(t, m, 7, 1000, 100)
	c := m.Clone()
	require.NoError(t, c.checkInvariants())
	require.Equal(t, slices.Collect(m.Keys()), slices.Collect(c.Keys()))
}

func TestMap_EraseEverything(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 5000; i++ {
		m.Insert(makeKey(i), i)
	}
	rnd := rand.New(rand.NewSource(42))
	for _, i := range rnd.Perm(5000) {
		require.True(t, m.Erase(makeKey(i)))
		if i%250 == 0 {
			require.NoError(t, m.checkInvariants())
		}
	}
	require.True(t, m.Empty())
	require.Equal(t, 0, m.Stats().MaxDisplacement)
	require.NoError(t, m.checkInvariants())
}
