package ordmap

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/LeJamon/ordmap/internal/core/rbtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruit() *Map[string, int] {
	return FromPairs(
		MakePair("apple", 5),
		MakePair("banana", 3),
		MakePair("cherry", 7),
	)
}

// entries walks the map with an iterator from Begin to End.
func entries[K any, V any](m *Map[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		out = append(out, it.Pair())
	}
	return out
}

func TestScenarios(t *testing.T) {
	t.Run("A_InsertAndAt", func(t *testing.T) {
		m := fruit()
		assert.Equal(t, 3, m.Len())
		v, err := m.At("banana")
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("B_IndexCreates", func(t *testing.T) {
		m := New[string, int]()
		*m.Index("date") = 9
		assert.Equal(t, 1, m.Len())
		it := m.Find("date")
		require.False(t, it.Equal(m.End()))
		assert.Equal(t, 9, it.Value())
	})

	t.Run("C_SortedInsertStaysShallow", func(t *testing.T) {
		m := New[int, int]()
		for i := 1; i <= 1000; i++ {
			m.Insert(MakePair(i, i))
		}
		assert.LessOrEqual(t, m.Height(), rbtree.MaxHeight(1000))
		require.NoError(t, m.Invariants())
	})

	t.Run("D_EraseKey", func(t *testing.T) {
		m := fruit()
		assert.Equal(t, 1, m.EraseKey("apple"))
		assert.True(t, m.Find("apple").Equal(m.End()))
		assert.Equal(t, 0, m.EraseKey("apple"))
		assert.Equal(t, 0, m.EraseKey("durian"))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("E_CloneIsolation", func(t *testing.T) {
		orig := fruit()
		cp := orig.Clone()
		*cp.Index("banana") = 100
		cp.EraseKey("apple")
		cp.Insert(MakePair("fig", 1))

		assert.Equal(t, []Pair[string, int]{
			{"apple", 5}, {"banana", 3}, {"cherry", 7},
		}, entries(orig))
		assert.Equal(t, []Pair[string, int]{
			{"banana", 100}, {"cherry", 7}, {"fig", 1},
		}, entries(cp))
	})

	t.Run("F_TakeEmptiesSource", func(t *testing.T) {
		src := fruit()
		dst := src.Take()
		assert.Equal(t, 0, src.Len())
		assert.True(t, src.Empty())
		assert.Equal(t, []Pair[string, int]{
			{"apple", 5}, {"banana", 3}, {"cherry", 7},
		}, entries(dst))

		// the source stays usable
		src.Insert(MakePair("kiwi", 2))
		assert.Equal(t, 1, src.Len())
		assert.Equal(t, 3, dst.Len())
	})
}

func TestInsert(t *testing.T) {
	t.Run("Uniqueness", func(t *testing.T) {
		m := fruit()
		it, inserted := m.Insert(MakePair("banana", 42))
		assert.False(t, inserted)
		assert.Equal(t, 3, it.Value(), "existing value is kept")
		assert.Equal(t, 3, m.Len())
	})

	t.Run("IndexOnExistingKeepsSize", func(t *testing.T) {
		m := fruit()
		assert.Equal(t, 7, *m.Index("cherry"))
		assert.Equal(t, 3, m.Len())
	})

	t.Run("IndexDefaultsToZero", func(t *testing.T) {
		m := New[string, []string]()
		ref := m.Index("tags")
		assert.Nil(t, *ref)
		*ref = append(*ref, "x")
		*m.Index("tags") = append(*m.Index("tags"), "y")
		v, err := m.At("tags")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, v)
	})

	t.Run("FromPairsFirstWins", func(t *testing.T) {
		m := FromPairs(MakePair("a", 1), MakePair("b", 2), MakePair("a", 3))
		assert.Equal(t, 2, m.Len())
		v, _ := m.Lookup("a")
		assert.Equal(t, 1, v)
	})

	t.Run("Collect", func(t *testing.T) {
		src := map[string]int{"x": 1, "y": 2, "z": 3}
		m := Collect(maps.All(src))
		assert.Equal(t, []string{"x", "y", "z"}, slices.Collect(m.Keys()))
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(m.Values()))
	})

	t.Run("Range", func(t *testing.T) {
		src := New[int, string]()
		for i := 0; i < 10; i++ {
			*src.Index(i) = strings.Repeat("*", i)
		}
		m := NewRange(src.Find(3), src.Find(7), func(a, b int) int { return a - b })
		assert.Equal(t, []int{3, 4, 5, 6}, slices.Collect(m.Keys()))

		m.InsertRange(src.Find(8), src.End())
		assert.Equal(t, []int{3, 4, 5, 6, 8, 9}, slices.Collect(m.Keys()))
	})

	t.Run("CustomOrder", func(t *testing.T) {
		m := NewFunc[string, int](func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
		m.Insert(MakePair("Go", 1))
		_, inserted := m.Insert(MakePair("GO", 2))
		assert.False(t, inserted)
		assert.True(t, m.Contains("go"))
	})
}

func TestAccess(t *testing.T) {
	t.Run("AtMissing", func(t *testing.T) {
		m := fruit()
		_, err := m.At("durian")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrKeyNotFound))
		var keyErr *KeyError[string]
		require.True(t, errors.As(err, &keyErr))
		assert.Equal(t, "durian", keyErr.Key)
		assert.Equal(t, "ordmap: durian: key not found", err.Error())
		assert.Equal(t, 3, m.Len(), "At never inserts")
	})

	t.Run("AtRefMutates", func(t *testing.T) {
		m := fruit()
		ref, err := m.AtRef("apple")
		require.NoError(t, err)
		*ref += 10
		v, _ := m.At("apple")
		assert.Equal(t, 15, v)

		ref, err = m.AtRef("durian")
		assert.Nil(t, ref)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("LookupNeverInserts", func(t *testing.T) {
		m := fruit()
		v, ok := m.Lookup("durian")
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.Equal(t, 3, m.Len())

		v, ok = m.Lookup("cherry")
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("IteratorSetValue", func(t *testing.T) {
		m := fruit()
		it := m.Find("banana")
		it.SetValue(30)
		*it.Ref() += 1
		assert.Equal(t, "banana", it.Key())
		v, _ := m.At("banana")
		assert.Equal(t, 31, v)
	})

	t.Run("Bounds", func(t *testing.T) {
		m := fruit()
		assert.Equal(t, "banana", m.LowerBound("b").Key())
		assert.Equal(t, "cherry", m.UpperBound("banana").Key())
		assert.True(t, m.UpperBound("cherry").IsEnd())
	})
}

func TestErase(t *testing.T) {
	t.Run("IteratorReturnsSuccessor", func(t *testing.T) {
		m := fruit()
		next := m.Erase(m.Find("banana"))
		assert.Equal(t, "cherry", next.Key())
		assert.True(t, m.Erase(m.Find("cherry")).IsEnd())
		assert.True(t, m.Erase(m.End()).IsEnd())
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Range", func(t *testing.T) {
		m := New[int, int]()
		for i := 0; i < 20; i++ {
			*m.Index(i) = i * i
		}
		last := m.EraseRange(m.Find(5), m.Find(15))
		assert.Equal(t, 15, last.Key())
		assert.Equal(t, 10, m.Len())
		require.NoError(t, m.Invariants())

		m.EraseRange(m.Begin(), m.End())
		assert.True(t, m.Empty())
	})

	t.Run("EmptyRange", func(t *testing.T) {
		m := fruit()
		it := m.Find("banana")
		assert.True(t, m.EraseRange(it, it).Equal(it))
		assert.Equal(t, 3, m.Len())
	})

	t.Run("OtherIteratorsSurvive", func(t *testing.T) {
		m := New[int, string]()
		for i := 0; i < 64; i++ {
			*m.Index(i) = "v"
		}
		held := map[int]Iterator[int, string]{}
		for i := 0; i < 64; i += 2 {
			held[i] = m.Find(i)
		}
		for i := 1; i < 64; i += 2 {
			m.EraseKey(i)
		}
		for k, it := range held {
			assert.Equal(t, k, it.Key())
			assert.True(t, it.Equal(m.Find(k)))
		}
	})
}

func TestLifecycle(t *testing.T) {
	t.Run("Clear", func(t *testing.T) {
		m := fruit()
		m.Clear()
		assert.True(t, m.Empty())
		assert.True(t, m.Begin().Equal(m.End()))
	})

	t.Run("Swap", func(t *testing.T) {
		a := fruit()
		b := FromPairs(MakePair("x", 1))
		a.Swap(b)
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 3, b.Len())
		assert.True(t, b.Contains("apple"))
	})

	t.Run("IteratorsFollowTake", func(t *testing.T) {
		m := fruit()
		it := m.Find("apple")
		moved := m.Take()

		assert.True(t, m.Erase(it).IsEnd())
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, 3, moved.Len())

		next := moved.Erase(it)
		assert.Equal(t, "banana", next.Key())
		assert.Equal(t, []Pair[string, int]{{"banana", 3}, {"cherry", 7}}, entries(moved))
		require.NoError(t, moved.Invariants())
		require.NoError(t, m.Invariants())
	})

	t.Run("IteratorsFollowSwap", func(t *testing.T) {
		a := fruit()
		b := FromPairs(MakePair("x", 1))
		it := a.Find("banana")
		a.Swap(b)

		assert.True(t, a.Erase(it).IsEnd())
		assert.Equal(t, 1, a.Len())

		b.Erase(it)
		assert.Equal(t, []Pair[string, int]{{"apple", 5}, {"cherry", 7}}, entries(b))
		assert.Equal(t, []Pair[string, int]{{"x", 1}}, entries(a))
		require.NoError(t, a.Invariants())
		require.NoError(t, b.Invariants())
	})

	t.Run("Assign", func(t *testing.T) {
		a := FromPairs(MakePair("x", 1))
		b := fruit()
		a.Assign(b)
		assert.Equal(t, entries(b), entries(a))
		*a.Index("apple") = 0
		v, _ := b.At("apple")
		assert.Equal(t, 5, v)

		a.Assign(a)
		assert.Equal(t, 3, a.Len())
	})

	t.Run("AssignPairs", func(t *testing.T) {
		m := fruit()
		m.AssignPairs(MakePair("z", 26), MakePair("y", 25), MakePair("z", 0))
		assert.Equal(t, []Pair[string, int]{{"y", 25}, {"z", 26}}, entries(m))
	})
}

func TestIteration(t *testing.T) {
	m := fruit()

	t.Run("All", func(t *testing.T) {
		var keys []string
		var values []int
		for k, v := range m.All() {
			keys = append(keys, k)
			values = append(values, v)
		}
		assert.Equal(t, []string{"apple", "banana", "cherry"}, keys)
		assert.Equal(t, []int{5, 3, 7}, values)
	})

	t.Run("Backward", func(t *testing.T) {
		var keys []string
		for k := range m.Backward() {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"cherry", "banana", "apple"}, keys)
	})

	t.Run("IteratorBothWays", func(t *testing.T) {
		var keys []string
		for it := m.Last(); it.Valid(); it.Prev() {
			keys = append(keys, it.Key())
		}
		assert.Equal(t, []string{"cherry", "banana", "apple"}, keys)

		it := m.End()
		it.Prev()
		assert.Equal(t, "cherry", it.Key())
		assert.Equal(t, "Iterator(cherry: 7)", it.String())
	})

	t.Run("DereferenceEndPanics", func(t *testing.T) {
		assert.Panics(t, func() { m.End().Key() })
		assert.Panics(t, func() { m.End().Value() })
	})
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := New[int, int]()
	ref := map[int]int{}

	for step := 0; step < 20000; step++ {
		k := rng.Intn(2000)
		switch rng.Intn(4) {
		case 0:
			_, inserted := m.Insert(MakePair(k, step))
			_, existed := ref[k]
			require.Equal(t, !existed, inserted)
			if !existed {
				ref[k] = step
			}
		case 1:
			*m.Index(k) = step
			ref[k] = step
		case 2:
			_, existed := ref[k]
			n := m.EraseKey(k)
			if existed {
				require.Equal(t, 1, n)
			} else {
				require.Equal(t, 0, n)
			}
			delete(ref, k)
			_, err := m.At(k)
			require.ErrorIs(t, err, ErrKeyNotFound)
		default:
			v, err := m.At(k)
			want, existed := ref[k]
			if existed {
				require.NoError(t, err)
				require.Equal(t, want, v)
				require.Equal(t, want, m.Find(k).Value())
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
				require.True(t, m.Find(k).IsEnd())
			}
		}
	}

	require.NoError(t, m.Invariants())
	assert.Equal(t, len(ref), m.Len())
	assert.Len(t, entries(m), m.Len(), "size equals reachable entries")
	assert.Equal(t, slices.Sorted(maps.Keys(ref)), slices.Collect(m.Keys()))
	assert.LessOrEqual(t, m.Height(), rbtree.MaxHeight(m.Len()))
}

func TestInvariantsRejectsDuplicateKeys(t *testing.T) {
	m := fruit()
	// Bypass the unique insert path to plant a duplicate key.
	m.tree.Insert(MakePair("banana", 0), false)
	err := m.Invariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, rbtree.ErrOrder)
}
