// Package ordmap provides Map, an ordered associative container with unique
// keys backed by a red-black tree.
//
// Lookups, insertions and removals run in O(log n) regardless of insertion
// order. Iteration visits entries in ascending key order. A Map is not safe
// for concurrent use.
//
//	m := ordmap.New[string, int]()
//	*m.Index("apple") = 5
//	m.Insert(ordmap.MakePair("banana", 3))
//	v, err := m.At("banana") // 3, nil
//	for k, v := range m.All() {
//	    // keys arrive in ascending order
//	}
package ordmap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"github.com/LeJamon/ordmap/internal/core/rbtree"
)

// Common errors
var (
	ErrKeyNotFound = errors.New("key not found")
)

// KeyError reports a key that is absent from the map.
type KeyError[K any] struct {
	Key K
}

// Error implements the error interface.
func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("ordmap: %v: %v", e.Key, ErrKeyNotFound)
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyError[K]) Unwrap() error {
	return ErrKeyNotFound
}

// Map is an ordered map with unique keys.
type Map[K any, V any] struct {
	tree *rbtree.Tree[Pair[K, V]]
}

// New creates an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty map ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
func NewFunc[K any, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{tree: rbtree.New[Pair[K, V]](byKey[K, V](compare))}
}

// FromPairs creates a map holding pairs. When a key repeats, the first pair wins.
func FromPairs[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.InsertPairs(pairs...)
	return m
}

// Collect creates a map from a key/value sequence. When a key repeats, the
// first value wins.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.InsertSeq(seq)
	return m
}

// NewRange creates a map holding the entries in [first, last) of another
// map, using the same ordering as that map.
func NewRange[K any, V any](first, last Iterator[K, V], compare func(a, b K) int) *Map[K, V] {
	m := NewFunc[K, V](compare)
	m.InsertRange(first, last)
	return m
}

// Clone returns a deep copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Take moves the entries of m into a new map and leaves m empty. Iterators
// obtained from m follow their entries into the new map.
func (m *Map[K, V]) Take() *Map[K, V] {
	moved := &Map[K, V]{tree: m.tree}
	m.tree = rbtree.New[Pair[K, V]](moved.tree.Compare())
	return moved
}

// Assign replaces the contents of m with a deep copy of other.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree.Clear()
	m.tree = other.tree.Clone()
}

// AssignPairs replaces the contents of m with pairs. When a key repeats, the
// first pair wins.
func (m *Map[K, V]) AssignPairs(pairs ...Pair[K, V]) {
	m.tree.Clear()
	m.InsertPairs(pairs...)
}

// Begin returns an iterator to the entry with the smallest key, or End.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Begin()}
}

// End returns the iterator positioned one past the largest key.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.End()}
}

// Last returns an iterator to the entry with the largest key, or End.
func (m *Map[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Last()}
}

// Insert adds p unless its key is already present. It returns an iterator to
// the entry holding the key and whether p was inserted. An existing value is
// never overwritten.
func (m *Map[K, V]) Insert(p Pair[K, V]) (Iterator[K, V], bool) {
	it, inserted := m.tree.Insert(p, true)
	return Iterator[K, V]{it: it}, inserted
}

// InsertRange inserts every entry of [first, last).
func (m *Map[K, V]) InsertRange(first, last Iterator[K, V]) {
	for ; !first.Equal(last); first.Next() {
		m.Insert(first.Pair())
	}
}

// InsertPairs inserts pairs in order; later duplicates are ignored.
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.Insert(p)
	}
}

// InsertSeq inserts every key/value of seq; later duplicates are ignored.
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(MakePair(k, v))
	}
}

// Index returns a pointer to the value stored under key, inserting the zero
// value first if the key is absent. The pointer stays valid until the entry
// is erased.
func (m *Map[K, V]) Index(key K) *V {
	it, _ := m.tree.Insert(keyPair[K, V](key), true)
	return &it.Ref().Value
}

// Lookup returns the value stored under key and true, or the zero value and
// false. It never inserts.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	it := m.tree.Find(keyPair[K, V](key))
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Ref().Value, true
}

// At returns the value stored under key, or a *KeyError wrapping
// ErrKeyNotFound. It never inserts.
func (m *Map[K, V]) At(key K) (V, error) {
	ref, err := m.AtRef(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return *ref, nil
}

// AtRef returns a pointer to the value stored under key, or a *KeyError
// wrapping ErrKeyNotFound. It never inserts.
func (m *Map[K, V]) AtRef(key K) (*V, error) {
	it := m.tree.Find(keyPair[K, V](key))
	if it.IsEnd() {
		return nil, &KeyError[K]{Key: key}
	}
	return &it.Ref().Value, nil
}

// Find returns an iterator to the entry with key, or End.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Find(keyPair[K, V](key))}
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Find(keyPair[K, V](key)).Valid()
}

// LowerBound returns an iterator to the first entry whose key is not less than key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.LowerBound(keyPair[K, V](key))}
}

// UpperBound returns an iterator to the first entry whose key is greater than key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.UpperBound(keyPair[K, V](key))}
}

// EraseKey removes the entry with key and returns the number of entries
// removed, 0 or 1.
func (m *Map[K, V]) EraseKey(key K) int {
	it := m.tree.Find(keyPair[K, V](key))
	if it.IsEnd() {
		return 0
	}
	m.tree.Erase(it)
	return 1
}

// Erase removes the entry referenced by it and returns an iterator to the
// next entry. Erasing End is a no-op that returns End.
func (m *Map[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Erase(it.it)}
}

// EraseRange removes the entries in [first, last) and returns last. Erasing
// stops at End if last is not reachable from first.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for !first.Equal(last) && !first.IsEnd() {
		first = m.Erase(first)
	}
	return first
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// Swap exchanges the contents of m and other. Iterators follow their
// entries.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree, other.tree = other.tree, m.tree
}

// All returns a sequence of the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.Backward() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns a sequence of the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns a sequence of the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Invariants verifies the underlying tree and that keys are strictly
// increasing in iteration order.
func (m *Map[K, V]) Invariants() error {
	if err := m.tree.Invariants(); err != nil {
		return err
	}
	compare := m.tree.Compare()
	var prev *Pair[K, V]
	for it := m.tree.Begin(); !it.IsEnd(); it.Next() {
		cur := it.Ref()
		if prev != nil && compare(*prev, *cur) >= 0 {
			return &rbtree.InvariantError{
				Description: fmt.Sprintf("duplicate or unordered key %v after %v", cur.Key, prev.Key),
				Err:         rbtree.ErrOrder,
			}
		}
		prev = cur
	}
	return nil
}

// String returns a string representation of the map
func (m *Map[K, V]) String() string {
	return fmt.Sprintf("ordmap.Map(len=%d)", m.Len())
}
