package ordmap

import "github.com/LeJamon/ordmap/internal/core/rbtree"

// Iterator is a bidirectional cursor over a Map in ascending key order.
// It follows the validity rules of rbtree.Iterator: only erasing the entry it
// references invalidates it.
type Iterator[K any, V any] struct {
	it rbtree.Iterator[Pair[K, V]]
}

// IsEnd reports whether the iterator is the End iterator.
func (i Iterator[K, V]) IsEnd() bool {
	return i.it.IsEnd()
}

// Valid returns true if the iterator references an entry.
func (i Iterator[K, V]) Valid() bool {
	return i.it.Valid()
}

// Equal reports whether both iterators reference the same entry, or are both End.
func (i Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return i.it.Equal(other.it)
}

// Pair returns a copy of the referenced entry.
func (i Iterator[K, V]) Pair() Pair[K, V] {
	return i.it.Elem()
}

// Key returns the key of the referenced entry.
func (i Iterator[K, V]) Key() K {
	return i.it.Ref().Key
}

// Value returns the value of the referenced entry.
func (i Iterator[K, V]) Value() V {
	return i.it.Ref().Value
}

// Ref returns a pointer to the value of the referenced entry. Keys are not
// exposed for mutation.
func (i Iterator[K, V]) Ref() *V {
	return &i.it.Ref().Value
}

// SetValue replaces the value of the referenced entry.
func (i Iterator[K, V]) SetValue(value V) {
	i.it.Ref().Value = value
}

// Next moves to the entry with the next larger key.
func (i *Iterator[K, V]) Next() {
	i.it.Next()
}

// Prev moves to the entry with the next smaller key.
func (i *Iterator[K, V]) Prev() {
	i.it.Prev()
}

// String returns a string representation of the iterator
func (i Iterator[K, V]) String() string {
	return i.it.String()
}
