package rbtree

import (
	"fmt"
	"iter"
)

// IteratorError reports an invalid use of an Iterator, such as dereferencing
// or advancing the End iterator.
type IteratorError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *IteratorError) Error() string {
	return fmt.Sprintf("rbtree: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IteratorError) Unwrap() error {
	return e.Err
}

// Iterator is a bidirectional cursor over a Tree in ascending order.
//
// An Iterator either references an element or is the End iterator. It stays
// valid until the element it references is erased. Invalid use panics with
// an *IteratorError wrapping ErrInvalidIterator.
//
// Usage:
//
//	for it := t.Begin(); !it.IsEnd(); it.Next() {
//	    elem := it.Elem()
//	    // use elem
//	}
type Iterator[T any] struct {
	tree *Tree[T]
	node *node[T]
}

// IsEnd reports whether the iterator is the End iterator.
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Valid returns true if the iterator references an element.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Equal reports whether both iterators reference the same element, or are both End.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Elem returns a copy of the referenced element.
func (it Iterator[T]) Elem() T {
	if it.node == nil {
		panic(&IteratorError{Op: "dereference", Err: ErrInvalidIterator})
	}
	return it.node.elem
}

// Ref returns a pointer to the referenced element for in-place mutation.
// Callers must not change the part of the element that determines its order.
func (it Iterator[T]) Ref() *T {
	if it.node == nil {
		panic(&IteratorError{Op: "dereference", Err: ErrInvalidIterator})
	}
	return &it.node.elem
}

// Next moves to the in-order successor. Advancing from the maximum element
// yields End; advancing End panics.
func (it *Iterator[T]) Next() {
	if it.node == nil {
		panic(&IteratorError{Op: "next", Err: ErrInvalidIterator})
	}
	it.node = it.node.successor()
}

// Prev moves to the in-order predecessor. Moving back from End yields the
// maximum element and moving back from the minimum yields End, so a reverse
// walk from Last terminates at End. Unlike Next, Prev never runs off the
// tree: calling it repeatedly cycles Begin, End, Last and on around. Moving
// back from End of an empty tree panics.
func (it *Iterator[T]) Prev() {
	if it.node == nil {
		if it.tree == nil || it.tree.root == nil {
			panic(&IteratorError{Op: "prev", Err: ErrInvalidIterator})
		}
		it.node = it.tree.root.maximum()
		return
	}
	it.node = it.node.predecessor()
}

// String returns a string representation of the iterator
func (it Iterator[T]) String() string {
	if it.node == nil {
		return "Iterator(end)"
	}
	return fmt.Sprintf("Iterator(%v)", it.node.elem)
}

// All returns a sequence over the elements of t in ascending order.
// The tree must not be modified during the walk except through Ref.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.minNode(); n != nil; n = n.successor() {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Backward returns a sequence over the elements of t in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.maxNode(); n != nil; n = n.predecessor() {
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (t *Tree[T]) minNode() *node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.minimum()
}

func (t *Tree[T]) maxNode() *node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.maximum()
}
