package rbtree

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidIterator = errors.New("invalid iterator use")
	ErrInvariant       = errors.New("tree invariant violated")
)

// Compare orders two elements: negative if a < b, zero if equal, positive if a > b.
type Compare[T any] func(a, b T) int

// Tree is a red-black binary search tree ordered by a Compare function.
//
// A Tree exclusively owns its nodes. It is not safe for concurrent use.
type Tree[T any] struct {
	root *node[T]
	cmp  Compare[T]
	size int
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp Compare[T]) *Tree[T] {
	if cmp == nil {
		panic("rbtree: nil compare function")
	}
	return &Tree[T]{cmp: cmp}
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.size == 0
}

// Compare returns the ordering function of the tree.
func (t *Tree[T]) Compare() Compare[T] {
	return t.cmp
}

// Clear releases every node and leaves the tree empty.
func (t *Tree[T]) Clear() {
	t.root.release()
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy of the tree. No node is shared with t.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root: t.root.clone(nil),
		cmp:  t.cmp,
		size: t.size,
	}
}

// Take moves the contents of t into a new tree and leaves t empty.
// Iterators obtained from t before the move still name t, so erasing
// through them on t panics; they must not be used afterwards.
func (t *Tree[T]) Take() *Tree[T] {
	moved := &Tree[T]{
		root: t.root,
		cmp:  t.cmp,
		size: t.size,
	}
	t.root = nil
	t.size = 0
	return moved
}

// Swap exchanges the contents of t and other. Iterators keep naming the
// tree they came from, which now holds other's nodes.
func (t *Tree[T]) Swap(other *Tree[T]) {
	t.root, other.root = other.root, t.root
	t.cmp, other.cmp = other.cmp, t.cmp
	t.size, other.size = other.size, t.size
}

// Begin returns an iterator to the minimum element, or End if the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, node: t.root.minimum()}
}

// End returns the sentinel iterator positioned one past the maximum element.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

// Last returns an iterator to the maximum element, or End if the tree is empty.
func (t *Tree[T]) Last() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, node: t.root.maximum()}
}

// Find returns an iterator to the first element equal to probe, or End.
func (t *Tree[T]) Find(probe T) Iterator[T] {
	it := t.LowerBound(probe)
	if it.node == nil || t.cmp(probe, it.node.elem) != 0 {
		return t.End()
	}
	return it
}

// LowerBound returns an iterator to the first element not less than probe.
func (t *Tree[T]) LowerBound(probe T) Iterator[T] {
	var found *node[T]
	for n := t.root; n != nil; {
		if t.cmp(n.elem, probe) >= 0 {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[T]{tree: t, node: found}
}

// UpperBound returns an iterator to the first element greater than probe.
func (t *Tree[T]) UpperBound(probe T) Iterator[T] {
	var found *node[T]
	for n := t.root; n != nil; {
		if t.cmp(n.elem, probe) > 0 {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[T]{tree: t, node: found}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// String returns a short summary of the tree
func (t *Tree[T]) String() string {
	return fmt.Sprintf("rbtree(len=%d, height=%d)", t.size, t.Height())
}

// rotateLeft turns n's right child into the root of n's subtree.
func (t *Tree[T]) rotateLeft(n *node[T]) {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.parent = n.parent
	t.replaceChild(n.parent, n, r)
	r.left = n
	n.parent = r
}

// rotateRight turns n's left child into the root of n's subtree.
func (t *Tree[T]) rotateRight(n *node[T]) {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.parent = n.parent
	t.replaceChild(n.parent, n, l)
	l.right = n
	n.parent = l
}

// replaceChild points whichever link of parent referenced old at repl.
// A nil parent means old was the root.
func (t *Tree[T]) replaceChild(parent, old, repl *node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}
