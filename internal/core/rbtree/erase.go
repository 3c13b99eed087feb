package rbtree

// Erase removes the element referenced by it and returns an iterator to its
// in-order successor, or End if it was the maximum.
//
// Erasing through End, or through an iterator of another tree, is a no-op
// that returns End. Only iterators positioned at the erased element are
// invalidated; the successor keeps its node, so iterators to it stay valid.
//
// Erasing a node that t no longer owns, because it was already erased or
// moved away by Take or Swap, panics with ErrInvalidIterator.
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	if it.node == nil || it.tree != t {
		return t.End()
	}
	if t.size == 0 || it.node.top() != t.root {
		panic(&IteratorError{Op: "erase", Err: ErrInvalidIterator})
	}

	next := it.node.successor()
	t.deleteNode(it.node)
	t.size--
	return Iterator[T]{tree: t, node: next}
}

// deleteNode unlinks z from the tree and rebalances.
//
// When z has two children its successor y is relinked into z's position
// instead of copying y's element into z.
func (t *Tree[T]) deleteNode(z *node[T]) {
	var x, xParent *node[T]
	removedColor := z.color

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y := z.right.minimum()
		removedColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	z.left, z.right, z.parent = nil, nil, nil

	if removedColor == black {
		t.eraseFixup(x, xParent)
	}
}

// transplant puts v in u's place under u's parent.
func (t *Tree[T]) transplant(u, v *node[T]) {
	t.replaceChild(u.parent, u, v)
	if v != nil {
		v.parent = u.parent
	}
}

// eraseFixup restores the red-black rules after a black node was removed.
// x carries the extra black and may be nil, so its parent is passed along.
func (t *Tree[T]) eraseFixup(x, parent *node[T]) {
	for x != t.root && colorOf(x) == black {
		if x == parent.left {
			// The sibling of a doubly black position always exists.
			w := parent.right
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.right) == black {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.left) == black {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = black
	}
}
