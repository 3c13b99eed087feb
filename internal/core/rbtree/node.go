package rbtree

// color is the red-black marker carried by every node.
type color bool

const (
	red   color = false
	black color = true
)

// String returns a string representation of the color
func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// node is a tree vertex. left and right are owned by the node; parent is a
// back-reference used only for traversal and rebalancing.
type node[T any] struct {
	elem   T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	color  color
}

// colorOf treats nil leaves as black.
func colorOf[T any](n *node[T]) color {
	if n == nil {
		return black
	}
	return n.color
}

// minimum returns the leftmost node of the subtree rooted at n.
func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n, or nil if n is the maximum.
func (n *node[T]) successor() *node[T] {
	if n.right != nil {
		return n.right.minimum()
	}
	child, p := n, n.parent
	for p != nil && child == p.right {
		child, p = p, p.parent
	}
	return p
}

// predecessor returns the in-order predecessor of n, or nil if n is the minimum.
func (n *node[T]) predecessor() *node[T] {
	if n.left != nil {
		return n.left.maximum()
	}
	child, p := n, n.parent
	for p != nil && child == p.left {
		child, p = p, p.parent
	}
	return p
}

// top follows parent links up to the root of the tree holding n.
func (n *node[T]) top() *node[T] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// clone deep-copies the subtree rooted at n and attaches it to parent.
func (n *node[T]) clone(parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{
		elem:   n.elem,
		parent: parent,
		color:  n.color,
	}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}

// release unlinks every node of the subtree exactly once so that iterators
// still held by callers stop reaching the rest of the tree.
func (n *node[T]) release() int {
	if n == nil {
		return 0
	}
	count := n.left.release() + n.right.release() + 1
	n.left, n.right, n.parent = nil, nil, nil
	return count
}

// height returns the number of nodes on the longest root-to-leaf path.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
