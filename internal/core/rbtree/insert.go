package rbtree

// Insert adds elem to the tree.
//
// When keepUnique is true and an element comparing equal to elem already
// exists, Insert returns an iterator to that element and false. Otherwise a
// new node is attached, the tree is rebalanced and Insert returns an iterator
// to the new element and true. Equal elements inserted with keepUnique false
// are placed after the existing ones.
func (t *Tree[T]) Insert(elem T, keepUnique bool) (Iterator[T], bool) {
	var parent *node[T]
	goLeft := false

	for n := t.root; n != nil; {
		parent = n
		c := t.cmp(elem, n.elem)
		switch {
		case c < 0:
			goLeft = true
			n = n.left
		case c == 0 && keepUnique:
			return Iterator[T]{tree: t, node: n}, false
		default:
			goLeft = false
			n = n.right
		}
	}

	added := &node[T]{elem: elem, parent: parent, color: red}
	switch {
	case parent == nil:
		t.root = added
	case goLeft:
		parent.left = added
	default:
		parent.right = added
	}
	t.size++

	t.insertFixup(added)
	return Iterator[T]{tree: t, node: added}, true
}

// insertFixup restores the red-black rules after n was attached as a red leaf.
func (t *Tree[T]) insertFixup(n *node[T]) {
	for n.parent != nil && n.parent.color == red {
		// A red parent is never the root, so the grandparent exists.
		grand := n.parent.parent
		if n.parent == grand.left {
			uncle := grand.right
			if colorOf(uncle) == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.rotateLeft(n)
			}
			n.parent.color = black
			grand.color = red
			t.rotateRight(grand)
		} else {
			uncle := grand.left
			if colorOf(uncle) == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			grand.color = red
			t.rotateLeft(grand)
		}
	}
	t.root.color = black
}
