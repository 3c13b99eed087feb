package rbtree

import (
	"errors"
	"fmt"
	"math"
)

// Invariant violations reported through InvariantError.Err.
var (
	ErrOrder      = fmt.Errorf("%w: elements out of order", ErrInvariant)
	ErrParentLink = fmt.Errorf("%w: broken parent link", ErrInvariant)
	ErrRedRoot    = fmt.Errorf("%w: root is red", ErrInvariant)
	ErrRedRed     = fmt.Errorf("%w: red node has a red child", ErrInvariant)
	ErrBlackDepth = fmt.Errorf("%w: unequal black height", ErrInvariant)
	ErrCount      = fmt.Errorf("%w: element count mismatch", ErrInvariant)
)

// InvariantError represents an error found during invariant checking.
type InvariantError struct {
	Depth       int
	Description string
	Err         error
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violation at depth %d: %s: %v", e.Depth, e.Description, e.Err)
	}
	return fmt.Sprintf("invariant violation at depth %d: %s", e.Depth, e.Description)
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// InvariantCheckResult contains the results of an invariant check.
type InvariantCheckResult struct {
	Errors       []*InvariantError
	NodesChecked int
	RedNodes     int
	BlackNodes   int
	Height       int
	BlackHeight  int
}

// HasErrors returns true if any invariant violations were found.
func (r *InvariantCheckResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// String returns a summary of the invariant check results.
func (r *InvariantCheckResult) String() string {
	if r.HasErrors() {
		return fmt.Sprintf("InvariantCheck: FAILED - %d errors found (%d nodes checked: %d red, %d black, height %d)",
			len(r.Errors), r.NodesChecked, r.RedNodes, r.BlackNodes, r.Height)
	}
	return fmt.Sprintf("InvariantCheck: PASSED (%d nodes checked: %d red, %d black, height %d, black height %d)",
		r.NodesChecked, r.RedNodes, r.BlackNodes, r.Height, r.BlackHeight)
}

// MaxHeight returns the largest height a red-black tree with n elements can reach.
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(2 * math.Log2(float64(n)+1))
}

// BlackHeight returns the number of black nodes on the path from the root to
// its leftmost nil leaf. For a valid tree every such path has the same count.
func (t *Tree[T]) BlackHeight() int {
	h := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}

// Invariants verifies the structure of the tree:
//   - in-order elements never decrease
//   - every child's parent link points back at its parent
//   - the root is black and has no parent
//   - no red node has a red child
//   - every root-to-nil path has the same number of black nodes
//   - the element count matches the number of reachable nodes
//
// Returns an error describing the first inconsistency found, or nil if valid.
func (t *Tree[T]) Invariants() error {
	result := t.Check()
	if result.HasErrors() {
		return result.Errors[0]
	}
	return nil
}

// Check performs a full invariant check and returns detailed results.
// Unlike Invariants(), this continues checking after finding errors.
func (t *Tree[T]) Check() *InvariantCheckResult {
	result := &InvariantCheckResult{
		Errors: make([]*InvariantError, 0),
	}
	if t.root == nil {
		if t.size != 0 {
			result.Errors = append(result.Errors, &InvariantError{
				Description: fmt.Sprintf("empty tree reports %d elements", t.size),
				Err:         ErrCount,
			})
		}
		return result
	}

	if t.root.parent != nil {
		result.Errors = append(result.Errors, &InvariantError{
			Description: "root has a parent",
			Err:         ErrParentLink,
		})
	}
	if t.root.color == red {
		result.Errors = append(result.Errors, &InvariantError{
			Description: "root is red",
			Err:         ErrRedRoot,
		})
	}

	var prev *node[T]
	result.BlackHeight = t.checkNode(t.root, 1, &prev, result)
	result.Height = t.Height()

	if result.NodesChecked != t.size {
		result.Errors = append(result.Errors, &InvariantError{
			Description: fmt.Sprintf("tree reports %d elements, %d reachable", t.size, result.NodesChecked),
			Err:         ErrCount,
		})
	}
	return result
}

// checkNode recursively checks the subtree rooted at n and returns its black
// height, counting the nil leaves as one. Nodes are visited in order through
// child links only, with prev holding the last visited node, so a corrupted
// parent link cannot stall the walk.
func (t *Tree[T]) checkNode(n *node[T], depth int, prev **node[T], result *InvariantCheckResult) int {
	if n == nil {
		return 1
	}
	result.NodesChecked++
	if n.color == red {
		result.RedNodes++
	} else {
		result.BlackNodes++
	}

	for _, child := range [2]*node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			result.Errors = append(result.Errors, &InvariantError{
				Depth:       depth + 1,
				Description: fmt.Sprintf("child %v does not point back at %v", child.elem, n.elem),
				Err:         ErrParentLink,
			})
		}
		if n.color == red && child.color == red {
			result.Errors = append(result.Errors, &InvariantError{
				Depth:       depth + 1,
				Description: fmt.Sprintf("red %v under red %v", child.elem, n.elem),
				Err:         ErrRedRed,
			})
		}
	}
	if n.left != nil && t.cmp(n.left.elem, n.elem) > 0 {
		result.Errors = append(result.Errors, &InvariantError{
			Depth:       depth,
			Description: fmt.Sprintf("left child %v greater than %v", n.left.elem, n.elem),
			Err:         ErrOrder,
		})
	}
	if n.right != nil && t.cmp(n.right.elem, n.elem) < 0 {
		result.Errors = append(result.Errors, &InvariantError{
			Depth:       depth,
			Description: fmt.Sprintf("right child %v less than %v", n.right.elem, n.elem),
			Err:         ErrOrder,
		})
	}

	left := t.checkNode(n.left, depth+1, prev, result)
	if p := *prev; p != nil && t.cmp(p.elem, n.elem) > 0 {
		result.Errors = append(result.Errors, &InvariantError{
			Depth:       depth,
			Description: fmt.Sprintf("%v precedes %v", p.elem, n.elem),
			Err:         ErrOrder,
		})
	}
	*prev = n
	right := t.checkNode(n.right, depth+1, prev, result)
	if left != right {
		result.Errors = append(result.Errors, &InvariantError{
			Depth:       depth,
			Description: fmt.Sprintf("black height %d on the left of %v, %d on the right", left, n.elem, right),
			Err:         ErrBlackDepth,
		})
	}

	h := max(left, right)
	if n.color == black {
		h++
	}
	return h
}

// IsInvariantError reports whether err is an invariant violation.
func IsInvariantError(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}
