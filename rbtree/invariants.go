package rbtree

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// Check validates the structural red-black invariants:
//
//   - the root is black,
//   - no red node has a red child,
//   - every root-to-leaf path carries the same number of black nodes,
//   - an in-order walk yields keys in strictly increasing comparator order,
//   - parent back-references are consistent,
//   - the element count matches the number of reachable nodes.
//
// This checker is intentionally strict and meant for tests; it walks the
// whole tree.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", grove.ErrInvalidArgument)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", grove.ErrInvalidArgument, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", grove.ErrInvalidArgument)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", grove.ErrInvalidArgument)
	}
	nodes, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable, %d counted)",
			grove.ErrInvalidArgument, nodes, t.count)
	}
	ordered := true
	var prev K
	first := true
	t.Walk(func(key K, _ V) bool {
		if !first && t.cfg.Compare(prev, key) >= 0 {
			ordered = false
			return false
		}
		prev = key
		first = false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: in-order keys not strictly increasing", grove.ErrInvalidArgument)
	}
	return nil
}

// checkNode returns the node count and black-height of the subtree at n.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (nodes int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node with red child", grove.ErrInvalidArgument)
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link (left)", grove.ErrInvalidArgument)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link (right)", grove.ErrInvalidArgument)
	}
	leftNodes, leftBlack, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightNodes, rightBlack, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("%w: unequal black-height (%d != %d)",
			grove.ErrInvalidArgument, leftBlack, rightBlack)
	}
	bh := leftBlack
	if n.color == black {
		bh++
	}
	return leftNodes + rightNodes + 1, bh, nil
}
