package rbtree

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// Cursor is a stateful traversal handle for a tree. It walks the tree with
// an explicit bounded path stack instead of recursion, giving amortized
// O(1) cost per step with a worst case of O(log n).
//
// A fresh cursor is positioned outside the tree: the first call to Next
// moves onto the in-order-first pair, the first call to Prev onto the
// in-order-last pair. After that, Next and Prev step in either direction.
//
// The cursor snapshots the tree's modification counter at creation. Every
// cursor operation compares the snapshot against the live counter and fails
// with ErrIteratorInvalidated on mismatch, rather than returning a stale or
// corrupted element. Cursors are single-use and must be released exactly
// once.
type Cursor[K, V any] struct {
	tree     *Tree[K, V]
	cur      *node[K, V]
	path     []*node[K, V]
	top      int
	changes  uint64
	started  bool
	released bool
}

// Cursor creates a traversal handle positioned before the in-order-first
// pair.
func (t *Tree[K, V]) Cursor() (*Cursor[K, V], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", grove.ErrInvalidArgument)
	}
	return &Cursor[K, V]{
		tree:    t,
		path:    make([]*node[K, V], t.cfg.HeightLimit),
		changes: t.changes,
	}, nil
}

// Next advances to the next pair in comparator order and returns it. It
// fails with ErrNotFound when the walk is exhausted, ErrIteratorInvalidated
// when the tree changed underneath the cursor, and ErrCapacityExceeded if
// the path stack would outgrow the configured height limit (unreachable for
// balanced trees of any node count the limit admits).
func (c *Cursor[K, V]) Next() (K, V, error) {
	return c.step(fwd)
}

// Prev steps to the previous pair in comparator order and returns it. On a
// fresh cursor it starts at the in-order-last pair. Failure modes match
// Next.
func (c *Cursor[K, V]) Prev() (K, V, error) {
	return c.step(bwd)
}

// Release frees the cursor's traversal stack. It has to be called exactly
// once per cursor; subsequent calls are no-ops, and any other operation on
// a released cursor fails with ErrIteratorInvalidated.
func (c *Cursor[K, V]) Release() {
	c.released = true
	c.path = nil
	c.cur = nil
}

type direction int

const (
	fwd direction = iota
	bwd
)

func (c *Cursor[K, V]) step(dir direction) (K, V, error) {
	var nk K
	var nv V
	if err := c.check(); err != nil {
		return nk, nv, err
	}
	var err error
	if !c.started {
		err = c.start(dir)
	} else if c.cur != nil {
		err = c.move(dir)
	}
	if err != nil {
		return nk, nv, err
	}
	if c.cur == nil {
		return nk, nv, fmt.Errorf("%w: cursor exhausted", grove.ErrNotFound)
	}
	return c.cur.key, c.cur.value, nil
}

func (c *Cursor[K, V]) check() error {
	if c == nil || c.released {
		return fmt.Errorf("%w: cursor released", grove.ErrIteratorInvalidated)
	}
	if c.changes != c.tree.changes {
		return fmt.Errorf("%w: tree changed under cursor", grove.ErrIteratorInvalidated)
	}
	return nil
}

// start positions the cursor on the first pair in walking order: the
// leftmost node for a forward walk, the rightmost for a backward walk.
func (c *Cursor[K, V]) start(dir direction) error {
	c.started = true
	c.top = 0
	c.cur = c.tree.root
	if c.cur == nil {
		return nil
	}
	for child := c.child(c.cur, dir); child != nil; child = c.child(c.cur, dir) {
		if err := c.push(c.cur); err != nil {
			return err
		}
		c.cur = child
	}
	return nil
}

// move steps the current position one pair in the given direction, using
// the path stack to unwind out of exhausted subtrees.
func (c *Cursor[K, V]) move(dir direction) error {
	if other := c.otherChild(c.cur, dir); other != nil {
		if err := c.push(c.cur); err != nil {
			return err
		}
		c.cur = other
		for child := c.child(c.cur, dir); child != nil; child = c.child(c.cur, dir) {
			if err := c.push(c.cur); err != nil {
				return err
			}
			c.cur = child
		}
		return nil
	}
	for {
		last := c.cur
		if c.top == 0 {
			c.cur = nil
			return nil
		}
		c.cur = c.pop()
		if c.otherChild(c.cur, dir) != last {
			return nil
		}
	}
}

// child returns the subtree entered first in walking order, otherChild the
// subtree entered after the node itself.
func (c *Cursor[K, V]) child(n *node[K, V], dir direction) *node[K, V] {
	if dir == fwd {
		return n.left
	}
	return n.right
}

func (c *Cursor[K, V]) otherChild(n *node[K, V], dir direction) *node[K, V] {
	if dir == fwd {
		return n.right
	}
	return n.left
}

func (c *Cursor[K, V]) push(n *node[K, V]) error {
	if c.top >= len(c.path) {
		return fmt.Errorf("%w: traversal stack depth %d", grove.ErrCapacityExceeded, len(c.path))
	}
	c.path[c.top] = n
	c.top++
	return nil
}

func (c *Cursor[K, V]) pop() *node[K, V] {
	assert(c.top > 0, "pop on empty traversal stack")
	c.top--
	return c.path[c.top]
}

// valueRef exposes the current node's value slot to the iterator adapter.
func (c *Cursor[K, V]) valueRef() *V {
	assert(c.cur != nil, "valueRef without a current node")
	return &c.cur.value
}
