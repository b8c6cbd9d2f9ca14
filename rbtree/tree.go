package rbtree

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// Tree is an ordered collection of key/value pairs, kept balanced as a
// red-black binary search tree. Key order is defined by the configured
// comparator.
type Tree[K, V any] struct {
	cfg     Config[K, V]
	root    *node[K, V]
	count   int
	changes uint64 // bumped on every structural change
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Len returns the number of stored pairs.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no pairs.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Insert stores a key/value pair and rebalances the tree.
//
// When the comparator reports an existing equal key, the configured
// duplicate policy decides the outcome: under RejectDuplicates the insert
// fails with ErrDuplicateKey and the tree is unchanged; under
// ReplaceDuplicates the stored value is disposed and overwritten. Every
// successful insert, replacement included, bumps the modification counter
// and thereby invalidates outstanding cursors.
func (t *Tree[K, V]) Insert(key K, value V) error {
	var parent *node[K, V]
	cur := t.root
	cmp := 0
	for cur != nil {
		parent = cur
		cmp = t.cfg.Compare(key, cur.key)
		switch {
		case cmp < 0:
			cur = cur.left
		case cmp > 0:
			cur = cur.right
		default:
			if t.cfg.Duplicates == RejectDuplicates {
				return fmt.Errorf("%w: insert", grove.ErrDuplicateKey)
			}
			if t.cfg.DisposeValue != nil {
				t.cfg.DisposeValue(cur.value)
			}
			if t.cfg.DisposeKey != nil {
				t.cfg.DisposeKey(key) // node keeps its original key
			}
			cur.value = value
			t.changes++
			return nil
		}
	}
	n := &node[K, V]{key: key, value: value, color: red, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case cmp < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.insertFixup(n)
	t.count++
	t.changes++
	return nil
}

// Remove deletes the pair stored under key and rebalances the tree. It
// fails with ErrNotFound when no matching key exists. Configured
// destructors are invoked for the removed key and value.
func (t *Tree[K, V]) Remove(key K) error {
	z := t.search(key)
	if z == nil {
		return fmt.Errorf("%w: remove", grove.ErrNotFound)
	}
	t.removeNode(z)
	t.count--
	t.changes++
	if t.cfg.DisposeKey != nil {
		t.cfg.DisposeKey(z.key)
	}
	if t.cfg.DisposeValue != nil {
		t.cfg.DisposeValue(z.value)
	}
	return nil
}

// Find returns the value stored under key. It never mutates the tree and
// never invalidates outstanding cursors.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.search(key); n != nil {
		return n.value, true
	}
	var none V
	return none, false
}

// Ref returns the address of the value slot stored under key, enabling
// in-place mutation without a structural change.
func (t *Tree[K, V]) Ref(key K) (*V, bool) {
	if n := t.search(key); n != nil {
		return &n.value, true
	}
	return nil, false
}

// Min returns the in-order-first pair.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var nk K
		var nv V
		return nk, nv, false
	}
	n := minNode(t.root)
	return n.key, n.value, true
}

// Max returns the in-order-last pair.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var nk K
		var nv V
		return nk, nv, false
	}
	n := maxNode(t.root)
	return n.key, n.value, true
}

// Walk visits all pairs in comparator order without allocating a cursor.
// Iteration stops early if the callback returns false. The callback must
// not mutate the tree.
func (t *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	walkNode(t.root, fn)
}

func walkNode[K, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !walkNode(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return walkNode(n.right, fn)
}

// Destroy releases all nodes, invoking the configured destructors for every
// stored key and value. The tree is empty afterwards and outstanding
// cursors are invalidated; the tree object itself must not be used again.
func (t *Tree[K, V]) Destroy() {
	if t == nil {
		return
	}
	t.destroyNode(t.root)
	t.root = nil
	t.count = 0
	t.changes++
}

func (t *Tree[K, V]) destroyNode(n *node[K, V]) {
	if n == nil {
		return
	}
	t.destroyNode(n.left)
	t.destroyNode(n.right)
	if t.cfg.DisposeKey != nil {
		t.cfg.DisposeKey(n.key)
	}
	if t.cfg.DisposeValue != nil {
		t.cfg.DisposeValue(n.value)
	}
	n.left, n.right, n.parent = nil, nil, nil
}

func (t *Tree[K, V]) search(key K) *node[K, V] {
	n := t.root
	for n != nil {
		cmp := t.cfg.Compare(key, n.key)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
