package rbtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/grove"
)

// Iter returns an iterator over the tree's values in comparator order,
// implementing the shared grove iteration contract. Values are borrowed
// from the tree; NextRef returns the address of a node's value slot.
//
// The iterator is backed by a Cursor and inherits its invalidation rules: a
// structural change to the tree makes Next and NextRef fail with
// ErrIteratorInvalidated. HasNext keeps reporting true in that situation so
// the error surfaces on the next advance instead of being swallowed.
func (t *Tree[K, V]) Iter() grove.Iter[V] {
	cursor, err := t.Cursor()
	return &treeIter[K, V]{cursor: cursor, err: err}
}

type treeIter[K, V any] struct {
	cursor *Cursor[K, V]
	primed bool
	done   bool
	val    V
	ref    *V
	err    error
}

var _ grove.Iter[int] = (*treeIter[string, int])(nil)

// HasNext primes the underlying cursor by one step and caches the result,
// so repeated calls are idempotent.
func (it *treeIter[K, V]) HasNext() bool {
	if it.done {
		return false
	}
	if it.primed || it.err != nil {
		return true
	}
	_, v, err := it.cursor.Next()
	if err != nil {
		if errors.Is(err, grove.ErrNotFound) {
			it.done = true
			return false
		}
		it.err = err // surfaced by the next advance
		return true
	}
	it.val = v
	it.ref = it.cursor.valueRef()
	it.primed = true
	return true
}

// consume hands out the primed element, re-checking the tree's modification
// counter first: the tree may have changed between HasNext and the advance,
// and a primed value or value-slot address must not outlive that change.
func (it *treeIter[K, V]) consume() error {
	if it.err != nil {
		return it.err
	}
	if err := it.cursor.check(); err != nil {
		it.primed = false
		it.ref = nil
		it.err = err
		return err
	}
	it.primed = false
	return nil
}

func (it *treeIter[K, V]) Next() (V, error) {
	var none V
	if !it.HasNext() {
		return none, fmt.Errorf("%w: iterator exhausted", grove.ErrNotFound)
	}
	if err := it.consume(); err != nil {
		return none, err
	}
	return it.val, nil
}

func (it *treeIter[K, V]) NextRef() (*V, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("%w: iterator exhausted", grove.ErrNotFound)
	}
	if err := it.consume(); err != nil {
		return nil, err
	}
	return it.ref, nil
}

func (it *treeIter[K, V]) Release() {
	it.done = true
	if it.cursor != nil {
		it.cursor.Release()
	}
}
