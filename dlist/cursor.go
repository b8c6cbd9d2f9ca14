package dlist

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// Cursor is a forward traversal handle for a list. It implements the shared
// grove iteration contract and additionally serves as the position argument
// for the list's O(1) editing operations.
//
// The cursor distinguishes the element it last returned (its current
// position) from the element it will return next. Removing the current
// element through List.RemoveAt clears the position but leaves the upcoming
// element untouched, so a walk neither skips the follower nor revisits the
// removed element.
type Cursor[T any] struct {
	list     *List[T]
	cur      *node[T] // last returned element; nil before the first step
	upcoming *node[T]
	released bool
}

var _ grove.Iter[int] = (*Cursor[int])(nil)

// Cursor returns a traversal handle positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l, upcoming: l.head}
}

// Iter returns the list's iterator under the shared grove contract.
// Payloads are borrowed unless the list owns them per its configuration.
func (l *List[T]) Iter() grove.Iter[T] {
	return l.Cursor()
}

// HasNext reports whether another element is available. Idempotent.
func (c *Cursor[T]) HasNext() bool {
	return !c.released && c.upcoming != nil
}

// Next advances to the next element and returns its payload. It fails with
// ErrNotFound when the walk is exhausted and ErrIteratorInvalidated after
// Release.
func (c *Cursor[T]) Next() (T, error) {
	ref, err := c.NextRef()
	if err != nil {
		var none T
		return none, err
	}
	return *ref, nil
}

// NextRef advances to the next element and returns the address of its
// payload slot for in-place mutation. Failure modes match Next.
func (c *Cursor[T]) NextRef() (*T, error) {
	if c.released {
		return nil, fmt.Errorf("%w: cursor released", grove.ErrIteratorInvalidated)
	}
	if c.upcoming == nil {
		return nil, fmt.Errorf("%w: cursor exhausted", grove.ErrNotFound)
	}
	c.cur = c.upcoming
	c.upcoming = c.upcoming.next
	return &c.cur.payload, nil
}

// Release ends the walk. It has to be called exactly once per cursor;
// subsequent calls are no-ops.
func (c *Cursor[T]) Release() {
	c.released = true
	c.cur = nil
	c.upcoming = nil
}

// InsertBefore inserts a payload directly before the cursor's current
// element, O(1). It fails with ErrInvalidArgument for a foreign cursor and
// with ErrNotFound when the cursor has no current element. The new element
// lies behind the walk and will not be visited.
func (l *List[T]) InsertBefore(c *Cursor[T], payload T) error {
	if err := l.checkCursor(c); err != nil {
		return err
	}
	l.insertBetween(c.cur.prev, c.cur, payload)
	return nil
}

// InsertAfter inserts a payload directly after the cursor's current
// element, O(1). The new element becomes the next one the walk visits.
// Failure modes match InsertBefore.
func (l *List[T]) InsertAfter(c *Cursor[T], payload T) error {
	if err := l.checkCursor(c); err != nil {
		return err
	}
	n := l.insertBetween(c.cur, c.cur.next, payload)
	c.upcoming = n
	return nil
}

// RemoveAt unlinks the cursor's current element, disposing its payload if
// the list owns payloads. The cursor is repositioned onto the next live
// element automatically, so the surrounding walk continues without skipping
// or revisiting. Failure modes match InsertBefore.
func (l *List[T]) RemoveAt(c *Cursor[T]) error {
	if err := l.checkCursor(c); err != nil {
		return err
	}
	removed := c.cur
	c.cur = nil // upcoming already points at the next live element
	l.unlink(removed)
	if l.dispose != nil {
		l.dispose(removed.payload)
	}
	return nil
}

func (l *List[T]) checkCursor(c *Cursor[T]) error {
	if c == nil || c.list != l {
		return fmt.Errorf("%w: cursor does not belong to this list", grove.ErrInvalidArgument)
	}
	if c.released {
		return fmt.Errorf("%w: cursor released", grove.ErrIteratorInvalidated)
	}
	if c.cur == nil {
		return fmt.Errorf("%w: cursor has no current element", grove.ErrNotFound)
	}
	return nil
}
