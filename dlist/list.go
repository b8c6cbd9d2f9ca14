package dlist

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// node is one list element. A node owns the link to its successor; the
// predecessor link is a non-owning back-reference.
type node[T any] struct {
	payload T
	next    *node[T]
	prev    *node[T]
}

// Config configures a list.
type Config[T any] struct {
	// Dispose, if set, makes the list own its payloads: it is invoked for
	// every payload the list releases on removal or destruction.
	Dispose func(T)
}

// List is a doubly linked sequence.
type List[T any] struct {
	head, tail *node[T]
	count      int
	dispose    func(T)
}

// New creates an empty list.
func New[T any](cfg Config[T]) *List[T] {
	return &List[T]{dispose: cfg.Dispose}
}

// Len returns the number of elements, O(1).
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Append adds a payload at the end of the list, O(1).
func (l *List[T]) Append(payload T) {
	n := &node[T]{payload: payload, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
}

// Prepend adds a payload at the front of the list, O(1).
func (l *List[T]) Prepend(payload T) {
	n := &node[T]{payload: payload, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.count++
}

// First returns the front payload without removing it.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var none T
		return none, false
	}
	return l.head.payload, true
}

// Last returns the back payload without removing it.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var none T
		return none, false
	}
	return l.tail.payload, true
}

// TakeFirst removes and returns the front payload. Ownership transfers to
// the caller: the configured Dispose callback is not invoked.
func (l *List[T]) TakeFirst() (T, bool) {
	if l.head == nil {
		var none T
		return none, false
	}
	n := l.head
	l.unlink(n)
	return n.payload, true
}

// Find scans for the first payload equal to probe under eq and returns it.
// It fails with ErrInvalidArgument for a nil equality callback and with
// ErrNotFound when no element matches.
func (l *List[T]) Find(probe T, eq grove.EqualsFunc[T]) (T, error) {
	var none T
	if eq == nil {
		return none, fmt.Errorf("%w: equality callback is required", grove.ErrInvalidArgument)
	}
	for n := l.head; n != nil; n = n.next {
		if eq(n.payload, probe) {
			return n.payload, nil
		}
	}
	return none, fmt.Errorf("%w: find", grove.ErrNotFound)
}

// Remove unlinks the first payload equal to probe under eq, disposing it if
// the list owns its payloads. Failure modes match Find.
func (l *List[T]) Remove(probe T, eq grove.EqualsFunc[T]) error {
	if eq == nil {
		return fmt.Errorf("%w: equality callback is required", grove.ErrInvalidArgument)
	}
	for n := l.head; n != nil; n = n.next {
		if eq(n.payload, probe) {
			l.unlink(n)
			if l.dispose != nil {
				l.dispose(n.payload)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: remove", grove.ErrNotFound)
}

// Destroy releases all nodes, disposing payloads if the list owns them. The
// list is empty afterwards.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		if l.dispose != nil {
			l.dispose(n.payload)
		}
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.count = 0
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil
	l.count--
}

func (l *List[T]) insertBetween(prev, next *node[T], payload T) *node[T] {
	n := &node[T]{payload: payload, prev: prev, next: next}
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	if next == nil {
		l.tail = n
	} else {
		next.prev = n
	}
	l.count++
	return n
}
