package dlist

import (
	"fmt"
	"sort"

	"github.com/npillmayer/grove"
)

// Sort orders the list's payloads stably by cmp. Nodes stay in place, only
// payloads move, so node identity is not preserved across a sort and
// outstanding cursors observe the new order. It fails with
// ErrInvalidArgument for a nil comparator.
func (l *List[T]) Sort(cmp grove.CompareFunc[T]) error {
	if cmp == nil {
		return fmt.Errorf("%w: comparator is required", grove.ErrInvalidArgument)
	}
	if l.count < 2 {
		return nil
	}
	payloads := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		payloads = append(payloads, n.payload)
	}
	sort.SliceStable(payloads, func(i, j int) bool {
		return cmp(payloads[i], payloads[j]) < 0
	})
	i := 0
	for n := l.head; n != nil; n = n.next {
		n.payload = payloads[i]
		i++
	}
	return nil
}
