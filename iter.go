package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Iter is the uniform iteration contract every collection in this module
// produces. The four operations mirror the classic peek / advance /
// advance-address / release shape:
//
//   - HasNext reports whether another element is available. It is
//     idempotent and has no observable side effects.
//   - Next advances and returns the next element. Returned values are
//     borrowed from the producing collection unless that collection's
//     documentation says otherwise.
//   - NextRef advances and returns the address of the element's storage
//     slot, enabling in-place mutation during a single pass.
//   - Release frees any context the producing collection allocated for the
//     walk. It has to be called exactly once, whether iteration completed
//     or was abandoned early; subsequent calls are no-ops.
//
// Next and NextRef fail with ErrNotFound when no element is left, and with
// ErrIteratorInvalidated after Release or after the producing collection
// detected a structural change underneath the iterator.
//
// Iterators are single-use, non-restartable, and not safe for concurrent
// use by more than one caller at a time.
type Iter[T any] interface {
	HasNext() bool
	Next() (T, error)
	NextRef() (*T, error)
	Release()
}

// Walk drains an iterator through a callback and releases it. Iteration
// stops at the first error, which is returned to the caller.
func Walk[T any](it Iter[T], fn func(T) error) error {
	if it == nil || fn == nil {
		return ErrInvalidArgument
	}
	defer it.Release()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// SliceIter returns an Iter over a slice, so that platform code can hand
// fixed element sets through the same contract the collections use. The
// iterator borrows the slice; NextRef yields addresses into it.
func SliceIter[T any](elems []T) Iter[T] {
	return &sliceIter[T]{elems: elems}
}

type sliceIter[T any] struct {
	elems    []T
	pos      int
	released bool
}

func (it *sliceIter[T]) HasNext() bool {
	return !it.released && it.pos < len(it.elems)
}

func (it *sliceIter[T]) Next() (T, error) {
	ref, err := it.NextRef()
	if err != nil {
		var none T
		return none, err
	}
	return *ref, nil
}

func (it *sliceIter[T]) NextRef() (*T, error) {
	if it.released {
		return nil, ErrIteratorInvalidated
	}
	if it.pos >= len(it.elems) {
		return nil, ErrNotFound
	}
	ref := &it.elems[it.pos]
	it.pos++
	return ref, nil
}

func (it *sliceIter[T]) Release() {
	it.released = true
	it.elems = nil
}
