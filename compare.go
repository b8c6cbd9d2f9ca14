package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "golang.org/x/exp/constraints"

// CompareFunc defines ordering and equality for collection keys. It returns
// a negative number when a orders before b, zero when they are equal, and a
// positive number when a orders after b.
type CompareFunc[K any] func(a, b K) int

// EqualsFunc reports whether two elements are considered equal, used by
// linear searches in the list engine.
type EqualsFunc[T any] func(a, b T) bool

// OrderedCompare returns a comparator for naturally ordered key types.
func OrderedCompare[K constraints.Ordered]() CompareFunc[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}
