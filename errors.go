package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "errors"

// Failure taxonomy shared by all collections in this module. Sub-packages
// wrap these sentinels with operation detail; callers branch with errors.Is.
var (
	// ErrCapacityExceeded signals that a configuration-time ceiling was hit
	// (traversal stack depth, registry key count, thread count). No partial
	// state change has happened when it is returned. Embedding systems
	// should treat it like an assertion-level fault, not a transient error.
	ErrCapacityExceeded = errors.New("grove: capacity exceeded")

	// ErrNotFound signals removal or lookup of an absent key or element.
	ErrNotFound = errors.New("grove: not found")

	// ErrInvalidArgument signals a missing required callback or an unknown
	// registry key.
	ErrInvalidArgument = errors.New("grove: invalid argument")

	// ErrDuplicateKey signals an insert collision under the reject policy.
	ErrDuplicateKey = errors.New("grove: duplicate key")

	// ErrIteratorInvalidated signals that a cursor was used after a
	// structural change to its collection, or after it was released.
	ErrIteratorInvalidated = errors.New("grove: iterator invalidated")
)
