package rbtree

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// DefaultHeightLimit bounds the traversal path stack of cursors. Red-black
// balancing keeps tree height within 2·log2(n+1), so 48 levels leave room
// for roughly 16M nodes.
const DefaultHeightLimit = 48

// DuplicatePolicy selects what Insert does when the comparator reports an
// existing equal key. The zero value is deliberately invalid: callers have
// to make the choice explicit at construction time.
type DuplicatePolicy int

const (
	// RejectDuplicates makes Insert fail with ErrDuplicateKey on collision.
	RejectDuplicates DuplicatePolicy = iota + 1
	// ReplaceDuplicates makes Insert overwrite the stored value on
	// collision, disposing the previous value.
	ReplaceDuplicates
)

// Config configures an ordered tree.
type Config[K, V any] struct {
	// Compare defines key ordering and equality. Required.
	Compare grove.CompareFunc[K]

	// Duplicates selects the duplicate-key insert policy. Required.
	Duplicates DuplicatePolicy

	// DisposeKey, if set, is invoked for keys the tree releases: on Remove,
	// on Destroy, and for the incoming key of a replacing Insert.
	DisposeKey func(K)

	// DisposeValue, if set, is invoked for values the tree releases: on
	// Remove, on Destroy, and for the overwritten value of a replacing
	// Insert.
	DisposeValue func(V)

	// HeightLimit caps the cursor path stack depth. 0 selects
	// DefaultHeightLimit.
	HeightLimit int
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.HeightLimit == 0 {
		cfg.HeightLimit = DefaultHeightLimit
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", grove.ErrInvalidArgument)
	}
	if cfg.Duplicates != RejectDuplicates && cfg.Duplicates != ReplaceDuplicates {
		return fmt.Errorf("%w: duplicate policy is required", grove.ErrInvalidArgument)
	}
	if cfg.HeightLimit < 0 {
		return fmt.Errorf("%w: negative height limit", grove.ErrInvalidArgument)
	}
	return nil
}
