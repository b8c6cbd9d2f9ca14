/*
Package rbtree provides the ordered tree engine of grove: a red-black
binary search tree keyed by a caller-supplied comparator.

The package is intentionally not a generic map replacement. It is the
ordered backing store for platform structures which need comparator-defined
ordering, in-order traversal in both directions, and cheap detection of
structural change underneath an outstanding traversal.

Design points:
  - explicit construct/destroy lifecycle with configurable key and value
    destructors,
  - an explicit duplicate-key policy (reject or replace) which must be
    chosen at construction time,
  - a monotonically increasing modification counter, bumped on every
    structural change, against which cursors validate themselves,
  - stateful cursors which walk the tree with an explicit bounded path
    stack instead of recursion, so traversal cost per step is amortized
    O(1) and stack depth is a checked capacity,
  - an invariant checker (Check) for use in tests.

The tree performs no internal synchronization. Concurrent readers without a
concurrent writer are safe; any concurrent writer requires an external
exclusive lock around the mutation and around any traversal spanning it.
The modification counter detects invalidated cursors, it does not prevent
races.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
