package rbtree

type nodeColor uint8

const (
	red   nodeColor = iota
	black
)

// node is one tree node. Children are exclusively owned by their parent;
// the parent link is a non-owning back-reference used by rebalancing.
type node[K, V any] struct {
	key    K
	value  V
	color  nodeColor
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// isBlack treats absent children as black, per red-black convention.
func isBlack[K, V any](n *node[K, V]) bool {
	return n == nil || n.color == black
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "minNode called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "maxNode called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}
