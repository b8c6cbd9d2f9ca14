package rbtree

// Rebalancing primitives. The implementation is the classic parent-pointer
// formulation with nil leaves treated as black; see Check in invariants.go
// for the properties these helpers maintain.

func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	assert(y != nil, "rotateLeft requires a right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	assert(y != nil, "rotateRight requires a left child")
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertFixup restores the red-black invariants after attaching the red
// node z.
func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for isRed(z.parent) {
		gp := z.parent.parent
		assert(gp != nil, "red parent must have a grandparent")
		if z.parent == gp.left {
			uncle := gp.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = black
			gp.color = red
			t.rotateRight(gp)
		} else {
			uncle := gp.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = black
			gp.color = red
			t.rotateLeft(gp)
		}
	}
	t.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// removeNode unlinks z from the tree and restores the red-black invariants.
// z keeps its key and value, so the caller can dispose them afterwards.
func (t *Tree[K, V]) removeNode(z *node[K, V]) {
	y := z
	removedColor := y.color
	var x *node[K, V]       // subtree moved into the vacated position
	var xParent *node[K, V] // parent of that position (x may be nil)
	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minNode(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	z.left, z.right, z.parent = nil, nil, nil
	if removedColor == black {
		t.removeFixup(x, xParent)
	}
}

// removeFixup rebalances after a black node was unlinked. x carries an
// extra black; xParent is tracked explicitly because x may be nil.
func (t *Tree[K, V]) removeFixup(x, xParent *node[K, V]) {
	for x != t.root && isBlack(x) {
		if xParent == nil {
			break
		}
		if x == xParent.left {
			w := xParent.right
			assert(w != nil, "black-height invariant guarantees a sibling")
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}
			if isBlack(w.right) {
				if w.left != nil {
					w.left.color = black
				}
				w.color = red
				t.rotateRight(w)
				w = xParent.right
			}
			w.color = xParent.color
			xParent.color = black
			if w.right != nil {
				w.right.color = black
			}
			t.rotateLeft(xParent)
			x = t.root
			xParent = nil
		} else {
			w := xParent.left
			assert(w != nil, "black-height invariant guarantees a sibling")
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateRight(xParent)
				w = xParent.left
			}
			if isBlack(w.right) && isBlack(w.left) {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}
			if isBlack(w.left) {
				if w.right != nil {
					w.right.color = black
				}
				w.color = red
				t.rotateLeft(w)
				w = xParent.left
			}
			w.color = xParent.color
			xParent.color = black
			if w.left != nil {
				w.left.color = black
			}
			t.rotateRight(xParent)
			x = t.root
			xParent = nil
		}
	}
	if x != nil {
		x.color = black
	}
}
