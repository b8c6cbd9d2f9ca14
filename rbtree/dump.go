package rbtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/grove"
)

var (
	redNode   = color.New(color.FgRed)
	blackNode = color.New(color.FgWhite, color.Bold)
)

// Dump writes an indented rendering of the tree's internal structure to w
// (for debugging purposes). Red nodes are printed in red when w is a
// terminal.
func (t *Tree[K, V]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		if _, err := io.WriteString(w, "(empty tree)\n"); err != nil {
			grove.T().Errorf("tree dump: %s", err.Error())
		}
		return
	}
	if err := dumpNode(w, t.root, 0); err != nil {
		grove.T().Errorf("tree dump: %s", err.Error())
	}
}

func dumpNode[K, V any](w io.Writer, n *node[K, V], depth int) error {
	if n == nil {
		return nil
	}
	if err := dumpNode(w, n.right, depth+1); err != nil {
		return err
	}
	indent := strings.Repeat("    ", depth)
	paint := blackNode
	if n.color == red {
		paint = redNode
	}
	label := paint.Sprintf("%v", n.key)
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, label); err != nil {
		return err
	}
	return dumpNode(w, n.left, depth+1)
}
