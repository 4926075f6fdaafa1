package shapegrid

import (
	"fmt"
	"io"
	"strings"
)

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are logged as nodes are added and every grid Redraw
// logs its timing at debug level.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (t *Tree) DebugMode() bool { return t.debug }

const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	if d := n.Depth(); d > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"node", n.Name, "depth", d, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if c := len(n.children); c > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			"node", n.Name, "children", c, "threshold", debugMaxChildCount)
	}
}

// Dump writes an indented listing of the tree, one node per line with its
// location, size and absolute corner.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	t.Walk(func(n *Node) bool {
		if err != nil {
			return false
		}
		flags := ""
		if n.Clickable {
			flags += " clickable"
		}
		if !n.visible {
			flags += " hidden"
		}
		if n.element != nil {
			flags += fmt.Sprintf(" index=%d", n.element.index)
		}
		_, err = fmt.Fprintf(w, "%s%s loc=(%g, %g) size=%gx%g base=(%g, %g)%s\n",
			strings.Repeat("  ", n.Depth()), n.Name,
			n.loc.X, n.loc.Y, n.size.W, n.size.H, n.base.X, n.base.Y, flags)
		return true
	})
	return err
}
