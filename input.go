package shapegrid

// --- Hit testing ---

// ContainsPoint reports whether p lies within the node's bounds, edges
// included.
func (n *Node) ContainsPoint(p Vec2) bool {
	return n.Bounds().Contains(p.X, p.Y)
}

// HitTest returns every clickable node in n's subtree whose bounds contain p,
// in pre-order: n first, then each child's hits in insertion order.
// Visibility is not considered.
func (n *Node) HitTest(p Vec2) []*Node {
	return n.AppendHits(nil, p)
}

// AppendHits is HitTest appending into buf, so callers can reuse a buffer
// across frames.
func (n *Node) AppendHits(buf []*Node, p Vec2) []*Node {
	if n.Clickable && n.ContainsPoint(p) {
		buf = append(buf, n)
	}
	for _, id := range n.children {
		buf = n.tree.nodes[id].AppendHits(buf, p)
	}
	return buf
}

// HitTest runs a hit test from the root.
func (t *Tree) HitTest(p Vec2) []*Node {
	return t.Root().HitTest(p)
}

// DeepestElement returns the last grid element in hits, which is the innermost
// one because hits are in pre-order.
func DeepestElement(hits []*Node) *GridElement {
	for i := len(hits) - 1; i >= 0; i-- {
		if e := hits[i].element; e != nil {
			return e
		}
	}
	return nil
}
