package shapegrid

import (
	"fmt"
	"image/color"
)

// NodeID indexes a node inside its Tree's arena. IDs are stable for the
// lifetime of the tree; nodes are never removed.
type NodeID int32

// NoNode is the parent ID of the root.
const NoNode NodeID = -1

// NodeOptions describes a node at creation time.
type NodeOptions struct {
	Name      string
	Location  Vec2 // center, relative to the parent's center
	Size      Size
	Clickable bool
	Hidden    bool
}

// Tree is an arena of nodes rooted at a single root node whose location is
// relative to the canvas center. The tree is built top-down and mutated in
// place; there is no removal or reparenting.
type Tree struct {
	nodes  []*Node
	canvas Size
	debug  bool
}

// Node is a positioned, sized element of a Tree. Parent and children are held
// as IDs and resolved through the tree.
type Node struct {
	// Identity
	ID   NodeID
	Name string

	// Clickable nodes are reported by HitTest. Non-clickable nodes are still
	// traversed.
	Clickable bool

	// Metadata
	UserData any

	tree     *Tree
	parent   NodeID
	children []NodeID

	loc     Vec2
	size    Size
	visible bool

	// Derived, kept consistent by every setter.
	center Vec2
	base   Vec2

	grid    *Grid        // set on a grid's own node
	element *GridElement // set on grid element nodes
}

// NewTree creates a tree for a canvas of the given pixel size. The root node
// is centered on the canvas with zero size.
func NewTree(width, height float64) *Tree {
	t := &Tree{canvas: Size{W: max(width, 0), H: max(height, 0)}}
	root := &Node{
		ID:      0,
		Name:    "root",
		tree:    t,
		parent:  NoNode,
		visible: true,
	}
	t.nodes = append(t.nodes, root)
	root.refresh()
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[0] }

// Node returns the node with the given ID, or nil if it does not exist.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of nodes in the tree, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Canvas returns the canvas size in pixels.
func (t *Tree) Canvas() Size { return t.canvas }

// CanvasCenter returns the pixel the root's location is measured from.
func (t *Tree) CanvasCenter() Vec2 { return t.canvas.Half() }

// Resize sets the canvas size and recomputes every absolute position in a
// single top-down pass.
func (t *Tree) Resize(width, height float64) {
	t.canvas = Size{W: max(width, 0), H: max(height, 0)}
	t.Root().refreshSubtree()
}

// Walk visits every node in pre-order, children in insertion order. Returning
// false from fn skips that node's subtree.
func (t *Tree) Walk(fn func(n *Node) bool) {
	t.Root().walk(fn)
}

func (n *Node) walk(fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, id := range n.children {
		n.tree.nodes[id].walk(fn)
	}
}

// --- Tree construction ---

// NewChild creates a node under n. A nil receiver has no tree to inherit and
// fails with ErrMissingContext.
func (n *Node) NewChild(opts NodeOptions) (*Node, error) {
	if n == nil {
		return nil, ErrMissingContext
	}
	if opts.Size.W < 0 || opts.Size.H < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, opts.Size.W, opts.Size.H)
	}
	return n.addChild(opts), nil
}

func (n *Node) addChild(opts NodeOptions) *Node {
	t := n.tree
	name := opts.Name
	if name == "" {
		name = "generic child"
	}
	child := &Node{
		ID:        NodeID(len(t.nodes)),
		Name:      name,
		Clickable: opts.Clickable,
		tree:      t,
		parent:    n.ID,
		loc:       opts.Location,
		size:      opts.Size,
		visible:   !opts.Hidden,
	}
	t.nodes = append(t.nodes, child)
	n.children = append(n.children, child.ID)
	child.refresh()
	if t.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return child
}

// --- Hierarchy accessors ---

// Tree returns the tree that owns n.
func (n *Node) Tree() *Tree { return n.tree }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	if n.parent == NoNode {
		return nil
	}
	return n.tree.nodes[n.parent]
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at the given insertion index.
func (n *Node) ChildAt(index int) *Node {
	return n.tree.nodes[n.children[index]]
}

// Children returns the children in insertion order. The slice is freshly
// allocated.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, id := range n.children {
		out[i] = n.tree.nodes[id]
	}
	return out
}

// Depth returns the number of ancestors between n and the root.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Grid returns the grid whose own node is n, if any.
func (n *Node) Grid() *Grid { return n.grid }

// Element returns the grid element backed by n, if any.
func (n *Node) Element() *GridElement { return n.element }

// --- Geometry ---

// Location returns the node's center relative to its parent's center.
func (n *Node) Location() Vec2 { return n.loc }

// Size returns the node's width and height.
func (n *Node) Size() Size { return n.size }

// AbsoluteTopLeft returns the cached top-left corner in canvas pixels.
func (n *Node) AbsoluteTopLeft() Vec2 { return n.base }

// AbsoluteCenter returns the cached center in canvas pixels.
func (n *Node) AbsoluteCenter() Vec2 { return n.center }

// Bounds returns the node's rectangle in canvas pixels.
func (n *Node) Bounds() Rect {
	return Rect{X: n.base.X, Y: n.base.Y, Width: n.size.W, Height: n.size.H}
}

// SetLocation moves the node's center, relative to its parent. The node and
// every descendant have their absolute positions recomputed immediately.
func (n *Node) SetLocation(loc Vec2) {
	n.loc = loc
	n.refreshSubtree()
}

// SetSize resizes the node. Zero is allowed; negative sizes are rejected.
// Children are positioned from the center, so only n is recomputed.
func (n *Node) SetSize(size Size) error {
	if size.W < 0 || size.H < 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, size.W, size.H)
	}
	n.size = size
	n.refresh()
	return nil
}

// setGeometry sets location and size together with a single subtree refresh.
func (n *Node) setGeometry(loc Vec2, size Size) {
	n.loc = loc
	n.size = size
	n.refreshSubtree()
}

// ComputeAbsoluteTopLeft derives the top-left corner by walking the parent
// chain. It has no side effects and always equals AbsoluteTopLeft.
func (n *Node) ComputeAbsoluteTopLeft() Vec2 {
	var chain []*Node
	for p := n; p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	// Sum root-first, matching the order refresh accumulates in.
	c := n.tree.CanvasCenter()
	for i := len(chain) - 1; i >= 0; i-- {
		c = c.Add(chain[i].loc)
	}
	return c.Sub(n.size.Half())
}

// refresh recomputes n's absolute center and corner from its parent's cached
// center.
func (n *Node) refresh() {
	origin := n.tree.CanvasCenter()
	if n.parent != NoNode {
		origin = n.tree.nodes[n.parent].center
	}
	n.center = origin.Add(n.loc)
	n.base = n.center.Sub(n.size.Half())
}

func (n *Node) refreshSubtree() {
	n.refresh()
	for _, id := range n.children {
		n.tree.nodes[id].refreshSubtree()
	}
}

// --- Visibility ---

// Visible reports whether the node draws.
func (n *Node) Visible() bool { return n.visible }

// SetVisible sets the node's visibility. Grids propagate their flag to their
// elements on the next Redraw.
func (n *Node) SetVisible(v bool) { n.visible = v }

// --- Drawing primitives ---

// Fill paints the node's rectangle. Invisible nodes and nil surfaces draw
// nothing.
func (n *Node) Fill(s Surface, c color.Color) {
	if s == nil || c == nil || !n.visible {
		return
	}
	s.FillRect(n.Bounds(), c)
}

// DrawBorder strokes the node's rectangle with DefaultLineWidth.
func (n *Node) DrawBorder(s Surface, c color.Color) {
	n.StrokeBorder(s, c, DefaultLineWidth)
}

// StrokeBorder strokes the node's rectangle with the given line width.
func (n *Node) StrokeBorder(s Surface, c color.Color, width float64) {
	if s == nil || c == nil || !n.visible {
		return
	}
	s.StrokeRect(n.Bounds(), c, width)
}

// DrawText draws text centered in the node's rectangle.
func (n *Node) DrawText(s Surface, text string, c color.Color) {
	if s == nil || c == nil || !n.visible || text == "" {
		return
	}
	s.DrawText(text, n.Bounds(), c)
}

func (n *Node) String() string {
	return fmt.Sprintf("%s#%d", n.Name, n.ID)
}
