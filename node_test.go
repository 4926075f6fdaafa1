package shapegrid

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"
)

// --- Construction ---

func TestNewTreeRoot(t *testing.T) {
	tree := NewTree(800, 600)
	root := tree.Root()
	if root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", root.Name, "root")
	}
	if root.Parent() != nil {
		t.Error("root should have no parent")
	}
	if got := root.AbsoluteTopLeft(); got != (Vec2{400, 300}) {
		t.Errorf("root base = %v, want (400, 300)", got)
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1", tree.Len())
	}
}

func TestNewChildDefaults(t *testing.T) {
	tree := NewTree(800, 600)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{10, 20}})
	if n.Name != "generic child" {
		t.Errorf("Name = %q, want %q", n.Name, "generic child")
	}
	if !n.Visible() {
		t.Error("Visible should default to true")
	}
	if n.Clickable {
		t.Error("Clickable should default to false")
	}
	if n.Parent() != tree.Root() {
		t.Error("Parent should be root")
	}
	if tree.Node(n.ID) != n {
		t.Error("Node(ID) should return the child")
	}
	if got := n.AbsoluteTopLeft(); got != (Vec2{395, 290}) {
		t.Errorf("base = %v, want (395, 290)", got)
	}
}

func TestNewChildNilParent(t *testing.T) {
	var parent *Node
	if _, err := parent.NewChild(NodeOptions{}); !errors.Is(err, ErrMissingContext) {
		t.Errorf("err = %v, want ErrMissingContext", err)
	}
}

func TestNewChildNegativeSize(t *testing.T) {
	tree := NewTree(100, 100)
	if _, err := tree.Root().NewChild(NodeOptions{Size: Size{-1, 5}}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1 after rejected child", tree.Len())
	}
}

func TestTreeNodeOutOfRange(t *testing.T) {
	tree := NewTree(100, 100)
	if tree.Node(-1) != nil || tree.Node(5) != nil {
		t.Error("Node should return nil for unknown IDs")
	}
}

// --- Geometry ---

func TestLocationIsRelativeToParentCenter(t *testing.T) {
	tree := NewTree(800, 600)
	a := mustChild(t, tree.Root(), NodeOptions{Name: "a", Location: Vec2{-100, -100}, Size: Size{200, 200}})
	b := mustChild(t, a, NodeOptions{Name: "b", Location: Vec2{-25, -25}, Size: Size{150, 150}})
	c := mustChild(t, b, NodeOptions{Name: "c", Location: Vec2{50, 50}, Size: Size{100, 100}})

	if got := a.AbsoluteTopLeft(); got != (Vec2{200, 100}) {
		t.Errorf("a base = %v, want (200, 100)", got)
	}
	if got := b.AbsoluteTopLeft(); got != (Vec2{200, 100}) {
		t.Errorf("b base = %v, want (200, 100)", got)
	}
	if got := c.AbsoluteTopLeft(); got != (Vec2{275, 175}) {
		t.Errorf("c base = %v, want (275, 175)", got)
	}
	if got := c.AbsoluteCenter(); got != (Vec2{325, 225}) {
		t.Errorf("c center = %v, want (325, 225)", got)
	}
	assertConsistent(t, tree)
}

func TestSetLocationMovesSubtree(t *testing.T) {
	tree := NewTree(800, 600)
	a := mustChild(t, tree.Root(), NodeOptions{Name: "a", Size: Size{100, 100}})
	b := mustChild(t, a, NodeOptions{Name: "b", Location: Vec2{10, 10}, Size: Size{20, 20}})

	a.SetLocation(Vec2{-50, 25})
	if got := b.AbsoluteTopLeft(); got != (Vec2{350, 325}) {
		t.Errorf("b base = %v, want (350, 325)", got)
	}
	if got := a.Location(); got != (Vec2{-50, 25}) {
		t.Errorf("a.Location = %v, want (-50, 25)", got)
	}
	assertConsistent(t, tree)
}

func TestSetSizeKeepsChildren(t *testing.T) {
	tree := NewTree(800, 600)
	a := mustChild(t, tree.Root(), NodeOptions{Name: "a", Size: Size{100, 100}})
	b := mustChild(t, a, NodeOptions{Name: "b", Location: Vec2{10, 10}, Size: Size{20, 20}})
	before := b.AbsoluteTopLeft()

	if err := a.SetSize(Size{300, 40}); err != nil {
		t.Fatal(err)
	}
	if got := a.AbsoluteTopLeft(); got != (Vec2{250, 280}) {
		t.Errorf("a base = %v, want (250, 280)", got)
	}
	if got := b.AbsoluteTopLeft(); got != before {
		t.Errorf("b base = %v, want unchanged %v", got, before)
	}
	assertConsistent(t, tree)
}

func TestSetSizeZeroAndNegative(t *testing.T) {
	tree := NewTree(100, 100)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{10, 10}})
	if err := n.SetSize(Size{}); err != nil {
		t.Errorf("zero size err = %v, want nil", err)
	}
	if got := n.AbsoluteTopLeft(); got != (Vec2{50, 50}) {
		t.Errorf("base = %v, want (50, 50)", got)
	}
	if err := n.SetSize(Size{W: -1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative size err = %v, want ErrInvalidSize", err)
	}
	if n.Size() != (Size{}) {
		t.Errorf("Size = %v, want unchanged zero size", n.Size())
	}
}

func TestResizeRecomputesEveryNode(t *testing.T) {
	tree := NewTree(800, 600)
	a := mustChild(t, tree.Root(), NodeOptions{Name: "a", Location: Vec2{10, 0}, Size: Size{100, 100}})
	b := mustChild(t, a, NodeOptions{Name: "b", Location: Vec2{0, 10}, Size: Size{10, 10}})

	tree.Resize(400, 200)
	if got := tree.Canvas(); got != (Size{400, 200}) {
		t.Errorf("Canvas = %v, want 400x200", got)
	}
	if got := b.AbsoluteTopLeft(); got != (Vec2{205, 105}) {
		t.Errorf("b base = %v, want (205, 105)", got)
	}
	assertConsistent(t, tree)

	tree.Resize(-5, 10)
	if got := tree.Canvas(); got != (Size{0, 10}) {
		t.Errorf("Canvas = %v, want negative width clamped to 0", got)
	}
	assertConsistent(t, tree)
}

func TestConsistencyAfterRandomMutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := NewTree(1024, 768)
	nodes := []*Node{tree.Root()}
	for i := 0; i < 60; i++ {
		parent := nodes[rng.IntN(len(nodes))]
		n := mustChild(t, parent, NodeOptions{
			Location: Vec2{rng.Float64()*200 - 100, rng.Float64()*200 - 100},
			Size:     Size{rng.Float64() * 90, rng.Float64() * 90},
		})
		nodes = append(nodes, n)
	}
	for i := 0; i < 200; i++ {
		n := nodes[rng.IntN(len(nodes))]
		switch rng.IntN(3) {
		case 0:
			n.SetLocation(Vec2{rng.Float64()*300 - 150, rng.Float64()*300 - 150})
		case 1:
			_ = n.SetSize(Size{rng.Float64() * 120, rng.Float64() * 120})
		case 2:
			tree.Resize(float64(200+rng.IntN(1000)), float64(200+rng.IntN(1000)))
		}
	}
	assertConsistent(t, tree)
}

// --- Hierarchy ---

func TestChildrenInsertionOrder(t *testing.T) {
	tree := NewTree(100, 100)
	root := tree.Root()
	a := mustChild(t, root, NodeOptions{Name: "a"})
	b := mustChild(t, root, NodeOptions{Name: "b"})
	c := mustChild(t, a, NodeOptions{Name: "c"})

	if root.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", root.NumChildren())
	}
	if root.ChildAt(0) != a || root.ChildAt(1) != b {
		t.Error("children should be in insertion order")
	}
	kids := root.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Errorf("Children = %v, want [a b]", kids)
	}
	if c.Depth() != 2 || a.Depth() != 1 || root.Depth() != 0 {
		t.Errorf("depths = %d %d %d, want 0 1 2", root.Depth(), a.Depth(), c.Depth())
	}
}

func TestWalkPreOrder(t *testing.T) {
	tree := NewTree(100, 100)
	root := tree.Root()
	a := mustChild(t, root, NodeOptions{Name: "a"})
	mustChild(t, a, NodeOptions{Name: "a1"})
	mustChild(t, root, NodeOptions{Name: "b"})

	var names []string
	tree.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	names = names[:0]
	tree.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "a"
	})
	if len(names) != 3 {
		t.Errorf("pruned Walk visited %v, want [root a b]", names)
	}
}

// --- Drawing primitives ---

func TestNodePrimitives(t *testing.T) {
	tree := NewTree(200, 200)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{20, 10}})
	s := &recordingSurface{}
	red := color.RGBA{255, 0, 0, 255}

	n.Fill(s, red)
	n.DrawBorder(s, red)
	n.DrawText(s, "7", red)

	if len(s.ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(s.ops))
	}
	want := Rect{X: 90, Y: 95, Width: 20, Height: 10}
	for _, op := range s.ops {
		if op.rect != want {
			t.Errorf("%s rect = %v, want %v", op.kind, op.rect, want)
		}
	}
	if s.ops[1].width != DefaultLineWidth {
		t.Errorf("border width = %v, want %v", s.ops[1].width, DefaultLineWidth)
	}
	if s.ops[2].text != "7" {
		t.Errorf("text = %q, want %q", s.ops[2].text, "7")
	}
}

func TestNodePrimitivesSkipped(t *testing.T) {
	tree := NewTree(200, 200)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{20, 10}, Hidden: true})
	s := &recordingSurface{}

	n.Fill(s, color.White)
	n.DrawBorder(s, color.White)
	if len(s.ops) != 0 {
		t.Errorf("hidden node drew %d ops, want 0", len(s.ops))
	}

	n.SetVisible(true)
	n.Fill(s, nil)
	n.DrawText(s, "", color.White)
	n.Fill(nil, color.White) // must not panic
	if len(s.ops) != 0 {
		t.Errorf("nil color / empty text drew %d ops, want 0", len(s.ops))
	}
}
