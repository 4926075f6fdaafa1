package shapegrid

import (
	"fmt"
	"time"
)

// Default stroke widths for grid layers.
const (
	DefaultDivWidth    = 1.0
	DefaultBorderWidth = 2.0
)

// GridStyle holds the color strings a grid draws with. An empty string
// suppresses that layer.
type GridStyle struct {
	FillColor   string // element background
	TextColor   string // element label
	DivColor    string // element outline
	BorderColor string // outer border of the whole grid

	DivWidth    float64 // 0 means DefaultDivWidth
	BorderWidth float64 // 0 means DefaultBorderWidth
}

// DefaultGridStyle matches the first grids drawn by the project: blue cells,
// cyan index labels and a red outer border.
var DefaultGridStyle = GridStyle{
	FillColor:   "blue",
	TextColor:   "cyan",
	BorderColor: "red",
}

// GridConfig describes a grid at construction time.
type GridConfig struct {
	Name     string
	Dim      GridDim
	Location Vec2 // grid center, relative to the parent's center
	Size     Size

	// Fit, when positive, resizes the grid to Fit times its parent's size and
	// centers it on the parent at the start of every Redraw.
	Fit float64

	// ElementParent, when set, owns the element nodes instead of the grid's
	// own node. It must belong to the same tree.
	ElementParent *Node

	// Clickable makes the grid's own node clickable. Elements are clickable
	// unless InertElements is set.
	Clickable     bool
	InertElements bool
	Hidden        bool

	Style GridStyle

	// Drawable picks the draw strategy for each element by index. Nil means
	// IndexLabel for every element.
	Drawable func(index int) Drawable

	// ElementName names each element node. Nil means "<grid>[col, row]".
	ElementName func(index int, c Coords) string
}

// Grid is a node subdivided into a dense W×H array of uniformly sized
// elements, laid out symmetrically around the grid's center.
type Grid struct {
	node     *Node
	owner    *Node
	dim      GridDim
	fit      float64
	elements [][]*GridElement // [col][row]
	palette  Palette

	draws int // Draw calls, for tests and debug stats
}

// GridElement is one cell of a Grid, addressed by a 1-based row-major index
// that never changes.
type GridElement struct {
	node     *Node
	grid     *Grid
	index    int
	coords   Coords
	drawable Drawable
}

// NewGrid builds a grid under parent and eagerly creates all W×H elements.
func NewGrid(parent *Node, cfg GridConfig) (*Grid, error) {
	if parent == nil {
		return nil, ErrMissingContext
	}
	if !cfg.Dim.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDimensions, cfg.Dim)
	}
	if cfg.ElementParent != nil && cfg.ElementParent.tree != parent.tree {
		return nil, fmt.Errorf("%w: element parent %q", ErrContextMismatch, cfg.ElementParent.Name)
	}
	if cfg.Fit < 0 {
		return nil, fmt.Errorf("%w: fit %v", ErrInvalidSize, cfg.Fit)
	}
	palette, err := cfg.Style.resolve()
	if err != nil {
		return nil, err
	}
	name := cfg.Name
	if name == "" {
		name = "shapeGrid"
	}
	node, err := parent.NewChild(NodeOptions{
		Name:      name,
		Location:  cfg.Location,
		Size:      cfg.Size,
		Clickable: cfg.Clickable,
		Hidden:    cfg.Hidden,
	})
	if err != nil {
		return nil, err
	}

	g := &Grid{
		node:    node,
		owner:   node,
		dim:     cfg.Dim,
		fit:     cfg.Fit,
		palette: palette,
	}
	node.grid = g
	if cfg.ElementParent != nil {
		g.owner = cfg.ElementParent
	}

	g.elements = make([][]*GridElement, cfg.Dim.W)
	for ci := 0; ci < cfg.Dim.W; ci++ {
		g.elements[ci] = make([]*GridElement, cfg.Dim.H)
		for ri := 0; ri < cfg.Dim.H; ri++ {
			c := Coords{Col: ci, Row: ri}
			index := ri*cfg.Dim.W + ci + 1
			elemName := fmt.Sprintf("%s[%d, %d]", name, ci, ri)
			if cfg.ElementName != nil {
				elemName = cfg.ElementName(index, c)
			}
			var d Drawable = IndexLabel{}
			if cfg.Drawable != nil {
				if v := cfg.Drawable(index); v != nil {
					d = v
				}
			}
			// Zero geometry until the first Redraw.
			en := g.owner.addChild(NodeOptions{
				Name:      elemName,
				Clickable: !cfg.InertElements,
				Hidden:    cfg.Hidden,
			})
			e := &GridElement{node: en, grid: g, index: index, coords: c, drawable: d}
			en.element = e
			g.elements[ci][ri] = e
		}
	}
	return g, nil
}

func (st GridStyle) resolve() (Palette, error) {
	var p Palette
	var err error
	if p.Fill, err = ParseColor(st.FillColor); err != nil {
		return p, err
	}
	if p.Text, err = ParseColor(st.TextColor); err != nil {
		return p, err
	}
	if p.Div, err = ParseColor(st.DivColor); err != nil {
		return p, err
	}
	if p.Border, err = ParseColor(st.BorderColor); err != nil {
		return p, err
	}
	p.DivWidth = st.DivWidth
	if p.DivWidth <= 0 {
		p.DivWidth = DefaultDivWidth
	}
	p.BorderWidth = st.BorderWidth
	if p.BorderWidth <= 0 {
		p.BorderWidth = DefaultBorderWidth
	}
	return p, nil
}

// --- Accessors ---

// Node returns the grid's own node.
func (g *Grid) Node() *Node { return g.node }

// Dim returns the grid's dimension.
func (g *Grid) Dim() GridDim { return g.dim }

// Palette returns the resolved colors.
func (g *Grid) Palette() Palette { return g.palette }

// SetStyle replaces the grid's colors.
func (g *Grid) SetStyle(st GridStyle) error {
	p, err := st.resolve()
	if err != nil {
		return err
	}
	g.palette = p
	return nil
}

// Visible reports whether the grid draws.
func (g *Grid) Visible() bool { return g.node.visible }

// SetVisible shows or hides the grid. Elements follow on the next Redraw.
func (g *Grid) SetVisible(v bool) { g.node.visible = v }

// At returns the element at zero-based column and row, or nil if out of range.
func (g *Grid) At(col, row int) *GridElement {
	if col < 0 || col >= g.dim.W || row < 0 || row >= g.dim.H {
		return nil
	}
	return g.elements[col][row]
}

// Element returns the element with the given 1-based index.
func (g *Grid) Element(index int) (*GridElement, error) {
	c, err := IndexToCoords(index, g.dim)
	if err != nil {
		return nil, err
	}
	return g.elements[c.Col][c.Row], nil
}

// Elements returns all elements in index order.
func (g *Grid) Elements() []*GridElement {
	out := make([]*GridElement, 0, g.dim.Len())
	for ri := 0; ri < g.dim.H; ri++ {
		for ci := 0; ci < g.dim.W; ci++ {
			out = append(out, g.elements[ci][ri])
		}
	}
	return out
}

// ElementSize returns the size every element takes at the grid's current size.
func (g *Grid) ElementSize() Size {
	return Size{W: g.node.size.W / float64(g.dim.W), H: g.node.size.H / float64(g.dim.H)}
}

// --- Layout and drawing ---

// Redraw lays the grid out for its current size and location, draws it, and
// redraws every grid nested under its visible elements. The grid's visibility
// is copied onto its elements; when any element goes from hidden to visible,
// the grid is drawn a second time. Redraw is safe to repeat every frame.
func (g *Grid) Redraw(s Surface) {
	var t0 time.Time
	debug := g.node.tree.debug
	if debug {
		t0 = time.Now()
	}

	g.place()

	visible := g.node.visible
	revealed := false
	for _, col := range g.elements {
		for _, e := range col {
			if visible && !e.node.visible {
				revealed = true
			}
			e.node.visible = visible
		}
	}

	g.Draw(s)
	if revealed {
		g.Draw(s)
	}

	for _, col := range g.elements {
		for _, e := range col {
			if e.node.visible {
				redrawNested(e.node, s)
			}
		}
	}

	if debug {
		Logger().Debug("grid redraw",
			"grid", g.node.Name,
			"dim", g.dim.String(),
			"size", fmt.Sprintf("%.1fx%.1f", g.node.size.W, g.node.size.H),
			"revealed", revealed,
			"elapsed", time.Since(t0))
	}
}

// Layout sizes and places the grid, its elements and every grid nested below
// them without drawing. Visibility is left alone, so a grid shown since the
// last Redraw still gets its extra draw on the next one.
func (g *Grid) Layout() {
	g.place()
	for _, col := range g.elements {
		for _, e := range col {
			layoutNested(e.node)
		}
	}
}

// place fits the grid to its parent and positions every element around the
// grid's center.
func (g *Grid) place() {
	g.fitParent()
	g.node.refresh()

	es := g.ElementSize()
	span := Vec2{X: centerSpan(g.dim.W) * es.W, Y: centerSpan(g.dim.H) * es.H}
	// Elements are placed relative to their owner's center.
	shift := g.node.center.Sub(g.owner.center)
	for _, col := range g.elements {
		for _, e := range col {
			off := Vec2{X: axisOffset(e.coords.Col, g.dim.W), Y: axisOffset(e.coords.Row, g.dim.H)}
			e.node.setGeometry(Vec2{X: shift.X + off.X*span.X, Y: shift.Y + off.Y*span.Y}, es)
		}
	}
}

func layoutNested(n *Node) {
	for _, id := range n.children {
		c := n.tree.nodes[id]
		if c.grid != nil {
			c.grid.Layout()
			continue
		}
		layoutNested(c)
	}
}

// fitParent resizes a fitted grid to its parent and centers it there.
func (g *Grid) fitParent() {
	if g.fit <= 0 {
		return
	}
	p := g.node.Parent()
	if p == nil {
		return
	}
	g.node.setGeometry(Vec2{}, p.size.Scale(g.fit))
}

// redrawNested redraws grids found below n, descending through plain nodes.
func redrawNested(n *Node, s Surface) {
	for _, id := range n.children {
		c := n.tree.nodes[id]
		if c.grid != nil {
			c.grid.Redraw(s)
			continue
		}
		if c.visible {
			redrawNested(c, s)
		}
	}
}

// Draw paints every visible element with its Drawable, then the grid's outer
// border.
func (g *Grid) Draw(s Surface) {
	g.draws++
	if s == nil {
		return
	}
	for _, col := range g.elements {
		for _, e := range col {
			if e.node.visible {
				e.drawable.DrawElement(s, e, g.palette)
			}
		}
	}
	g.node.StrokeBorder(s, g.palette.Border, g.palette.BorderWidth)
}

// --- GridElement ---

// Node returns the element's node.
func (e *GridElement) Node() *Node { return e.node }

// Grid returns the grid the element belongs to.
func (e *GridElement) Grid() *Grid { return e.grid }

// Index returns the 1-based row-major index.
func (e *GridElement) Index() int { return e.index }

// Coords returns the zero-based column and row.
func (e *GridElement) Coords() Coords { return e.coords }

// Drawable returns the element's draw strategy.
func (e *GridElement) Drawable() Drawable { return e.drawable }

// SetDrawable swaps the element's draw strategy. Nil restores IndexLabel.
func (e *GridElement) SetDrawable(d Drawable) {
	if d == nil {
		d = IndexLabel{}
	}
	e.drawable = d
}
