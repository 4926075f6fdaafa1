// Package sudoku is the grid-puzzle game built on shapegrid: a board of
// d×d regions, each a d×d grid of cells, each cell a d×d grid of candidate
// values. It handles layout, values, candidates and selection. It does not
// solve or generate puzzles.
package sudoku

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/phanxgames/shapegrid"
)

// ErrInvalidValue is returned for a value outside 1..d².
var ErrInvalidValue = errors.New("sudoku: invalid value")

// DefaultBoardScale is the fraction of the smaller canvas side the board
// takes.
const DefaultBoardScale = 0.75

// possibilityFit is the fraction of a cell its candidate grid covers, leaving
// the cell background visible as a frame.
const possibilityFit = 0.9

// Board colors.
var (
	BackgroundTop    = shapegrid.MustParseColor("blue")
	BackgroundBottom = shapegrid.MustParseColor("lightBlue")
	BorderColor      = shapegrid.MustParseColor("#40cf40")
)

const (
	boardBorderWidth  = 3.0
	regionBorderWidth = 2.0
)

var (
	regionStyle = shapegrid.GridStyle{
		DivColor: "lightGray",
		DivWidth: regionBorderWidth,
	}
	cellStyle = shapegrid.GridStyle{
		FillColor:   "gray",
		TextColor:   "white",
		DivColor:    "darkGray",
		BorderColor: "lightGray",
		BorderWidth: regionBorderWidth,
	}
	possibilityStyle = shapegrid.GridStyle{
		FillColor: "black",
		TextColor: "gray",
	}
)

// Board is the whole puzzle.
type Board struct {
	tree    *shapegrid.Tree
	dim     int
	scale   float64
	grid    *shapegrid.Grid
	regions []*Region
	cells   [][]*Cell // [row][col], global
}

// Region is one d×d block of cells.
type Region struct {
	board *Board
	elem  *shapegrid.GridElement
	grid  *shapegrid.Grid
	cells []*Cell // by index - 1
}

// Cell is one square of the puzzle. A cell either holds a value or shows its
// candidate grid.
type Cell struct {
	region   *Region
	elem     *shapegrid.GridElement
	grid     *shapegrid.Grid
	row, col int
	value    int
	possible []bool
	colors   []color.Color // candidate text color, nil for the grid default
}

// Possibility is the UserData of a candidate node.
type Possibility struct {
	Cell  *Cell
	Value int
}

// NewBoard builds a board of dimension dim under tree's root. Dimension 3 is
// the classic 9×9 puzzle.
func NewBoard(tree *shapegrid.Tree, dim int) (*Board, error) {
	if tree == nil {
		return nil, shapegrid.ErrMissingContext
	}
	if dim < 1 {
		return nil, fmt.Errorf("%w: board dimension %d", shapegrid.ErrInvalidDimensions, dim)
	}
	gd := shapegrid.GridDim{W: dim, H: dim}
	n := dim * dim

	b := &Board{tree: tree, dim: dim, scale: DefaultBoardScale}
	grid, err := shapegrid.NewGrid(tree.Root(), shapegrid.GridConfig{
		Name:      "board",
		Dim:       gd,
		Clickable: true,
		Style:     regionStyle,
		Drawable:  func(int) shapegrid.Drawable { return shapegrid.Plain{} },
		ElementName: func(index int, _ shapegrid.Coords) string {
			return "region " + strconv.Itoa(index)
		},
	})
	if err != nil {
		return nil, err
	}
	b.grid = grid

	b.cells = make([][]*Cell, n)
	for r := range b.cells {
		b.cells[r] = make([]*Cell, n)
	}

	for _, re := range grid.Elements() {
		region := &Region{board: b, elem: re}
		re.Node().UserData = region
		region.grid, err = shapegrid.NewGrid(re.Node(), shapegrid.GridConfig{
			Name:     fmt.Sprintf("region %d cells", re.Index()),
			Dim:      gd,
			Fit:      1,
			Style:    cellStyle,
			Drawable: func(int) shapegrid.Drawable { return shapegrid.TextFunc(cellLabel) },
			ElementName: func(index int, _ shapegrid.Coords) string {
				return fmt.Sprintf("cell %d.%d", re.Index(), index)
			},
		})
		if err != nil {
			return nil, err
		}
		for _, ce := range region.grid.Elements() {
			cell, err := newCell(region, ce)
			if err != nil {
				return nil, err
			}
			region.cells = append(region.cells, cell)
			b.cells[cell.row][cell.col] = cell
		}
		b.regions = append(b.regions, region)
	}
	return b, nil
}

func newCell(region *Region, ce *shapegrid.GridElement) (*Cell, error) {
	dim := region.board.dim
	rc, cc := region.elem.Coords(), ce.Coords()
	cell := &Cell{
		region:   region,
		elem:     ce,
		row:      rc.Row*dim + cc.Row,
		col:      rc.Col*dim + cc.Col,
		possible: make([]bool, dim*dim),
		colors:   make([]color.Color, dim*dim),
	}
	for i := range cell.possible {
		cell.possible[i] = true
	}
	ce.Node().UserData = cell

	var err error
	cell.grid, err = shapegrid.NewGrid(ce.Node(), shapegrid.GridConfig{
		Name:  fmt.Sprintf("cell %d,%d possibilities", cell.row, cell.col),
		Dim:   shapegrid.GridDim{W: dim, H: dim},
		Fit:   possibilityFit,
		Style: possibilityStyle,
		Drawable: func(int) shapegrid.Drawable {
			return shapegrid.DrawableFunc(cell.drawPossibility)
		},
		ElementName: func(index int, _ shapegrid.Coords) string {
			return fmt.Sprintf("possibility %d", index)
		},
	})
	if err != nil {
		return nil, err
	}
	for _, pe := range cell.grid.Elements() {
		pe.Node().UserData = &Possibility{Cell: cell, Value: pe.Index()}
	}
	return cell, nil
}

// cellLabel shows a cell's value. Cells without one draw no text.
func cellLabel(e *shapegrid.GridElement) string {
	c, _ := e.Node().UserData.(*Cell)
	if c == nil || c.value == 0 {
		return ""
	}
	return strconv.Itoa(c.value)
}

// drawPossibility paints one candidate: the background always, the number
// only while it is still possible.
func (c *Cell) drawPossibility(s shapegrid.Surface, e *shapegrid.GridElement, p shapegrid.Palette) {
	n := e.Node()
	n.Fill(s, p.Fill)
	v := e.Index()
	if !c.possible[v-1] {
		return
	}
	tc := p.Text
	if c.colors[v-1] != nil {
		tc = c.colors[v-1]
	}
	n.DrawText(s, strconv.Itoa(v), tc)
}

// --- Board ---

// Tree returns the tree the board lives in.
func (b *Board) Tree() *shapegrid.Tree { return b.tree }

// Grid returns the region grid.
func (b *Board) Grid() *shapegrid.Grid { return b.grid }

// Dim returns the board dimension d.
func (b *Board) Dim() int { return b.dim }

// Size returns the number of cells per row, d².
func (b *Board) Size() int { return b.dim * b.dim }

// SetScale sets the fraction of the smaller canvas side the board takes.
func (b *Board) SetScale(scale float64) {
	if scale > 0 && scale <= 1 {
		b.scale = scale
	}
}

// Region returns the region with the given 1-based row-major index.
func (b *Board) Region(index int) (*Region, error) {
	if index < 1 || index > len(b.regions) {
		return nil, fmt.Errorf("%w: region %d", shapegrid.ErrInvalidIndex, index)
	}
	return b.regions[index-1], nil
}

// Cell returns the cell at zero-based board row and column.
func (b *Board) Cell(row, col int) (*Cell, error) {
	n := b.Size()
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, fmt.Errorf("%w: cell %d,%d", shapegrid.ErrInvalidIndex, row, col)
	}
	return b.cells[row][col], nil
}

// AllPossibilities returns 1..d².
func (b *Board) AllPossibilities() []int {
	out := make([]int, b.Size())
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Layout resizes the canvas and centers the board at its scale of the
// smaller side.
func (b *Board) Layout(width, height float64) {
	b.tree.Resize(width, height)
	side := math.Floor(b.scale * math.Min(b.tree.Canvas().W, b.tree.Canvas().H))
	_ = b.grid.Node().SetSize(shapegrid.Size{W: side, H: side})
}

// Redraw paints the background gradient, every grid and the board border.
func (b *Board) Redraw(s shapegrid.Surface) {
	c := b.tree.Canvas()
	shapegrid.FillGradient(s, shapegrid.Rect{Width: c.W, Height: c.H}, BackgroundTop, BackgroundBottom)
	b.grid.Redraw(s)
	// Nested grids paint over the border; stroke it last.
	b.grid.Node().StrokeBorder(s, BorderColor, boardBorderWidth)
}

// SetValue sets a cell's value. Zero clears it and shows the candidates
// again.
func (b *Board) SetValue(c *Cell, value int) error {
	if value < 0 || value > b.Size() {
		return fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	c.value = value
	c.grid.SetVisible(value == 0)
	return nil
}

// SetPossible marks candidates as possible or not. No values means all.
func (b *Board) SetPossible(c *Cell, possible bool, values ...int) error {
	vs, err := b.values(values)
	if err != nil {
		return err
	}
	for _, v := range vs {
		c.possible[v-1] = possible
	}
	return nil
}

// SetPossibleColor sets the text color of candidates. Nil restores the grid
// default. No values means all.
func (b *Board) SetPossibleColor(c *Cell, col color.Color, values ...int) error {
	vs, err := b.values(values)
	if err != nil {
		return err
	}
	for _, v := range vs {
		c.colors[v-1] = col
	}
	return nil
}

func (b *Board) values(values []int) ([]int, error) {
	if len(values) == 0 {
		return b.AllPossibilities(), nil
	}
	for _, v := range values {
		if v < 1 || v > b.Size() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidValue, v)
		}
	}
	return values, nil
}

// Selection is what a hit list resolves to. Fields are nil or zero when the
// point missed that level.
type Selection struct {
	Region      *Region
	Cell        *Cell
	Possibility int
}

// Resolve maps a hit list to the region, cell and candidate under the point.
// A candidate of a cell holding a value is not selectable.
func (b *Board) Resolve(hits []*shapegrid.Node) Selection {
	var sel Selection
	for _, n := range hits {
		switch v := n.UserData.(type) {
		case *Region:
			if v.board == b {
				sel.Region = v
			}
		case *Cell:
			if v.region.board == b {
				sel.Cell = v
			}
		case *Possibility:
			if v.Cell.region.board == b && v.Cell.value == 0 {
				sel.Possibility = v.Value
			}
		}
	}
	return sel
}

// --- Region ---

// Index returns the region's 1-based row-major index on the board.
func (r *Region) Index() int { return r.elem.Index() }

// Node returns the region's node.
func (r *Region) Node() *shapegrid.Node { return r.elem.Node() }

// Cell returns the region's cell with the given 1-based index.
func (r *Region) Cell(index int) (*Cell, error) {
	if index < 1 || index > len(r.cells) {
		return nil, fmt.Errorf("%w: cell %d", shapegrid.ErrInvalidIndex, index)
	}
	return r.cells[index-1], nil
}

// --- Cell ---

// Row returns the zero-based board row.
func (c *Cell) Row() int { return c.row }

// Col returns the zero-based board column.
func (c *Cell) Col() int { return c.col }

// Region returns the region holding the cell.
func (c *Cell) Region() *Region { return c.region }

// Node returns the cell's node.
func (c *Cell) Node() *shapegrid.Node { return c.elem.Node() }

// Value returns the cell's value, 0 when empty.
func (c *Cell) Value() int { return c.value }

// Possible reports whether v is still a candidate. Out-of-range values are
// never possible.
func (c *Cell) Possible(v int) bool {
	return v >= 1 && v <= len(c.possible) && c.possible[v-1]
}

// Possibilities returns the current candidates in ascending order.
func (c *Cell) Possibilities() []int {
	var out []int
	for i, ok := range c.possible {
		if ok {
			out = append(out, i+1)
		}
	}
	return out
}

// PossibilityNode returns the node drawing candidate v, or nil.
func (c *Cell) PossibilityNode(v int) *shapegrid.Node {
	e, err := c.grid.Element(v)
	if err != nil {
		return nil
	}
	return e.Node()
}

func (c *Cell) String() string {
	return fmt.Sprintf("cell %d,%d", c.row, c.col)
}
