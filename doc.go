// Package shapegrid is a small retained-mode scene graph for canvas-drawn
// grid puzzles.
//
// It provides nested positioned nodes, uniform grid subdivision laid out
// around each grid's center, point hit-testing across the whole tree, and a
// narrow [Surface] contract for the 2D drawing backend.
//
// # Scene graph
//
// A [Tree] owns every [Node] in an arena. Each node stores its center
// relative to its parent's center (the root's is relative to the canvas
// center) and its size. Absolute corners are recomputed eagerly by
// [Node.SetLocation], [Node.SetSize] and [Tree.Resize], so draws and hit
// tests never read a stale position.
//
//	tree := shapegrid.NewTree(800, 600)
//	panel, _ := tree.Root().NewChild(shapegrid.NodeOptions{
//		Name: "panel", Size: shapegrid.Size{W: 200, H: 200}, Clickable: true,
//	})
//	panel.SetLocation(shapegrid.Vec2{X: -100, Y: -100})
//
// # Grids
//
// [NewGrid] subdivides a node into W×H [GridElement] children with 1-based
// row-major indices. [Grid.Redraw] sizes and places every element, draws the
// grid through the given [Surface] and recurses into grids nested under the
// elements:
//
//	board, _ := shapegrid.NewGrid(tree.Root(), shapegrid.GridConfig{
//		Name: "board", Dim: shapegrid.GridDim{W: 3, H: 3},
//		Size: shapegrid.Size{W: 300, H: 300},
//		Style: shapegrid.DefaultGridStyle,
//	})
//	board.Redraw(surface)
//
// Each element draws through a [Drawable] picked when the grid is built
// ([IndexLabel], [Plain], [TextFunc], [Hidden] or a [DrawableFunc]).
//
// # Hit testing
//
// [Node.HitTest] returns every clickable node containing a point, outermost
// first. [DeepestElement] picks the innermost grid element from that list.
//
// # Backends
//
// Surfaces live in sub-packages: ebitensurface (window, plus a host that
// turns Ebitengine's loop into [Scene] calls), ggsurface (headless raster and
// PNG snapshots) and termsurface (terminal preview). The ecs sub-package
// forwards [InteractionEvent] values into a Donburi world.
package shapegrid
