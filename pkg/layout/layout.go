// Package layout computes placement rectangles for a declarative node tree.
//
// The rest of the framework treats layout as a black box: applications
// describe a tree of rows, columns, stacks, and draw leaves, call Solve with
// the viewport area, and each leaf receives its placement rect. Shape
// builders consume those rects; nothing downstream depends on how the
// solver divides space.
package layout

import "github.com/cyypherus/salt/pkg/graphics"

// DrawFunc receives the placement rectangle assigned to a draw leaf.
type DrawFunc func(area graphics.Rect)

type nodeKind int

const (
	kindDraw nodeKind = iota
	kindColumn
	kindRow
	kindStack
	kindGroup
	kindSpace
)

// Node is one element of a layout tree. Nodes are value types; modifiers
// return updated copies so trees can be built inline.
type Node struct {
	kind     nodeKind
	children []Node
	draw     DrawFunc
	gap      float64

	width     float64
	height    float64
	hasWidth  bool
	hasHeight bool
	pad       float64
}

// Draw creates a leaf that receives its placement rect when solved.
func Draw(fn DrawFunc) Node {
	return Node{kind: kindDraw, draw: fn}
}

// Space creates an empty flexible leaf, useful to push siblings apart.
func Space() Node {
	return Node{kind: kindSpace}
}

// Column stacks children vertically, splitting leftover height equally
// among children without an explicit height.
func Column(children ...Node) Node {
	return Node{kind: kindColumn, children: children}
}

// ColumnSpaced is Column with a fixed gap between children.
func ColumnSpaced(gap float64, children ...Node) Node {
	return Node{kind: kindColumn, children: children, gap: gap}
}

// Row lays children out horizontally, splitting leftover width equally
// among children without an explicit width.
func Row(children ...Node) Node {
	return Node{kind: kindRow, children: children}
}

// RowSpaced is Row with a fixed gap between children.
func RowSpaced(gap float64, children ...Node) Node {
	return Node{kind: kindRow, children: children, gap: gap}
}

// Stack overlays all children on the full available area, in order.
func Stack(children ...Node) Node {
	return Node{kind: kindStack, children: children}
}

// Group splices a slice of nodes into the surrounding row or column as if
// they were written inline, so loops can contribute siblings.
func Group(children []Node) Node {
	return Node{kind: kindGroup, children: children}
}

// Pad returns the node inset by p on all sides before solving.
func (n Node) Pad(p float64) Node {
	n.pad += p
	return n
}

// Width fixes the node's width along a row's main axis; on the cross axis
// the node is centered within the space it was given.
func (n Node) Width(w float64) Node {
	n.width = w
	n.hasWidth = true
	return n
}

// Height fixes the node's height along a column's main axis; on the cross
// axis the node is centered within the space it was given.
func (n Node) Height(h float64) Node {
	n.height = h
	n.hasHeight = true
	return n
}

// Solve assigns a placement rect to every draw leaf in the tree, covering
// the given bounding area.
func Solve(root Node, area graphics.Rect) {
	root.solve(area)
}

func (n Node) solve(area graphics.Rect) {
	if n.pad != 0 {
		area = area.Inset(n.pad)
	}
	// An explicit size not consumed by a parent row/column centers the node
	// within the area it was handed.
	if n.hasWidth && area.Width() > n.width {
		cx := area.Center().X
		area.Left = cx - n.width/2
		area.Right = cx + n.width/2
	}
	if n.hasHeight && area.Height() > n.height {
		cy := area.Center().Y
		area.Top = cy - n.height/2
		area.Bottom = cy + n.height/2
	}

	switch n.kind {
	case kindDraw:
		if n.draw != nil {
			n.draw(area)
		}
	case kindSpace:
		// Occupies space, draws nothing.
	case kindStack, kindGroup:
		for _, child := range n.children {
			child.solve(area)
		}
	case kindColumn:
		n.solveAxis(area, false)
	case kindRow:
		n.solveAxis(area, true)
	}
}

// solveAxis distributes the main axis among flattened children: children
// with an explicit main-axis size keep it, the rest split what remains.
func (n Node) solveAxis(area graphics.Rect, horizontal bool) {
	children := flatten(n.children)
	if len(children) == 0 {
		return
	}

	total := area.Height()
	if horizontal {
		total = area.Width()
	}
	available := total - n.gap*float64(len(children)-1)

	flexible := 0
	for _, child := range children {
		if size, fixed := child.mainSize(horizontal); fixed {
			available -= size
		} else {
			flexible++
		}
	}
	flexSize := 0.0
	if flexible > 0 && available > 0 {
		flexSize = available / float64(flexible)
	}

	cursor := area.Top
	if horizontal {
		cursor = area.Left
	}
	for _, child := range children {
		size, fixed := child.mainSize(horizontal)
		if !fixed {
			size = flexSize
		}
		var slot graphics.Rect
		if horizontal {
			slot = graphics.Rect{Left: cursor, Top: area.Top, Right: cursor + size, Bottom: area.Bottom}
			// The slot already realizes the explicit width; don't re-center.
			child.hasWidth = false
		} else {
			slot = graphics.Rect{Left: area.Left, Top: cursor, Right: area.Right, Bottom: cursor + size}
			child.hasHeight = false
		}
		child.solve(slot)
		cursor += size + n.gap
	}
}

// mainSize returns the child's explicit size along the given axis.
func (n Node) mainSize(horizontal bool) (size float64, fixed bool) {
	if horizontal {
		return n.width + 2*n.pad, n.hasWidth
	}
	return n.height + 2*n.pad, n.hasHeight
}

// flatten expands Group nodes into their children so loops participate in
// sibling distribution directly.
func flatten(children []Node) []Node {
	flat := make([]Node, 0, len(children))
	for _, child := range children {
		if child.kind == kindGroup && child.pad == 0 {
			flat = append(flat, flatten(child.children)...)
		} else {
			flat = append(flat, child)
		}
	}
	return flat
}
