package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x, y) via two control points
	PathOpClose                 // Close subpath with line to start point
)

// String returns the SVG command letter for the operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "M"
	case PathOpLineTo:
		return "L"
	case PathOpCubicTo:
		return "C"
	case PathOpClose:
		return "Z"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x,y]
}

// PathShape is a vector path built from move/line/curve/close commands.
//
// The path tracks its own bounding box as commands are appended; cubic
// control points are included even though the rendered curve may not reach
// them, giving a conservative hit region. Hit testing inflates the box by
// half the stroke width on all sides.
type PathShape struct {
	Commands    []PathCommand
	Fill        graphics.Color
	Stroke      graphics.Color
	StrokeWidth float64

	bounds   *graphics.Rect
	currentX float64
	currentY float64
}

// NewPath creates an empty path with a transparent fill and a 1-unit black
// stroke.
func NewPath() *PathShape {
	return &PathShape{
		Fill:        graphics.ColorTransparent,
		Stroke:      graphics.ColorBlack,
		StrokeWidth: 1,
	}
}

// MoveTo starts a new subpath at the given point.
func (p *PathShape) MoveTo(x, y float64) *PathShape {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
	p.growBounds(x, y)
	return p
}

// LineTo adds a line segment from the current point to (x, y).
// On an empty path an implicit MoveTo to the current position is inserted.
func (p *PathShape) LineTo(x, y float64) *PathShape {
	if len(p.Commands) == 0 {
		p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{p.currentX, p.currentY}})
	}
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
	p.growBounds(x, y)
	return p
}

// CubicTo adds a cubic bezier curve from the current point to (x, y)
// with control points (x1, y1) and (x2, y2).
// On an empty path an implicit MoveTo to the current position is inserted.
func (p *PathShape) CubicTo(x1, y1, x2, y2, x, y float64) *PathShape {
	if len(p.Commands) == 0 {
		p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{p.currentX, p.currentY}})
	}
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x, y}})
	p.growBounds(x1, y1)
	p.growBounds(x2, y2)
	p.growBounds(x, y)
	return p
}

// Close closes the current subpath by drawing a line to its starting point.
func (p *PathShape) Close() *PathShape {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
	return p
}

// Rect appends a closed rectangular subpath.
func (p *PathShape) Rect(x, y, width, height float64) *PathShape {
	return p.MoveTo(x, y).
		LineTo(x+width, y).
		LineTo(x+width, y+height).
		LineTo(x, y+height).
		Close()
}

// IsEmpty returns true if the path has no commands.
func (p *PathShape) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Bounds returns the accumulated bounding box of all points appended so far,
// including curve control points. ok is false for an empty path.
func (p *PathShape) Bounds() (bounds graphics.Rect, ok bool) {
	if p.bounds == nil {
		return graphics.Rect{}, false
	}
	return *p.bounds, true
}

// Contains reports whether the point lies within the path's bounding box
// inflated by half the stroke width. An empty path contains nothing.
func (p *PathShape) Contains(x, y float64) bool {
	if p.bounds == nil {
		return false
	}
	return p.bounds.Expand(p.StrokeWidth / 2).Contains(x, y)
}

func (p *PathShape) writeSVG(b *strings.Builder) {
	var d strings.Builder
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			fmt.Fprintf(&d, "M %v,%v ", cmd.Args[0], cmd.Args[1])
		case PathOpLineTo:
			fmt.Fprintf(&d, "L %v,%v ", cmd.Args[0], cmd.Args[1])
		case PathOpCubicTo:
			fmt.Fprintf(&d, "C %v,%v %v,%v %v,%v ",
				cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
		case PathOpClose:
			d.WriteString("Z ")
		}
	}
	fmt.Fprintf(b, `<path d="%s" fill="%s" stroke="%s" stroke-width="%v" />`,
		strings.TrimRight(d.String(), " "), p.Fill.SVG(), p.Stroke.SVG(), p.StrokeWidth)
}

func (p *PathShape) growBounds(x, y float64) {
	if p.bounds == nil {
		p.bounds = &graphics.Rect{Left: x, Top: y, Right: x, Bottom: y}
	} else {
		r := p.bounds.Union(graphics.Rect{Left: x, Top: y, Right: x, Bottom: y})
		p.bounds = &r
	}
	p.currentX = x
	p.currentY = y
}
