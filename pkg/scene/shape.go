package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// DragPhase marks the lifecycle of a single drag gesture.
type DragPhase int

const (
	// DragStart is the initial contact of a drag.
	DragStart DragPhase = iota
	// DragMove is continued movement while dragging.
	DragMove
	// DragEnd is the release ending a drag.
	DragEnd
)

// String returns a human-readable representation of the drag phase.
func (p DragPhase) String() string {
	switch p {
	case DragStart:
		return "start"
	case DragMove:
		return "move"
	case DragEnd:
		return "end"
	default:
		return fmt.Sprintf("DragPhase(%d)", int(p))
	}
}

// Geometry is the sealed union of drawable shape variants.
//
// A Geometry is pure data: containment checks and SVG serialization only.
// Interactivity lives on the Shape wrapper.
type Geometry interface {
	// Contains reports whether the point (x, y) lies within the shape's
	// hit region in scene coordinates.
	Contains(x, y float64) bool

	writeSVG(b *strings.Builder)
}

// Shape pairs a geometry with a stable identity and optional interaction
// callbacks, generic over the application-state type T.
//
// The ID must be unique within a scene at any instant and stable across
// frame rebuilds for the same logical element; derive it with ID or
// IndexedID. Callback function values are shared by reference between the
// build call site and the shape instance; the scene drops them when cleared.
//
// A shape with no callbacks at all is transparent to hit testing regardless
// of its geometry.
type Shape[T any] struct {
	ID       uint64
	Geometry Geometry

	// OnClick fires when a press and release both land on this shape.
	OnClick func(state *T)
	// OnHover fires when the pointer enters (true) or leaves (false) the
	// shape, with the pointer position.
	OnHover func(state *T, entering bool, at graphics.Offset)
	// OnDrag fires for each phase of a drag that began on this shape, with
	// the press origin and the current pointer position.
	OnDrag func(state *T, phase DragPhase, start, current graphics.Offset)
}

// Interactive reports whether the shape has any interaction callback.
func (s *Shape[T]) Interactive() bool {
	return s.OnClick != nil || s.OnHover != nil || s.OnDrag != nil
}

// HitTest reports whether the point lands on this shape. Shapes without
// callbacks always report false.
func (s *Shape[T]) HitTest(x, y float64) bool {
	if !s.Interactive() || s.Geometry == nil {
		return false
	}
	return s.Geometry.Contains(x, y)
}

// DispatchClick invokes the click callback if present.
func (s *Shape[T]) DispatchClick(state *T) {
	if s.OnClick != nil {
		s.OnClick(state)
	}
}

// DispatchHover invokes the hover callback if present.
func (s *Shape[T]) DispatchHover(state *T, entering bool, at graphics.Offset) {
	if s.OnHover != nil {
		s.OnHover(state, entering, at)
	}
}

// DispatchDrag invokes the drag callback if present.
func (s *Shape[T]) DispatchDrag(state *T, phase DragPhase, start, current graphics.Offset) {
	if s.OnDrag != nil {
		s.OnDrag(state, phase, start, current)
	}
}
