package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// View is the ordered list of shapes for the current frame.
//
// Insertion order is paint order: later shapes draw on top and win hit
// testing. The view is rebuilt from empty every frame; no identity persists
// across frames except what callers re-derive from shape IDs.
//
// The zero value is an empty view ready for use.
type View[T any] struct {
	shapes []Shape[T]
}

// Push appends a shape to the view.
func (v *View[T]) Push(s Shape[T]) {
	v.shapes = append(v.shapes, s)
}

// Clear removes all shapes, dropping their callback handles.
func (v *View[T]) Clear() {
	v.shapes = v.shapes[:0]
}

// Len returns the number of shapes in the view.
func (v *View[T]) Len() int {
	return len(v.shapes)
}

// At returns a copy of the shape at the given index.
//
// The gesture engine resolves an index first and then dispatches on the
// copy, so a callback that rebuilds application state never observes a
// dangling reference into the shape list.
func (v *View[T]) At(index int) Shape[T] {
	return v.shapes[index]
}

// HitTest walks the shape list topmost-first and returns the index and
// identity of the first shape whose hit test succeeds. Shapes without
// callbacks are transparent. ok is false when nothing is hit.
func (v *View[T]) HitTest(x, y float64) (index int, id uint64, ok bool) {
	for i := len(v.shapes) - 1; i >= 0; i-- {
		if v.shapes[i].HitTest(x, y) {
			return i, v.shapes[i].ID, true
		}
	}
	return 0, 0, false
}

// FindByID returns the index of the shape with the given identity, used to
// re-locate a shape across frame rebuilds when only its id survived.
func (v *View[T]) FindByID(id uint64) (index int, ok bool) {
	for i := range v.shapes {
		if v.shapes[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Render serializes the view to an SVG string: a header sized to the given
// dimensions, one element per shape in insertion order (bottom to top), and
// a closing tag. Rendering is pure; it never mutates the view or any
// interaction state.
func (v *View[T]) Render(d graphics.Dimensions) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="0 0 %d %d">`,
		d.Width, d.Height)
	for i := range v.shapes {
		if v.shapes[i].Geometry != nil {
			v.shapes[i].Geometry.writeSVG(&b)
		}
	}
	b.WriteString("</svg>")
	return b.String()
}
