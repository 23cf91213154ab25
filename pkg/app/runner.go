package app

import (
	"github.com/cyypherus/salt/pkg/errors"
	"github.com/cyypherus/salt/pkg/gestures"
	"github.com/cyypherus/salt/pkg/graphics"
)

// BuildFunc declares the view for one frame. It typically runs a layout
// solve over the current application state and pushes shapes into
// ctx.View for each placement rect.
//
// Shape identities must be derived deterministically from the call site
// plus an optional key, never from insertion order, so identity lookups
// stay valid across rebuilds triggered by unrelated state changes. Given
// identical state and dimensions, a BuildFunc must declare an identical
// view.
type BuildFunc[T any] func(ctx *Context[T], state *T, d graphics.Dimensions)

// Runner wires application state, a context, and a build function into the
// host-facing surface. Hosts call exactly two methods per interaction cycle:
// DispatchEvent for each pointer event, then Render whenever an event
// reported that a redraw is needed.
type Runner[T any] struct {
	State *T
	Ctx   *Context[T]
	Build BuildFunc[T]
}

// NewRunner creates a runner around the given initial state and build
// function.
func NewRunner[T any](state *T, build BuildFunc[T]) *Runner[T] {
	return &Runner[T]{
		State: state,
		Ctx:   NewContext[T](),
		Build: build,
	}
}

// DispatchEvent feeds one pointer event to the gesture engine and returns
// true when the host should re-render.
func (r *Runner[T]) DispatchEvent(ev gestures.PointerEvent) bool {
	return r.Ctx.DispatchEvent(r.State, ev)
}

// Render produces the SVG markup for one frame: update the viewport,
// clear the view, re-declare it from the current application state, then
// serialize. Synchronous and idempotent for identical state and dimensions.
func (r *Runner[T]) Render(d graphics.Dimensions) string {
	defer errors.Recover("app.Runner.Render")

	r.Ctx.SetDimensions(d)
	r.Ctx.Clear()
	if r.Build != nil {
		r.Build(r.Ctx, r.State, d)
	}
	return r.Ctx.View.Render(d)
}
