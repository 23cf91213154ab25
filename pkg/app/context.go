// Package app bundles a scene, interaction state, and viewport into the
// per-frame application context, and exposes the two host entry points:
// event dispatch and render.
package app

import (
	"github.com/cyypherus/salt/pkg/gestures"
	"github.com/cyypherus/salt/pkg/graphics"
	"github.com/cyypherus/salt/pkg/scene"
)

// Context owns the scene and interaction state for one application.
//
// It is created once at startup and passed into every per-frame view
// declaration. The view is cleared and rebuilt each frame; the gesture state
// lives on across frames. Single-owner and single-threaded throughout.
type Context[T any] struct {
	View     scene.View[T]
	Gestures gestures.State
	Viewport graphics.Dimensions
}

// NewContext creates an empty application context.
func NewContext[T any]() *Context[T] {
	return &Context[T]{}
}

// SetDimensions records the host viewport size for the current frame.
func (c *Context[T]) SetDimensions(d graphics.Dimensions) {
	c.Viewport = d
}

// Dimensions returns the current viewport size.
func (c *Context[T]) Dimensions() graphics.Dimensions {
	return c.Viewport
}

// Clear empties the view ahead of a rebuild.
func (c *Context[T]) Clear() {
	c.View.Clear()
}

// ResetInteraction clears all drag tracking.
func (c *Context[T]) ResetInteraction() {
	c.Gestures.Drag.Reset()
}

// DispatchEvent resolves a pointer event against the current view and
// returns true when the host should re-render.
func (c *Context[T]) DispatchEvent(state *T, ev gestures.PointerEvent) bool {
	return gestures.Dispatch(&c.View, &c.Gestures, state, ev)
}
