package testing

import (
	"testing"

	"github.com/cyypherus/salt/pkg/app"
	"github.com/cyypherus/salt/pkg/gestures"
	"github.com/cyypherus/salt/pkg/graphics"
)

const (
	// DefaultTestWidth is the default surface width for tests.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default surface height for tests.
	DefaultTestHeight = 600
)

// Tester drives a salt application through the two host entry points and
// re-renders whenever an event reports a needed redraw.
type Tester[T any] struct {
	t      *testing.T
	runner *app.Runner[T]
	size   graphics.Dimensions

	lastSVG string
	renders int
}

// NewTester creates a tester around the given state and build function with
// the default surface size.
func NewTester[T any](t *testing.T, state *T, build app.BuildFunc[T]) *Tester[T] {
	t.Helper()
	return &Tester[T]{
		t:      t,
		runner: app.NewRunner(state, build),
		size:   graphics.Dimensions{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize changes the surface dimensions used by subsequent renders.
func (tt *Tester[T]) SetSize(width, height uint32) {
	tt.size = graphics.Dimensions{Width: width, Height: height}
}

// Runner exposes the underlying runner for direct assertions.
func (tt *Tester[T]) Runner() *app.Runner[T] {
	return tt.runner
}

// Pump renders one frame and returns the SVG markup.
func (tt *Tester[T]) Pump() string {
	tt.lastSVG = tt.runner.Render(tt.size)
	tt.renders++
	return tt.lastSVG
}

// LastSVG returns the markup of the most recent render.
func (tt *Tester[T]) LastSVG() string {
	return tt.lastSVG
}

// RenderCount returns the number of frames rendered so far.
func (tt *Tester[T]) RenderCount() int {
	return tt.renders
}

// SendPointerDown dispatches a press at pos, re-rendering on a true return.
func (tt *Tester[T]) SendPointerDown(pos graphics.Offset) bool {
	return tt.send(gestures.PointerEvent{Phase: gestures.PhaseDown, Position: pos})
}

// SendPointerMove dispatches a move at pos, re-rendering on a true return.
func (tt *Tester[T]) SendPointerMove(pos graphics.Offset) bool {
	return tt.send(gestures.PointerEvent{Phase: gestures.PhaseMove, Position: pos})
}

// SendPointerUp dispatches a release at pos, re-rendering on a true return.
func (tt *Tester[T]) SendPointerUp(pos graphics.Offset) bool {
	return tt.send(gestures.PointerEvent{Phase: gestures.PhaseUp, Position: pos})
}

// SendClick dispatches a combined press-and-release event at pos.
func (tt *Tester[T]) SendClick(pos graphics.Offset) bool {
	return tt.send(gestures.PointerEvent{Phase: gestures.PhaseClick, Position: pos})
}

// TapAt simulates a press and release at the same position.
func (tt *Tester[T]) TapAt(pos graphics.Offset) {
	tt.SendPointerDown(pos)
	tt.SendPointerUp(pos)
}

// DragFrom simulates a drag from start by delta, with intermediate moves.
func (tt *Tester[T]) DragFrom(start, delta graphics.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	tt.SendPointerDown(start)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		tt.SendPointerMove(graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		})
	}
	tt.SendPointerUp(graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y})
}

// send dispatches one event and re-renders when the engine asks for it,
// mirroring what a real host loop does.
func (tt *Tester[T]) send(ev gestures.PointerEvent) bool {
	redraw := tt.runner.DispatchEvent(ev)
	if redraw {
		tt.Pump()
	}
	return redraw
}
