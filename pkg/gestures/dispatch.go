package gestures

import (
	"github.com/cyypherus/salt/pkg/errors"
	"github.com/cyypherus/salt/pkg/graphics"
	"github.com/cyypherus/salt/pkg/scene"
)

// Dispatch resolves one pointer event against the current view, updating the
// interaction state and invoking shape callbacks. It returns true when the
// host should re-render.
//
// Callbacks may mutate application state freely but must not trigger a
// re-render themselves; re-rendering on a true return is the caller's job.
// The engine resolves each target shape to an index, copies the shape out of
// the view, and only then invokes the callback, so callbacks never hold a
// live reference into the shape list. A panic inside a callback is recovered
// and reported through pkg/errors; the event reports no redraw.
func Dispatch[T any](view *scene.View[T], st *State, state *T, ev PointerEvent) (redraw bool) {
	defer errors.Recover("gestures.Dispatch")

	switch ev.Phase {
	case PhaseDown:
		return handleDown(view, st, state, ev.Position)
	case PhaseMove:
		return handleMove(view, st, state, ev.Position)
	case PhaseUp:
		return handleUp(view, st, state, ev.Position)
	case PhaseClick:
		return handleClick(view, state, ev.Position)
	}
	return false
}

// handleDown begins press tracking on the topmost shape under the pointer.
// A press over empty space is a no-op and requests no redraw.
func handleDown[T any](view *scene.View[T], st *State, state *T, at graphics.Offset) bool {
	index, id, ok := view.HitTest(at.X, at.Y)
	if !ok {
		return false
	}

	start := at
	downID := id
	st.Drag.Start = &start
	st.Drag.DraggingID = &downID
	st.Drag.MouseDownID = &downID

	shape := view.At(index)
	shape.DispatchDrag(state, scene.DragStart, at, at)
	return true
}

// handleUp finishes any drag in progress, fires a click when the release
// lands on the same logical shape as the press, and clears drag tracking.
func handleUp[T any](view *scene.View[T], st *State, state *T, at graphics.Offset) bool {
	hitIndex, hitID, hitOK := view.HitTest(at.X, at.Y)

	if st.Drag.DraggingID != nil {
		// The scene may have been rebuilt since mouse-down; only the id is
		// trustworthy, never a stored index.
		if index, ok := view.FindByID(*st.Drag.DraggingID); ok {
			start := at
			if st.Drag.Start != nil {
				start = *st.Drag.Start
			}
			shape := view.At(index)
			shape.DispatchDrag(state, scene.DragEnd, start, at)
		}
	}

	if hitOK && st.Drag.MouseDownID != nil && hitID == *st.Drag.MouseDownID {
		shape := view.At(hitIndex)
		shape.DispatchClick(state)
	}

	st.Drag.Reset()
	return true
}

// handleMove updates hover state first; drag movement is only reported when
// the hover target did not change on this event. Hover and drag tracking are
// otherwise independent: a drag in progress does not suspend hover updates.
func handleMove[T any](view *scene.View[T], st *State, state *T, at graphics.Offset) bool {
	index, id, ok := view.HitTest(at.X, at.Y)

	prev := st.Hover.HoveringID
	hoverChanged := (ok && (prev == nil || *prev != id)) || (!ok && prev != nil)
	if hoverChanged {
		if prev != nil {
			if prevIndex, found := view.FindByID(*prev); found {
				shape := view.At(prevIndex)
				shape.DispatchHover(state, false, at)
			}
		}
		if ok {
			shape := view.At(index)
			shape.DispatchHover(state, true, at)
			hoverID := id
			st.Hover.HoveringID = &hoverID
		} else {
			st.Hover.HoveringID = nil
		}
		return true
	}

	if st.Drag.DraggingID != nil {
		if dragIndex, found := view.FindByID(*st.Drag.DraggingID); found {
			start := at
			if st.Drag.Start != nil {
				start = *st.Drag.Start
			}
			shape := view.At(dragIndex)
			shape.DispatchDrag(state, scene.DragMove, start, at)
			return true
		}
		// The dragged shape vanished from the fresh scene; abandon the
		// gesture rather than route callbacks to a stale target.
		st.Drag.Reset()
	}
	return false
}

// handleClick is the pass-through for hosts that report a combined
// press-and-release: hit the topmost shape and fire its click callback.
func handleClick[T any](view *scene.View[T], state *T, at graphics.Offset) bool {
	index, _, ok := view.HitTest(at.X, at.Y)
	if !ok {
		return false
	}
	shape := view.At(index)
	shape.DispatchClick(state)
	return true
}
