package gestures

import "github.com/cyypherus/salt/pkg/graphics"

// DragState tracks an in-progress press/drag by shape identity.
// All fields are nil when no press is active.
type DragState struct {
	// Start is the position of the initiating mouse-down.
	Start *graphics.Offset
	// DraggingID identifies the shape receiving drag callbacks.
	DraggingID *uint64
	// MouseDownID identifies the shape pressed on, for click matching
	// against the release target.
	MouseDownID *uint64
}

// Reset clears all drag tracking.
func (s *DragState) Reset() {
	s.Start = nil
	s.DraggingID = nil
	s.MouseDownID = nil
}

// HoverState tracks which shape the pointer currently rests on.
type HoverState struct {
	// HoveringID identifies the hovered shape, nil when over empty space.
	HoveringID *uint64
}

// State is the long-lived interaction record. It survives across frames
// while the scene itself is rebuilt, which is why it tracks shapes by
// identity rather than index. Created once at application start and mutated
// only by Dispatch.
type State struct {
	Drag  DragState
	Hover HoverState
}
