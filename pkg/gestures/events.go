package gestures

import (
	"fmt"

	"github.com/cyypherus/salt/pkg/graphics"
)

// Phase identifies the kind of a pointer event.
type Phase int

const (
	// PhaseClick is a press-and-release reported as one event by hosts
	// that don't distinguish down from up.
	PhaseClick Phase = iota
	// PhaseDown is initial pointer contact.
	PhaseDown
	// PhaseMove is pointer movement, pressed or not.
	PhaseMove
	// PhaseUp is pointer release.
	PhaseUp
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseClick:
		return "click"
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PhaseFromString parses a DOM-style event name. Unknown names parse as
// click.
func PhaseFromString(s string) Phase {
	switch s {
	case "mousedown":
		return PhaseDown
	case "mousemove":
		return PhaseMove
	case "mouseup":
		return PhaseUp
	default:
		return PhaseClick
	}
}

// PointerEvent is a single pointer event in surface-relative coordinates.
type PointerEvent struct {
	Phase    Phase
	Position graphics.Offset
}
