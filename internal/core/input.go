package core

// PointerKind identifies what happened to the pointer, abstracted from the
// host's physical mouse or touch events.
type PointerKind int

const (
	PointerNone  PointerKind = iota
	PointerDown              // Button pressed on a cell
	PointerEnter             // Pointer moved into a new cell while pressed
	PointerUp                // Button released
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerNone:
		return "None"
	case PointerDown:
		return "Down"
	case PointerEnter:
		return "Enter"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer action at a grid cell.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Cell returns the event position as a Coord.
func (e PointerEvent) Cell() Coord {
	return C(e.X, e.Y)
}
