package dom

// EventType names a pointer event.
type EventType string

// Pointer event types.
const (
	EventPointerMove  EventType = "pointermove"
	EventPointerLeave EventType = "pointerleave"
)

// Touch-action values.
const (
	TouchActionAuto = "auto"
	TouchActionNone = "none"
)

// PointerEvent is a pointer event in client (screen) coordinates.
type PointerEvent struct {
	Type      EventType
	ClientX   float64
	ClientY   float64
	PointerID int
	IsPrimary bool
}

// Listener handles a dispatched pointer event.
type Listener func(PointerEvent)

// Move returns a primary pointermove event at (x, y).
func Move(x, y float64) PointerEvent {
	return PointerEvent{Type: EventPointerMove, ClientX: x, ClientY: y, IsPrimary: true}
}

// Leave returns a primary pointerleave event.
func Leave() PointerEvent {
	return PointerEvent{Type: EventPointerLeave, IsPrimary: true}
}
