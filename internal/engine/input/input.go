// Package input defines the editor's platform-independent input events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventKeyUp
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventWheel
)

var eventNames = [...]string{
	EventNone:        "none",
	EventQuit:        "quit",
	EventResize:      "resize",
	EventKeyDown:     "key_down",
	EventKeyUp:       "key_up",
	EventPointerMove: "pointer_move",
	EventPointerDown: "pointer_down",
	EventPointerUp:   "pointer_up",
	EventWheel:       "wheel",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Button is a pointer button. Values match SDL button indices.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Key is an editor key. Keys the editor does not care about map to KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyShift
	KeyControl
	KeyEscape
	KeyR
	KeyN
	KeyM
	KeyP
	KeyB
	KeyF1
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	X, Y   float64 // Pointer position in window pixels
	Button Button
	Mods   Modifiers
	WheelY float64 // Positive for a scroll down, toward the user
}

// Source produces batches of events, one batch per frame.
type Source interface {
	// Update collects the next batch. Returns true if the editor should quit.
	Update() bool
	// Events returns the batch collected by the last Update.
	Events() []Event
}

// Queue is an in-memory Source fed by Push.
type Queue struct {
	pending []Event
	events  []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push queues events for the next Update.
func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

// Update moves queued events into the current batch.
func (q *Queue) Update() bool {
	q.events, q.pending = q.pending, q.events[:0]
	for _, e := range q.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the batch collected by the last Update.
func (q *Queue) Events() []Event {
	return q.events
}
