package session

import "time"

// EventType identifies transient effect events produced during a tick.
type EventType uint8

const (
	EventCapture EventType = iota
	EventPounceLand
	EventRestStart
	EventRestEnd
	EventEatStart
	EventEatEnd
	EventPawPrint
	EventFloatingText
	EventSound
)

var eventNames = [...]string{
	EventCapture:      "capture",
	EventPounceLand:   "pounce_land",
	EventRestStart:    "rest_start",
	EventRestEnd:      "rest_end",
	EventEatStart:     "eat_start",
	EventEatEnd:       "eat_end",
	EventPawPrint:     "paw_print",
	EventFloatingText: "floating_text",
	EventSound:        "sound",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event is a single transient effect record, drained by the render sink
// through Snapshot.
type Event struct {
	Type EventType
	At   time.Time
	X, Y float32

	// Optional fields depending on event type
	Rotation float32 // paw print orientation in radians
	Text     string  // floating text content
	Sound    string  // sound trigger name
}

// NewCaptureEvent creates a capture event at the contact point.
func NewCaptureEvent(at time.Time, x, y float32) Event {
	return Event{Type: EventCapture, At: at, X: x, Y: y}
}

// NewPawPrintEvent creates a paw print event with the cat's heading.
func NewPawPrintEvent(at time.Time, x, y, rotation float32) Event {
	return Event{Type: EventPawPrint, At: at, X: x, Y: y, Rotation: rotation}
}

// NewFloatingTextEvent creates a floating text event.
func NewFloatingTextEvent(at time.Time, x, y float32, text string) Event {
	return Event{Type: EventFloatingText, At: at, X: x, Y: y, Text: text}
}

// NewSoundEvent creates a sound trigger event.
func NewSoundEvent(at time.Time, name string) Event {
	return Event{Type: EventSound, At: at, Sound: name}
}
