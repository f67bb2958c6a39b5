package plugin

import "gitlab.com/gomidi/midi/v2"

const (
	defaultEventCapacity = 256
	maxMessageSize       = 3
)

// Event is a MIDI message stamped with its sample offset inside the block.
type Event struct {
	Offset  int
	Message midi.Message
}

// EventBuffer holds the auxiliary event stream handed to ProcessBlock.
// Storage is allocated once; Add and Clear never allocate.
type EventBuffer struct {
	events []Event
	arena  []byte
	used   int
}

// NewEventBuffer allocates room for capacity short MIDI messages.
func NewEventBuffer(capacity int) *EventBuffer {
	if capacity <= 0 {
		capacity = defaultEventCapacity
	}

	return &EventBuffer{
		events: make([]Event, 0, capacity),
		arena:  make([]byte, capacity*maxMessageSize),
	}
}

// Add appends msg at offset. It returns false when the buffer is full or the
// message is longer than a channel message; such events are dropped.
func (e *EventBuffer) Add(offset int, msg midi.Message) bool {
	if len(e.events) == cap(e.events) || len(msg) > maxMessageSize || e.used+len(msg) > len(e.arena) {
		return false
	}

	dst := e.arena[e.used : e.used+len(msg) : e.used+len(msg)]
	copy(dst, msg)
	e.used += len(msg)

	e.events = append(e.events, Event{Offset: offset, Message: midi.Message(dst)})

	return true
}

// Len returns the number of queued events.
func (e *EventBuffer) Len() int { return len(e.events) }

// At returns the i-th event in insertion order.
func (e *EventBuffer) At(i int) Event { return e.events[i] }

// Clear drops every event.
func (e *EventBuffer) Clear() {
	e.events = e.events[:0]
	e.used = 0
}
