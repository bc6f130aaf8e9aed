package track

import (
	"fmt"
	"time"
)

// Kind classifies a track event. Only note-on events can fire a light.
type Kind int

const (
	KindOther Kind = iota
	KindNoteOn
	KindNoteOff
)

func (k Kind) String() string {
	switch k {
	case KindNoteOn:
		return "note_on"
	case KindNoteOff:
		return "note_off"
	default:
		return "other"
	}
}

// Event is one timed entry of a recorded track.
type Event struct {
	Time     time.Duration
	Kind     Kind
	Channel  uint8
	Note     int
	Velocity int
}

func (e Event) String() string {
	return fmt.Sprintf("%s ch=%d note=%d vel=%d at %s", e.Kind, e.Channel, e.Note, e.Velocity, e.Time)
}

// Status is the outcome of asking a Source for its next event.
type Status int

const (
	// StatusNotYet means the next event is not due yet.
	StatusNotYet Status = iota
	// StatusReady means the returned event is due and has been consumed.
	StatusReady
	// StatusExhausted means the track has no more events. It is final.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusExhausted:
		return "exhausted"
	default:
		return "not_yet"
	}
}

// Source yields events in non-decreasing time order, at most one per call.
// now is the caller's simulated time; a Source may pace itself by it or by
// its own timebase.
type Source interface {
	Next(now time.Duration) (Event, Status)
}
