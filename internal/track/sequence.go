package track

import (
	"cmp"
	"slices"
	"time"
)

// Sequence is an in-memory track played once from start to end. It is not
// restartable.
type Sequence struct {
	events []Event
	cursor int
}

// NewSequence copies events and orders them by time, keeping the original
// order of simultaneous events.
func NewSequence(events []Event) *Sequence {
	evs := slices.Clone(events)
	slices.SortStableFunc(evs, func(a, b Event) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return &Sequence{events: evs}
}

// Next returns the next event if it is due by now.
func (s *Sequence) Next(now time.Duration) (Event, Status) {
	if s.cursor >= len(s.events) {
		return Event{}, StatusExhausted
	}
	ev := s.events[s.cursor]
	if ev.Time > now {
		return Event{}, StatusNotYet
	}
	s.cursor++
	return ev, StatusReady
}

func (s *Sequence) Len() int { return len(s.events) }

// Remaining counts events not yet handed out.
func (s *Sequence) Remaining() int { return len(s.events) - s.cursor }

// Duration is the timestamp of the last event.
func (s *Sequence) Duration() time.Duration {
	if len(s.events) == 0 {
		return 0
	}
	return s.events[len(s.events)-1].Time
}

// NoteOns counts the events that can fire a light.
func (s *Sequence) NoteOns() int {
	n := 0
	for _, ev := range s.events {
		if ev.Kind == KindNoteOn && ev.Velocity > 0 {
			n++
		}
	}
	return n
}
