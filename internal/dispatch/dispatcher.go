package dispatch

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/iburimskiy/midi-starshow/internal/track"
)

// MIDI data bytes are 7 bit.
const (
	minParam = 0
	maxParam = 127
)

// Result reports what a single Poll did.
type Result int

const (
	// Idle means no event was due.
	Idle Result = iota
	// Triggered means a due note-on fired a light.
	Triggered
	// Discarded means a due event was consumed without effect.
	Discarded
	// Ended means the track is exhausted. It is sticky.
	Ended
)

func (r Result) String() string {
	switch r {
	case Triggered:
		return "triggered"
	case Discarded:
		return "discarded"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// Triggerer is the write side of the light pool.
type Triggerer interface {
	TriggerRandom(note, velocity int) int
}

// Stats counts what the dispatcher has done so far.
type Stats struct {
	Triggered int
	Discarded int
}

// Dispatcher turns due track events into light triggers.
type Dispatcher struct {
	src   track.Source
	pool  Triggerer
	log   *logrus.Entry
	ended bool
	stats Stats
}

func New(src track.Source, pool Triggerer, log *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		src:  src,
		pool: pool,
		log:  log.WithField("component", "dispatcher"),
	}
}

// Poll pulls at most one due event from the track. A note-on with non-zero
// velocity fires a random light; every other event is dropped. Once the
// track reports exhaustion every later Poll returns Ended without touching
// the source again.
func (d *Dispatcher) Poll(now time.Duration) Result {
	if d.ended {
		return Ended
	}

	ev, st := d.src.Next(now)
	switch st {
	case track.StatusExhausted:
		d.ended = true
		d.log.WithFields(logrus.Fields{
			"at":        now,
			"triggered": d.stats.Triggered,
			"discarded": d.stats.Discarded,
		}).Info("track ended")
		return Ended
	case track.StatusNotYet:
		return Idle
	}

	note := clamp(ev.Note, minParam, maxParam)
	velocity := clamp(ev.Velocity, minParam, maxParam)
	if ev.Kind != track.KindNoteOn || velocity == 0 {
		d.stats.Discarded++
		return Discarded
	}

	idx := d.pool.TriggerRandom(note, velocity)
	d.stats.Triggered++
	d.log.WithFields(logrus.Fields{
		"light":    idx,
		"note":     note,
		"velocity": velocity,
		"at":       ev.Time,
	}).Debug("trigger")
	return Triggered
}

// Ended reports whether the track has run out.
func (d *Dispatcher) Ended() bool { return d.ended }

func (d *Dispatcher) Stats() Stats { return d.stats }

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
