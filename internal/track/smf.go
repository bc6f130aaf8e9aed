package track

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Load reads a Standard MIDI File and flattens all of its tracks into one
// time-ordered Sequence.
func Load(path string) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	defer f.Close()

	seq, err := Read(f)
	if err != nil {
		return nil, errors.WithStackTrace(fmt.Errorf("reading %s: %w", path, err))
	}
	return seq, nil
}

// Read decodes SMF data. Meta events are dropped; every channel message is
// kept so the dispatcher sees the same stream a player would.
func Read(r io.Reader) (*Sequence, error) {
	var events []Event

	rd := smf.ReadTracksFrom(r).Do(func(te smf.TrackEvent) {
		if te.Message.IsMeta() {
			return
		}
		events = append(events, convert(te))
	})
	if err := rd.Error(); err != nil {
		return nil, err
	}
	return NewSequence(events), nil
}

func convert(te smf.TrackEvent) Event {
	ev := Event{
		Time: time.Duration(te.AbsMicroSeconds) * time.Microsecond,
		Kind: KindOther,
	}

	var ch, key, vel uint8
	msg := midi.Message(te.Message)
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		ev.Kind = KindNoteOn
	case msg.GetNoteOff(&ch, &key, &vel):
		ev.Kind = KindNoteOff
	default:
		return ev
	}
	ev.Channel = ch
	ev.Note = int(key)
	ev.Velocity = int(vel)
	return ev
}
