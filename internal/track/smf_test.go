package track

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// writeSMF builds a two-track file at the default 120 bpm, 96 ticks per beat.
func writeSMF(t *testing.T) []byte {
	t.Helper()

	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(96)

	var lead smf.Track
	lead.Add(0, midi.NoteOn(0, 24, 100))
	lead.Add(96, midi.NoteOff(0, 24))
	lead.Close(0)

	var bass smf.Track
	bass.Add(48, midi.ControlChange(1, 7, 100))
	bass.Add(144, midi.NoteOn(1, 36, 0))
	bass.Close(0)

	require.NoError(t, s.Add(lead))
	require.NoError(t, s.Add(bass))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadMergesTracksInTimeOrder(t *testing.T) {
	t.Parallel()

	seq, err := Read(bytes.NewReader(writeSMF(t)))
	require.NoError(t, err)
	require.Equal(t, 4, seq.Len())
	assert.Equal(t, 1, seq.NoteOns())

	var got []Event
	for {
		ev, st := seq.Next(time.Hour)
		if st == StatusExhausted {
			break
		}
		got = append(got, ev)
	}
	require.Len(t, got, 4)

	assert.Equal(t, KindNoteOn, got[0].Kind)
	assert.Equal(t, 24, got[0].Note)
	assert.Equal(t, 100, got[0].Velocity)
	assert.Equal(t, time.Duration(0), got[0].Time)

	assert.Equal(t, KindOther, got[1].Kind)
	assert.Equal(t, 250*time.Millisecond, got[1].Time)

	assert.Equal(t, 24, got[2].Note)
	assert.Equal(t, 0, got[2].Velocity)
	assert.Equal(t, 500*time.Millisecond, got[2].Time)

	assert.Equal(t, uint8(1), got[3].Channel)
	assert.Equal(t, 36, got[3].Note)
	assert.Equal(t, 0, got[3].Velocity)
	assert.Equal(t, time.Second, got[3].Time)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, os.WriteFile(path, writeSMF(t), 0o644))

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, seq.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.mid"))
	require.Error(t, err)
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("definitely not a midi file"))
	require.Error(t, err)
}
