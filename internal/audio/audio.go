package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

// Backing track buffers 50ms ahead of the speaker.
const bufferDuration = time.Second / 20

// Track is a decoded audio file ready to play alongside the show.
type Track struct {
	path     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *positionTap
	ctrl     *beep.Ctrl
	log      *logrus.Entry
}

// Open decodes a wav, mp3 or flac file.
func Open(path string, log *logrus.Entry) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, errors.WithStackTrace(fmt.Errorf("decoding %s: %w", path, err))
	}

	tap := newPositionTap(streamer, format.SampleRate)
	return &Track{
		path:     path,
		streamer: streamer,
		format:   format,
		tap:      tap,
		ctrl:     &beep.Ctrl{Streamer: tap},
		log:      log.WithField("audio", filepath.Base(path)),
	}, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported file type: %q", ext)
	}
}

// Play initializes the speaker for the track's sample rate and starts it.
func (t *Track) Play() error {
	if err := speaker.Init(t.format.SampleRate, t.format.SampleRate.N(bufferDuration)); err != nil {
		return errors.WithStackTrace(err)
	}
	speaker.Play(beep.Seq(t.ctrl, beep.Callback(func() {
		t.log.Info("audio finished")
	})))
	t.log.WithField("length", t.Length()).Info("audio playing")
	return nil
}

// Elapsed is the current playback position. It satisfies track.Timebase.
func (t *Track) Elapsed() time.Duration { return t.tap.Elapsed() }

// Done reports whether the audio has played to its end.
func (t *Track) Done() bool { return t.tap.Done() }

func (t *Track) Length() time.Duration {
	return t.format.SampleRate.D(t.streamer.Len())
}

// Close stops playback. The decoder owns the file and closes it.
func (t *Track) Close() error {
	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()

	return errors.WithStackTrace(t.streamer.Close())
}
