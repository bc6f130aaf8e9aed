package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
)

// positionTap wraps a beep.Streamer and counts the samples handed to the
// speaker, so the show can be paced by what has actually been played.
type positionTap struct {
	Source beep.Streamer
	rate   beep.SampleRate

	mu      sync.RWMutex
	samples int
	done    bool
}

func newPositionTap(src beep.Streamer, rate beep.SampleRate) *positionTap {
	return &positionTap{
		Source: src,
		rate:   rate,
	}
}

func (t *positionTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.mu.Lock()
	t.samples += n
	if !ok {
		t.done = true
	}
	t.mu.Unlock()
	return n, ok
}

func (t *positionTap) Err() error { return t.Source.Err() }

// Elapsed is the playback position of the streamed audio.
func (t *positionTap) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rate.D(t.samples)
}

// Done reports whether the source has drained.
func (t *positionTap) Done() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.done
}
