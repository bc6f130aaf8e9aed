package track

import (
	"time"

	"k8s.io/utils/clock"
)

// Timebase reports how far playback has progressed.
type Timebase interface {
	Elapsed() time.Duration
}

// ClockTimebase measures elapsed time on a clock from the first call to
// Start or Elapsed.
type ClockTimebase struct {
	clk     clock.PassiveClock
	start   time.Time
	started bool
}

func NewClockTimebase(clk clock.PassiveClock) *ClockTimebase {
	return &ClockTimebase{clk: clk}
}

func (c *ClockTimebase) Start() {
	if c.started {
		return
	}
	c.start = c.clk.Now()
	c.started = true
}

func (c *ClockTimebase) Elapsed() time.Duration {
	c.Start()
	return c.clk.Since(c.start)
}

// Player paces a Sequence in real time: events become due according to the
// timebase, not the render loop's simulated time.
type Player struct {
	seq  *Sequence
	base Timebase
}

func NewPlayer(seq *Sequence, base Timebase) *Player {
	return &Player{seq: seq, base: base}
}

func (p *Player) Next(time.Duration) (Event, Status) {
	return p.seq.Next(p.base.Elapsed())
}

// Drainer is a Timebase that can run out, like an audio file that ends
// before the MIDI track does.
type Drainer interface {
	Timebase
	Done() bool
}

// HoldoverTimebase follows a Drainer until it drains, then keeps time moving
// on a clock from the drain point so later events still fall due.
type HoldoverTimebase struct {
	src     Drainer
	clk     clock.PassiveClock
	drained bool
	at      time.Duration
	since   time.Time
}

func NewHoldoverTimebase(src Drainer, clk clock.PassiveClock) *HoldoverTimebase {
	return &HoldoverTimebase{src: src, clk: clk}
}

func (h *HoldoverTimebase) Elapsed() time.Duration {
	if !h.drained {
		e := h.src.Elapsed()
		if !h.src.Done() {
			return e
		}
		h.drained = true
		h.at = e
		h.since = h.clk.Now()
	}
	return h.at + h.clk.Since(h.since)
}
