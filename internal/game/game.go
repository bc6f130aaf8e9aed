package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/midi-starshow/internal/config"
	"github.com/iburimskiy/midi-starshow/internal/dispatch"
	"github.com/iburimskiy/midi-starshow/internal/light"
	"github.com/iburimskiy/midi-starshow/internal/logger"
	"github.com/iburimskiy/midi-starshow/internal/palette"
	"github.com/iburimskiy/midi-starshow/internal/render"
	"github.com/iburimskiy/midi-starshow/internal/track"
)

// State tells the driver what to do with the frame that was just ticked.
type State int

const (
	// Continue: render this frame and keep going.
	Continue State = iota
	// Last: render this frame, then stop. The track has ended.
	Last
	// Stop: stop now without rendering.
	Stop
)

func (s State) String() string {
	switch s {
	case Last:
		return "last"
	case Stop:
		return "stop"
	default:
		return "continue"
	}
}

// Options wires a Game. Input, Rand and Log may be nil.
type Options struct {
	Config *config.Config
	Source track.Source
	Input  Input
	Rand   *rand.Rand
	Log    *logrus.Entry
}

// Game owns all mutable state of one show: the lights, the dispatcher
// feeding them and the frame clock.
type Game struct {
	cfg        *config.Config
	pool       *light.Pool
	dispatcher *dispatch.Dispatcher
	input      Input
	background palette.Color
	log        *logrus.Entry

	frame int
	done  bool
}

func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	spawn, err := light.PolicyFor(mode, cfg.Layout(), rng)
	if err != nil {
		return nil, err
	}
	pool := light.NewPool(cfg.LightCount, spawn, colors, rng, light.DefaultParams())

	input := opts.Input
	if input == nil {
		input = NoInput
	}

	base := opts.Log
	if base == nil {
		base = logger.GetProjectLogger()
	}
	log := base.WithField("component", "game")
	log.WithFields(logrus.Fields{
		"lights": cfg.LightCount,
		"spawn":  mode,
		"fps":    cfg.TargetFrameRate,
	}).Info("show ready")

	return &Game{
		cfg:        cfg,
		pool:       pool,
		dispatcher: dispatch.New(opts.Source, pool, base),
		input:      input,
		background: bg,
		log:        log,
	}, nil
}

// Tick runs the logic half of one frame: quit check, event dispatch and
// light decay.
func (g *Game) Tick() State {
	if g.done {
		return Stop
	}
	if g.input.QuitRequested() {
		g.done = true
		g.log.WithField("at", formatDuration(g.SimTime())).Info("quit requested")
		return Stop
	}

	if g.dispatcher.Poll(g.SimTime()) == dispatch.Ended {
		g.done = true
	}
	g.pool.UpdateAll()
	g.frame++

	if g.done {
		return Last
	}
	return Continue
}

// Render draws the current frame onto s and presents it.
func (g *Game) Render(s render.Surface) {
	s.Clear(g.background)
	g.pool.DrawAll(s)
	s.Present()
}

// SimTime is the simulated show time of the next tick.
func (g *Game) SimTime() time.Duration {
	return time.Duration(g.frame) * time.Second / time.Duration(g.cfg.TargetFrameRate)
}

func (g *Game) Frame() int { return g.frame }

func (g *Game) Done() bool { return g.done }

func (g *Game) Pool() *light.Pool { return g.pool }

func (g *Game) Config() *config.Config { return g.cfg }

// Status is the one-line summary shown by the debug overlay.
func (g *Game) Status() string {
	st := g.dispatcher.Stats()
	return fmt.Sprintf("%s  active %d/%d  triggers %d",
		formatDuration(g.SimTime()), g.pool.Active(), g.pool.Len(), st.Triggered)
}
