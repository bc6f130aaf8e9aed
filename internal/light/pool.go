package light

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/iburimskiy/midi-starshow/internal/palette"
	"github.com/iburimskiy/midi-starshow/internal/render"
)

// SpawnMode names a run-wide placement policy.
type SpawnMode string

const (
	SpawnChaos  SpawnMode = "chaos"
	SpawnCircle SpawnMode = "circle"
)

func ParseSpawnMode(s string) (SpawnMode, error) {
	switch m := SpawnMode(s); m {
	case SpawnChaos, SpawnCircle:
		return m, nil
	default:
		return "", fmt.Errorf("unknown spawn mode %q (want %q or %q)", s, SpawnChaos, SpawnCircle)
	}
}

// SpawnPolicy gives the fixed position of the light at index i.
type SpawnPolicy func(i int) render.Point

// Chaos scatters lights uniformly over the viewport, keeping margin pixels
// clear of every edge. Bounds are inclusive.
func Chaos(width, height, margin int, rng *rand.Rand) SpawnPolicy {
	return func(int) render.Point {
		return render.Point{
			X: float64(margin + rng.Intn(width-2*margin+1)),
			Y: float64(margin + rng.Intn(height-2*margin+1)),
		}
	}
}

// Circle spaces lights evenly on a ring of the given radius.
func Circle(center render.Point, radius float64, slots int) SpawnPolicy {
	return func(i int) render.Point {
		return center.Polar(float64(i)*(2*math.Pi/float64(slots)), radius)
	}
}

// Layout is what PolicyFor needs to know about the viewport.
type Layout struct {
	Width, Height int
	Margin        int
	Radius        float64
	Slots         int
}

func PolicyFor(mode SpawnMode, l Layout, rng *rand.Rand) (SpawnPolicy, error) {
	switch mode {
	case SpawnChaos:
		return Chaos(l.Width, l.Height, l.Margin, rng), nil
	case SpawnCircle:
		center := render.Point{X: float64(l.Width / 2), Y: float64(l.Height / 2)}
		return Circle(center, l.Radius, l.Slots), nil
	default:
		return nil, fmt.Errorf("unknown spawn mode %q", mode)
	}
}

// Pool owns a fixed set of lights. Nothing is added or removed after
// construction.
type Pool struct {
	lights []*Light
	rng    *rand.Rand
}

func NewPool(count int, spawn SpawnPolicy, colors palette.Palette, rng *rand.Rand, params Params) *Pool {
	p := &Pool{
		lights: make([]*Light, count),
		rng:    rng,
	}
	for i := range p.lights {
		p.lights[i] = New(spawn(i), colors, rng, params)
	}
	return p
}

// TriggerRandom fires one light chosen uniformly at random and returns its
// index.
func (p *Pool) TriggerRandom(note, velocity int) int {
	i := p.rng.Intn(len(p.lights))
	p.lights[i].Trigger(note, velocity)
	return i
}

func (p *Pool) UpdateAll() {
	for _, l := range p.lights {
		l.Update()
	}
}

func (p *Pool) DrawAll(s render.Surface) {
	for _, l := range p.lights {
		l.Draw(s)
	}
}

func (p *Pool) Len() int { return len(p.lights) }

func (p *Pool) At(i int) *Light { return p.lights[i] }

// Active counts lights that are currently visible.
func (p *Pool) Active() int {
	n := 0
	for _, l := range p.lights {
		if l.Active() {
			n++
		}
	}
	return n
}
